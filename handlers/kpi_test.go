package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
)

// Masterlar manbasi ishlamay qolsa ham statistika bo'sh ro'yxat bilan qaytadi
func TestAdminStatsPartialFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"_id": "o1", "status": "tasdiqlangan", "orderDate": "2025-01-10"},
				{"_id": "o2", "status": "jarayonda", "orderDate": "2025-03-05"},
			})
		case "/masters":
			w.WriteHeader(http.StatusInternalServerError)
		case "/user/support/user":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"_id": "u1", "name": "Aziz"},
			})
		}
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/admin", nil)
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	GetAdminStats(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Completed)
	assert.Equal(t, 50, resp.Summary.CompletionRate)
	assert.Empty(t, resp.Masters)
	assert.Equal(t, 1, resp.Clients)

	require.Len(t, resp.Monthly, 12)
	assert.Equal(t, 1, resp.Monthly[0].Completed)
	assert.Equal(t, 1, resp.Monthly[2].InProgress)
}
