package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
)

// Ro'yxatdan tashqari avatar backendga yuborilmaydi
func TestUpdateProfileRejectsUnknownAvatar(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	body := `{"avatar":"https://example.com/boshqa.png"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/profile", strings.NewReader(body))

	rec := httptest.NewRecorder()
	ProfileHandler(client)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Avatar ro'yxatdagi rasmlardan tanlanishi kerak", resp.Message)
}

func TestUpdateProfileAcceptsListedAvatar(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	body := `{"avatar":"` + models.AvatarOptions[0] + `"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/profile", strings.NewReader(body))

	rec := httptest.NewRecorder()
	ProfileHandler(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}
