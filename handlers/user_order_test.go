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

// Backend yaratilgan hujjatni qaytarmasa ham javob to'liq shakllanadi
func TestCreateUserOrderNoEchoUpstream(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/orders" {
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "success",
				"message": "Buyurtma yaratildi",
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	body := `{"productName":"Noutbuk","category":"Kompyuter ustasi",` +
		`"description":"Ekran ishlamayapti"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user-orders", strings.NewReader(body))

	rec := httptest.NewRecorder()
	UserOrdersHandler(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "Noutbuk", resp.Order.ProductName)
	assert.Equal(t, models.OrderStatusYangi, resp.Order.Status)
}
