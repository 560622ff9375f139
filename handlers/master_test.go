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

func TestUpdateMasterMergesChangedFields(t *testing.T) {
	var gotBody map[string]interface{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/masters/m1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"_id": "m1", "name": "Aziz Karimov", "email": "aziz@example.com",
					"phone": "+998901112233", "soha": "Kompyuter ustasi", "status": "active",
				},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/masters/m1":
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status":"success"}`))
		default:
			t.Errorf("kutilmagan so'rov: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodPut, "/api/masters/m1",
		strings.NewReader(`{"phone":"+998909998877"}`))
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	MasterByIDHandler(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Backendga faqat o'zgargan maydon ketadi
	assert.Equal(t, "+998909998877", gotBody["phone"])
	_, hasName := gotBody["name"]
	assert.False(t, hasName)

	// Javobda to'liq yangilangan nusxa qaytadi
	var resp models.MasterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Master)
	assert.Equal(t, "+998909998877", resp.Master.Phone)
	assert.Equal(t, "Aziz Karimov", resp.Master.FullName)
	assert.Equal(t, "aziz@example.com", resp.Master.Email)
	assert.Equal(t, "Kompyuter ustasi", resp.Master.Specialty)
}

func TestUpdateMasterEmptyRequest(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodPut, "/api/masters/m1", strings.NewReader(`{}`))
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	MasterByIDHandler(client)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)
}

func TestCreateMasterPhoneValidation(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodPost, "/api/masters",
		strings.NewReader(`{"name":"Aziz","phone":"901234567"}`))
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	MastersHandler(client)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Telefon raqami +998XXXXXXXXX formatida bo'lishi kerak", resp.Message)
}

func TestCreatePartRequiresAllFields(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodPost, "/api/parts",
		strings.NewReader(`{"name":"SSD","category":"Xotira","quantity":5,"price":700000}`))
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	PartsHandler(client)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Barcha maydonlarni to'ldiring", resp.Message)
}
