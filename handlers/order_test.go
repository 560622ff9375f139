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

// editBackend - buyurtma tahriri uchun soxta backend.
// editHits orqali PATCH /orders/{id}/edit nechta marta kelgani kuzatiladi.
func editBackend(t *testing.T, orderStatus string, editHits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/orders/o1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"_id": "o1", "status": orderStatus},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/parts":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"_id": "p1", "name": "SSD 512GB", "quantity": 5, "price": 100000},
			})
		case r.Method == http.MethodPatch && r.URL.Path == "/orders/o1/edit":
			*editHits++
			w.Write([]byte(`{"status":"success"}`))
		default:
			t.Errorf("kutilmagan so'rov: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func doEdit(t *testing.T, backendURL string, body string) *httptest.ResponseRecorder {
	t.Helper()
	store := session.NewMemoryStore()
	client := newTestClient(backendURL, store)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/edit", strings.NewReader(body))
	req.AddCookie(withSession(t, store, models.RoleMaster))

	rec := httptest.NewRecorder()
	OrderByIDHandler(client)(rec, req)
	return rec
}

func TestEditOrderPartsCostBlocksRequest(t *testing.T) {
	editHits := 0
	backend := editBackend(t, models.OrderStatusJarayonda, &editHits)
	defer backend.Close()

	// Qismlar narxi 100000, kiritilgan narx 50000
	rec := doEdit(t, backend.URL, `{"price":50000,"spareParts":[{"partId":"p1","quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, editHits, "tahrir so'rovi backendga ketmasligi kerak")

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Message, "bankrot")
	assert.Contains(t, resp.Message, "100,000")
}

func TestEditOrderSufficientPrice(t *testing.T) {
	editHits := 0
	backend := editBackend(t, models.OrderStatusJarayonda, &editHits)
	defer backend.Close()

	rec := doEdit(t, backend.URL, `{"price":250000,"spareParts":[{"partId":"p1","quantity":2}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, editHits)
}

func TestEditOrderOnlyJarayonda(t *testing.T) {
	editHits := 0
	backend := editBackend(t, models.OrderStatusYangi, &editHits)
	defer backend.Close()

	rec := doEdit(t, backend.URL, `{"price":250000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, editHits)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Faqat jarayonda bo'lgan buyurtma tahrirlanadi", resp.Message)
}

func TestEditOrderClampsQuantity(t *testing.T) {
	var gotBody models.OrderEditRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/orders/o1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"_id": "o1", "status": "jarayonda"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/parts":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"_id": "p1", "name": "SSD", "quantity": 3, "price": 1000},
			})
		case r.Method == http.MethodPatch && r.URL.Path == "/orders/o1/edit":
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status":"success"}`))
		}
	}))
	defer backend.Close()

	rec := doEdit(t, backend.URL, `{"price":100000,"spareParts":[{"partId":"p1","quantity":99}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gotBody.SpareParts, 1)
	assert.Equal(t, 3, gotBody.SpareParts[0].Quantity, "miqdor ombordagi qoldiqqa tushishi kerak")
}

func TestFormatSum(t *testing.T) {
	assert.Equal(t, "100", formatSum(100))
	assert.Equal(t, "1,000", formatSum(1000))
	assert.Equal(t, "100,000", formatSum(100000))
	assert.Equal(t, "1,234,567", formatSum(1234567))
	assert.Equal(t, "1,500.5", formatSum(1500.5))
}

func TestGetOrdersFilters(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"_id": "o1", "status": "yangi", "customerName": "Aziz"},
				{"_id": "o2", "status": "jarayonda", "customerName": "Bobur"},
				{"_id": "o3", "status": "jarayonda", "customerName": "Sardor"},
			},
		})
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=jarayonda&search=bobur", nil)
	req.AddCookie(withSession(t, store, models.RoleAdmin))

	rec := httptest.NewRecorder()
	GetOrders(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.OrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "o2", resp.Orders[0].ID)

	// Hisoblar filtrlashdan oldingi to'liq ro'yxat bo'yicha
	assert.Equal(t, 3, resp.Counts[models.FilterHammasi])
	assert.Equal(t, 2, resp.Counts[models.OrderStatusJarayonda])
}
