package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
)

func testSession(t *testing.T, store session.Store) string {
	t.Helper()
	sess := &session.Session{
		ID:    "sid-1",
		Token: "token-abc",
		User:  &models.SessionUser{ID: "user-7", Role: models.RoleUser},
	}
	require.NoError(t, store.Save(context.Background(), sess))
	return sess.ID
}

func TestClientAddsUserIDToOrderPaths(t *testing.T) {
	var gotUserID, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.URL.Query().Get("userId")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"_id": "o1", "status": "yangi"},
		})
	}))
	defer upstream.Close()

	store := session.NewMemoryStore()
	sid := testSession(t, store)
	client := New(upstream.URL, time.Second, store)

	_, err := client.Order(context.Background(), sid, "o1")
	require.NoError(t, err)

	assert.Equal(t, "user-7", gotUserID)
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestClientSkipsUserIDForOrderCreate(t *testing.T) {
	var gotUserID string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.URL.Query().Get("userId")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"_id": "o2", "status": "yangi"},
		})
	}))
	defer upstream.Close()

	store := session.NewMemoryStore()
	sid := testSession(t, store)
	client := New(upstream.URL, time.Second, store)

	_, err := client.CreateOrder(context.Background(), sid, models.OrderCreateRequest{
		ProductName: "Noutbuk",
		Category:    "Kompyuter ustasi",
		Description: "Ekran ishlamayapti",
	})
	require.NoError(t, err)

	assert.Empty(t, gotUserID)
}

// Hujjatni qaytarmaydigan backend javobida ham yaratilgan buyurtma nil bo'lmaydi
func TestClientCreateOrderWithoutEcho(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "success",
			"message": "Buyurtma yaratildi",
		})
	}))
	defer upstream.Close()

	store := session.NewMemoryStore()
	sid := testSession(t, store)
	client := New(upstream.URL, time.Second, store)

	order, err := client.CreateOrder(context.Background(), sid, models.OrderCreateRequest{
		ProductName: "Noutbuk",
		Category:    "Kompyuter ustasi",
		Description: "Ekran ishlamayapti",
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusYangi, order.Status)
	assert.Equal(t, "Noutbuk", order.ProductName)
}

func TestClientClearsSessionOn401(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	store := session.NewMemoryStore()
	sid := testSession(t, store)
	client := New(upstream.URL, time.Second, store)

	_, err := client.Orders(context.Background(), sid)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestClientUnreachable(t *testing.T) {
	store := session.NewMemoryStore()
	sid := testSession(t, store)

	// Yopiq port - so'rov tarmoq darajasida muvaffaqiyatsiz bo'ladi
	client := New("http://127.0.0.1:1", 200*time.Millisecond, store)

	_, err := client.Orders(context.Background(), sid)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnreachable())
	assert.Equal(t, ErrUnreachableMessage, apiErr.Message)
}

func TestClientUpstreamErrorMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Buyurtma topilmadi"})
	}))
	defer upstream.Close()

	store := session.NewMemoryStore()
	sid := testSession(t, store)
	client := New(upstream.URL, time.Second, store)

	_, err := client.Order(context.Background(), sid, "yo'q")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Buyurtma topilmadi", apiErr.Message)
}

func TestClientOrdersEnvelopeVariants(t *testing.T) {
	variants := []string{
		`[{"_id":"o1","status":"yangi"}]`,
		`{"data":[{"_id":"o1","status":"yangi"}]}`,
		`{"data":{"orders":[{"_id":"o1","status":"yangi"}]}}`,
		`{"orders":[{"_id":"o1","status":"yangi"}]}`,
	}

	for _, body := range variants {
		payload := body
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		store := session.NewMemoryStore()
		sid := testSession(t, store)
		client := New(upstream.URL, time.Second, store)

		orders, err := client.Orders(context.Background(), sid)
		require.NoError(t, err, "variant: %s", payload)
		require.Len(t, orders, 1, "variant: %s", payload)
		assert.Equal(t, "o1", orders[0].ID)

		upstream.Close()
	}
}
