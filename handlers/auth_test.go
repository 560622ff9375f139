package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/ratelimit"
)

func loginBackend(t *testing.T, role string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "success",
				"token":  "token-xyz",
				"user":   map[string]interface{}{"_id": "u1", "role": role},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func doLogin(t *testing.T, backendURL string) (*httptest.ResponseRecorder, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	client := newTestClient(backendURL, store)
	limiter := ratelimit.NewMemoryLimiter(100, 100)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"login":"aziz","password":"parol12345"}`))

	rec := httptest.NewRecorder()
	Login(client, store, limiter)(rec, req)
	return rec, store
}

func TestLoginRoleRedirect(t *testing.T) {
	cases := map[string]string{
		models.RoleAdmin:  "/dashboard/admin",
		models.RoleMaster: "/dashboard/master",
		models.RoleUser:   "/dashboard/user",
	}

	for role, redirect := range cases {
		backend := loginBackend(t, role)

		rec, _ := doLogin(t, backend.URL)
		require.Equal(t, http.StatusOK, rec.Code, "role: %s", role)

		var resp models.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, redirect, resp.Redirect)

		backend.Close()
	}
}

func TestLoginUnknownRole(t *testing.T) {
	backend := loginBackend(t, "moderator")
	defer backend.Close()

	rec, _ := doLogin(t, backend.URL)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Noma'lum foydalanuvchi turi", resp.Message)

	// Rol aniqlanmagan bo'lsa sessiya ham, cookie ham berilmaydi
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, SessionCookieName, c.Name)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	backend := loginBackend(t, models.RoleUser)
	defer backend.Close()

	rec, store := doLogin(t, backend.URL)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	sess, err := store.Get(context.Background(), sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", sess.Token)
	assert.Equal(t, "u1", sess.User.ID)
}

func TestLoginFailedCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Login yoki parol noto'g'ri"})
	}))
	defer backend.Close()

	rec, _ := doLogin(t, backend.URL)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Login yoki parol noto'g'ri", resp.Message)
}

// Validatsiya xatosida so'rov backendga umuman yuborilmaydi
func TestRegisterValidationBlocksRequest(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	body := `{"userType":"jismoniy","name":"Aziz","login":"aziz","email":"aziz@example.com",` +
		`"phone":"+998901234567","password":"parol12345","confirmPassword":"boshqa"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))

	rec := httptest.NewRecorder()
	Register(client)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Parollar mos kelmadi!", resp.Message)
}

func TestRegisterForwardsWithoutConfirmPassword(t *testing.T) {
	var gotBody map[string]interface{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	body := `{"userType":"yuridik","companyName":"Tech MChJ","name":"Aziz","login":"aziz",` +
		`"email":"aziz@example.com","phone":"+998901234567",` +
		`"password":"parol12345","confirmPassword":"parol12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))

	rec := httptest.NewRecorder()
	Register(client)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tech MChJ", gotBody["companyName"])
	_, hasConfirm := gotBody["confirmPassword"]
	assert.False(t, hasConfirm, "confirmPassword backendga ketmasligi kerak")
}

func TestLogoutClearsSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	store := session.NewMemoryStore()
	client := newTestClient(backend.URL, store)

	cookie := withSession(t, store, models.RoleUser)
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	Logout(client, store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err := store.Get(req.Context(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Cookie o'chiriladi
	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}
