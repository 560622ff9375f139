package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/ratelimit"
	"dern-support-gateway/pkg/validator"
)

// SessionCookieName - sessiya cookie nomi
const SessionCookieName = "dern_session"

// writeJSON - JSON javob qaytarish uchun helper
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionID - so'rovdan sessiya id sini o'qish
func sessionID(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// clientIP - rate limit uchun client manzili
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// writeAPIError - backend xatosini sahifa xabariga aylantirish.
// 401 hamma joyda bir xil: sessiya tozalanib /login ga yo'naltiriladi.
func writeAPIError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, api.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, models.AuthResponse{
			Success:  false,
			Message:  "Sessiya muddati tugagan. Qaytadan kiring.",
			Redirect: "/login",
		})
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if apiErr.IsUnreachable() {
			status = http.StatusBadGateway
		}
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		writeJSON(w, status, models.AuthResponse{Success: false, Message: message})
		return
	}

	var parseErr *api.ParseError
	if errors.As(err, &parseErr) {
		logger.Error("backend javobi yaroqsiz", zap.Error(parseErr))
		writeJSON(w, http.StatusBadGateway, models.AuthResponse{Success: false, Message: fallback})
		return
	}

	writeJSON(w, http.StatusInternalServerError, models.AuthResponse{Success: false, Message: fallback})
}

// Login godoc
// @Summary      Tizimga kirish
// @Description  Login va parol bilan kirish. Muvaffaqiyatda sessiya cookie o'rnatiladi va rolga mos dashboard yo'li qaytadi
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login ma'lumotlari"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Failure      429  {object}  models.AuthResponse
// @Router       /login [post]
func Login(client *api.Client, store session.Store, limiter ratelimit.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Noto'g'ri so'rov formati",
			})
			return
		}

		// Brute-force dan himoya: IP bo'yicha cheklov
		limitKey := "login:" + clientIP(r)
		if allowed, err := limiter.Allow(limitKey); !allowed {
			logger.Warn("login rate limit", zap.String("ip", clientIP(r)), zap.Error(err))
			writeJSON(w, http.StatusTooManyRequests, models.AuthResponse{
				Success: false,
				Message: "Juda ko'p urinish. Birozdan keyin qayta urining.",
			})
			return
		}

		result, err := client.Login(r.Context(), models.LoginRequest{
			Login:    strings.TrimSpace(req.Login),
			Password: req.Password,
		})
		if err != nil {
			writeAPIError(w, err, "Login muvaffaqiyatsiz")
			return
		}

		if result.Status != "success" {
			message := result.Message
			if message == "" {
				message = "Login muvaffaqiyatsiz"
			}
			writeJSON(w, http.StatusUnauthorized, models.AuthResponse{Success: false, Message: message})
			return
		}

		// Rol aniqlanmaguncha sessiya saqlanmaydi va cookie berilmaydi
		role := ""
		if result.User != nil {
			role = result.User.Role
		}
		redirect := models.DashboardRoute(role)
		if redirect == "" {
			writeJSON(w, http.StatusOK, models.AuthResponse{
				Success: false,
				Message: "Noma'lum foydalanuvchi turi",
				User:    result.User,
			})
			return
		}

		// Sessiyani yaratish: token va foydalanuvchi bloki bitta joyda saqlanadi
		sess := &session.Session{
			ID:    uuid.New().String(),
			Token: result.Token,
			User:  result.User,
		}
		if err := store.Save(r.Context(), sess); err != nil {
			logger.Error("sessiyani saqlashda xatolik", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, models.AuthResponse{
				Success: false,
				Message: "Sessiyani saqlashda xatolik",
			})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		limiter.Reset(limitKey)

		logger.Info("foydalanuvchi kirdi",
			zap.String("login", req.Login),
			zap.String("role", sess.Role()))

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success:  true,
			Redirect: redirect,
			User:     result.User,
		})
	}
}

// Register godoc
// @Summary      Ro'yxatdan o'tish
// @Description  Yangi hisob yaratish. Validatsiya xatosida so'rov backendga yuborilmaydi
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterRequest true "Ro'yxatdan o'tish ma'lumotlari"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Router       /user/register [post]
func Register(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Noto'g'ri so'rov formati",
			})
			return
		}

		// Forma tekshiruvi tarmoqdan oldin - xato bo'lsa so'rov chiqmaydi
		if err := validator.ValidateRegisterForm(req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		payload := api.RegisterPayload{
			UserType: req.UserType,
			Name:     req.Name,
			Login:    req.Login,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
		}
		if req.UserType == models.UserTypeYuridik || req.CompanyName != "" {
			payload.CompanyName = req.CompanyName
		}

		result, err := client.Register(r.Context(), payload)
		if err != nil {
			writeAPIError(w, err, "Ro'yxatdan o'tish amalga oshmadi!")
			return
		}

		if result.Status != "success" {
			message := result.Message
			if message == "" {
				message = "Ro'yxatdan o'tish amalga oshmadi!"
			}
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{Success: false, Message: message})
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success:  true,
			Message:  "Hisob yaratildi",
			Redirect: "/login",
		})
	}
}

// CheckAuth godoc
// @Summary      Sessiyani tekshirish
// @Description  Backend orqali sessiya yaroqliligini tasdiqlash; foydalanuvchi bloki sessiyada yangilanadi
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.CheckAuthResponse
// @Router       /check-auth [get]
func CheckAuth(client *api.Client, store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		sid := sessionID(r)
		if sid == "" {
			writeJSON(w, http.StatusOK, models.CheckAuthResponse{Authenticated: false})
			return
		}

		sess, err := store.Get(r.Context(), sid)
		if err != nil || !sess.Authenticated() {
			writeJSON(w, http.StatusOK, models.CheckAuthResponse{Authenticated: false})
			return
		}

		result, err := client.CheckAuth(r.Context(), sid)
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				writeJSON(w, http.StatusOK, models.CheckAuthResponse{Authenticated: false})
				return
			}
			writeAPIError(w, err, "Sessiyani tekshirishda xatolik")
			return
		}

		if !result.Authenticated || result.User == nil {
			// Backend rad etdi - lokal sessiya ham tozalanadi
			store.Delete(r.Context(), sid)
			writeJSON(w, http.StatusOK, models.CheckAuthResponse{Authenticated: false})
			return
		}

		// Foydalanuvchi blokini yangilab saqlash (userId param shu yerdan olinadi)
		sess.User = result.User
		if err := store.Save(r.Context(), sess); err != nil {
			logger.Warn("sessiyani yangilashda xatolik", zap.Error(err))
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Logout godoc
// @Summary      Tizimdan chiqish
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.AuthResponse
// @Router       /logout [post]
func Logout(client *api.Client, store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		sid := sessionID(r)
		if sid != "" {
			// Backend xatosi chiqishga to'sqinlik qilmaydi
			if err := client.Logout(r.Context(), sid); err != nil && !errors.Is(err, api.ErrUnauthorized) {
				logger.Warn("backend logout xatosi", zap.Error(err))
			}
			store.Delete(r.Context(), sid)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success:  true,
			Redirect: "/login",
		})
	}
}
