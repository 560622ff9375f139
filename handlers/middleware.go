package handlers

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
)

// unauthResponse - himoyalangan yo'lga ruxsatsiz kirganda qaytadigan javob
type unauthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func redirectLogin(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, unauthResponse{
		Success:  false,
		Message:  "Avval tizimga kiring",
		Redirect: "/login",
	})
}

func redirectUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, unauthResponse{
		Success:  false,
		Message:  "Bu sahifaga kirish huquqingiz yo'q",
		Redirect: "/unauthorized",
	})
}

// tokenRole - token ichidagi rol da'vosini o'qish.
// Token backend tomonida imzolangan, shuning uchun bu faqat tezkor
// tekshiruv: yakuniy qaror har doim check-auth orqali beriladi.
func tokenRole(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole - rol bo'yicha himoya. Sessiya bo'lmasa /login ga,
// rol mos kelmasa /unauthorized ga yo'naltiradi.
func RequireRole(client *api.Client, store session.Store, roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sid := sessionID(r)
			if sid == "" {
				redirectLogin(w)
				return
			}

			sess, err := store.Get(r.Context(), sid)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					logger.Error("sessiyani o'qishda xatolik", zap.Error(err))
				}
				redirectLogin(w)
				return
			}
			if !sess.Authenticated() {
				redirectLogin(w)
				return
			}

			// Token ichidagi rol yaroqsiz bo'lsa backendga bormasdan rad etamiz
			if role := tokenRole(sess.Token); role != "" && !roleAllowed(role, roles) {
				redirectUnauthorized(w)
				return
			}

			result, err := client.CheckAuth(r.Context(), sid)
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					redirectLogin(w)
					return
				}
				writeAPIError(w, err, "Sessiyani tekshirishda xatolik")
				return
			}
			if !result.Authenticated || result.User == nil {
				store.Delete(r.Context(), sid)
				redirectLogin(w)
				return
			}

			if !roleAllowed(result.User.Role, roles) {
				redirectUnauthorized(w)
				return
			}

			// Yangilangan foydalanuvchi bloki sessiyaga qaytariladi
			sess.User = result.User
			if err := store.Save(r.Context(), sess); err != nil {
				logger.Warn("sessiyani yangilashda xatolik", zap.Error(err))
			}

			next(w, r)
		}
	}
}

// RequireAnyRole - har qanday tizimga kirgan foydalanuvchi uchun
func RequireAnyRole(client *api.Client, store session.Store) func(http.HandlerFunc) http.HandlerFunc {
	return RequireRole(client, store, models.RoleAdmin, models.RoleMaster, models.RoleUser)
}
