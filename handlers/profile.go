package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/validator"
)

// ProfileHandler - /api/profile: GET profil, PATCH tahrir
func ProfileHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getProfile(client, w, r)
		case http.MethodPatch:
			updateProfile(client, w, r)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getProfile godoc
// @Summary      Joriy foydalanuvchi profili
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.ProfileResponse
// @Failure      502  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile [get]
func getProfile(client *api.Client, w http.ResponseWriter, r *http.Request) {
	profile, err := client.Profile(r.Context(), sessionID(r))
	if err != nil {
		writeAPIError(w, err, "Profilni yuklashda xatolik")
		return
	}

	writeJSON(w, http.StatusOK, models.ProfileResponse{
		Success: true,
		Profile: profile,
	})
}

// updateProfile godoc
// @Summary      Profilni tahrirlash
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body models.ProfileUpdateRequest true "O'zgargan maydonlar"
// @Success      200  {object}  models.ProfileResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile [patch]
func updateProfile(client *api.Client, w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if req.Name == "" && req.Login == "" && req.Avatar == "" {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "O'zgartirish uchun hech narsa kiritilmadi",
		})
		return
	}

	if req.Avatar != "" && !models.IsValidAvatar(req.Avatar) {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Avatar ro'yxatdagi rasmlardan tanlanishi kerak",
		})
		return
	}

	profile, err := client.UpdateProfile(r.Context(), sessionID(r), req)
	if err != nil {
		writeAPIError(w, err, "Profilni yangilashda xatolik")
		return
	}

	logger.Info("profil yangilandi", zap.String("session", sessionID(r)))

	writeJSON(w, http.StatusOK, models.ProfileResponse{
		Success: true,
		Message: "Profil yangilandi",
		Profile: profile,
	})
}

// ChangePassword godoc
// @Summary      Parolni o'zgartirish
// @Description  Yangi parol tasdiqlash bilan mos kelishi va kamida 8 belgi bo'lishi shart
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body models.ChangePasswordRequest true "Parol ma'lumotlari"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile/change-password [post]
func ChangePassword(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Noto'g'ri so'rov formati",
			})
			return
		}

		if req.NewPassword != req.ConfirmPassword {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Parollar mos kelmadi!",
			})
			return
		}
		if len(req.NewPassword) < 8 {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Parol kamida 8 ta belgidan iborat bo'lishi shart!",
			})
			return
		}

		if err := client.ChangePassword(r.Context(), sessionID(r), req); err != nil {
			writeAPIError(w, err, "Parolni o'zgartirishda xatolik")
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Tasdiqlash kodi yuborildi",
		})
	}
}

// VerifyPasswordChange godoc
// @Summary      Parol o'zgartirishni tasdiqlash
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body models.VerifyChangeRequest true "Tasdiqlash kodi"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile/change-password/verify [post]
func VerifyPasswordChange(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.VerifyChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Tasdiqlash kodi kiritilishi shart",
			})
			return
		}

		if err := client.VerifyPasswordChange(r.Context(), sessionID(r), req); err != nil {
			writeAPIError(w, err, "Kod noto'g'ri yoki muddati tugagan")
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Parol muvaffaqiyatli o'zgartirildi",
		})
	}
}

// ChangeEmail godoc
// @Summary      Email manzilini o'zgartirish
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body models.ChangeEmailRequest true "Yangi email"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile/change-email [post]
func ChangeEmail(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.ChangeEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Noto'g'ri so'rov formati",
			})
			return
		}

		if !validator.IsValidEmail(req.NewEmail) {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Elektron pochta formati noto'g'ri",
			})
			return
		}

		if err := client.ChangeEmail(r.Context(), sessionID(r), req); err != nil {
			writeAPIError(w, err, "Emailni o'zgartirishda xatolik")
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Tasdiqlash kodi yangi manzilga yuborildi",
		})
	}
}

// VerifyEmailChange godoc
// @Summary      Email o'zgartirishni tasdiqlash
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body models.VerifyChangeRequest true "Tasdiqlash kodi"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /profile/change-email/verify [post]
func VerifyEmailChange(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		var req models.VerifyChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Tasdiqlash kodi kiritilishi shart",
			})
			return
		}

		if err := client.VerifyEmailChange(r.Context(), sessionID(r), req); err != nil {
			writeAPIError(w, err, "Kod noto'g'ri yoki muddati tugagan")
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Email muvaffaqiyatli o'zgartirildi",
		})
	}
}

// ThemeHandler - /api/theme: GET joriy mavzu, PUT o'zgartirish.
// Mavzu sessiyada saqlanadi, sessiya bo'lmasa "light" qaytadi.
func ThemeHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			theme := "light"
			if sid := sessionID(r); sid != "" {
				if sess, err := store.Get(r.Context(), sid); err == nil && sess.Theme != "" {
					theme = sess.Theme
				}
			}
			writeJSON(w, http.StatusOK, models.ThemeResponse{Success: true, Theme: theme})

		case http.MethodPut:
			var req models.ThemeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, models.AuthResponse{
					Success: false,
					Message: "Noto'g'ri so'rov formati",
				})
				return
			}

			theme := strings.ToLower(req.Theme)
			if theme != "dark" && theme != "light" {
				writeJSON(w, http.StatusBadRequest, models.AuthResponse{
					Success: false,
					Message: "Mavzu dark yoki light bo'lishi kerak",
				})
				return
			}

			sid := sessionID(r)
			if sid == "" {
				redirectLogin(w)
				return
			}
			sess, err := store.Get(r.Context(), sid)
			if err != nil {
				redirectLogin(w)
				return
			}

			sess.Theme = theme
			if err := store.Save(r.Context(), sess); err != nil {
				logger.Error("mavzuni saqlashda xatolik", zap.Error(err))
				writeJSON(w, http.StatusInternalServerError, models.AuthResponse{
					Success: false,
					Message: "Mavzuni saqlashda xatolik",
				})
				return
			}

			writeJSON(w, http.StatusOK, models.ThemeResponse{Success: true, Theme: theme})

		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}
