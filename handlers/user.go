package handlers

import (
	"net/http"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/models"
)

// GetSupportUsers godoc
// @Summary      Mijozlar ro'yxati (admin)
// @Description  Ro'yxatdan o'tgan barcha mijozlar va ularning buyurtma hisoblari
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.SupportUsersResponse
// @Failure      502  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /users [get]
func GetSupportUsers(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		users, err := client.SupportUsers(r.Context(), sessionID(r))
		if err != nil {
			writeAPIError(w, err, "Mijozlarni yuklashda xatolik")
			return
		}

		writeJSON(w, http.StatusOK, models.SupportUsersResponse{
			Success: true,
			Users:   users,
			Total:   len(users),
		})
	}
}
