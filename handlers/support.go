package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/ratelimit"
	"dern-support-gateway/pkg/validator"
)

// SupportRequest - bosh sahifadagi yordam so'rovi formasi
// @Description Yordam so'rovi ma'lumotlari
type SupportRequest struct {
	PersonType  string `json:"personType"`
	CompanyName string `json:"companyName,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OS          string `json:"os,omitempty"`
	OrderName   string `json:"orderName"`
	Specialist  string `json:"specialist"`
	Deadline    string `json:"deadline,omitempty"`
	City        string `json:"city"`
	District    string `json:"district"`
	Street      string `json:"street"`
	Problem     string `json:"problem"`
}

// SubmitSupportRequest godoc
// @Summary      Yordam so'rovi yuborish (ochiq)
// @Description  Bosh sahifa formasi. Muammo matni OS ma'lumoti bilan birlashtirilib yangi buyurtma sifatida yuboriladi
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        request body SupportRequest true "Forma ma'lumotlari"
// @Success      200  {object}  models.AuthResponse
// @Failure      400  {object}  models.AuthResponse
// @Failure      429  {object}  models.AuthResponse
// @Router       /support [post]
func SubmitSupportRequest(client *api.Client, limiter ratelimit.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat POST metodi qo'llab-quvvatlanadi",
			})
			return
		}

		// Ochiq endpoint, IP bo'yicha cheklov majburiy
		if allowed, err := limiter.Allow("support:" + clientIP(r)); !allowed {
			logger.Warn("support rate limit", zap.String("ip", clientIP(r)), zap.Error(err))
			writeJSON(w, http.StatusTooManyRequests, models.AuthResponse{
				Success: false,
				Message: "Juda ko'p urinish. Birozdan keyin qayta urining.",
			})
			return
		}

		var req SupportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Noto'g'ri so'rov formati",
			})
			return
		}

		personType := strings.ToLower(req.PersonType)
		if personType != models.UserTypeJismoniy && personType != models.UserTypeYuridik {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Shaxs turi noto'g'ri",
			})
			return
		}
		if personType == models.UserTypeYuridik && req.CompanyName == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Biznes hisoblari uchun kompaniya nomi talab qilinadi",
			})
			return
		}

		if req.Name == "" || req.OrderName == "" || req.Problem == "" ||
			req.City == "" || req.District == "" || req.Street == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Barcha maydonlarni to'ldiring",
			})
			return
		}
		if !validator.IsValidPhone(req.Phone) {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Telefon raqami +998XXXXXXXXX formatida bo'lishi kerak",
			})
			return
		}
		if !validator.IsValidEmail(req.Email) {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Elektron pochta formati noto'g'ri",
			})
			return
		}

		os := req.OS
		if os == "" {
			os = "Noma'lum"
		}

		order := models.OrderCreateRequest{
			ProductName: req.OrderName,
			Category:    req.Specialist,
			Description: fmt.Sprintf("Muammo: %s\nOS: %s", req.Problem, os),
			Address: models.Address{
				City:     req.City,
				District: req.District,
				Street:   req.Street,
			},
		}

		if _, err := client.CreateOrder(r.Context(), "", order); err != nil {
			writeAPIError(w, err, "Xatolik yuz berdi. Qayta urinib ko'ring.")
			return
		}

		logger.Info("yordam so'rovi qabul qilindi",
			zap.String("name", req.Name),
			zap.String("specialist", req.Specialist))

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Success: true,
			Message: "Ma'lumotingiz saqlandi",
		})
	}
}
