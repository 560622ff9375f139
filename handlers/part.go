package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
)

// PartsHandler - /api/parts: GET ro'yxat (qidiruv bilan), POST yangi qism
func PartsHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getParts(client, w, r)
		case http.MethodPost:
			createPart(client, w, r)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getParts godoc
// @Summary      Ehtiyot qismlar ro'yxati
// @Description  Qidiruv nom bo'yicha ishlaydi
// @Tags         parts
// @Produce      json
// @Param        search query string false "Qidiruv matni"
// @Success      200  {object}  models.PartsResponse
// @Failure      502  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /parts [get]
func getParts(client *api.Client, w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	parts, err := client.Parts(r.Context(), sessionID(r), search)
	if err != nil {
		writeAPIError(w, err, "Ehtiyot qismlarni yuklashda xatolik")
		return
	}

	// Backend qidiruvni e'tiborsiz qoldirsa ham natija filtrlangan bo'ladi
	filtered := models.FilterParts(parts, search)

	writeJSON(w, http.StatusOK, models.PartsResponse{
		Success: true,
		Parts:   filtered,
		Total:   len(filtered),
	})
}

// createPart godoc
// @Summary      Yangi ehtiyot qism qo'shish
// @Description  Barcha maydonlar majburiy
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        request body models.PartRequest true "Qism ma'lumotlari"
// @Success      200  {object}  models.PartResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /parts [post]
func createPart(client *api.Client, w http.ResponseWriter, r *http.Request) {
	var req models.PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if !req.IsComplete() {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Barcha maydonlarni to'ldiring",
		})
		return
	}

	if err := client.CreatePart(r.Context(), sessionID(r), req); err != nil {
		writeAPIError(w, err, "Qism qo'shishda xatolik")
		return
	}

	logger.Info("yangi ehtiyot qism qo'shildi", zap.String("name", req.Name))

	writeJSON(w, http.StatusOK, models.PartResponse{
		Success: true,
		Message: "Ehtiyot qism qo'shildi",
	})
}

// PartByIDHandler - /api/parts/{id}: PUT tahrir, DELETE o'chirish
func PartByIDHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/parts/")
		partID := strings.TrimSuffix(path, "/")

		if partID == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Qism ID kiritilishi shart",
			})
			return
		}

		switch r.Method {
		case http.MethodPut:
			updatePart(client, w, r, partID)
		case http.MethodDelete:
			deletePart(client, w, r, partID)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// updatePart godoc
// @Summary      Ehtiyot qismni tahrirlash
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id path string true "Qism ID"
// @Param        request body models.PartRequest true "Yangilangan ma'lumotlar"
// @Success      200  {object}  models.PartResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /parts/{id} [put]
func updatePart(client *api.Client, w http.ResponseWriter, r *http.Request, partID string) {
	var req models.PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if !req.IsComplete() {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Barcha maydonlarni to'ldiring",
		})
		return
	}

	if err := client.UpdatePart(r.Context(), sessionID(r), partID, req); err != nil {
		writeAPIError(w, err, "Qismni yangilashda xatolik")
		return
	}

	writeJSON(w, http.StatusOK, models.PartResponse{
		Success: true,
		Message: "Ehtiyot qism yangilandi",
	})
}

// deletePart godoc
// @Summary      Ehtiyot qismni o'chirish
// @Tags         parts
// @Produce      json
// @Param        id path string true "Qism ID"
// @Success      200  {object}  models.PartResponse
// @Security     SessionCookie
// @Router       /parts/{id} [delete]
func deletePart(client *api.Client, w http.ResponseWriter, r *http.Request, partID string) {
	if err := client.DeletePart(r.Context(), sessionID(r), partID); err != nil {
		writeAPIError(w, err, "Qismni o'chirishda xatolik")
		return
	}

	logger.Info("ehtiyot qism o'chirildi", zap.String("part_id", partID))

	writeJSON(w, http.StatusOK, models.PartResponse{
		Success: true,
		Message: "Ehtiyot qism o'chirildi",
	})
}
