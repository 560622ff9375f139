package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/validator"
)

// MastersHandler - /api/masters: GET ro'yxat, POST yangi master
func MastersHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getMasters(client, w, r)
		case http.MethodPost:
			createMaster(client, w, r)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getMasters godoc
// @Summary      Masterlar ro'yxati
// @Tags         masters
// @Produce      json
// @Success      200  {object}  models.MastersResponse
// @Failure      502  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /masters [get]
func getMasters(client *api.Client, w http.ResponseWriter, r *http.Request) {
	masters, err := client.Masters(r.Context(), sessionID(r))
	if err != nil {
		writeAPIError(w, err, "Masterlarni yuklashda xatolik")
		return
	}

	writeJSON(w, http.StatusOK, models.MastersResponse{
		Success: true,
		Masters: masters,
		Total:   len(masters),
	})
}

// createMaster godoc
// @Summary      Yangi master qo'shish
// @Description  Kamida bitta maydon to'ldirilishi shart. Telefon va email formati tekshiriladi
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        request body models.MasterCreateRequest true "Master ma'lumotlari"
// @Success      200  {object}  models.MasterResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /masters [post]
func createMaster(client *api.Client, w http.ResponseWriter, r *http.Request) {
	var req models.MasterCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if !req.HasAnyField() {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Kamida bitta maydonni to'ldiring",
		})
		return
	}

	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Telefon raqami +998XXXXXXXXX formatida bo'lishi kerak",
		})
		return
	}
	if req.Email != "" && !validator.IsValidEmail(req.Email) {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Elektron pochta formati noto'g'ri",
		})
		return
	}

	master, err := client.CreateMaster(r.Context(), sessionID(r), req)
	if err != nil {
		writeAPIError(w, err, "Master qo'shishda xatolik")
		return
	}

	logger.Info("yangi master qo'shildi",
		zap.String("master_id", master.ID),
		zap.String("name", master.FullName))

	writeJSON(w, http.StatusOK, models.MasterResponse{
		Success: true,
		Message: "Master muvaffaqiyatli qo'shildi",
		Master:  master,
	})
}

// MasterByIDHandler - /api/masters/{id}: GET batafsil, PUT tahrir,
// DELETE o'chirish, PATCH {id}/online-status
func MasterByIDHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/masters/")
		path = strings.TrimSuffix(path, "/")
		parts := strings.Split(path, "/")

		masterID := parts[0]
		if masterID == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Master ID kiritilishi shart",
			})
			return
		}

		action := ""
		if len(parts) > 1 {
			action = parts[1]
		}

		switch {
		case action == "" && r.Method == http.MethodGet:
			getMasterDetail(client, w, r, masterID)
		case action == "" && r.Method == http.MethodPut:
			updateMaster(client, w, r, masterID)
		case action == "" && r.Method == http.MethodDelete:
			deleteMaster(client, w, r, masterID)
		case action == "online-status" && r.Method == http.MethodPatch:
			updateMasterOnlineStatus(client, w, r, masterID)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getMasterDetail godoc
// @Summary      Master batafsil
// @Tags         masters
// @Produce      json
// @Param        id path string true "Master ID"
// @Success      200  {object}  models.MasterResponse
// @Failure      404  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /masters/{id} [get]
func getMasterDetail(client *api.Client, w http.ResponseWriter, r *http.Request, masterID string) {
	master, err := client.Master(r.Context(), sessionID(r), masterID)
	if err != nil {
		writeAPIError(w, err, "Master topilmadi")
		return
	}

	writeJSON(w, http.StatusOK, models.MasterResponse{
		Success: true,
		Master:  master,
	})
}

// updateMaster godoc
// @Summary      Masterni tahrirlash
// @Description  Faqat o'zgargan maydonlar backendga yuboriladi, javobda yangilangan nusxa qaytadi
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        id path string true "Master ID"
// @Param        request body models.MasterUpdateRequest true "O'zgargan maydonlar"
// @Success      200  {object}  models.MasterResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /masters/{id} [put]
func updateMaster(client *api.Client, w http.ResponseWriter, r *http.Request, masterID string) {
	var req models.MasterUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if req.IsEmpty() {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "O'zgartirish uchun hech narsa kiritilmadi",
		})
		return
	}

	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Telefon raqami +998XXXXXXXXX formatida bo'lishi kerak",
		})
		return
	}

	sid := sessionID(r)

	master, err := client.Master(r.Context(), sid, masterID)
	if err != nil {
		writeAPIError(w, err, "Master topilmadi")
		return
	}

	if err := client.UpdateMaster(r.Context(), sid, masterID, req); err != nil {
		writeAPIError(w, err, "Masterni yangilashda xatolik")
		return
	}

	// Backend yangilangan nusxani qaytarmaydi, o'zgarishlar lokal qo'shiladi
	req.ApplyTo(master)

	logger.Info("master yangilandi", zap.String("master_id", masterID))

	writeJSON(w, http.StatusOK, models.MasterResponse{
		Success: true,
		Message: "Master ma'lumotlari yangilandi",
		Master:  master,
	})
}

// deleteMaster godoc
// @Summary      Masterni o'chirish
// @Tags         masters
// @Produce      json
// @Param        id path string true "Master ID"
// @Success      200  {object}  models.MasterResponse
// @Security     SessionCookie
// @Router       /masters/{id} [delete]
func deleteMaster(client *api.Client, w http.ResponseWriter, r *http.Request, masterID string) {
	if err := client.DeleteMaster(r.Context(), sessionID(r), masterID); err != nil {
		writeAPIError(w, err, "Masterni o'chirishda xatolik")
		return
	}

	logger.Info("master o'chirildi", zap.String("master_id", masterID))

	writeJSON(w, http.StatusOK, models.MasterResponse{
		Success: true,
		Message: "Master o'chirildi",
	})
}

// updateMasterOnlineStatus godoc
// @Summary      Master online holatini o'zgartirish
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        id path string true "Master ID"
// @Param        request body models.OnlineStatusRequest true "Online holat"
// @Success      200  {object}  models.MasterResponse
// @Security     SessionCookie
// @Router       /masters/{id}/online-status [patch]
func updateMasterOnlineStatus(client *api.Client, w http.ResponseWriter, r *http.Request, masterID string) {
	var req models.OnlineStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if err := client.UpdateMasterOnlineStatus(r.Context(), sessionID(r), masterID, req.IsOnline); err != nil {
		writeAPIError(w, err, "Holatni o'zgartirishda xatolik")
		return
	}

	writeJSON(w, http.StatusOK, models.MasterResponse{
		Success: true,
		Message: "Online holat yangilandi",
	})
}
