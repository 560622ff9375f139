package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/websocket"
)

// formatSum - summani ming ajratgichi bilan ko'rsatish (1234567 -> "1,234,567")
func formatSum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(intPart[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

// GetOrders godoc
// @Summary      Buyurtmalar ro'yxati (admin)
// @Description  Barcha buyurtmalar. status filtri ("hammasi" - hammasi) va search (id yoki mijoz nomi) qo'llanadi
// @Tags         orders
// @Produce      json
// @Param        status query string false "Status filtri" default(hammasi)
// @Param        search query string false "Qidiruv matni"
// @Success      200  {object}  models.OrdersResponse
// @Failure      502  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /orders [get]
func GetOrders(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		orders, err := client.Orders(r.Context(), sessionID(r))
		if err != nil {
			writeAPIError(w, err, "Buyurtmalarni yuklashda xatolik")
			return
		}

		statusID := r.URL.Query().Get("status")
		if statusID == "" {
			statusID = models.FilterHammasi
		}
		search := r.URL.Query().Get("search")

		filtered := models.FilterOrders(orders, statusID, search)

		writeJSON(w, http.StatusOK, models.OrdersResponse{
			Success: true,
			Orders:  filtered,
			Total:   len(filtered),
			Counts:  models.StatusCounts(orders),
		})
	}
}

// GetMasterOrders godoc
// @Summary      Master buyurtmalari
// @Description  Joriy masterga biriktirilgan buyurtmalar
// @Tags         orders
// @Produce      json
// @Param        status query string false "Status filtri" default(hammasi)
// @Param        search query string false "Qidiruv matni"
// @Success      200  {object}  models.OrdersResponse
// @Security     SessionCookie
// @Router       /orders/master [get]
func GetMasterOrders(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		orders, err := client.MasterOrders(r.Context(), sessionID(r))
		if err != nil {
			writeAPIError(w, err, "Buyurtmalarni yuklashda xatolik")
			return
		}

		statusID := r.URL.Query().Get("status")
		if statusID == "" {
			statusID = models.FilterHammasi
		}
		filtered := models.FilterOrders(orders, statusID, r.URL.Query().Get("search"))

		writeJSON(w, http.StatusOK, models.OrdersResponse{
			Success: true,
			Orders:  filtered,
			Total:   len(filtered),
			Counts:  models.StatusCounts(orders),
		})
	}
}

// OrderByIDHandler - /api/orders/{id} va uning quyi amallari.
// GET {id} - batafsil, PATCH {id}/status - status o'zgartirish,
// PATCH {id}/edit - master tahriri.
func OrderByIDHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/orders/")
		path = strings.TrimSuffix(path, "/")
		parts := strings.Split(path, "/")

		orderID := parts[0]
		if orderID == "" {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: "Buyurtma ID kiritilishi shart",
			})
			return
		}

		action := ""
		if len(parts) > 1 {
			action = parts[1]
		}

		switch {
		case action == "" && r.Method == http.MethodGet:
			getOrderDetail(client, w, r, orderID)
		case action == "status" && r.Method == http.MethodPatch:
			updateOrderStatus(client, w, r, orderID)
		case action == "edit" && r.Method == http.MethodPatch:
			editOrder(client, w, r, orderID)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getOrderDetail godoc
// @Summary      Buyurtma batafsil
// @Tags         orders
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Success      200  {object}  models.OrderResponse
// @Failure      404  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /orders/{id} [get]
func getOrderDetail(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := client.Order(r.Context(), sessionID(r), orderID)
	if err != nil {
		writeAPIError(w, err, "Buyurtma topilmadi")
		return
	}

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Order:   order,
	})
}

// updateOrderStatus godoc
// @Summary      Buyurtma statusini o'zgartirish
// @Description  Yangi status backendga yuboriladi, muvaffaqiyatda barcha rol kanallariga xabar tarqatiladi
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Param        request body models.OrderStatusRequest true "Yangi status"
// @Success      200  {object}  models.OrderResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /orders/{id}/status [patch]
func updateOrderStatus(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	var req models.OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri status qiymati",
		})
		return
	}

	// Eski statusni bildirishnoma uchun olamiz, topilmasa ham davom etamiz
	oldStatus := ""
	if current, err := client.Order(r.Context(), sessionID(r), orderID); err == nil {
		oldStatus = current.Status
	}

	newStatus, err := client.UpdateOrderStatus(r.Context(), sessionID(r), orderID, req.Status)
	if err != nil {
		writeAPIError(w, err, "Statusni o'zgartirishda xatolik")
		return
	}

	logger.Info("buyurtma statusi o'zgardi",
		zap.String("order_id", orderID),
		zap.String("old", oldStatus),
		zap.String("new", newStatus))

	websocket.NotifyOrderUpdate(websocket.OrderUpdatePayload{
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Status yangilandi: " + models.GetStatusLabel(newStatus),
		Order:   &models.Order{ID: orderID, Status: newStatus},
	})
}

// editOrder godoc
// @Summary      Buyurtmani tahrirlash (master)
// @Description  Faqat "jarayonda" statusdagi buyurtma tahrirlanadi. Ehtiyot qismlar narxi kiritilgan narxdan oshsa so'rov backendga yuborilmaydi
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Param        request body models.OrderEditRequest true "Tahrir maydonlari"
// @Success      200  {object}  models.OrderResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /orders/{id}/edit [patch]
func editOrder(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	var req models.OrderEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	sid := sessionID(r)

	order, err := client.Order(r.Context(), sid, orderID)
	if err != nil {
		writeAPIError(w, err, "Buyurtma topilmadi")
		return
	}
	if order.Status != models.OrderStatusJarayonda {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Faqat jarayonda bo'lgan buyurtma tahrirlanadi",
		})
		return
	}

	if len(req.SpareParts) > 0 {
		parts, err := client.Parts(r.Context(), sid, "")
		if err != nil {
			writeAPIError(w, err, "Ehtiyot qismlarni yuklashda xatolik")
			return
		}

		// Miqdor har doim [1, omborda bor] oralig'iga keltiriladi
		req.SpareParts = models.ClampQuantities(parts, req.SpareParts)

		totalPartsCost := models.TotalPartsCost(parts, req.SpareParts)
		if req.Price > 0 && totalPartsCost > 0 && req.Price < totalPartsCost {
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				Success: false,
				Message: fmt.Sprintf(
					"Sizning ehtiyot qismlaringiz narxi %s so'm, siz %s so'm kiritdingiz, siz bundayda bankrot bo'lasiz!",
					formatSum(totalPartsCost),
					strconv.FormatFloat(req.Price, 'f', -1, 64),
				),
			})
			return
		}
	}

	if err := client.EditOrder(r.Context(), sid, orderID, req); err != nil {
		writeAPIError(w, err, "Buyurtmani tahrirlashda xatolik")
		return
	}

	logger.Info("buyurtma tahrirlandi", zap.String("order_id", orderID))

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Buyurtma muvaffaqiyatli tahrirlandi!",
	})
}
