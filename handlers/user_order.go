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
	"dern-support-gateway/pkg/websocket"
)

// UserOrdersHandler - /api/user-orders: GET ro'yxat, POST yangi buyurtma
func UserOrdersHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getUserOrders(client, w, r)
		case http.MethodPost:
			createUserOrder(client, w, r)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getUserOrders godoc
// @Summary      Foydalanuvchi buyurtmalari
// @Description  Joriy foydalanuvchining o'z buyurtmalari
// @Tags         user-orders
// @Produce      json
// @Param        status query string false "Status filtri" default(hammasi)
// @Success      200  {object}  models.OrdersResponse
// @Security     SessionCookie
// @Router       /user-orders [get]
func getUserOrders(client *api.Client, w http.ResponseWriter, r *http.Request) {
	orders, err := client.UserOrders(r.Context(), sessionID(r))
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

// createUserOrder godoc
// @Summary      Yangi buyurtma yaratish
// @Description  Majburiy maydonlar to'ldirilmagan bo'lsa so'rov backendga yuborilmaydi
// @Tags         user-orders
// @Accept       json
// @Produce      json
// @Param        request body models.OrderCreateRequest true "Buyurtma ma'lumotlari"
// @Success      200  {object}  models.OrderResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /user-orders [post]
func createUserOrder(client *api.Client, w http.ResponseWriter, r *http.Request) {
	var req models.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Barcha maydonlarni to'ldiring",
		})
		return
	}

	order, err := client.CreateOrder(r.Context(), sessionID(r), req)
	if err != nil {
		writeAPIError(w, err, "Buyurtma yaratishda xatolik")
		return
	}

	logger.Info("yangi buyurtma yaratildi",
		zap.String("order_id", order.ID),
		zap.String("category", order.Category))

	websocket.NotifyOrderCreated(websocket.OrderCreatedPayload{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Category:     order.Category,
		CreatedAt:    order.CreatedAt,
	})

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Buyurtma muvaffaqiyatli yaratildi!",
		Order:   order,
	})
}

// UserOrderByIDHandler - /api/user-orders/{id}: GET batafsil, PUT tahrir,
// PATCH {id}/cancel - bekor qilish
func UserOrderByIDHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/user-orders/")
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
			getUserOrderDetail(client, w, r, orderID)
		case action == "" && r.Method == http.MethodPut:
			updateUserOrder(client, w, r, orderID)
		case action == "cancel" && r.Method == http.MethodPatch:
			cancelUserOrder(client, w, r, orderID)
		default:
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Metod qo'llab-quvvatlanmaydi",
			})
		}
	}
}

// getUserOrderDetail godoc
// @Summary      Foydalanuvchi buyurtmasi batafsil
// @Tags         user-orders
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Success      200  {object}  models.OrderResponse
// @Failure      404  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /user-orders/{id} [get]
func getUserOrderDetail(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := client.UserOrder(r.Context(), sessionID(r), orderID)
	if err != nil {
		writeAPIError(w, err, "Buyurtma topilmadi")
		return
	}

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Order:   order,
	})
}

// updateUserOrder godoc
// @Summary      Foydalanuvchi buyurtmasini tahrirlash
// @Description  Faqat "yangi" statusdagi buyurtma tahrirlanadi
// @Tags         user-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Param        request body models.OrderCreateRequest true "Yangilangan maydonlar"
// @Success      200  {object}  models.OrderResponse
// @Failure      400  {object}  models.AuthResponse
// @Security     SessionCookie
// @Router       /user-orders/{id} [put]
func updateUserOrder(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	var req models.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Noto'g'ri so'rov formati",
		})
		return
	}

	sid := sessionID(r)

	order, err := client.UserOrder(r.Context(), sid, orderID)
	if err != nil {
		writeAPIError(w, err, "Buyurtma topilmadi")
		return
	}
	if order.Status != models.OrderStatusYangi {
		writeJSON(w, http.StatusBadRequest, models.AuthResponse{
			Success: false,
			Message: "Faqat yangi buyurtmani tahrirlash mumkin",
		})
		return
	}

	if err := client.UpdateUserOrder(r.Context(), sid, orderID, req); err != nil {
		writeAPIError(w, err, "Buyurtmani yangilashda xatolik")
		return
	}

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Buyurtma yangilandi",
	})
}

// cancelUserOrder godoc
// @Summary      Buyurtmani bekor qilish
// @Tags         user-orders
// @Produce      json
// @Param        id path string true "Buyurtma ID"
// @Success      200  {object}  models.OrderResponse
// @Security     SessionCookie
// @Router       /user-orders/{id}/cancel [patch]
func cancelUserOrder(client *api.Client, w http.ResponseWriter, r *http.Request, orderID string) {
	if err := client.CancelUserOrder(r.Context(), sessionID(r), orderID); err != nil {
		writeAPIError(w, err, "Buyurtmani bekor qilishda xatolik")
		return
	}

	logger.Info("buyurtma bekor qilindi", zap.String("order_id", orderID))

	websocket.NotifyOrderUpdate(websocket.OrderUpdatePayload{
		OrderID:   orderID,
		NewStatus: "bekor qilindi",
	})

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Buyurtma bekor qilindi",
	})
}
