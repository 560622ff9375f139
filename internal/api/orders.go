package api

import (
	"context"
	"encoding/json"
	"fmt"

	"dern-support-gateway/models"
)

// Orders - barcha buyurtmalar (admin ko'rinishi).
// Sahifalash yo'q: ro'yxat to'liq olinadi, filtrlash gateway xotirasida bajariladi.
func (c *Client) Orders(ctx context.Context, sid string) ([]models.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/orders", nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

// Order - bitta buyurtma
func (c *Client) Order(ctx context.Context, sid, id string) (*models.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/orders/"+id, nil, &raw); err != nil {
		return nil, err
	}
	doc, err := unwrapObject(raw, "order", "order")
	if err != nil {
		return nil, err
	}
	order, err := toOrder(doc)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MasterOrders - joriy masterga biriktirilgan buyurtmalar
func (c *Client) MasterOrders(ctx context.Context, sid string) ([]models.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/orders/buyurtma/master", nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

// UpdateOrderStatus - buyurtma statusini o'zgartirish.
// Yangilangan status backend javobidan qaytariladi, lokal nusxaga shu qiymat yoziladi.
func (c *Client) UpdateOrderStatus(ctx context.Context, sid, id, status string) (string, error) {
	var raw json.RawMessage
	err := c.patch(ctx, sid, fmt.Sprintf("/orders/%s/status", id),
		models.OrderStatusRequest{Status: status}, &raw)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Data.Status != "" {
			return envelope.Data.Status, nil
		}
		if envelope.Status != "" && models.IsValidOrderStatus(envelope.Status) {
			return envelope.Status, nil
		}
	}
	return status, nil
}

// EditOrder - masterning buyurtma tahriri (narx, muddat, ehtiyot qismlar)
func (c *Client) EditOrder(ctx context.Context, sid, id string, req models.OrderEditRequest) error {
	return c.patch(ctx, sid, fmt.Sprintf("/orders/%s/edit", id), req, nil)
}

// CreateOrder - yangi buyurtma yaratish
func (c *Client) CreateOrder(ctx context.Context, sid string, req models.OrderCreateRequest) (*models.Order, error) {
	var raw json.RawMessage
	if err := c.post(ctx, sid, "/orders", req, &raw); err != nil {
		return nil, err
	}

	// Backend yaratilgan hujjatni har doim ham qaytarmaydi (bo'sh body yoki
	// faqat {"status":"success"}). Muvaffaqiyatda nil qaytarilmaydi:
	// hujjat bo'lmasa, javob so'rov maydonlaridan tuziladi.
	fallback := &models.Order{
		Status:         models.OrderStatusYangi,
		ProductName:    req.ProductName,
		Category:       req.Category,
		Description:    req.Description,
		Address:        req.Address,
		AssignedMaster: req.Kimga,
		Priority:       req.Priority,
	}
	if len(raw) == 0 {
		return fallback, nil
	}
	doc, err := unwrapObject(raw, "order", "order")
	if err != nil {
		return fallback, nil
	}
	order, err := toOrder(doc)
	if err != nil {
		return fallback, nil
	}
	return &order, nil
}

// UserOrders - mijozning o'z buyurtmalari
func (c *Client) UserOrders(ctx context.Context, sid string) ([]models.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/user-orders", nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

// UserOrder - mijozning bitta buyurtmasi
func (c *Client) UserOrder(ctx context.Context, sid, id string) (*models.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/user-orders/"+id, nil, &raw); err != nil {
		return nil, err
	}
	doc, err := unwrapObject(raw, "order", "order")
	if err != nil {
		return nil, err
	}
	order, err := toOrder(doc)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateUserOrder - mijoz buyurtmasini tahrirlash
func (c *Client) UpdateUserOrder(ctx context.Context, sid, id string, req models.OrderCreateRequest) error {
	return c.patch(ctx, sid, "/user-orders/"+id, req, nil)
}

// CancelUserOrder - mijoz buyurtmasini bekor qilish
func (c *Client) CancelUserOrder(ctx context.Context, sid, id string) error {
	return c.patch(ctx, sid, fmt.Sprintf("/user-orders/%s/cancel", id), nil, nil)
}

// decodeOrders - ro'yxatni qobiqdan chiqarib normallashtirish
func decodeOrders(raw json.RawMessage) ([]models.Order, error) {
	items, err := unwrapList(raw, "orders", "orders")
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(items))
	for _, item := range items {
		order, err := toOrder(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
