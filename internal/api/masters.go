package api

import (
	"context"
	"encoding/json"
	"fmt"

	"dern-support-gateway/models"
)

// Masters - barcha masterlar ro'yxati.
// Backend javobi {data:{masters:[...]}}, {data:[...]} yoki massiv bo'lishi mumkin.
func (c *Client) Masters(ctx context.Context, sid string) ([]models.Master, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/masters", nil, &raw); err != nil {
		return nil, err
	}
	items, err := unwrapList(raw, "masters", "masters")
	if err != nil {
		return nil, err
	}
	masters := make([]models.Master, 0, len(items))
	for _, item := range items {
		m, err := toMaster(item)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, nil
}

// Master - bitta master
func (c *Client) Master(ctx context.Context, sid, id string) (*models.Master, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/masters/"+id, nil, &raw); err != nil {
		return nil, err
	}
	doc, err := unwrapObject(raw, "master", "master")
	if err != nil {
		return nil, err
	}
	m, err := toMaster(doc)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMaster - yangi master qo'shish
func (c *Client) CreateMaster(ctx context.Context, sid string, req models.MasterCreateRequest) (*models.Master, error) {
	var raw json.RawMessage
	if err := c.post(ctx, sid, "/masters", req, &raw); err != nil {
		return nil, err
	}

	created := models.Master{
		FullName:  req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Soha,
		Status:    req.Status,
		Address:   req.Address,
	}
	if len(raw) > 0 {
		if doc, err := unwrapObject(raw, "master", "master"); err == nil {
			if id := extractID(doc); id != "" {
				created.ID = id
			}
		}
	}
	return &created, nil
}

// UpdateMaster - masterni yangilash (faqat o'zgargan maydonlar yuboriladi)
func (c *Client) UpdateMaster(ctx context.Context, sid, id string, req models.MasterUpdateRequest) error {
	return c.put(ctx, sid, "/masters/"+id, req, nil)
}

// DeleteMaster - masterni o'chirish
func (c *Client) DeleteMaster(ctx context.Context, sid, id string) error {
	return c.delete(ctx, sid, "/masters/"+id)
}

// UpdateMasterOnlineStatus - master online holatini o'zgartirish
func (c *Client) UpdateMasterOnlineStatus(ctx context.Context, sid, id string, isOnline bool) error {
	return c.patch(ctx, sid, fmt.Sprintf("/masters/%s/online-status", id),
		models.OnlineStatusRequest{IsOnline: isOnline}, nil)
}
