package api

import (
	"context"
	"encoding/json"
	"net/url"

	"dern-support-gateway/models"
)

// Parts - ehtiyot qismlar ro'yxati (ixtiyoriy search param bilan)
func (c *Client) Parts(ctx context.Context, sid, search string) ([]models.Part, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}

	var raw json.RawMessage
	if err := c.get(ctx, sid, "/parts", query, &raw); err != nil {
		return nil, err
	}
	items, err := unwrapList(raw, "parts", "parts")
	if err != nil {
		return nil, err
	}
	parts := make([]models.Part, 0, len(items))
	for _, item := range items {
		p, err := toPart(item)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// CreatePart - yangi qism qo'shish
func (c *Client) CreatePart(ctx context.Context, sid string, req models.PartRequest) error {
	return c.post(ctx, sid, "/parts", req, nil)
}

// UpdatePart - qismni yangilash
func (c *Client) UpdatePart(ctx context.Context, sid, id string, req models.PartRequest) error {
	return c.put(ctx, sid, "/parts/"+id, req, nil)
}

// DeletePart - qismni o'chirish
func (c *Client) DeletePart(ctx context.Context, sid, id string) error {
	return c.delete(ctx, sid, "/parts/"+id)
}
