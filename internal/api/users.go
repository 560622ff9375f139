package api

import (
	"context"
	"encoding/json"

	"dern-support-gateway/models"
)

// SupportUsers - mijoz hisoblari ro'yxati (admin ko'rinishi)
func (c *Client) SupportUsers(ctx context.Context, sid string) ([]models.SupportUser, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/user/support/user", nil, &raw); err != nil {
		return nil, err
	}
	items, err := unwrapList(raw, "users", "users")
	if err != nil {
		return nil, err
	}
	users := make([]models.SupportUser, 0, len(items))
	for _, item := range items {
		u, err := toSupportUser(item)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
