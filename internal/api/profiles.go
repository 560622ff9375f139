package api

import (
	"context"
	"encoding/json"

	"dern-support-gateway/models"
)

// Profile - joriy foydalanuvchi profili
func (c *Client) Profile(ctx context.Context, sid string) (*models.Profile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/profiles", nil, &raw); err != nil {
		return nil, err
	}
	doc, err := unwrapObject(raw, "profile", "user", "profile")
	if err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, &ParseError{Resource: "profile", Reason: err.Error()}
	}
	return &profile, nil
}

// profileResult - profil mutatsiyalari javobi
type profileResult struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
}

// UpdateProfile - profilni yangilash, backend qaytargan profil lokal nusxaga yoziladi
func (c *Client) UpdateProfile(ctx context.Context, sid string, req models.ProfileUpdateRequest) (*models.Profile, error) {
	var result profileResult
	if err := c.patch(ctx, sid, "/profiles/update", req, &result); err != nil {
		return nil, err
	}
	if result.Status != "" && result.Status != "success" {
		return nil, &APIError{Status: 400, Message: result.Message}
	}
	if len(result.User) > 0 {
		var profile models.Profile
		if err := json.Unmarshal(result.User, &profile); err == nil {
			return &profile, nil
		}
	}
	return nil, nil
}

// ChangePassword - parol o'zgartirish so'rovi
func (c *Client) ChangePassword(ctx context.Context, sid string, req models.ChangePasswordRequest) error {
	return c.post(ctx, sid, "/profiles/change-password", req, nil)
}

// VerifyPasswordChange - parol o'zgartirishni kod bilan tasdiqlash
func (c *Client) VerifyPasswordChange(ctx context.Context, sid string, req models.VerifyChangeRequest) error {
	return c.post(ctx, sid, "/profiles/verify-password-change", req, nil)
}

// ChangeEmail - email o'zgartirish so'rovi
func (c *Client) ChangeEmail(ctx context.Context, sid string, req models.ChangeEmailRequest) error {
	return c.post(ctx, sid, "/profiles/change-email", req, nil)
}

// VerifyEmailChange - email o'zgartirishni kod bilan tasdiqlash
func (c *Client) VerifyEmailChange(ctx context.Context, sid string, req models.VerifyChangeRequest) error {
	return c.post(ctx, sid, "/profiles/verify-email-change", req, nil)
}
