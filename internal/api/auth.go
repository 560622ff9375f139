package api

import (
	"context"
	"encoding/json"

	"dern-support-gateway/models"
)

// LoginResult - backend /login javobi
type LoginResult struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    *models.SessionUser `json:"-"`
}

// Login - tizimga kirish. Muvaffaqiyatda token va foydalanuvchi bloki qaytadi;
// ularni sessiyaga yozish chaqiruvchining zimmasida.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "", "/login", req, &raw); err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ParseError{Resource: "login", Reason: err.Error()}
	}

	var envelope struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.User) > 0 {
		user, err := toSessionUser(envelope.User)
		if err != nil {
			return nil, err
		}
		result.User = user
	}
	return &result, nil
}

// RegisterResult - backend /user/register javobi
type RegisterResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RegisterPayload - backendga yuboriladigan ro'yxatdan o'tish ma'lumoti
// (confirmPassword frontda tekshiriladi, backendga ketmaydi)
type RegisterPayload struct {
	UserType    string `json:"userType"`
	Name        string `json:"name"`
	Login       string `json:"login"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
}

// Register - ro'yxatdan o'tkazish
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.post(ctx, "", "/user/register", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckAuth - sessiya yaroqliligini backend orqali tekshirish
func (c *Client) CheckAuth(ctx context.Context, sid string) (*models.CheckAuthResponse, error) {
	var raw json.RawMessage
	if err := c.get(ctx, sid, "/check-auth", nil, &raw); err != nil {
		return nil, err
	}

	var result models.CheckAuthResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ParseError{Resource: "check-auth", Reason: err.Error()}
	}
	if result.Authenticated && result.User != nil && result.User.ID == "" {
		var envelope struct {
			User json.RawMessage `json:"user"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.User) > 0 {
			if user, err := toSessionUser(envelope.User); err == nil {
				result.User = user
			}
		}
	}
	return &result, nil
}

// Logout - backend sessiyasini yopish
func (c *Client) Logout(ctx context.Context, sid string) error {
	return c.post(ctx, sid, "/logout", nil, nil)
}
