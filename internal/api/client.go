// Package api Dern-Support backend REST API bilan ishlash uchun umumiy client.
// Barcha sahifalar bitta client orqali so'rov yuboradi: base URL, JSON
// content negotiation, sessiyadan olinadigan bearer token va 30 soniyalik timeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/pkg/logger"
)

// DefaultBaseURL - backend manzili (env orqali o'zgartiriladi)
const DefaultBaseURL = "https://dern-support-back1.vercel.app/api/v1"

// DefaultTimeout - so'rov uchun maksimal vaqt
const DefaultTimeout = 30 * time.Second

// ErrUnreachableMessage - server javob bermaganda ko'rsatiladigan xabar
const ErrUnreachableMessage = "Server bilan aloqa o'rnatib bo'lmadi. Keyinroq urinib ko'ring."

// ErrUnauthorized - backend 401 qaytardi, sessiya tozalandi
var ErrUnauthorized = errors.New("avtorizatsiya muddati tugagan")

// APIError - backend xato javobi (message maydoni bilan)
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend xatosi: %d", e.Status)
}

// IsUnreachable - tarmoq darajasidagi xatomi (javob umuman kelmadi)
func (e *APIError) IsUnreachable() bool {
	return e.Status == 0
}

// Client - backend REST API client
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
}

// New - yangi client yaratish
func New(baseURL string, timeout time.Duration, store session.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
	}
}

// needsUserID - /orders/:id... yo'llariga userId query param qo'shilishi kerakmi.
// Backend avtorizatsiyasidagi kamchilik uchun workaround: /orders/add bundan mustasno.
func needsUserID(path string) bool {
	return strings.Contains(path, "/orders/") && !strings.Contains(path, "/orders/add")
}

// do - bitta HTTP so'rovni bajarish. Sessiyadan token olinadi, 401 da sessiya
// tozalanib ErrUnauthorized qaytadi, tarmoq xatosi lokalizatsiya qilinadi.
func (c *Client) do(ctx context.Context, sid, method, path string, query url.Values, body, out interface{}) error {
	var sess *session.Session
	if sid != "" {
		s, err := c.store.Get(ctx, sid)
		if err == nil {
			sess = s
		}
	}

	if query == nil {
		query = url.Values{}
	}
	if needsUserID(path) && sess != nil && sess.User != nil && sess.User.ID != "" {
		query.Set("userId", sess.User.ID)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("so'rov tanasini marshal qilishda xatolik: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("request yaratishda xatolik: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("backend so'rovi muvaffaqiyatsiz",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Status: 0, Message: ErrUnreachableMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("javobni o'qishda xatolik: %w", err)
	}

	logger.Debug("backend so'rovi",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		// Sessiyani tozalash - keyingi so'rovlar /login ga yo'naltiriladi
		if sid != "" {
			if err := c.store.Delete(ctx, sid); err != nil {
				logger.Warn("sessiyani tozalashda xatolik", zap.Error(err))
			}
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ParseError{Resource: path, Reason: err.Error()}
		}
	}
	return nil
}

// get - GET so'rovi
func (c *Client) get(ctx context.Context, sid, path string, query url.Values, out interface{}) error {
	return c.do(ctx, sid, http.MethodGet, path, query, nil, out)
}

// post - POST so'rovi
func (c *Client) post(ctx context.Context, sid, path string, body, out interface{}) error {
	return c.do(ctx, sid, http.MethodPost, path, nil, body, out)
}

// patch - PATCH so'rovi
func (c *Client) patch(ctx context.Context, sid, path string, body, out interface{}) error {
	return c.do(ctx, sid, http.MethodPatch, path, nil, body, out)
}

// put - PUT so'rovi
func (c *Client) put(ctx context.Context, sid, path string, body, out interface{}) error {
	return c.do(ctx, sid, http.MethodPut, path, nil, body, out)
}

// delete - DELETE so'rovi
func (c *Client) delete(ctx context.Context, sid, path string) error {
	return c.do(ctx, sid, http.MethodDelete, path, nil, nil, nil)
}
