// Package session markazlashtirilgan sessiya holatini saqlaydi.
// Token, foydalanuvchi ma'lumoti va mavzu bitta joydan o'qiladi -
// HTTP client ham, route gate ham storage ga to'g'ridan-to'g'ri tegmaydi.
package session

import (
	"context"
	"errors"
	"sync"

	"dern-support-gateway/models"
)

// ErrNotFound - sessiya topilmadi
var ErrNotFound = errors.New("sessiya topilmadi")

// Session - bitta brauzer sessiyasining holati.
// Muddat tekshirilmaydi: har sahifa yuklanishida /check-auth orqali qayta tasdiqlanadi.
type Session struct {
	ID    string              `json:"id"`
	Token string              `json:"token,omitempty"`
	User  *models.SessionUser `json:"user,omitempty"`
	Theme string              `json:"theme,omitempty"`
}

// Authenticated - token mavjudmi
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Role - foydalanuvchi roli (bo'sh bo'lishi mumkin)
func (s *Session) Role() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}

// Store - sessiya ombori interfeysi
type Store interface {
	// Get sessiyani qaytaradi, topilmasa ErrNotFound
	Get(ctx context.Context, id string) (*Session, error)
	// Save sessiyani saqlaydi (yangi yoki yangilangan)
	Save(ctx context.Context, s *Session) error
	// Delete sessiyani o'chiradi (logout / 401)
	Delete(ctx context.Context, id string) error
	// Subscribe o'zgarishlarga obuna bo'ladi; qaytgan funksiya obunani bekor qiladi
	Subscribe(fn func(id string)) (unsubscribe func())
}

// MemoryStore - xotiradagi sessiya ombori (bitta instans va testlar uchun)
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	subMu       sync.Mutex
	subscribers map[int]func(id string)
	nextSub     int
}

// NewMemoryStore - yangi xotira ombori
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]Session),
		subscribers: make(map[int]func(id string)),
	}
}

// Get - sessiyani olish
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	copied := s
	return &copied, nil
}

// Save - sessiyani saqlash
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	m.sessions[s.ID] = *s
	m.mu.Unlock()
	m.notify(s.ID)
	return nil
}

// Delete - sessiyani o'chirish
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	m.notify(id)
	return nil
}

// Subscribe - o'zgarishlarga obuna
func (m *MemoryStore) Subscribe(fn func(id string)) func() {
	m.subMu.Lock()
	key := m.nextSub
	m.nextSub++
	m.subscribers[key] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subscribers, key)
		m.subMu.Unlock()
	}
}

func (m *MemoryStore) notify(id string) {
	m.subMu.Lock()
	fns := make([]func(string), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}
