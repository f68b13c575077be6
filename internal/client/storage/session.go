package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no session is stored (user not logged in)
var ErrSessionNotFound = errors.New("session not found")

// Session представляет сохраненную на клиенте сессию.
// Сервер состояния сессии не хранит, токен живет только здесь и истекает сам
type Session struct {
	Username  string `json:"username"`   // username пользователя
	Token     string `json:"token"`      // session token (JWT)
	UserID    int64  `json:"user_id"`    // числовой ID пользователя
	ExpiresAt int64  `json:"expires_at"` // unix время истечения токена
}

// Expired сообщает, истек ли срок действия сессии
func (s *Session) Expired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}

// SessionStorage defines interface for storing the client session
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
