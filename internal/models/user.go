package models

import "time"

// User представляет аккаунт пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"` // время создания, назначается хранилищем
	Username     string    `json:"username"`   // уникальный username
	Email        string    `json:"email"`      // уникальный email
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не сериализуется и не логируется
	ID           int64     `json:"id"`         // числовой ID, назначается хранилищем
}
