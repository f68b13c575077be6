package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that username or email is already taken.
	// Возвращается хранилищем атомарно, на основании его собственного
	// ограничения уникальности, а не предварительной проверки
	ErrUserAlreadyExists = errors.New("user already exists")
)
