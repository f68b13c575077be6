package storage

import (
	"context"

	"github.com/iudanet/authd/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser creates a new user and returns it with assigned ID and CreatedAt.
	// Уникальность username и email обеспечивается хранилищем атомарно:
	// при конфликте (в том числе при гонке двух одновременных регистраций)
	// возвращается ErrUserAlreadyExists, частичная запись не остается
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByUsernameOrEmail retrieves user matching either username or email.
	// Используется как неавторитетная быстрая проверка перед регистрацией.
	// Returns ErrUserNotFound if no user matches
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}
