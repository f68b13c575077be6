package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/authd/internal/models"
	"github.com/iudanet/authd/internal/password"
	"github.com/iudanet/authd/internal/server/storage"
	"github.com/iudanet/authd/internal/server/token"
	"github.com/iudanet/authd/internal/validation"
)

// Result представляет исход успешной регистрации или логина
type Result struct {
	Username  string // username пользователя
	Token     string // подписанный session token
	UserID    int64  // числовой ID пользователя
	ExpiresIn int64  // время жизни токена в секундах
}

// Service реализует регистрацию и аутентификацию пользователей.
// Не держит изменяемого состояния между запросами: единственный общий
// ресурс это хранилище, консистентность которого обеспечивается его
// собственным ограничением уникальности
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
	hasher password.Hasher
	tokens *token.Service
}

// NewService создает новый auth service
func NewService(logger *slog.Logger, users storage.UserStorage, hasher password.Hasher, tokens *token.Service) *Service {
	return &Service{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register регистрирует нового пользователя и выдает session token.
// Возвращает ErrValidation, ErrDuplicateAccount или внутреннюю ошибку
func (s *Service) Register(ctx context.Context, username, email, pass string) (*Result, error) {
	// Проверка формы до обращения к хранилищу
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if err := validation.ValidatePassword(pass); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	// Быстрая неавторитетная проверка на существующий аккаунт.
	// Источник истины это constraint хранилища на вставке ниже
	_, err := s.users.GetUserByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, email, passwordHash)
	if err != nil {
		// Конфликт на вставке закрывает гонку между проверкой выше
		// и конкурентной регистрацией того же username/email
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, expiresIn, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	return &Result{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     tokenString,
		ExpiresIn: expiresIn,
	}, nil
}

// Login аутентифицирует пользователя и выдает session token.
// Отсутствие пользователя и неверный пароль дают одинаковый
// ErrInvalidCredentials с сопоставимым временем ответа
func (s *Service) Login(ctx context.Context, username, pass string) (*Result, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Сжигаем эквивалентное bcrypt сравнение, чтобы по времени
			// ответа нельзя было перечислять существующие username
			s.hasher.Verify(pass, password.DummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tokenString, expiresIn, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	return &Result{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     tokenString,
		ExpiresIn: expiresIn,
	}, nil
}

// Profile возвращает аккаунт по ID
// Returns storage.ErrUserNotFound if user doesn't exist
func (s *Service) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
