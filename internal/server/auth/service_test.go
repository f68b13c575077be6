package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/authd/internal/models"
	"github.com/iudanet/authd/internal/password"
	"github.com/iudanet/authd/internal/server/storage"
	"github.com/iudanet/authd/internal/server/token"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
	nextID      int64
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{
		users:  make(map[string]*models.User),
		nextID: 1,
	}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	if _, exists := m.users[username]; exists {
		return nil, storage.ErrUserAlreadyExists
	}
	for _, u := range m.users {
		if u.Email == email {
			return nil, storage.ErrUserAlreadyExists
		}
	}
	user := &models.User{
		ID:           m.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextID++
	m.users[username] = user
	return user, nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func setupTestService(t *testing.T) (*Service, *mockUserStorage, *token.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	users := newMockUserStorage()
	tokens, err := token.NewService("test-secret-key", time.Hour)
	require.NoError(t, err)

	svc := NewService(logger, users, password.NewBcryptHasher(bcrypt.MinCost), tokens)
	return svc, users, tokens
}

func TestService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, users, tokens := setupTestService(t)

	result, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.UserID)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	// Токен привязан к новому аккаунту
	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	// В хранилище лежит хеш, а не пароль
	stored := users.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := setupTestService(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "short username", username: "ab", email: "a@example.com", password: "secret1"},
		{name: "bad email", username: "alice", email: "not-an-email", password: "secret1"},
		{name: "short password", username: "alice", email: "a@example.com", password: "12345"},
		{name: "empty everything", username: "", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// До хранилища дело не дошло
	assert.Empty(t, users.users)
}

func TestService_Register_DuplicateFastPath(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupTestService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// Тот же username
	_, err = svc.Register(ctx, "alice", "other@example.com", "secret2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// Тот же email
	_, err = svc.Register(ctx, "bob", "alice@example.com", "secret2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestService_Register_DuplicateOnInsertRace(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := setupTestService(t)

	// Имитация гонки: быстрая проверка ничего не нашла,
	// но вставка конфликтует с конкурентной регистрацией.
	// Исход для клиента тот же, что и на быстрой проверке
	users.createError = storage.ErrUserAlreadyExists

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestService_Register_StorageError(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := setupTestService(t)

	users.createError = errors.New("disk is full")

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateAccount)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := setupTestService(t)

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, result.UserID)
	assert.Equal(t, "alice", result.Username)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
}

func TestService_Login_InvalidCredentialsUnified(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupTestService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// Неверный пароль и несуществующий username дают одну и ту же ошибку
	_, errWrongPass := svc.Login(ctx, "alice", "wrong-password")
	_, errNoUser := svc.Login(ctx, "nonexistent", "secret1")

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestService_Login_StorageError(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := setupTestService(t)

	users.getError = errors.New("connection refused")

	_, err := svc.Login(ctx, "alice", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Profile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupTestService(t)

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	user, err := svc.Profile(ctx, registered.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Profile(ctx, 12345)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestService_Scenario(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := setupTestService(t)

	// register alice -> success, token decodes to alice
	first, err := svc.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	claims, err := tokens.Verify(first.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	// register alice again with another email -> duplicate
	_, err = svc.Register(ctx, "alice", "other@x.com", "xxxxxx")
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// login with wrong password -> invalid credentials
	_, err = svc.Login(ctx, "alice", "wrong1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// login with correct password -> success
	second, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
}
