package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authd/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "authctl-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_SaveAndGetSession(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session := &storage.Session{
		UserID:    42,
		Username:  "alice",
		Token:     "header.payload.signature",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.ExpiresAt, got.ExpiresAt)
	assert.False(t, got.Expired())
}

func TestStorage_SaveSession_Replaces(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first := &storage.Session{UserID: 1, Username: "alice", Token: "t1"}
	second := &storage.Session{UserID: 2, Username: "bob", Token: "t2"}

	require.NoError(t, s.SaveSession(ctx, first))
	require.NoError(t, s.SaveSession(ctx, second))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "t2", got.Token)
}

func TestStorage_GetSession_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_DeleteSession(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session := &storage.Session{UserID: 42, Username: "alice", Token: "token"}
	require.NoError(t, s.SaveSession(ctx, session))

	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление сообщает об отсутствии сессии
	assert.ErrorIs(t, s.DeleteSession(ctx), storage.ErrSessionNotFound)
}

func TestSession_Expired(t *testing.T) {
	active := &storage.Session{ExpiresAt: time.Now().Add(time.Hour).Unix()}
	assert.False(t, active.Expired())

	expired := &storage.Session{ExpiresAt: time.Now().Add(-time.Hour).Unix()}
	assert.True(t, expired.Expired())
}
