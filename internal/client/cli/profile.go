package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/authd/internal/client/storage"
)

func (c *Cli) runProfile(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not authenticated. Please run 'authctl login' first")
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired() {
		return fmt.Errorf("session token has expired. Please run 'authctl login' again")
	}

	resp, err := c.apiClient.Profile(ctx, session.Token)
	if err != nil {
		return err
	}
	if resp.Data == nil {
		return fmt.Errorf("server returned empty profile")
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("ID:         %d\n", resp.Data.ID)
	c.io.Printf("Username:   %s\n", resp.Data.Username)
	c.io.Printf("Email:      %s\n", resp.Data.Email)
	c.io.Printf("Created at: %s\n", resp.Data.CreatedAt)

	return nil
}
