package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/authd/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.sessions.DeleteSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out. Local session deleted.")
	return nil
}
