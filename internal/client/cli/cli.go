package cli

import (
	"fmt"

	"github.com/iudanet/authd/internal/client/api"
	"github.com/iudanet/authd/internal/client/iocli"
	"github.com/iudanet/authd/internal/client/storage"
)

type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
	io        iocli.IO
}

func New(apiClient *api.Client, sessions storage.SessionStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
		io:        io,
	}
}

func PrintUsage() {
	fmt.Println("authctl - authd command line client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  authctl [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local session database (default: authctl.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register       Register new user")
	fmt.Println("  login          Login and save session token")
	fmt.Println("  logout         Delete saved session")
	fmt.Println("  profile        Show profile of the authenticated user")
	fmt.Println("  status         Show authentication status")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  authctl register")
	fmt.Println("  authctl login")
	fmt.Println("  authctl profile")
	fmt.Println("  authctl --server https://auth.example.com login")
}
