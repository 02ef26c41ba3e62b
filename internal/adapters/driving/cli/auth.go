package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/torqueware/assist/internal/config"
)

// saveTrackerToken is swapped in tests to avoid touching the real
// config file.
var saveTrackerToken = config.SaveToken

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Store the issue tracker credential",
	Long: `Stores the issue tracker token in the config file so it does not have
to live in the environment.

The token is read from the terminal with echo disabled and written to
the config file with owner-only permissions. When stdin is not a
terminal (piped input), the token is read as a single line instead.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	token, err := readToken(cmd)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("empty token")
	}

	if err := saveTrackerToken(configPath, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	cmd.Println("Token saved.")
	return nil
}

func readToken(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.Print("Tracker token: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	var token string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &token); err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(token), nil
}
