package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/logger"
)

var chatSession string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive support chat",
	Long: `Runs an interactive chat session against the indexed documentation.

Each turn is answered from the documentation with source citations. When
the assistant offers to open a support ticket, answering yes starts a
short form asking for name, email, summary and description.

History is kept per session. Pass --session to resume an earlier
conversation; without it a fresh session is started. Type "exit" or
press Ctrl+D to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatSession, "session", "s", "", "session ID to resume")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if err := ensureAssistant(); err != nil {
		return err
	}
	if err := ensureHistory(); err != nil {
		return err
	}

	session := chatSession
	if session == "" {
		session = uuid.NewString()
	}

	ctx := cmd.Context()
	in := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Session %s. Type \"exit\" to leave.\n", session)
	replayHistory(ctx, cmd, session)

	for {
		line, err := prompt(cmd, in, "> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		history, err := historyStore.History(ctx, session)
		if err != nil {
			logger.Warn("loading history: %v", err)
		}

		result, err := assistantService.Answer(ctx, line, history)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			continue
		}

		cmd.Println(result.Answer)
		recordTurn(ctx, session, line, result.Answer)

		if result.NeedsConfirmation {
			if err := runTicketDialog(ctx, cmd, in, session); err != nil {
				if err == io.EOF {
					return nil
				}
				cmd.PrintErrf("Error: %v\n", err)
			}
		}
	}
}

// runTicketDialog asks the yes/no confirmation question and, on yes,
// collects the four ticket fields and submits them.
func runTicketDialog(ctx context.Context, cmd *cobra.Command, in *bufio.Reader, session string) error {
	answer, err := prompt(cmd, in, "Open a support ticket? [y/N]: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		return nil
	}

	req := domain.TicketRequest{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &req.Name},
		{"Email", &req.Email},
		{"Summary", &req.Summary},
		{"Description", &req.Description},
	}
	for _, f := range fields {
		value, err := prompt(cmd, in, f.label+": ")
		if err != nil {
			return err
		}
		if value == "" {
			cmd.Println("Ticket cancelled: all fields are required.")
			return nil
		}
		*f.dst = value
	}

	receipt, err := assistantService.SubmitTicket(ctx, req)
	if err != nil {
		return fmt.Errorf("ticket creation failed: %w", err)
	}
	confirmation := fmt.Sprintf("Ticket created: %s", receipt.URL)
	cmd.Println(confirmation)
	recordTurn(ctx, session, "", confirmation)
	return nil
}

func replayHistory(ctx context.Context, cmd *cobra.Command, session string) {
	history, err := historyStore.History(ctx, session)
	if err != nil || len(history) == 0 {
		return
	}
	for _, msg := range history {
		prefix := "you"
		if msg.Role == domain.RoleAssistant {
			prefix = "assist"
		}
		cmd.Printf("[%s] %s\n", prefix, msg.Content)
	}
	cmd.Println()
}

// recordTurn appends the user and assistant messages to the session
// history. History failures are logged, never fatal to the chat.
func recordTurn(ctx context.Context, session, question, answer string) {
	if question != "" {
		if err := historyStore.Append(ctx, session, domain.ChatMessage{Role: domain.RoleUser, Content: question}); err != nil {
			logger.Warn("saving history: %v", err)
		}
	}
	if err := historyStore.Append(ctx, session, domain.ChatMessage{Role: domain.RoleAssistant, Content: answer}); err != nil {
		logger.Warn("saving history: %v", err)
	}
}

func prompt(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	cmd.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
