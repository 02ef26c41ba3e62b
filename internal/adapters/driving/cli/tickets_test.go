package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torqueware/assist/internal/core/domain"
)

func TestTicketsCmd_Use(t *testing.T) {
	assert.Equal(t, "tickets", ticketsCmd.Use)
}

func TestTicketsCmd_HasSubcommands(t *testing.T) {
	commands := ticketsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "close")
	assert.Contains(t, commandNames, "create")
}

func TestTicketsListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ticketTracker = &mockTracker{tickets: []domain.Ticket{
		{ID: 14, Title: "Brake noise", URL: "https://example.com/issues/14"},
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tickets", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Open support tickets:")
	assert.Contains(t, buf.String(), "#14: Brake noise (https://example.com/issues/14)")
}

func TestTicketsListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tickets", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No open support tickets.")
}

func TestTicketsCloseCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	tracker := &mockTracker{}
	ticketTracker = tracker

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tickets", "close", "12"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []int{12}, tracker.closed)
	assert.Contains(t, buf.String(), "Ticket #12 has been closed.")
}

func TestTicketsCloseCmd_RejectsBadID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tickets", "close", "twelve"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket ID")
}

func TestTicketsCloseCmd_TrackerError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ticketTracker = &mockTracker{err: domain.ErrTicketClose}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tickets", "close", "99"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTicketClose)
}

func TestTicketsCreateCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	tracker := &mockTracker{}
	ticketTracker = tracker

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"tickets", "create",
		"--name", "Ada Lovelace",
		"--email", "ada@example.com",
		"--summary", "Bluetooth keeps disconnecting",
		"--description", "Pairing drops after a few minutes.",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		ticketName, ticketEmail, ticketSummary, ticketDescription = "", "", "", ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, tracker.created, 1)
	assert.Equal(t, "Ada Lovelace", tracker.created[0].Name)
	assert.Contains(t, buf.String(), "Ticket created: https://example.com/issues/1")
}

func TestTicketsCreateCmd_RequiresAllFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tickets", "create", "--name", "Ada"})
	defer func() {
		rootCmd.SetArgs(nil)
		ticketName = ""
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
