package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/torqueware/assist/internal/core/domain"
)

var (
	ticketsLimit int

	ticketName        string
	ticketEmail       string
	ticketSummary     string
	ticketDescription string
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Manage support tickets",
	Long:  `List, create and close support tickets in the configured issue tracker.`,
}

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open support tickets",
	Args:  cobra.NoArgs,
	RunE:  runTicketsList,
}

var ticketsCloseCmd = &cobra.Command{
	Use:   "close [ticket-id]",
	Short: "Close a support ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runTicketsClose,
}

var ticketsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a support ticket",
	Long: `Creates a support ticket in the issue tracker. All four fields are
required:

  assist tickets create \
    --name "Ada Lovelace" \
    --email ada@example.com \
    --summary "Bluetooth keeps disconnecting" \
    --description "Pairing drops after a few minutes of driving."`,
	Args: cobra.NoArgs,
	RunE: runTicketsCreate,
}

func init() {
	ticketsListCmd.Flags().IntVarP(&ticketsLimit, "limit", "n", 5, "maximum number of tickets to list")

	ticketsCreateCmd.Flags().StringVar(&ticketName, "name", "", "user full name")
	ticketsCreateCmd.Flags().StringVar(&ticketEmail, "email", "", "user email address")
	ticketsCreateCmd.Flags().StringVar(&ticketSummary, "summary", "", "short issue title")
	ticketsCreateCmd.Flags().StringVar(&ticketDescription, "description", "", "detailed issue description")

	ticketsCmd.AddCommand(ticketsListCmd)
	ticketsCmd.AddCommand(ticketsCloseCmd)
	ticketsCmd.AddCommand(ticketsCreateCmd)
	rootCmd.AddCommand(ticketsCmd)
}

func runTicketsList(cmd *cobra.Command, _ []string) error {
	if err := ensureTracker(); err != nil {
		return err
	}

	tickets, err := ticketTracker.List(cmd.Context(), ticketsLimit)
	if err != nil {
		return fmt.Errorf("listing tickets failed: %w", err)
	}

	if len(tickets) == 0 {
		cmd.Println("No open support tickets.")
		return nil
	}
	cmd.Println("Open support tickets:")
	for _, t := range tickets {
		cmd.Printf("  #%d: %s (%s)\n", t.ID, t.Title, t.URL)
	}
	return nil
}

func runTicketsClose(cmd *cobra.Command, args []string) error {
	if err := ensureTracker(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid ticket ID %q", args[0])
	}

	if err := ticketTracker.Close(cmd.Context(), id); err != nil {
		return fmt.Errorf("closing ticket failed: %w", err)
	}
	cmd.Printf("Ticket #%d has been closed.\n", id)
	return nil
}

func runTicketsCreate(cmd *cobra.Command, _ []string) error {
	if err := ensureTracker(); err != nil {
		return err
	}

	req := domain.TicketRequest{
		Name:        ticketName,
		Email:       ticketEmail,
		Summary:     ticketSummary,
		Description: ticketDescription,
	}
	if req.Name == "" || req.Email == "" || req.Summary == "" || req.Description == "" {
		return fmt.Errorf("all of --name, --email, --summary and --description are required")
	}

	ticket, err := ticketTracker.Create(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("creating ticket failed: %w", err)
	}
	cmd.Printf("Ticket created: %s\n", ticket.URL)
	return nil
}
