package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/gator-life/internal/observability"
)

var (
	fetchAction  string
	fetchBaseURL string
	fetchUserID  string
	fetchVerbose bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run the button action once and print the new display text",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchAction, "action", "a", "", "Action to run: email or documents")
	fetchCmd.Flags().StringVar(&fetchBaseURL, "base-url", "", "API base URL (default from config)")
	fetchCmd.Flags().StringVarP(&fetchUserID, "user-id", "u", "", "User ID for the email action")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print the resulting page state and documents")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viewOverrides{Action: fetchAction, BaseURL: fetchBaseURL, UserID: fetchUserID})
	if err != nil {
		return err
	}

	view, err := newView(cfg)
	if err != nil {
		return err
	}
	defer view.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	text, err := view.Activate(ctx)
	if fetchVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintDisplayState(view.Action(), view.State())
		printer.PrintDocuments(view.Documents())
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", view.Action(), err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
