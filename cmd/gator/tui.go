package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/gator-life/internal/tui"
)

var (
	tuiAction  string
	tuiBaseURL string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the front page in the terminal",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiAction, "action", "", "Action bound to the button: email or documents")
	tuiCmd.Flags().StringVar(&tuiBaseURL, "base-url", "", "API base URL (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viewOverrides{Action: tuiAction, BaseURL: tuiBaseURL})
	if err != nil {
		return err
	}

	view, err := newView(cfg)
	if err != nil {
		return err
	}
	defer view.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, view)
}
