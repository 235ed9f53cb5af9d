package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/gator-life/internal/server"
)

var (
	servePort   int
	serveAction string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the page server",
	Long:  `Start an HTTP server that renders the front page, handles the button activation and serves the placeholder API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, then 8080)")
	serveCmd.Flags().StringVar(&serveAction, "action", "", "Action bound to the button: email or documents")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viewOverrides{Action: serveAction})
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	view, err := newView(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port: cfg.Port,
		View: view,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
