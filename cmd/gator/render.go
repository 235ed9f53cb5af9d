package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/gator-life/internal/fetch"
)

var (
	renderText     bool
	renderActivate bool
	renderAction   string
	renderBaseURL  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the front page to stdout",
	Long:  "Renders the front page HTML. With --activate the button action runs first; with --text only the readable text of the page is printed.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderText, "text", false, "Print the page's main text instead of HTML")
	renderCmd.Flags().BoolVar(&renderActivate, "activate", false, "Run the button action before rendering")
	renderCmd.Flags().StringVar(&renderAction, "action", "", "Action bound to the button: email or documents")
	renderCmd.Flags().StringVar(&renderBaseURL, "base-url", "", "API base URL (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viewOverrides{Action: renderAction, BaseURL: renderBaseURL})
	if err != nil {
		return err
	}

	view, err := newView(cfg)
	if err != nil {
		return err
	}
	defer view.Close()

	if renderActivate {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		// A failed fetch still renders; the page carries the failure banner
		if _, err := view.Activate(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: activation failed: %v\n", err)
		}
	}

	var buf bytes.Buffer
	if err := view.Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	out := cmd.OutOrStdout()
	if !renderText {
		_, err := out.Write(buf.Bytes())
		return err
	}

	text, err := fetch.ExtractMainText(buf.String(), []string{".App"}, "nav", "form")
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
