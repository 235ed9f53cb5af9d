// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/gator-life/internal/rootview"
	"github.com/jonathan/gator-life/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDisplayState outputs the page state after an activation.
func (p *Printer) PrintDisplayState(action rootview.Action, state rootview.DisplayState) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Action:       %s\n", action))
	sb.WriteString(fmt.Sprintf("Display text: %s\n", state.DisplayText))
	sb.WriteString(fmt.Sprintf("Activations:  %d", state.Activations))
	if state.LastError != "" {
		sb.WriteString("\n\nLast error:\n")
		sb.WriteString(state.LastError)
	}

	p.printBox("DISPLAY STATE", sb.String())
}

// PrintDocuments outputs the first few document cards the page lists.
func (p *Printer) PrintDocuments(docs []types.DocumentRecord) {
	if len(docs) == 0 {
		p.printBox("DOCUMENTS", "(none)")
		return
	}

	var sb strings.Builder

	count := min(len(docs), maxItemsToShow)
	for i := 0; i < count; i++ {
		doc := docs[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, doc.Title))
		sb.WriteString(fmt.Sprintf("   #%s  %s  votes: %d\n", doc.Topic, doc.Domain, doc.Mark))
	}

	if len(docs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more documents", len(docs)-maxItemsToShow))
	}

	p.printBox("DOCUMENTS", strings.TrimSuffix(sb.String(), "\n"))
}
