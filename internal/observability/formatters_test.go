package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/gator-life/internal/rootview"
	"github.com/jonathan/gator-life/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDisplayState(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDisplayState(rootview.ActionFetchEmail, rootview.DisplayState{DisplayText: "a@b.com", Activations: 2})
	output := buf.String()

	assert.Contains(t, output, "DISPLAY STATE")
	assert.Contains(t, output, "fetchEmail")
	assert.Contains(t, output, "a@b.com")
	assert.Contains(t, output, "Activations:  2")
	assert.NotContains(t, output, "Last error")
}

func TestPrintDisplayState_WithError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDisplayState(rootview.ActionFetchDocuments, rootview.DisplayState{DisplayText: "No", LastError: "HTTP status 500", Activations: 1})
	output := buf.String()

	assert.Contains(t, output, "Last error")
	assert.Contains(t, output, "HTTP status 500")
}

func TestPrintDocuments(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	docs := append(types.SampleDocuments(), types.DocumentRecord{Title: "Sixth", Domain: "example.com", Topic: "Misc"})
	p.PrintDocuments(docs)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENTS")
	assert.Contains(t, output, "1. Google releases a new quantum chip")
	assert.Contains(t, output, "#Tech")
	assert.Contains(t, output, "... and 1 more documents")
	assert.NotContains(t, output, "Sixth")
}

func TestPrintDocuments_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocuments(nil)

	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "...")
}
