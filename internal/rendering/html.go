// Package rendering renders the front page components to HTML.
// Templates are embedded at compile time and parsed once.
package rendering

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/jonathan/gator-life/internal/types"
)

//go:embed templates/*.html templates/logo.svg
var templateFiles embed.FS

// NavLink is one entry of the top bar.
type NavLink struct {
	Label  string
	Target string
}

// NavLinks returns the top bar entries. All targets are placeholders.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Register", Target: "#register"},
		{Label: "Sign in", Target: "#signin"},
		{Label: "Contact us", Target: "#contact"},
		{Label: "Our mission", Target: "#mission"},
	}
}

// PageData is everything the root page template reads.
type PageData struct {
	DisplayText string
	LastError   string
	Documents   []types.DocumentRecord
	ActionPath  string
	ButtonName  string
}

var (
	parsed    *template.Template
	parseErr  error
	parseOnce sync.Once
)

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		funcs := template.FuncMap{
			"navLinks": NavLinks,
			"voteUp":   func() int { return int(types.VoteUp) },
			"voteDown": func() int { return int(types.VoteDown) },
		}
		parsed, parseErr = template.New("components").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")
	})
	if parseErr != nil {
		return nil, &TemplateError{Message: "failed to parse embedded templates", Cause: parseErr}
	}
	return parsed, nil
}

func execute(w io.Writer, name string, data any) error {
	tmpl, err := templates()
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return &TemplateError{Message: "failed to execute template " + name, Cause: err}
	}
	return nil
}

// TopBar writes the static navigation bar.
func TopBar(w io.Writer) error {
	return execute(w, "topbar", nil)
}

// DocumentCard writes one card. The record is not validated.
func DocumentCard(w io.Writer, doc types.DocumentRecord) error {
	return execute(w, "card", doc)
}

// DocumentList writes one card per record, in input order.
func DocumentList(w io.Writer, docs []types.DocumentRecord) error {
	return execute(w, "list", docs)
}

// Page writes the full root page.
func Page(w io.Writer, data PageData) error {
	if data.Documents == nil {
		data.Documents = []types.DocumentRecord{}
	}
	return execute(w, "page", data)
}

// PageString renders the root page to a string.
func PageString(data PageData) (string, error) {
	var sb strings.Builder
	if err := Page(&sb, data); err != nil {
		return "", &RenderError{Message: "failed to render page", Cause: err}
	}
	return sb.String(), nil
}

// Logo returns the embedded brand logo.
func Logo() []byte {
	data, _ := templateFiles.ReadFile("templates/logo.svg")
	return data
}
