// Package tui renders the front page in a terminal with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/gator-life/internal/rendering"
	"github.com/jonathan/gator-life/internal/rootview"
	"github.com/jonathan/gator-life/internal/types"
)

// ActivatedMsg is sent when an activation started by the model completes.
type ActivatedMsg struct {
	Text string
	Err  error
}

// Model is the Bubble Tea model wrapping a RootView.
type Model struct {
	ctx      context.Context
	view     *rootview.RootView
	styles   *Styles
	docs     []types.DocumentRecord
	selected int
	pending  bool
	width    int
}

// New creates a model bound to view. Activations run under ctx.
func New(ctx context.Context, view *rootview.RootView, s *Styles) *Model {
	if s == nil {
		s = DefaultStyles()
	}
	return &Model{
		ctx:    ctx,
		view:   view,
		styles: s,
		docs:   view.Documents(),
		width:  80,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ActivatedMsg:
		m.pending = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.view.Close()
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.docs)-1 {
				m.selected++
			}
		case "enter", " ":
			if m.pending {
				return m, nil
			}
			m.pending = true
			return m, m.activate()
		}
	}
	return m, nil
}

// activate runs the view's fetch off the update loop.
func (m *Model) activate() tea.Cmd {
	view, ctx := m.view, m.ctx
	return func() tea.Msg {
		text, err := view.Activate(ctx)
		return ActivatedMsg{Text: text, Err: err}
	}
}

// Pending reports whether an activation is in flight.
func (m *Model) Pending() bool {
	return m.pending
}

// Selected returns the index of the highlighted card.
func (m *Model) Selected() int {
	return m.selected
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTopBar())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	for i, doc := range m.docs {
		b.WriteString(m.renderCard(doc, i == m.selected))
		b.WriteString("\n")
	}

	label := "Click Me!"
	if m.pending {
		label = "Fetching..."
	}
	b.WriteString(m.styles.Button.Render(label))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter: fetch | up/down: move | q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderTopBar() string {
	parts := []string{m.styles.Brand.Render("Gator.Life")}
	for _, link := range rendering.NavLinks() {
		parts = append(parts, m.styles.NavLink.Render(link.Label))
	}
	return m.styles.TopBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m *Model) renderHeader() string {
	state := m.view.State()
	header := m.styles.Header.Render("Welcome to Gator.Life " + state.DisplayText)
	if state.LastError != "" {
		header += "\n" + m.styles.Failed.Render("Fetch failed: "+state.LastError)
	}
	return header
}

func (m *Model) renderCard(doc types.DocumentRecord, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.Selected
	}

	votes := fmt.Sprintf("▲ %s ▼", m.styles.Mark.Render(fmt.Sprintf("%d", doc.Mark)))
	line := strings.Join([]string{
		m.styles.Topic.Render("#" + doc.Topic),
		votes,
		m.styles.Title.Render(doc.Title),
		m.styles.Domain.Render("(" + doc.Domain + ")"),
	}, "  ")

	return style.Render(line + "\n" + m.styles.Muted.Render(doc.URL))
}

// Run starts the terminal program and blocks until the user quits.
func Run(ctx context.Context, view *rootview.RootView) error {
	p := tea.NewProgram(New(ctx, view, nil), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
