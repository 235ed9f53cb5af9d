package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for each page component.
type Styles struct {
	TopBar   lipgloss.Style
	Brand    lipgloss.Style
	NavLink  lipgloss.Style
	Header   lipgloss.Style
	Failed   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Topic    lipgloss.Style
	Title    lipgloss.Style
	Domain   lipgloss.Style
	Mark     lipgloss.Style
	Button   lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() *Styles {
	var (
		green  = lipgloss.Color("#2E7D32")
		light  = lipgloss.Color("#E8F5E9")
		muted  = lipgloss.Color("#6C7086")
		red    = lipgloss.Color("#F38BA8")
		accent = lipgloss.Color("#06B6D4")
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return &Styles{
		TopBar:   lipgloss.NewStyle().Background(green).Foreground(light).Padding(0, 1),
		Brand:    lipgloss.NewStyle().Bold(true),
		NavLink:  lipgloss.NewStyle().PaddingLeft(2),
		Header:   lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1),
		Failed:   lipgloss.NewStyle().Foreground(red),
		Card:     card,
		Selected: card.BorderForeground(accent),
		Topic:    lipgloss.NewStyle().Foreground(accent),
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Domain:   lipgloss.NewStyle().Foreground(muted),
		Mark:     lipgloss.NewStyle().Bold(true),
		Button:   lipgloss.NewStyle().Background(green).Foreground(light).Padding(0, 2).MarginTop(1),
		Muted:    lipgloss.NewStyle().Foreground(muted),
	}
}
