package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gator-life/internal/rootview"
	"github.com/jonathan/gator-life/internal/types"
)

type stubFetcher struct {
	email string
	err   error
}

func (s *stubFetcher) FetchEmail(context.Context, string) (*types.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &types.UserResponse{Email: s.email}, nil
}

func (s *stubFetcher) FetchDocuments(context.Context) (*types.DocumentsResponse, error) {
	return nil, errors.New("not used")
}

func newModel(t *testing.T, f *stubFetcher) (*Model, *rootview.RootView) {
	t.Helper()
	view := rootview.New(f, rootview.Options{})
	t.Cleanup(view.Close)
	return New(context.Background(), view, nil), view
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_NilStyles(t *testing.T) {
	m, _ := newModel(t, &stubFetcher{})

	require.NotNil(t, m.styles)
	assert.Nil(t, m.Init())
	assert.Len(t, m.docs, len(types.SampleDocuments()))
}

func TestView_InitialPage(t *testing.T) {
	m, _ := newModel(t, &stubFetcher{})

	out := m.View()
	assert.Contains(t, out, "Welcome to Gator.Life No")
	assert.Contains(t, out, "Register")
	assert.Contains(t, out, "Our mission")
	assert.Contains(t, out, "Click Me!")
	for _, doc := range types.SampleDocuments() {
		assert.Contains(t, out, doc.Domain)
	}
}

func TestUpdate_EnterActivates(t *testing.T) {
	m, view := newModel(t, &stubFetcher{email: "a@b.com"})

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.Pending())
	assert.Contains(t, m.View(), "Fetching...")

	// A second press while pending does nothing
	_, again := m.Update(key("enter"))
	assert.Nil(t, again)

	msg := cmd()
	done, ok := msg.(ActivatedMsg)
	require.True(t, ok)
	assert.NoError(t, done.Err)
	assert.Equal(t, "a@b.com", done.Text)

	m.Update(msg)
	assert.False(t, m.Pending())
	assert.Equal(t, "a@b.com", view.State().DisplayText)
	assert.Contains(t, m.View(), "Welcome to Gator.Life a@b.com")
}

func TestUpdate_FailedActivationShowsBanner(t *testing.T) {
	m, view := newModel(t, &stubFetcher{err: errors.New("boom")})

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Error(t, msg.(ActivatedMsg).Err)
	m.Update(msg)

	assert.Equal(t, "No", view.State().DisplayText)
	out := m.View()
	assert.Contains(t, out, "Welcome to Gator.Life No")
	assert.Contains(t, out, "Fetch failed: boom")
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newModel(t, &stubFetcher{})

	m.Update(key("up"))
	assert.Equal(t, 0, m.Selected())

	m.Update(key("down"))
	m.Update(key("j"))
	assert.Equal(t, 2, m.Selected())

	for range 10 {
		m.Update(key("down"))
	}
	assert.Equal(t, len(types.SampleDocuments())-1, m.Selected())

	m.Update(key("k"))
	assert.Equal(t, len(types.SampleDocuments())-2, m.Selected())
}

func TestUpdate_QuitClosesView(t *testing.T) {
	m, view := newModel(t, &stubFetcher{email: "a@b.com"})

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, err := view.Activate(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newModel(t, &stubFetcher{})

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
}
