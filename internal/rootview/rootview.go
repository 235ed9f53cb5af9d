// Package rootview owns the front page state and the fetch action bound to its button.
package rootview

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/jonathan/gator-life/internal/fetch"
	"github.com/jonathan/gator-life/internal/rendering"
	"github.com/jonathan/gator-life/internal/types"
)

// DefaultDisplayText is the header text before any activation succeeds.
const DefaultDisplayText = "No"

// DefaultActionPath is where the page posts button activations.
const DefaultActionPath = "/actions/fetch"

// Action selects which endpoint an activation calls.
type Action string

const (
	ActionFetchEmail     Action = "fetchEmail"
	ActionFetchDocuments Action = "fetchDocuments"
)

// ParseAction accepts the action name or its short form ("email", "documents").
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "email", "fetchemail":
		return ActionFetchEmail, nil
	case "documents", "fetchdocuments":
		return ActionFetchDocuments, nil
	default:
		return "", fmt.Errorf("unknown action %q (expected email or documents)", s)
	}
}

// ButtonName is the name attribute of the trigger button for this action.
func (a Action) ButtonName() string {
	if a == ActionFetchDocuments {
		return "fetchDocuments-button"
	}
	return "editEmail-button"
}

// DisplayState is the only mutable state of the page.
type DisplayState struct {
	DisplayText string `json:"display_text"`
	LastError   string `json:"last_error,omitempty"`
	Activations int    `json:"activations"`
}

// Fetcher is the subset of the API client the view depends on.
type Fetcher interface {
	FetchEmail(ctx context.Context, userID string) (*types.UserResponse, error)
	FetchDocuments(ctx context.Context) (*types.DocumentsResponse, error)
}

// Options configures a RootView.
type Options struct {
	Action     Action
	UserID     string
	Documents  []types.DocumentRecord
	ActionPath string
}

// RootView composes the top bar, the document list and the trigger button.
// Overlapping activations are not serialized: the last response to arrive wins.
type RootView struct {
	fetcher    Fetcher
	action     Action
	userID     string
	documents  []types.DocumentRecord
	actionPath string

	mu    sync.RWMutex
	state DisplayState

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a RootView. Documents default to the sample set.
func New(fetcher Fetcher, opts Options) *RootView {
	if opts.Action == "" {
		opts.Action = ActionFetchEmail
	}
	if opts.Documents == nil {
		opts.Documents = types.SampleDocuments()
	}
	if opts.ActionPath == "" {
		opts.ActionPath = DefaultActionPath
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &RootView{
		fetcher:    fetcher,
		action:     opts.Action,
		userID:     opts.UserID,
		documents:  opts.Documents,
		actionPath: opts.ActionPath,
		state:      DisplayState{DisplayText: DefaultDisplayText},
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Action returns the configured action.
func (v *RootView) Action() Action {
	return v.action
}

// State returns a copy of the current display state.
func (v *RootView) State() DisplayState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Documents returns a copy of the records the list renders.
func (v *RootView) Documents() []types.DocumentRecord {
	out := make([]types.DocumentRecord, len(v.documents))
	copy(out, v.documents)
	return out
}

// Activate runs the configured fetch and waits for it.
// On success the display text is replaced and returned. On failure the display text is kept,
// the error is recorded in LastError and returned.
func (v *RootView) Activate(ctx context.Context) (string, error) {
	if err := v.ctx.Err(); err != nil {
		return "", fmt.Errorf("view closed: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(v.ctx, cancel)
	defer stop()

	text, err := v.fetch(ctx)
	if v.ctx.Err() != nil {
		return "", fmt.Errorf("view closed: %w", v.ctx.Err())
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Activations++
	if err != nil {
		log.Printf("[activate] %s failed: %v", v.action, err)
		v.state.LastError = err.Error()
		return "", err
	}
	v.state.DisplayText = text
	v.state.LastError = ""
	return text, nil
}

func (v *RootView) fetch(ctx context.Context) (string, error) {
	switch v.action {
	case ActionFetchDocuments:
		resp, err := v.fetcher.FetchDocuments(ctx)
		if err != nil {
			return "", err
		}
		if len(resp.Documents) == 0 {
			return "", fmt.Errorf("%w: empty document list", fetch.ErrMalformedResponse)
		}
		return resp.FirstTitle(), nil
	default:
		resp, err := v.fetcher.FetchEmail(ctx, v.userID)
		if err != nil {
			return "", err
		}
		return resp.Email, nil
	}
}

// Close cancels in-flight activations. Later activations fail immediately.
func (v *RootView) Close() {
	v.cancel()
}

// PageData snapshots the state into template data.
func (v *RootView) PageData() rendering.PageData {
	state := v.State()
	return rendering.PageData{
		DisplayText: state.DisplayText,
		LastError:   state.LastError,
		Documents:   v.documents,
		ActionPath:  v.actionPath,
		ButtonName:  v.action.ButtonName(),
	}
}

// Render writes the full page.
func (v *RootView) Render(w io.Writer) error {
	return rendering.Page(w, v.PageData())
}
