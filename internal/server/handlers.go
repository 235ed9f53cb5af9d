package server

import (
	"bytes"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/jonathan/gator-life/internal/rendering"
	"github.com/jonathan/gator-life/internal/rootview"
	"github.com/jonathan/gator-life/internal/types"
)

// handleIndex renders the root page
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := s.view.Render(&buf); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleLogo serves the brand logo referenced by the top bar
func (s *Server) handleLogo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(rendering.Logo())
}

// handleActivate runs the page's fetch action.
// Form posts are redirected back to the page; JSON callers get the resulting state.
func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	_, err := s.view.Activate(r.Context())

	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err != nil {
		activationErr := &ErrActivation{Action: string(s.view.Action()), Cause: err}
		s.jsonResponse(w, HTTPStatus(activationErr), ActivationErrorResponse{
			Error: err.Error(),
			State: s.view.State(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.view.State())
}

// ActivationErrorResponse is the JSON body for a failed activation
type ActivationErrorResponse struct {
	Error string                `json:"error"`
	State rootview.DisplayState `json:"state"`
}

// handleState returns the current display state
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.view.State())
}

// handleGetUser returns the placeholder user record
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		err := &ErrValidation{Field: "id", Message: "is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.UserResponse{Email: "test_API " + id})
}

// handleListDocuments returns the document list
func (s *Server) handleListDocuments(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.documents)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// wantsJSON reports whether the client asked for a JSON answer instead of a redirect.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}
