package server

import (
	"net/http"

	"github.com/jonathan/resume-match/internal/session"
)

// SessionResponse represents a session context returned to clients.
type SessionResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// handleCreateSession issues a new session context.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	ctx := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, sessionResponse(ctx))
}

// handleGetSession verifies a session and returns its context.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx, err := s.sessions.Verify(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(ctx))
}

// handleClearSession ends a session. Clearing an unknown session succeeds;
// the outcome is the same either way.
func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.sessions.Clear(session.Context{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionResume returns the session's working resume document.
func (s *Server) handleSessionResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx, err := s.sessions.Verify(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, ok, err := s.sessions.Resume(ctx)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no resume attached to session")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleSessionMatch returns the session's latest match result.
func (s *Server) handleSessionMatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx, err := s.sessions.Verify(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	match, ok, err := s.sessions.Match(ctx)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no match result attached to session")
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

func sessionResponse(ctx session.Context) SessionResponse {
	return SessionResponse{
		ID:        ctx.ID,
		CreatedAt: ctx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
