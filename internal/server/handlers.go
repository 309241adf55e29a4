package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-match/internal/fetch"
	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/parsing"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/jonathan/resume-match/internal/types"
)

// ParseRequest represents the request body for /parse
type ParseRequest struct {
	Text      string `json:"text" validate:"required"`
	Source    string `json:"source,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ParseResponse represents the response for /parse
type ParseResponse struct {
	Resume   types.ResumeJSON    `json:"resume"`
	Metadata *ingestion.Metadata `json:"metadata"`
}

// MatchRequest represents the request body for /match. The job description
// comes either pasted or as a URL to fetch; the resume comes inline or from
// a session's working document.
type MatchRequest struct {
	JobDescription string            `json:"job_description,omitempty"`
	JobURL         string            `json:"job_url,omitempty" validate:"omitempty,url"`
	Resume         *types.ResumeJSON `json:"resume,omitempty"`
	SessionID      string            `json:"session_id,omitempty"`
}

// AnalyzeRequest represents the request body for /analyze, which parses a
// resume and matches it against a job description in one call.
type AnalyzeRequest struct {
	Text           string `json:"text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	SessionID      string `json:"session_id,omitempty"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	Resume types.ResumeJSON  `json:"resume"`
	Match  types.MatchResult `json:"match"`
}

// handleParse converts raw resume text into a structured document.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	resume := parsing.ParseResumeText(req.Text)
	s.checkSchema(s.resumeSchemaPath, resume)

	if req.SessionID != "" {
		ctx, err := s.sessions.Verify(req.SessionID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if err := s.sessions.AttachResume(ctx, resume); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		Resume:   resume,
		Metadata: ingestion.NewMetadata(ingestion.CleanText(req.Text), req.Source),
	})
}

// handleMatch scores a resume against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_url must be a valid URL")
		return
	}
	if req.JobDescription == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	resume, ok, err := s.resolveResume(&req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Either resume or session_id with an attached resume is required")
		return
	}

	jd, err := s.jobDescriptionText(r.Context(), req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	match := matching.MatchJobDescription(jd, resume)
	s.checkSchema(s.matchSchemaPath, match)

	if req.SessionID != "" {
		ctx, err := s.sessions.Verify(req.SessionID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if err := s.sessions.AttachMatch(ctx, match); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, match)
}

// handleAnalyze parses resume text and immediately matches it against a job
// description, the common single round trip for the editor UI.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required and job_url must be a valid URL")
		return
	}
	if req.JobDescription == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	resume := parsing.ParseResumeText(req.Text)
	s.checkSchema(s.resumeSchemaPath, resume)

	jd, err := s.jobDescriptionText(r.Context(), req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	match := matching.MatchJobDescription(jd, resume)
	s.checkSchema(s.matchSchemaPath, match)

	if req.SessionID != "" {
		ctx, err := s.sessions.Verify(req.SessionID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if err := s.sessions.AttachResume(ctx, resume); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if err := s.sessions.AttachMatch(ctx, match); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{Resume: resume, Match: match})
}

// resolveResume picks the resume from the request body or, failing that,
// the session's working document.
func (s *Server) resolveResume(req *MatchRequest) (types.ResumeJSON, bool, error) {
	if req.Resume != nil {
		return *req.Resume, true, nil
	}
	if req.SessionID == "" {
		return types.ResumeJSON{}, false, nil
	}

	ctx, err := s.sessions.Verify(req.SessionID)
	if err != nil {
		return types.ResumeJSON{}, false, err
	}
	return s.sessions.Resume(ctx)
}

// jobDescriptionText returns pasted text as is, or fetches and extracts the
// posting when only a URL was given.
func (s *Server) jobDescriptionText(ctx context.Context, pasted, jobURL string) (string, error) {
	if pasted != "" {
		return pasted, nil
	}
	return fetch.JobDescription(ctx, jobURL, nil)
}

// checkSchema validates an emitted document against its schema. Violations
// are logged, not returned: a schema mismatch here is a bug in the engine,
// and clients still get their result.
func (s *Server) checkSchema(schemaPath string, document any) {
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateDocument(schemaPath, document); err != nil {
		log.Printf("[SCHEMA] emitted document failed validation: %v", err)
	}
}
