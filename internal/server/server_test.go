package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server with default settings and returns the fully
// wired handler, middleware included.
func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := New(Config{Port: 0, SessionTTL: time.Hour})
	t.Cleanup(s.rateLimiter.Stop)
	return s, s.httpServer.Handler
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleHealth_RateLimitHeaders(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/health", "")

	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestCORSPreflight(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "OPTIONS", "/parse", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleParse_Success(t *testing.T) {
	_, handler := newTestServer(t)
	body := `{"text": "Jane Doe\nSKILLS\nGo, Python", "source": "resume.txt"}`

	rec := doJSON(t, handler, "POST", "/parse", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Resume.Contact.Name)
	assert.Equal(t, []string{"go", "python"}, resp.Resume.Skills)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "resume.txt", resp.Metadata.Source)
	assert.NotEmpty(t, resp.Metadata.Hash)
}

func TestHandleParse_MissingText(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/parse", `{"source": "resume.txt"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParse_InvalidBody(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/parse", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_InlineResume(t *testing.T) {
	_, handler := newTestServer(t)
	body := `{
		"job_description": "We need python and kubernetes experience",
		"resume": {
			"contact": {"name": "", "email": "", "phone": "", "location": "", "links": []},
			"summary": "",
			"skills": ["Python", "Docker"],
			"experience": [{"company": "Acme", "title": "Engineer", "start": "", "end": "",
				"bullets": ["Built Python services on Kubernetes"]}],
			"education": [],
			"extras": {}
		}
	}`

	rec := doJSON(t, handler, "POST", "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []any{"Python"}, result["skill_matches"])
	assert.NotEmpty(t, result["ranked_bullets"])
}

func TestHandleMatch_MissingJobDescription(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/match", `{"resume": null}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_InvalidJobURL(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/match", `{"job_url": "not a url"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_NoResumeAnywhere(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/match", `{"job_description": "some role"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume")
}

func TestHandleAnalyze_EndToEnd(t *testing.T) {
	_, handler := newTestServer(t)
	body := `{
		"text": "Jane Doe\nSKILLS\nPython, Go\nEXPERIENCE\nAcme Corp - Engineer 2019 - 2022\n• Built python services",
		"job_description": "We need python services experience"
	}`

	rec := doJSON(t, handler, "POST", "/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Resume.Contact.Name)
	assert.Contains(t, resp.Match.SkillMatches, "python")
	assert.Greater(t, resp.Match.MatchScore, 0)
}

func TestExtractClientID_ForwardedHeader(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	assert.Equal(t, "203.0.113.9", s.extractClientID(req))
}

func TestExtractClientID_RemoteAddr(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.0.2.1:4321"

	assert.Equal(t, "192.0.2.1", s.extractClientID(req))
}
