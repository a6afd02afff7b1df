package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	s := store.NewMemStore()
	srv := New(Config{Port: 0, Store: s, Namespace: "default"})
	return srv, s
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandlePreview_SeedsAndRendersDefaults(t *testing.T) {
	srv, s := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handlePreview(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your Name", "default seed resume renders")
	assert.Contains(t, body, "EventSource", "reload script attached")

	// First read persisted the defaults.
	_, ok, err := s.GetRaw("user_default_resumeData")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHandlePreview_HonorsStoredTemplateAndEdits(t *testing.T) {
	srv, s := newTestServer(t)

	resume := `{"basics":{"name":"Stored Person","label":"Tester"}}`
	require.NoError(t, s.SetRaw("user_default_resumeData", []byte(resume)))
	require.NoError(t, s.SetRaw("user_default_selectedTemplate", []byte(`"Modern"`)))

	rec := httptest.NewRecorder()
	srv.handlePreview(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Stored Person")
	assert.Contains(t, body, "sidebar", "Modern skin selected")
}

func TestHandlePreview_InvalidStoredTemplateFallsBackToClassic(t *testing.T) {
	srv, s := newTestServer(t)
	require.NoError(t, s.SetRaw("user_default_selectedTemplate", []byte(`"Comic Sans"`)))

	rec := httptest.NewRecorder()
	srv.handlePreview(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 200, rec.Code)
}

func TestHandleResumeJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleResumeJSON(rec, httptest.NewRequest("GET", "/resume.json", nil))

	require.Equal(t, 200, rec.Code)
	var resume schema.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.NotEmpty(t, resume.Basics.Name)
}

func TestHandleResumeText(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleResumeText(rec, httptest.NewRequest("GET", "/resume.txt", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "YOUR NAME"))
}

func TestHandleLetter(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleLetter(rec, httptest.NewRequest("GET", "/letter", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dear Hiring Manager")
}

func TestHandleEvents_StoreWithoutNotifierRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleEvents(rec, httptest.NewRequest("GET", "/events", nil))

	assert.Equal(t, 501, rec.Code)
}
