package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/models"
	"resume-matcher/internal/services"
)

type stubMatcher struct {
	report *models.MatchReport
	err    error
	calls  int
}

func (s *stubMatcher) MatchResume(ctx context.Context, resumePath, jobDescription string) (*models.MatchReport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func newTestApp(t *testing.T, matcher services.MatcherService) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	app := fiber.New()
	handler := NewMatchHandler(matcher, storage, 1<<20)
	app.Post("/api/v1/match", handler.HandleMatch)

	return app
}

func matchRequest(t *testing.T, withResume bool, jobDescription string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if withResume {
		part, err := writer.CreateFormFile("resume", "candidate.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake resume"))
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandleMatch_Success(t *testing.T) {
	report := &models.MatchReport{
		Analysis:    "Matched Skills:\n- Go\n",
		Matched:     []string{"Go"},
		Missing:     []string{"Rust"},
		Suggestions: []string{"Add metrics"},
		Summary:     services.BuildMatchSummary([]string{"Go"}, []string{"Rust"}),
	}
	matcher := &stubMatcher{report: report}
	app := newTestApp(t, matcher)

	resp, err := app.Test(matchRequest(t, true, "We need Go and Rust"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, matcher.calls)

	var got models.MatchReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, report.Matched, got.Matched)
	assert.Equal(t, report.Missing, got.Missing)
	assert.Equal(t, 50.0, got.Summary.ScorePercent)
	assert.Len(t, got.Summary.Table, 2)
}

func TestHandleMatch_MissingJobDescription(t *testing.T) {
	matcher := &stubMatcher{}
	app := newTestApp(t, matcher)

	resp, err := app.Test(matchRequest(t, true, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, matcher.calls)
}

func TestHandleMatch_MissingResume(t *testing.T) {
	matcher := &stubMatcher{}
	app := newTestApp(t, matcher)

	resp, err := app.Test(matchRequest(t, false, "some JD"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, matcher.calls)
}

func TestHandleMatch_ExtractionFailure(t *testing.T) {
	matcher := &stubMatcher{
		err: fmt.Errorf("failed to extract resume text: %w",
			&services.ExtractionError{Reason: "failed to open PDF"}),
	}
	app := newTestApp(t, matcher)

	resp, err := app.Test(matchRequest(t, true, "some JD"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleMatch_CompletionFailure(t *testing.T) {
	matcher := &stubMatcher{
		err: fmt.Errorf("failed to analyze resume: %w",
			&services.CompletionError{StatusCode: 503, Body: "upstream unavailable"}),
	}
	app := newTestApp(t, matcher)

	resp, err := app.Test(matchRequest(t, true, "some JD"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "503")
	assert.Contains(t, body["error"], "upstream unavailable")
}
