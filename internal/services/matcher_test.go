package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPDFParser struct {
	text string
	err  error
}

func (s *stubPDFParser) ExtractText(filePath string) (string, error) {
	return s.text, s.err
}

func (s *stubPDFParser) ExtractFromBytes(data []byte) (string, error) {
	return s.text, s.err
}

type recordingCompletion struct {
	calls      int
	lastSystem string
	lastUser   string
	reply      string
	err        error
}

func (r *recordingCompletion) Complete(ctx context.Context, system, user string) (string, error) {
	r.calls++
	r.lastSystem = system
	r.lastUser = user
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func TestMatchResume_Success(t *testing.T) {
	completion := &recordingCompletion{reply: sampleReply}
	matcher := NewMatcherService(&stubPDFParser{text: "10 years of Python and SQL"}, completion)

	report, err := matcher.MatchResume(context.Background(), "resume.pdf", "We need Python, SQL and Docker")
	require.NoError(t, err)

	assert.Equal(t, 1, completion.calls)
	assert.Contains(t, completion.lastUser, "10 years of Python and SQL")
	assert.Contains(t, completion.lastUser, "We need Python, SQL and Docker")

	assert.Equal(t, sampleReply, report.Analysis)
	assert.Equal(t, []string{"Python", "SQL"}, report.Matched)
	assert.Equal(t, []string{"Docker"}, report.Missing)
	assert.Equal(t, []string{"Add metrics"}, report.Suggestions)
	assert.Equal(t, 66.67, report.Summary.ScorePercent)
}

// A resume PDF that cannot be read must stop the pipeline before any
// remote call is made.
func TestMatchResume_ExtractionFailureSkipsRemoteCall(t *testing.T) {
	extractErr := &ExtractionError{Reason: "failed to open PDF"}
	completion := &recordingCompletion{reply: sampleReply}
	matcher := NewMatcherService(&stubPDFParser{err: extractErr}, completion)

	report, err := matcher.MatchResume(context.Background(), "corrupt.pdf", "any JD")

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Zero(t, completion.calls)

	var target *ExtractionError
	assert.True(t, errors.As(err, &target))
}

func TestMatchResume_CompletionFailureHaltsBeforeParsing(t *testing.T) {
	completionErr := &CompletionError{StatusCode: 500, Body: "upstream exploded"}
	completion := &recordingCompletion{err: completionErr}
	matcher := NewMatcherService(&stubPDFParser{text: "resume text"}, completion)

	report, err := matcher.MatchResume(context.Background(), "resume.pdf", "any JD")

	require.Error(t, err)
	assert.Nil(t, report)

	var target *CompletionError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 500, target.StatusCode)
}

// An unstructured reply is a degraded-but-valid result: empty lists and
// a zero score, never an error.
func TestMatchResume_UnstructuredReplyYieldsEmptySections(t *testing.T) {
	completion := &recordingCompletion{reply: "This candidate seems fine to me."}
	matcher := NewMatcherService(&stubPDFParser{text: "resume text"}, completion)

	report, err := matcher.MatchResume(context.Background(), "resume.pdf", "any JD")
	require.NoError(t, err)

	assert.Empty(t, report.Matched)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, 0.0, report.Summary.ScorePercent)
}
