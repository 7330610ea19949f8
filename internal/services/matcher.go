package services

import (
	"context"
	"fmt"
	"log"

	"resume-matcher/internal/models"
)

// MatcherService runs the full pipeline for one submission: extract the
// resume text, build the prompt, call the completion endpoint, parse the
// reply sections and derive the match summary. Steps run strictly in
// sequence; an extraction failure halts the pipeline before any remote
// call is made, a completion failure halts it before parsing. The
// service keeps no state between submissions.
type MatcherService interface {
	MatchResume(ctx context.Context, resumePath, jobDescription string) (*models.MatchReport, error)
}

type matcherService struct {
	pdfParser     PDFParserService
	completion    CompletionClient
	promptBuilder *PromptBuilder
}

func NewMatcherService(pdfParser PDFParserService, completion CompletionClient) MatcherService {
	return &matcherService{
		pdfParser:     pdfParser,
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

func (m *matcherService) MatchResume(ctx context.Context, resumePath, jobDescription string) (*models.MatchReport, error) {
	log.Println("📄 Extracting resume text...")
	resumeText, err := m.pdfParser.ExtractText(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	system, user := m.promptBuilder.BuildMatchMessages(resumeText, jobDescription)

	log.Println("🤖 Analyzing resume against job description...")
	reply, err := m.completion.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	// Absent sections come back as empty lists, never as an error: the
	// model may simply have phrased its reply differently.
	sections := ParseSections(reply)
	summary := BuildMatchSummary(sections.Matched, sections.Missing)

	log.Printf("✅ Analysis completed: %d matched, %d missing, score %.2f\n",
		summary.MatchedCount, summary.MissingCount, summary.ScorePercent)

	return &models.MatchReport{
		Analysis:    reply,
		Matched:     sections.Matched,
		Missing:     sections.Missing,
		Suggestions: sections.Suggestions,
		Summary:     summary,
	}, nil
}
