package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generation parameters per template. The summary is kept short and mildly
// sampled; the fit judgment runs with the service default temperature.
var (
	summarizeTemperature float32 = 0.4
	fullNucleus          float32 = 1.0

	summarizeOptions = GenerateOptions{
		MaxOutputTokens: 200,
		Temperature:     &summarizeTemperature,
		TopP:            &fullNucleus,
	}

	evaluateOptions = GenerateOptions{
		MaxOutputTokens: 300,
		TopP:            &fullNucleus,
	}
)

// Matcher orchestrates the three user triggers: summarize an uploaded CV,
// fetch a job description, and evaluate the candidate's fit.
type Matcher interface {
	SummarizeCV(ctx context.Context, sessionID uuid.UUID, pdfData []byte) (string, error)
	FetchJobDescription(ctx context.Context, sessionID uuid.UUID, url string) error
	EvaluateFit(ctx context.Context, sessionID uuid.UUID) (string, error)
}

type matcher struct {
	sessions  SessionStore
	extractor Extractor
	scraper   Scraper
	prompts   *PromptFormatter
	inference InferenceClient
	logger    *zap.Logger
}

func NewMatcher(
	sessions SessionStore,
	extractor Extractor,
	scraper Scraper,
	inference InferenceClient,
	logger *zap.Logger,
) Matcher {
	return &matcher{
		sessions:  sessions,
		extractor: extractor,
		scraper:   scraper,
		prompts:   NewPromptFormatter(),
		inference: inference,
		logger:    logger,
	}
}

// SummarizeCV extracts the CV text, stores it on the session and asks the
// model to reformat it into the structured outline. The summary is returned
// as-is; its structure is never parsed or validated locally. The extracted
// text stays on the session even when the summary call fails.
func (m *matcher) SummarizeCV(ctx context.Context, sessionID uuid.UUID, pdfData []byte) (string, error) {
	cvText, err := m.extractor.ExtractText(pdfData)
	if err != nil {
		return "", err
	}

	if err := m.sessions.SetCVText(sessionID, cvText); err != nil {
		return "", err
	}

	m.logger.Info("cv text extracted",
		zap.String("session_id", sessionID.String()),
		zap.Int("text_length", len(cvText)),
	)

	prompt, err := m.prompts.Format(TemplateSummarizeCV, map[string]string{"CV": cvText})
	if err != nil {
		return "", fmt.Errorf("failed to build summary prompt: %w", err)
	}

	summary, err := m.inference.Generate(ctx, prompt, summarizeOptions)
	if err != nil {
		return "", err
	}

	return summary, nil
}

// FetchJobDescription scrapes the page and stores the paragraph text on the
// session. On a scrape failure the job text remains unset.
func (m *matcher) FetchJobDescription(ctx context.Context, sessionID uuid.UUID, url string) error {
	jobText, err := m.scraper.ScrapeJobDescription(ctx, url)
	if err != nil {
		return err
	}

	if err := m.sessions.SetJobText(sessionID, jobText); err != nil {
		return err
	}

	m.logger.Info("job description scraped",
		zap.String("session_id", sessionID.String()),
		zap.String("url", url),
		zap.Int("text_length", len(jobText)),
	)

	return nil
}

// EvaluateFit asks the model to judge the candidate's fit. Both the CV text
// and the job description must already be present on the session; no
// inference call is made otherwise.
func (m *matcher) EvaluateFit(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, ok := m.sessions.Get(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}

	if !session.HasCV {
		return "", ErrMissingCV
	}
	if !session.HasJob {
		return "", ErrMissingJobDescription
	}

	prompt, err := m.prompts.Format(TemplateEvaluateFit, map[string]string{
		"CV": session.CVText,
		"JD": session.JobText,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build evaluation prompt: %w", err)
	}

	evaluation, err := m.inference.Generate(ctx, prompt, evaluateOptions)
	if err != nil {
		return "", err
	}

	m.logger.Info("fit evaluation generated",
		zap.String("session_id", sessionID.String()),
		zap.Int("text_length", len(evaluation)),
	)

	return evaluation, nil
}
