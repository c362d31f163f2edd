package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Scraper interface {
	ScrapeJobDescription(ctx context.Context, url string) (string, error)
}

type jobScraper struct {
	client *http.Client
}

func NewScraper(timeout time.Duration) Scraper {
	return &jobScraper{
		client: &http.Client{Timeout: timeout},
	}
}

// ScrapeJobDescription fetches the page and returns the text of every
// paragraph element in document order, joined with single spaces. Anything
// else on the page is ignored. No retries.
func (s *jobScraper) ScrapeJobDescription(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &ScrapeError{URL: url, Cause: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &ScrapeError{URL: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ScrapeError{URL: url, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "text/") {
		return "", &ScrapeError{URL: url, Cause: fmt.Errorf("unsupported content type %q", ct)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &ScrapeError{URL: url, Cause: err}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		paragraphs = append(paragraphs, sel.Text())
	})

	return strings.Join(paragraphs, " "), nil
}
