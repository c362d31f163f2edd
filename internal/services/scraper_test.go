package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeJobDescriptionParagraphsOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><h1>Acme Corp</h1><p>Backend Engineer</p><div>ignored</div><p>Remote OK</p><script>var x;</script></body></html>`))
	}))
	defer server.Close()

	scraper := NewScraper(10 * time.Second)

	text, err := scraper.ScrapeJobDescription(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer Remote OK", text)
}

func TestScrapeJobDescriptionPreservesDocumentOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<p>first</p><ul><li>skipped</li></ul><p>second</p><p>third</p>`))
	}))
	defer server.Close()

	scraper := NewScraper(10 * time.Second)

	text, err := scraper.ScrapeJobDescription(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "first second third", text)
}

func TestScrapeJobDescriptionNoParagraphs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<div>no paragraphs here</div>`))
	}))
	defer server.Close()

	scraper := NewScraper(10 * time.Second)

	text, err := scraper.ScrapeJobDescription(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestScrapeJobDescriptionNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	scraper := NewScraper(10 * time.Second)

	_, err := scraper.ScrapeJobDescription(context.Background(), server.URL)
	require.Error(t, err)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.Equal(t, server.URL, scrapeErr.URL)
}

func TestScrapeJobDescriptionNonTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	scraper := NewScraper(10 * time.Second)

	_, err := scraper.ScrapeJobDescription(context.Background(), server.URL)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
}

func TestScrapeJobDescriptionTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`<p>too late</p>`))
	}))
	defer server.Close()

	scraper := NewScraper(50 * time.Millisecond)

	_, err := scraper.ScrapeJobDescription(context.Background(), server.URL)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.NotNil(t, scrapeErr.Cause)
}

func TestScrapeJobDescriptionUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	scraper := NewScraper(time.Second)

	_, err := scraper.ScrapeJobDescription(context.Background(), url)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
}
