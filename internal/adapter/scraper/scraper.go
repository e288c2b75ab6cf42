// Package scraper turns a Wikipedia-style article page into a clean
// (title, text) pair for quiz generation.
package scraper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Placeholder titles for the degraded results. Callers always receive a
// usable pair; empty text marks a page with no qualifying content.
const (
	titleMissing    = "Untitled"
	titleFetchError = "Unknown Title"
	titleScrapeErr  = "Error"
)

// minParagraphLen filters navigation and caption noise: any paragraph at or
// under this trimmed length is dropped.
const minParagraphLen = 50

const maxBodyBytes = 5 * 1024 * 1024

// Scraper fetches article pages over HTTP and extracts their prose.
type Scraper struct {
	client    *http.Client
	userAgent string
}

// NewScraper creates a Scraper using the given HTTP client and User-Agent.
func NewScraper(client *http.Client, userAgent string) *Scraper {
	return &Scraper{client: client, userAgent: userAgent}
}

// Scrape fetches the page at url and extracts (title, text). Fetch failures
// never propagate: a non-2xx response yields ("Unknown Title", "") and any
// transport error yields ("Error", "").
func (s *Scraper) Scrape(ctx context.Context, url string) (string, string) {
	l := logger.Get()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		l.Warn("Failed to build scrape request", zap.String("url", url), zap.Error(err))
		return titleScrapeErr, ""
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		l.Warn("Scrape request failed", zap.String("url", url), zap.Error(err))
		return titleScrapeErr, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.Warn("Scrape got non-success status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return titleFetchError, ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		l.Warn("Failed to read scrape response body", zap.String("url", url), zap.Error(err))
		return titleScrapeErr, ""
	}

	return Extract(body)
}

// Extract parses raw page markup and returns (title, text). It is pure and
// deterministic: the title comes from h1#firstHeading (or "Untitled"), the
// text from paragraphs inside div#mw-content-text longer than 50 characters,
// joined with newlines in document order. A page without the content region
// yields (title, "").
func Extract(body []byte) (string, string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return titleMissing, ""
	}

	title := titleMissing
	if heading := doc.Find("h1#firstHeading").First(); heading.Length() > 0 {
		title = strings.TrimSpace(heading.Text())
	}

	content := doc.Find("div#mw-content-text").First()
	if content.Length() == 0 {
		return title, ""
	}

	var paragraphs []string
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.Join(strings.Fields(p.Text()), " ")
		if len(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})

	return title, strings.TrimSpace(strings.Join(paragraphs, "\n"))
}

var _ domain.PageScraper = (*Scraper)(nil)
