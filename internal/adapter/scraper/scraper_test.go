package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longParagraph = "Alan Turing received the award posthumously for his work."

func TestExtract_TitleAndParagraphFilter(t *testing.T) {
	// 60-char paragraph survives, 10-char paragraph is noise.
	long := longParagraph + " It."
	require.Greater(t, len(long), 50)

	body := `<html><body>
		<h1 id="firstHeading">Turing Award</h1>
		<div id="mw-content-text">
			<p>` + long + `</p>
			<p>Short one</p>
		</div>
	</body></html>`

	title, text := Extract([]byte(body))
	assert.Equal(t, "Turing Award", title)
	assert.Equal(t, long, text)
	assert.NotContains(t, text, "Short one")
}

func TestExtract_DocumentOrder(t *testing.T) {
	first := strings.Repeat("first paragraph ", 5)
	second := strings.Repeat("second paragraph ", 5)
	body := `<html><body><h1 id="firstHeading">X</h1><div id="mw-content-text">
		<p>` + first + `</p>
		<p>tiny</p>
		<p>` + second + `</p>
	</div></body></html>`

	_, text := Extract([]byte(body))
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.TrimSpace(first), lines[0])
	assert.Equal(t, strings.TrimSpace(second), lines[1])
}

func TestExtract_MissingHeading(t *testing.T) {
	body := `<html><body><div id="mw-content-text"><p>` + longParagraph + `</p></div></body></html>`
	title, text := Extract([]byte(body))
	assert.Equal(t, "Untitled", title)
	assert.Equal(t, longParagraph, text)
}

func TestExtract_MissingContentRegion(t *testing.T) {
	body := `<html><body><h1 id="firstHeading">Lonely Title</h1><p>` + longParagraph + `</p></body></html>`
	title, text := Extract([]byte(body))
	assert.Equal(t, "Lonely Title", title)
	assert.Empty(t, text)
}

func TestExtract_CollapsesInnerWhitespace(t *testing.T) {
	body := `<html><body><h1 id="firstHeading">X</h1><div id="mw-content-text">
		<p>This   paragraph
		has    ragged whitespace but is definitely long enough to keep.</p>
	</div></body></html>`

	_, text := Extract([]byte(body))
	assert.Equal(t, "This paragraph has ragged whitespace but is definitely long enough to keep.", text)
}

func TestExtract_Idempotent(t *testing.T) {
	body := []byte(`<html><body><h1 id="firstHeading">Turing Award</h1><div id="mw-content-text"><p>` + longParagraph + `</p></div></body></html>`)

	title1, text1 := Extract(body)
	title2, text2 := Extract(body)
	assert.Equal(t, title1, title2)
	assert.Equal(t, text1, text2)
}

func TestScrape_Success(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><h1 id="firstHeading">Turing Award</h1><div id="mw-content-text"><p>` + longParagraph + `</p></div></body></html>`))
	}))
	defer server.Close()

	s := NewScraper(server.Client(), "wikiquiz-test/1.0")
	title, text := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, "Turing Award", title)
	assert.Equal(t, longParagraph, text)
	assert.Equal(t, "wikiquiz-test/1.0", gotUserAgent)
}

func TestScrape_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	s := NewScraper(server.Client(), "wikiquiz-test/1.0")
	title, text := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, "Unknown Title", title)
	assert.Empty(t, text)
}

func TestScrape_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	s := NewScraper(&http.Client{}, "wikiquiz-test/1.0")
	title, text := s.Scrape(context.Background(), url)

	assert.Equal(t, "Error", title)
	assert.Empty(t, text)
}
