package quizgen

import (
	"strings"
	"testing"

	"wikiquiz/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Turing Award", "https://en.wikipedia.org/wiki/Turing_Award", "The award is named after Alan Turing.")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Title: Turing Award")
	assert.Contains(t, prompt, "URL: https://en.wikipedia.org/wiki/Turing_Award")
	assert.Contains(t, prompt, "The award is named after Alan Turing.")

	// The schema contract must be embedded verbatim.
	assert.Contains(t, prompt, schema.FormatInstructions())

	// All ten generation rules are present.
	for _, rule := range []string{"1. ", "5. ", "10. "} {
		assert.Contains(t, prompt, "\n"+rule)
	}
	assert.Contains(t, prompt, "Generate 5 to 10 quiz questions")
	assert.Contains(t, prompt, "Return ONLY the JSON object")

	// No unresolved template variables.
	assert.False(t, strings.Contains(prompt, "{{"), "prompt still contains template syntax")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	first, err := BuildPrompt("T", "https://example.org/x", "Some text.")
	require.NoError(t, err)
	second, err := BuildPrompt("T", "https://example.org/x", "Some text.")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPrompt_EmptyArticleText(t *testing.T) {
	// Empty extracted text is a legitimate input; the prompt is still built.
	prompt, err := BuildPrompt("Unknown Title", "https://example.org/x", "")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Title: Unknown Title")
}
