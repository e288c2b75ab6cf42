package quizgen

import (
	"wikiquiz/internal/schema"

	"github.com/tmc/langchaingo/prompts"
)

// promptTemplate frames the generation request: persona, article metadata,
// the article text verbatim, the rendered schema contract, and the fixed
// generation rules.
const promptTemplate = `You are a professional quiz generator.

Your task is to read a Wikipedia article and generate a structured quiz strictly in valid JSON format.

Follow all rules exactly:

============================
    ARTICLE INFORMATION
============================
Title: {{.title}}
URL: {{.url}}

============================
      ARTICLE CONTENT
============================
{{.article_text}}

============================
    REQUIRED OUTPUT FORMAT
============================

{{.format_instructions}}

============================
       GENERATION RULES
============================

1. All facts MUST be based ONLY on the provided article text. No invention.
2. If an entity or fact is missing from the text, omit it or keep it empty. Never fabricate.
3. Questions should be diverse and cover multiple sections of the article.
4. Generate 5 to 10 quiz questions.
5. Each question MUST have exactly 4 options, one correct answer, a short explanation, and a difficulty of easy, medium or hard.
6. related_topics must contain 3 to 8 entries.
7. summary must be 2 to 4 sentences.
8. key_entities must be populated for the people, organizations and locations categories.
9. sections should be derived from headings present in the article text.
10. Return ONLY the JSON object. No markdown. No comments. No extra text.`

// BuildPrompt composes the full generation request for one article. It is a
// pure transformation: identical inputs always yield identical prompt text,
// since the format instructions are rendered deterministically from the
// shared schema definition.
func BuildPrompt(title, url, articleText string) (string, error) {
	tmpl := prompts.PromptTemplate{
		Template:       promptTemplate,
		InputVariables: []string{"title", "url", "article_text"},
		TemplateFormat: prompts.TemplateFormatGoTemplate,
		PartialVariables: map[string]any{
			"format_instructions": schema.FormatInstructions(),
		},
	}

	return tmpl.Format(map[string]any{
		"title":        title,
		"url":          url,
		"article_text": articleText,
	})
}
