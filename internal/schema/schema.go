// Package schema is the single source of truth for the quiz artifact
// contract. The prompt builder renders its format instructions from the field
// table below and the response validator checks the same table, so what we
// ask the model for and what we accept from it can never drift apart.
package schema

import (
	"fmt"
	"strings"

	"wikiquiz/internal/domain"
)

// Kind is the JSON shape a top-level artifact field must have.
type Kind int

const (
	KindString Kind = iota
	KindStringArray
	KindItemArray
	KindEntityMap
)

// Field describes one required top-level field of a QuizArtifact.
type Field struct {
	Name string
	Kind Kind
	Note string
}

// fields lists every required top-level field in output order.
var fields = []Field{
	{Name: "url", Kind: KindString, Note: "the source article URL"},
	{Name: "title", Kind: KindString, Note: "the article title"},
	{Name: "summary", Kind: KindString, Note: "2-4 sentence summary of the article"},
	{Name: "key_entities", Kind: KindEntityMap, Note: `object mapping "people", "organizations" and "locations" to arrays of strings`},
	{Name: "sections", Kind: KindStringArray, Note: "section names derived from headings in the article text"},
	{Name: "quiz", Kind: KindItemArray, Note: fmt.Sprintf("array of %d to %d question objects", domain.MinQuizItems, domain.MaxQuizItems)},
	{Name: "related_topics", Kind: KindStringArray, Note: fmt.Sprintf("array of %d to %d related topic names", domain.MinRelatedTopics, domain.MaxRelatedTopics)},
}

// Fields returns the required top-level fields in output order.
func Fields() []Field {
	return fields
}

func (k Kind) typeName() string {
	switch k {
	case KindString:
		return "string"
	case KindStringArray:
		return "array of strings"
	case KindItemArray:
		return "array of objects"
	case KindEntityMap:
		return "object"
	default:
		return "unknown"
	}
}

// FormatInstructions renders the machine-readable output contract embedded in
// the generation prompt. The rendering is deterministic: same field table,
// same text.
func FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Return a single JSON object with exactly these fields:\n{\n")
	for i, f := range fields {
		fmt.Fprintf(&b, "  %q: <%s>", f.Name, f.Kind.typeName())
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "  // %s\n", f.Note)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "Each element of \"quiz\" is an object of this exact shape:\n{\n")
	fmt.Fprintf(&b, "  \"question\": <string>,\n")
	fmt.Fprintf(&b, "  \"options\": <array of exactly %d strings>,\n", domain.OptionsPerItem)
	fmt.Fprintf(&b, "  \"answer\": <string>,  // must equal one of the options verbatim\n")
	fmt.Fprintf(&b, "  \"difficulty\": <string>,  // one of %q, %q, %q\n", domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard)
	fmt.Fprintf(&b, "  \"explanation\": <string>\n")
	b.WriteString("}")
	return b.String()
}
