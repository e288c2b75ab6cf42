package domain

import "time"

// Difficulty labels a quiz item. The generator is instructed to use exactly
// these three values and the validator rejects anything else.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Cardinality bounds shared by the prompt contract and the validator.
const (
	MinQuizItems = 5
	MaxQuizItems = 10

	OptionsPerItem = 4

	MinRelatedTopics = 3
	MaxRelatedTopics = 8
)

// EntityCategories are the fixed key_entities keys. A generated artifact may
// omit a category; normalization fills it with an empty slice so stored
// artifacts always carry all three.
var EntityCategories = []string{"people", "organizations", "locations"}

// Article is the transient result of scraping one page. Empty Text means the
// page had no qualifying content; that is a valid state, not an error.
type Article struct {
	Title string
	Text  string
}

// QuizItem is a single multiple-choice question.
type QuizItem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// QuizArtifact is the structured quiz generated for one article. It is
// persisted as JSON and served back byte-identically, so it must only ever be
// built by the schema validator.
type QuizArtifact struct {
	URL           string              `json:"url"`
	Title         string              `json:"title"`
	Summary       string              `json:"summary"`
	KeyEntities   map[string][]string `json:"key_entities"`
	Sections      []string            `json:"sections"`
	Quiz          []QuizItem          `json:"quiz"`
	RelatedTopics []string            `json:"related_topics"`
}

// ArtifactSummary is the lightweight listing row for prior runs.
type ArtifactSummary struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidDifficulty reports whether s is one of the three allowed labels.
func ValidDifficulty(s string) bool {
	return s == DifficultyEasy || s == DifficultyMedium || s == DifficultyHard
}

// NormalizeEntities guarantees every fixed category is present on the
// artifact, mapping absent categories to empty slices.
func (a *QuizArtifact) NormalizeEntities() {
	if a.KeyEntities == nil {
		a.KeyEntities = make(map[string][]string, len(EntityCategories))
	}
	for _, category := range EntityCategories {
		if a.KeyEntities[category] == nil {
			a.KeyEntities[category] = []string{}
		}
	}
}
