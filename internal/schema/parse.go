package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"wikiquiz/internal/domain"
)

// Parse validates raw model output against the artifact contract and returns
// the typed artifact. It is the enforcement boundary: the model is not
// trusted to honor the format instructions, and nothing structurally invalid
// may reach the store. All failures are *domain.SchemaViolationError.
func Parse(raw string) (*domain.QuizArtifact, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, domain.NewMalformedOutputError(err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &tree); err != nil {
		return nil, domain.NewMalformedOutputError(err)
	}

	// Presence and shape checks come straight from the shared field table.
	for _, f := range Fields() {
		value, ok := tree[f.Name]
		if !ok || !matchesKind(f.Kind, value) {
			return nil, domain.NewMissingFieldError(f.Name)
		}
	}

	var artifact domain.QuizArtifact
	if err := json.Unmarshal([]byte(payload), &artifact); err != nil {
		return nil, domain.NewMalformedOutputError(err)
	}

	if err := checkConstraints(&artifact); err != nil {
		return nil, err
	}

	artifact.NormalizeEntities()
	return &artifact, nil
}

// extractJSONObject slices out the first '{' through the last '}' so that
// markdown fencing or stray prose around the object does not fail decoding.
func extractJSONObject(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return cleaned[start : end+1], nil
}

func matchesKind(kind Kind, value interface{}) bool {
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindStringArray:
		items, ok := value.([]interface{})
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	case KindItemArray:
		items, ok := value.([]interface{})
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(map[string]interface{}); !ok {
				return false
			}
		}
		return true
	case KindEntityMap:
		entries, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		for _, names := range entries {
			if !matchesKind(KindStringArray, names) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func checkConstraints(artifact *domain.QuizArtifact) error {
	if strings.TrimSpace(artifact.Summary) == "" {
		return domain.NewConstraintError("summary must not be empty")
	}

	if n := len(artifact.Quiz); n < domain.MinQuizItems || n > domain.MaxQuizItems {
		return domain.NewConstraintError(fmt.Sprintf("quiz has %d items, expected between %d and %d", n, domain.MinQuizItems, domain.MaxQuizItems))
	}

	if n := len(artifact.RelatedTopics); n < domain.MinRelatedTopics || n > domain.MaxRelatedTopics {
		return domain.NewConstraintError(fmt.Sprintf("related_topics has %d entries, expected between %d and %d", n, domain.MinRelatedTopics, domain.MaxRelatedTopics))
	}

	for i, item := range artifact.Quiz {
		if len(item.Options) != domain.OptionsPerItem {
			return domain.NewConstraintError(fmt.Sprintf("quiz item %d has %d options, expected exactly %d", i, len(item.Options), domain.OptionsPerItem))
		}
		if !contains(item.Options, item.Answer) {
			return domain.NewConstraintError(fmt.Sprintf("quiz item %d answer is not one of its options", i))
		}
		if !domain.ValidDifficulty(item.Difficulty) {
			return domain.NewConstraintError(fmt.Sprintf("quiz item %d has unknown difficulty %q", i, item.Difficulty))
		}
	}
	return nil
}

func contains(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
