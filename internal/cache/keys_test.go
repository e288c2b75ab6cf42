package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactKey(t *testing.T) {
	assert.Equal(t, "wikiquiz:quiz:artifact:42", ArtifactKey(42))
}

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("quiz", "artifact", "7")
	assert.Equal(t, "wikiquiz:quiz:artifact:7", key)
}
