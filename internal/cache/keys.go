package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "wikiquiz"
)

// ArtifactKey builds the cache key for a stored quiz artifact by its id.
func ArtifactKey(id int64) string {
	return GenerateCacheKey("quiz", "artifact", strconv.FormatInt(id, 10))
}

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}
