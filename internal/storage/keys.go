package storage

import "strings"

const (
	GlobalKeyPrefix = "careerpassport"
)

// GenerateKey builds "{prefix}:{namespace}:{name}", with any extra parts
// joined by "_" and appended as a last segment.
func GenerateKey(namespace, name string, parts ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, namespace, name}, ":")
	if len(parts) > 0 {
		return strings.Join([]string{baseKey, strings.Join(parts, "_")}, ":")
	}
	return baseKey
}

// Keys of the local store.
var (
	BookmarksKey    = GenerateKey("bookmarks", "collection")
	VisitCounterKey = GenerateKey("visits", "counter")
)
