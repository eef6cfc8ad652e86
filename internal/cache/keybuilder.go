package cache

import (
	"fmt"
	"strings"

	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/models"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// KeyBuilderImpl implements the KeyBuilder interface
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// Build creates a cache key of the form prefix:part1:part2...
func (kb *KeyBuilderImpl) Build(prefix models.Prefix, parts ...string) (string, error) {
	return BuildKey(prefix, parts...)
}

// BuildKey joins a known prefix and one or more identifier parts with the key separator.
// Parts must be non-blank and must not contain the separator, so distinct inputs
// always map to distinct keys.
func BuildKey(prefix models.Prefix, parts ...string) (string, error) {
	if !prefix.Valid() {
		return "", fmt.Errorf("%w: unknown prefix %q", ErrInvalidKey, string(prefix))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("%w: prefix %q needs at least one part", ErrInvalidKey, string(prefix))
	}

	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			return "", fmt.Errorf("%w: part %d is empty", ErrInvalidKey, i)
		}
		if strings.Contains(part, models.KeySeparator) {
			return "", fmt.Errorf("%w: part %d contains separator %q", ErrInvalidKey, i, models.KeySeparator)
		}
	}

	return string(prefix) + models.KeySeparator + strings.Join(parts, models.KeySeparator), nil
}

// PrefixOf returns the known prefix a key starts with
func PrefixOf(key string) (models.Prefix, bool) {
	head, _, found := strings.Cut(key, models.KeySeparator)
	if !found {
		return "", false
	}
	prefix := models.Prefix(head)
	return prefix, prefix.Valid()
}
