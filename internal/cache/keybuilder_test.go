package cache

import (
	"errors"
	"testing"

	"go-pray-cache/internal/models"
)

func TestKeyBuilder_Build(t *testing.T) {
	kb := NewKeyBuilder()

	tests := []struct {
		name      string
		prefix    models.Prefix
		parts     []string
		wantKey   string
		wantError bool
	}{
		{
			name:    "group",
			prefix:  models.PrefixGroup,
			parts:   []string{"g1"},
			wantKey: "group:g1",
		},
		{
			name:    "membership with two parts",
			prefix:  models.PrefixMembership,
			parts:   []string{"u1", "g1"},
			wantKey: "membership:u1:g1",
		},
		{
			name:    "prayer stats",
			prefix:  models.PrefixPrayerStats,
			parts:   []string{"0b7e0d52-7a0e-4e43-9a57-0cf1a3c38c70"},
			wantKey: "prayer_stats:0b7e0d52-7a0e-4e43-9a57-0cf1a3c38c70",
		},
		{
			name:      "unknown prefix",
			prefix:    models.Prefix("session"),
			parts:     []string{"s1"},
			wantError: true,
		},
		{
			name:      "no parts",
			prefix:    models.PrefixUser,
			wantError: true,
		},
		{
			name:      "empty part",
			prefix:    models.PrefixUser,
			parts:     []string{""},
			wantError: true,
		},
		{
			name:      "whitespace part",
			prefix:    models.PrefixMembership,
			parts:     []string{"u1", "  "},
			wantError: true,
		},
		{
			name:      "part with separator",
			prefix:    models.PrefixGroup,
			parts:     []string{"g1:g2"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotKey, gotErr := kb.Build(tt.prefix, tt.parts...)

			if tt.wantError {
				if gotErr == nil {
					t.Errorf("Build() expected error, but got none")
				}
				if !errors.Is(gotErr, ErrInvalidKey) {
					t.Errorf("Build() error = %v, want ErrInvalidKey", gotErr)
				}
				if gotKey != "" {
					t.Errorf("Build() gotKey = %v, want empty string when error expected", gotKey)
				}
				return
			}

			if gotErr != nil {
				t.Errorf("Build() unexpected error: %v", gotErr)
				return
			}

			if gotKey != tt.wantKey {
				t.Errorf("Build() gotKey = %v, want %v", gotKey, tt.wantKey)
			}
		})
	}
}

func TestKeyBuilder_ConsistentKeys(t *testing.T) {
	key1, err1 := BuildKey(models.PrefixMembership, "u1", "g1")
	key2, err2 := BuildKey(models.PrefixMembership, "u1", "g1")
	if err1 != nil || err2 != nil {
		t.Fatalf("BuildKey() unexpected errors: %v, %v", err1, err2)
	}

	if key1 != key2 {
		t.Errorf("BuildKey() should be deterministic, got %v and %v", key1, key2)
	}
}

func TestKeyBuilder_DistinctInputs(t *testing.T) {
	inputs := []struct {
		prefix models.Prefix
		parts  []string
	}{
		{models.PrefixGroup, []string{"g1"}},
		{models.PrefixUser, []string{"g1"}},
		{models.PrefixMembership, []string{"u1", "g1"}},
		{models.PrefixMembership, []string{"g1", "u1"}},
		{models.PrefixMembership, []string{"u1"}},
		{models.PrefixPrayerStats, []string{"g1"}},
	}

	seen := make(map[string]int)
	for i, in := range inputs {
		key, err := BuildKey(in.prefix, in.parts...)
		if err != nil {
			t.Fatalf("BuildKey(%v, %v) unexpected error: %v", in.prefix, in.parts, err)
		}
		if j, dup := seen[key]; dup {
			t.Errorf("BuildKey() inputs %d and %d collide on %q", j, i, key)
		}
		seen[key] = i
	}
}

func TestPrefixOf(t *testing.T) {
	prefix, ok := PrefixOf("membership:u1:g1")
	if !ok || prefix != models.PrefixMembership {
		t.Errorf("PrefixOf() = %v, %v; want membership, true", prefix, ok)
	}

	if _, ok := PrefixOf("nocolon"); ok {
		t.Errorf("PrefixOf() should reject keys without separator")
	}

	if _, ok := PrefixOf("session:abc"); ok {
		t.Errorf("PrefixOf() should reject unknown prefixes")
	}
}
