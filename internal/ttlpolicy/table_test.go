package ttlpolicy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-pray-cache/internal/models"
)

func writePolicies(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ttl_policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	table := Default(zaptest.NewLogger(t))

	assert.Equal(t, models.TTLShort, table.TTL(models.PolicyShort))
	assert.Equal(t, models.TTLMedium, table.TTL(models.PolicyMedium))
	assert.Equal(t, models.TTLLong, table.TTL(models.PolicyLong))
	assert.Equal(t, models.TTLNone, table.TTL(models.PolicyNone))
}

func TestTable_UnknownPolicy(t *testing.T) {
	table := Default(zaptest.NewLogger(t))
	assert.Equal(t, models.TTLNone, table.TTL(models.Policy("forever")))
}

func TestNewTable_Overrides(t *testing.T) {
	table, err := NewTable(map[models.Policy]time.Duration{
		models.PolicyShort: 30 * time.Second,
		models.PolicyLong:  2 * time.Hour,
	}, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, models.TTL(30), table.TTL(models.PolicyShort))
	assert.Equal(t, models.TTLMedium, table.TTL(models.PolicyMedium))
	assert.Equal(t, models.TTL(7200), table.TTL(models.PolicyLong))
}

func TestNewTable_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[models.Policy]time.Duration
		errMsg    string
	}{
		{
			name:      "negative",
			overrides: map[models.Policy]time.Duration{models.PolicyShort: -time.Second},
			errMsg:    "must be positive",
		},
		{
			name:      "zero for expiring policy",
			overrides: map[models.Policy]time.Duration{models.PolicyMedium: 0},
			errMsg:    "must be positive",
		},
		{
			name:      "sub-second",
			overrides: map[models.Policy]time.Duration{models.PolicyShort: 1500 * time.Millisecond},
			errMsg:    "whole seconds",
		},
		{
			name:      "none overridden",
			overrides: map[models.Policy]time.Duration{models.PolicyNone: time.Minute},
			errMsg:    "cannot be overridden",
		},
		{
			name:      "unknown policy",
			overrides: map[models.Policy]time.Duration{models.Policy("daily"): time.Hour},
			errMsg:    "unknown ttl policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.overrides, zaptest.NewLogger(t))
			assert.Nil(t, table)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadTable_Success(t *testing.T) {
	path := writePolicies(t, `
ttl_policies:
  short: 45s
  medium: 10m
`)

	table, err := LoadTable(path, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, models.TTL(45), table.TTL(models.PolicyShort))
	assert.Equal(t, models.TTL(600), table.TTL(models.PolicyMedium))
	assert.Equal(t, models.TTLLong, table.TTL(models.PolicyLong))
}

func TestLoadTable_EmptySection(t *testing.T) {
	path := writePolicies(t, "ttl_policies: {}\n")

	table, err := LoadTable(path, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, models.TTLShort, table.TTL(models.PolicyShort))
}

func TestLoadTable_FileNotFound(t *testing.T) {
	table, err := LoadTable("/nonexistent/ttl_policies.yaml", zaptest.NewLogger(t))

	assert.Nil(t, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open ttl policies file")
}

func TestLoadTable_InvalidPolicyName(t *testing.T) {
	path := writePolicies(t, `
ttl_policies:
  eternal: 1h
`)

	_, err := LoadTable(path, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML ttl policies")
}

func TestLoadTable_InvalidDuration(t *testing.T) {
	path := writePolicies(t, `
ttl_policies:
  short: 250ms
`)

	_, err := LoadTable(path, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ttl policies validation failed")
}
