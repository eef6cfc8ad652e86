package ttlpolicy

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/models"
)

// Ensure Table implements interfaces.TTLResolver
var _ interfaces.TTLResolver = (*Table)(nil)

// File is the on-disk layout of the ttl policies file
type File struct {
	TTLPolicies map[models.Policy]time.Duration `yaml:"ttl_policies"`
}

// Table resolves policies to TTLs. It is read-only after construction.
type Table struct {
	ttls   map[models.Policy]models.TTL
	logger *zap.Logger
}

// Default returns a table holding the built-in TTLs
func Default(logger *zap.Logger) *Table {
	ttls := make(map[models.Policy]models.TTL, 4)
	for _, p := range []models.Policy{models.PolicyShort, models.PolicyMedium, models.PolicyLong, models.PolicyNone} {
		ttls[p] = p.DefaultTTL()
	}
	return &Table{ttls: ttls, logger: logger}
}

// NewTable returns the default table with overrides applied
func NewTable(overrides map[models.Policy]time.Duration, logger *zap.Logger) (*Table, error) {
	table := Default(logger)

	for policy, d := range overrides {
		if err := validateOverride(policy, d); err != nil {
			return nil, err
		}
		table.ttls[policy] = models.TTL(d / time.Second)
	}

	return table, nil
}

// LoadTable reads policy overrides from a YAML file
func LoadTable(path string, logger *zap.Logger) (*Table, error) {
	logger.Info("Loading ttl policies", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ttl policies file: %w", err)
	}
	defer file.Close()

	var policies File
	if err := yaml.NewDecoder(file).Decode(&policies); err != nil {
		return nil, fmt.Errorf("failed to decode YAML ttl policies: %w", err)
	}

	table, err := NewTable(policies.TTLPolicies, logger)
	if err != nil {
		return nil, fmt.Errorf("ttl policies validation failed: %w", err)
	}

	logger.Info("TTL policies loaded",
		zap.Int("short", int(table.TTL(models.PolicyShort))),
		zap.Int("medium", int(table.TTL(models.PolicyMedium))),
		zap.Int("long", int(table.TTL(models.PolicyLong))))

	return table, nil
}

// TTL returns the TTL configured for policy; unknown policies never expire
func (t *Table) TTL(policy models.Policy) models.TTL {
	ttl, ok := t.ttls[policy]
	if !ok {
		if t.logger != nil {
			t.logger.Warn("Unknown ttl policy, entry will not expire", zap.String("policy", string(policy)))
		}
		return models.TTLNone
	}
	return ttl
}

func validateOverride(policy models.Policy, d time.Duration) error {
	if !policy.Valid() {
		return fmt.Errorf("unknown ttl policy %q", string(policy))
	}
	if policy == models.PolicyNone {
		if d != 0 {
			return fmt.Errorf("ttl policy %q cannot be overridden", string(policy))
		}
		return nil
	}
	if d <= 0 {
		return fmt.Errorf("ttl policy %q must be positive, got %s", string(policy), d)
	}
	if d%time.Second != 0 {
		return fmt.Errorf("ttl policy %q must be whole seconds, got %s", string(policy), d)
	}
	return nil
}
