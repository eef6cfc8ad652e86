package models

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// TTL is a cache time-to-live expressed in seconds. Zero means no expiry.
type TTL int

const (
	TTLNone   TTL = 0
	TTLShort  TTL = 60
	TTLMedium TTL = 300
	TTLLong   TTL = 3600
)

// Duration converts the TTL to a time.Duration for store adapters
func (t TTL) Duration() time.Duration {
	if t <= 0 {
		return 0
	}
	return time.Duration(t) * time.Second
}

// Milliseconds returns the TTL in milliseconds
func (t TTL) Milliseconds() int64 {
	return t.Duration().Milliseconds()
}

// Policy names a freshness window a domain service can choose from
type Policy string

const (
	PolicyShort  Policy = "short"
	PolicyMedium Policy = "medium"
	PolicyLong   Policy = "long"
	PolicyNone   Policy = "none"
)

// DefaultTTL returns the built-in TTL for the policy
func (p Policy) DefaultTTL() TTL {
	switch p {
	case PolicyShort:
		return TTLShort
	case PolicyMedium:
		return TTLMedium
	case PolicyLong:
		return TTLLong
	default:
		return TTLNone
	}
}

// Valid reports whether p is a known policy
func (p Policy) Valid() bool {
	switch p {
	case PolicyShort, PolicyMedium, PolicyLong, PolicyNone:
		return true
	}
	return false
}

// UnmarshalYAML implements custom YAML unmarshaling for Policy
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	policy := Policy(str)
	if !policy.Valid() {
		return fmt.Errorf("invalid ttl policy '%s': must be one of 'short', 'medium', 'long', 'none'", str)
	}
	*p = policy
	return nil
}
