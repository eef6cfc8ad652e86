package models

// Prefix is the category tag at the start of every cache key
type Prefix string

const (
	PrefixGroup       Prefix = "group"
	PrefixUser        Prefix = "user"
	PrefixPrayerStats Prefix = "prayer_stats"
	PrefixMembership  Prefix = "membership"
)

// KeySeparator joins the prefix and the identifier parts of a key
const KeySeparator = ":"

// Prefixes lists every known prefix
func Prefixes() []Prefix {
	return []Prefix{PrefixGroup, PrefixUser, PrefixPrayerStats, PrefixMembership}
}

// Valid reports whether p belongs to the closed set of prefixes
func (p Prefix) Valid() bool {
	switch p {
	case PrefixGroup, PrefixUser, PrefixPrayerStats, PrefixMembership:
		return true
	}
	return false
}

// String returns the prefix as it appears in keys
func (p Prefix) String() string {
	return string(p)
}
