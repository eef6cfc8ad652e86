package models

import "time"

// CacheEntry is the envelope in-process stores keep around a payload.
// Timestamps are unix milliseconds; ExpiresAt == 0 means no expiry.
type CacheEntry struct {
	Data      []byte `json:"data"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewCacheEntry builds an entry created at now that lives for ttl
func NewCacheEntry(data []byte, now time.Time, ttl time.Duration) CacheEntry {
	entry := CacheEntry{
		Data:      data,
		CreatedAt: now.UnixMilli(),
	}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl).UnixMilli()
	}
	return entry
}

// IsExpiredAt reports whether the entry is past its expiry at the given time
func (e *CacheEntry) IsExpiredAt(now time.Time) bool {
	return e.ExpiresAt != 0 && now.UnixMilli() >= e.ExpiresAt
}

// IsExpired reports whether the entry is past its expiry
func (e *CacheEntry) IsExpired() bool {
	return e.IsExpiredAt(time.Now())
}
