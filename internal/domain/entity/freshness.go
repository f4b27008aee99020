package entity

import "time"

// Freshness is the validity window of cached upstream data.
type Freshness struct {
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFreshness returns a window of ttl starting at fetchedAt.
func NewFreshness(fetchedAt time.Time, ttl time.Duration) Freshness {
	return Freshness{
		FetchedAt: fetchedAt,
		ExpiresAt: fetchedAt.Add(ttl),
	}
}

// IsStaleAt reports whether the window has expired at now.
func (f Freshness) IsStaleAt(now time.Time) bool {
	return IsStale(f.ExpiresAt, now)
}

// IsStale reports whether data expiring at expiresAt is stale at now. Data is
// still fresh at the exact expiry instant.
func IsStale(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}
