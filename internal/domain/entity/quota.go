package entity

import "time"

// Tier is a user's subscription tier for AI scoring.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// UnlimitedQuota is the Limit and Remaining sentinel for premium users.
const UnlimitedQuota = -1

// Quota is a user's AI-scoring allowance for the current window.
type Quota struct {
	UserID    string    `json:"user_id"`    // Owner of the allowance.
	Tier      Tier      `json:"tier"`       // free or premium.
	Remaining int       `json:"remaining"`  // Calls left in the window, -1 for premium.
	Used      int       `json:"used"`       // Calls consumed in the window.
	Limit     int       `json:"limit"`      // Calls per window, -1 for premium.
	ResetAt   time.Time `json:"reset_at"`   // Start of the current window.
	UpdatedAt time.Time `json:"updated_at"` // Last mutation.
}

// NewQuota returns the default free allowance starting at now.
func NewQuota(userID string, limit int, now time.Time) *Quota {
	return &Quota{
		UserID:    userID,
		Tier:      TierFree,
		Remaining: limit,
		Limit:     limit,
		ResetAt:   now,
		UpdatedAt: now,
	}
}

// IsUnlimited reports whether the quota never runs out.
func (q *Quota) IsUnlimited() bool {
	return q.Tier == TierPremium || q.Limit == UnlimitedQuota
}

// ResetDue reports whether the rolling window has elapsed at now.
func (q *Quota) ResetDue(now time.Time, window time.Duration) bool {
	return window > 0 && !now.Before(q.ResetAt.Add(window))
}

// Reset starts a new window at now.
func (q *Quota) Reset(now time.Time) {
	q.Used = 0
	if q.IsUnlimited() {
		q.Remaining = UnlimitedQuota
	} else {
		q.Remaining = q.Limit
	}
	q.ResetAt = now
	q.UpdatedAt = now
}

// Reserve consumes one call. It reports false without mutating when a free
// quota has nothing left.
func (q *Quota) Reserve(now time.Time) bool {
	if q.IsUnlimited() {
		q.Used++
		q.UpdatedAt = now

		return true
	}

	if q.Remaining <= 0 {
		return false
	}

	q.Remaining--
	q.Used++
	q.UpdatedAt = now

	return true
}

// Refund returns one previously reserved call. Premium quotas and quotas with
// nothing used are left unchanged.
func (q *Quota) Refund(now time.Time) bool {
	if q.IsUnlimited() || q.Used <= 0 {
		return false
	}

	q.Remaining++
	q.Used--
	q.UpdatedAt = now

	return true
}
