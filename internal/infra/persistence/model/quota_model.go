package model

import (
	"time"

	"tablescout/internal/domain/entity"
)

// QuotaDocument is the stored shape of a user's scoring quota in the 'quotas' collection.
type QuotaDocument struct {
	UserID    string    `json:"userId"    firestore:"userId"`
	Tier      string    `json:"tier"      firestore:"tier"`
	Remaining int       `json:"remaining" firestore:"remaining"`
	Used      int       `json:"used"      firestore:"used"`
	Limit     int       `json:"limit"     firestore:"limit"`
	ResetAt   time.Time `json:"resetAt"   firestore:"resetAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ToQuotaDomain converts a stored document to the domain entity.
func ToQuotaDomain(data *QuotaDocument) *entity.Quota {
	if data == nil {
		return nil
	}

	return &entity.Quota{
		UserID:    data.UserID,
		Tier:      entity.Tier(data.Tier),
		Remaining: data.Remaining,
		Used:      data.Used,
		Limit:     data.Limit,
		ResetAt:   data.ResetAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromQuotaDomain converts a domain quota to its stored document.
func FromQuotaDomain(data *entity.Quota) *QuotaDocument {
	if data == nil {
		return nil
	}

	return &QuotaDocument{
		UserID:    data.UserID,
		Tier:      string(data.Tier),
		Remaining: data.Remaining,
		Used:      data.Used,
		Limit:     data.Limit,
		ResetAt:   data.ResetAt,
		UpdatedAt: data.UpdatedAt,
	}
}
