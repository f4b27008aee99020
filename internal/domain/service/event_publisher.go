package service

import (
	"context"
	"time"
)

// ClaimEvent is published after an operator changes a place overlay.
type ClaimEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	PlaceID   string    `json:"place_id"`
	ClaimedBy string    `json:"claimed_by,omitempty"`
	Removed   bool      `json:"removed"` // The overlay was withdrawn
	UpdatedAt time.Time `json:"updated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishClaimEvent publishes a claim change so other instances can drop cached views
	PublishClaimEvent(ctx context.Context, event *ClaimEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
