package queries

import (
	"time"

	"github.com/google/uuid"
)

// Vouch session states surfaced by the status fast path.
const (
	VouchStateIdle      = "idle"
	VouchStateCounting  = "counting"
	VouchStateCompleted = "completed"
)

// VouchStatusView is the polling read model: either a terminal completed
// result with its POP code, a live countdown, or idle.
type VouchStatusView struct {
	Status           string   `json:"status"`
	PopToken         *string  `json:"pop_token,omitempty"`
	SecondsRemaining *float64 `json:"seconds_remaining,omitempty"`
	DwellTimeTotal   *float64 `json:"dwell_time_total,omitempty"`
}

// EarnView is a completed vouch as seen by the read side.
type EarnView struct {
	ID        uuid.UUID `json:"id"`
	PopToken  string    `json:"pop_token"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingAttemptView carries what the countdown needs: when the session
// started and the location's dwell requirement.
type PendingAttemptView struct {
	StartTime    time.Time `json:"start_time"`
	DwellMinutes *int32    `json:"dwell_minutes,omitempty"`
}

// RewardListItem is one voucher in a customer's wallet.
type RewardListItem struct {
	ID                uuid.UUID  `json:"id"`
	RewardDescription string     `json:"reward_description"`
	LocationName      *string    `json:"location_name,omitempty"`
	UniqueToken       string     `json:"unique_token"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	RedeemedAt        *time.Time `json:"redeemed_at,omitempty"`
}

// ReviewListItem is one public review at a location.
type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
