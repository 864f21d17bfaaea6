package campaign

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignInactive      = errors.New("campaign is not active")
	ErrCampaignNotStarted    = errors.New("campaign has not started")
	ErrCampaignEnded         = errors.New("campaign has ended")
	ErrCampaignWrongLocation = errors.New("campaign does not apply to this location")
	ErrMissingOwner          = errors.New("campaign requires an owner")
	ErrEmptyReward           = errors.New("campaign requires a reward description")
)

// Campaign is externally managed and read-only from this core. A nil
// locationID means the campaign applies at all of the owner's locations.
type Campaign struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	rewardDescription string
	isActive          bool
	locationID        *uuid.UUID
	startDate         time.Time
	endDate           time.Time
}

func NewCampaign(
	id, ownerID uuid.UUID,
	rewardDescription string,
	isActive bool,
	locationID *uuid.UUID,
	startDate, endDate time.Time,
) (*Campaign, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if rewardDescription == "" {
		return nil, ErrEmptyReward
	}

	return &Campaign{
		id:                id,
		ownerID:           ownerID,
		rewardDescription: rewardDescription,
		isActive:          isActive,
		locationID:        locationID,
		startDate:         startDate,
		endDate:           endDate,
	}, nil
}

// AppliesAt reports whether the campaign covers the given location.
func (c *Campaign) AppliesAt(locationID uuid.UUID) bool {
	return c.locationID == nil || *c.locationID == locationID
}

func (c *Campaign) IsRunningAt(t time.Time) bool {
	return c.isActive && !t.Before(c.startDate) && !t.After(c.endDate)
}

// ValidateEligibility re-checks what the store query already filtered on, so a
// stale read can never grant a reward outside the campaign window.
func (c *Campaign) ValidateEligibility(t time.Time, locationID uuid.UUID) error {
	if !c.isActive {
		return ErrCampaignInactive
	}
	if t.Before(c.startDate) {
		return ErrCampaignNotStarted
	}
	if t.After(c.endDate) {
		return ErrCampaignEnded
	}
	if !c.AppliesAt(locationID) {
		return ErrCampaignWrongLocation
	}
	return nil
}

func (c *Campaign) ID() uuid.UUID             { return c.id }
func (c *Campaign) OwnerID() uuid.UUID        { return c.ownerID }
func (c *Campaign) RewardDescription() string { return c.rewardDescription }
func (c *Campaign) LocationID() *uuid.UUID    { return c.locationID }
func (c *Campaign) StartDate() time.Time      { return c.startDate }
func (c *Campaign) EndDate() time.Time        { return c.endDate }
