package vouch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("vouch attempt requires a customer")
	ErrMissingLocation = errors.New("vouch attempt requires a location")
	ErrZeroStartTime   = errors.New("vouch attempt requires a start time")
)

// Status of a dwell attempt. An attempt is created pending, and either becomes
// completed (dwell satisfied) or is discarded as failed_duration. Completed is
// terminal for a (customer, location) pair.
type Status string

const (
	StatusPending        Status = "pending"
	StatusCompleted      Status = "completed"
	StatusFailedDuration Status = "failed_duration"
)

// Attempt is one dwell-time session for a customer at a location.
type Attempt struct {
	id         uuid.UUID
	customerID uuid.UUID
	locationID uuid.UUID
	status     Status
	startTime  time.Time
}

func NewAttempt(id, customerID, locationID uuid.UUID, status Status, startTime time.Time) (*Attempt, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if locationID == uuid.Nil {
		return nil, ErrMissingLocation
	}
	if startTime.IsZero() {
		return nil, ErrZeroStartTime
	}

	return &Attempt{
		id:         id,
		customerID: customerID,
		locationID: locationID,
		status:     status,
		startTime:  startTime,
	}, nil
}

// Progress evaluates the attempt's dwell progress at the given instant.
func (a *Attempt) Progress(now time.Time, required time.Duration) Progress {
	return NewProgress(a.startTime, now, required)
}

func (a *Attempt) ID() uuid.UUID         { return a.id }
func (a *Attempt) CustomerID() uuid.UUID { return a.customerID }
func (a *Attempt) LocationID() uuid.UUID { return a.locationID }
func (a *Attempt) Status() Status        { return a.status }
func (a *Attempt) StartTime() time.Time  { return a.startTime }
