package vouch

import "time"

// DefaultDwellTime applies when a location has no configured requirement.
const DefaultDwellTime = 5 * time.Minute

// RequiredDwell converts a location's configured dwell minutes into a
// duration. Unset (nil) or non-positive values fall back to the default.
func RequiredDwell(minutes *int32) time.Duration {
	if minutes == nil || *minutes <= 0 {
		return DefaultDwellTime
	}
	return time.Duration(*minutes) * time.Minute
}

// Progress is a pure comparison of two wall-clock timestamps against a dwell
// requirement. There are no scheduled timers anywhere; callers evaluate this
// lazily on stop/status requests.
type Progress struct {
	Elapsed  time.Duration
	Required time.Duration
}

func NewProgress(start, now time.Time, required time.Duration) Progress {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		// Clock skew between writer and reader; treat as no progress.
		elapsed = 0
	}
	return Progress{Elapsed: elapsed, Required: required}
}

// Met reports whether the dwell requirement is satisfied. The boundary is
// inclusive: an elapsed time exactly equal to the requirement counts.
func (p Progress) Met() bool {
	return p.Elapsed >= p.Required
}

// SecondsRemaining is the countdown value surfaced by status polling, clamped
// at zero.
func (p Progress) SecondsRemaining() float64 {
	remaining := p.Required - p.Elapsed
	if remaining < 0 {
		return 0
	}
	return remaining.Seconds()
}

// TotalSeconds is the full requirement, for progress bars on the client.
func (p Progress) TotalSeconds() float64 {
	return p.Required.Seconds()
}
