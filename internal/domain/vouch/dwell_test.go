//go:build unit

package vouch_test

import (
	"testing"
	"time"

	"vouch-backend/internal/domain/vouch"

	"github.com/stretchr/testify/assert"
)

func int32Ptr(v int32) *int32 { return &v }

func TestRequiredDwell(t *testing.T) {
	tests := []struct {
		name    string
		minutes *int32
		want    time.Duration
	}{
		{name: "unset falls back to default", minutes: nil, want: vouch.DefaultDwellTime},
		{name: "zero falls back to default", minutes: int32Ptr(0), want: vouch.DefaultDwellTime},
		{name: "negative falls back to default", minutes: int32Ptr(-3), want: vouch.DefaultDwellTime},
		{name: "configured value wins", minutes: int32Ptr(15), want: 15 * time.Minute},
		{name: "one minute", minutes: int32Ptr(1), want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vouch.RequiredDwell(tt.minutes))
		})
	}
}

func TestProgressMet(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	required := 5 * time.Minute

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "one millisecond short fails", now: start.Add(5*time.Minute - time.Millisecond), want: false},
		{name: "exact boundary passes", now: start.Add(5 * time.Minute), want: true},
		{name: "past the boundary passes", now: start.Add(5*time.Minute + time.Millisecond), want: true},
		{name: "immediately after start fails", now: start, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := vouch.NewProgress(start, tt.now, required)
			assert.Equal(t, tt.want, p.Met())
		})
	}
}

func TestProgressClockSkew(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A reader behind the writer must not see negative elapsed time.
	p := vouch.NewProgress(start, start.Add(-30*time.Second), 5*time.Minute)
	assert.Equal(t, time.Duration(0), p.Elapsed)
	assert.False(t, p.Met())
	assert.Equal(t, 300.0, p.SecondsRemaining())
}

func TestProgressSecondsRemaining(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	required := 5 * time.Minute

	p := vouch.NewProgress(start, start.Add(2*time.Minute), required)
	assert.Equal(t, 180.0, p.SecondsRemaining())
	assert.Equal(t, 300.0, p.TotalSeconds())

	overshot := vouch.NewProgress(start, start.Add(10*time.Minute), required)
	assert.Equal(t, 0.0, overshot.SecondsRemaining())
}
