package ports

import (
	"context"
	"time"
)

// WindowCounts carries one counter read across the three rolling windows the
// compliance rules evaluate.
type WindowCounts struct {
	Hour int64
	Day  int64
	Week int64
}

// Exceeds reports the first window whose count is at or over its threshold.
// A zero threshold disables that window's rule.
func (c WindowCounts) Exceeds(hour, day, week int64) (string, bool) {
	switch {
	case hour > 0 && c.Hour >= hour:
		return "hour", true
	case day > 0 && c.Day >= day:
		return "day", true
	case week > 0 && c.Week >= week:
		return "week", true
	}
	return "", false
}

// ActivityWindow tracks per-user fixed-window activity counters backing the
// compliance rules. Counters self-expire with their window; a store outage
// must not take deal flow down with it, so callers treat read errors as
// zero counts and log them.
type ActivityWindow interface {
	// RecordDeal increments the deal-initiated counters in every window.
	RecordDeal(ctx context.Context, userID int64, now time.Time) error
	// RecordTransfer increments the transfer-settled counters.
	RecordTransfer(ctx context.Context, userID int64, now time.Time) error
	// RecordDestination adds the destination to the per-window distinct
	// sets; re-adding a known destination does not grow the count.
	RecordDestination(ctx context.Context, userID int64, destination string, now time.Time) error

	DealCounts(ctx context.Context, userID int64, now time.Time) (WindowCounts, error)
	TransferCounts(ctx context.Context, userID int64, now time.Time) (WindowCounts, error)
	DestinationCounts(ctx context.Context, userID int64, now time.Time) (WindowCounts, error)
}
