package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// WindowStore implements ports.ActivityWindow with fixed-window Redis
// counters. Each (user, kind, window) gets its own key scoped by the
// window ordinal, so counters roll over without any cleanup pass.
type WindowStore struct {
	client *goredis.Client
	prefix string
}

// NewWindowStore creates a Redis-backed activity window store.
func NewWindowStore(client *goredis.Client) *WindowStore {
	return &WindowStore{
		client: client,
		prefix: "activity:",
	}
}

var windows = []struct {
	name string
	size time.Duration
}{
	{"hour", time.Hour},
	{"day", 24 * time.Hour},
	{"week", 7 * 24 * time.Hour},
}

func (s *WindowStore) key(kind string, userID int64, w string, ordinal int64) string {
	return fmt.Sprintf("%s%s:%d:%s:%d", s.prefix, kind, userID, w, ordinal)
}

func (s *WindowStore) incrAll(ctx context.Context, kind string, userID int64, now time.Time) error {
	pipe := s.client.Pipeline()
	for _, w := range windows {
		ordinal := now.Unix() / int64(w.size.Seconds())
		key := s.key(kind, userID, w.name, ordinal)
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, w.size+time.Minute)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis activity incr %s: %w", kind, err)
	}
	return nil
}

func (s *WindowStore) countsAll(ctx context.Context, kind string, userID int64, now time.Time) ([3]int64, error) {
	var out [3]int64
	pipe := s.client.Pipeline()
	cmds := make([]*goredis.StringCmd, len(windows))
	for i, w := range windows {
		ordinal := now.Unix() / int64(w.size.Seconds())
		cmds[i] = pipe.Get(ctx, s.key(kind, userID, w.name, ordinal))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
		return out, fmt.Errorf("redis activity counts %s: %w", kind, err)
	}
	for i, cmd := range cmds {
		n, err := cmd.Int64()
		if err != nil {
			if err == goredis.Nil {
				continue
			}
			return out, fmt.Errorf("redis activity counts %s: %w", kind, err)
		}
		out[i] = n
	}
	return out, nil
}

// RecordDeal increments the deal-initiated counters in every window.
func (s *WindowStore) RecordDeal(ctx context.Context, userID int64, now time.Time) error {
	return s.incrAll(ctx, "deals", userID, now)
}

// RecordTransfer increments the transfer-settled counters in every window.
func (s *WindowStore) RecordTransfer(ctx context.Context, userID int64, now time.Time) error {
	return s.incrAll(ctx, "transfers", userID, now)
}

// RecordDestination adds the destination to the per-window distinct sets.
func (s *WindowStore) RecordDestination(ctx context.Context, userID int64, destination string, now time.Time) error {
	pipe := s.client.Pipeline()
	for _, w := range windows {
		ordinal := now.Unix() / int64(w.size.Seconds())
		key := s.key("dests", userID, w.name, ordinal)
		pipe.SAdd(ctx, key, destination)
		pipe.Expire(ctx, key, w.size+time.Minute)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis activity sadd: %w", err)
	}
	return nil
}

// DealCounts reads the deal-initiated counters.
func (s *WindowStore) DealCounts(ctx context.Context, userID int64, now time.Time) (ports.WindowCounts, error) {
	counts, err := s.countsAll(ctx, "deals", userID, now)
	return ports.WindowCounts{Hour: counts[0], Day: counts[1], Week: counts[2]}, err
}

// TransferCounts reads the transfer-settled counters.
func (s *WindowStore) TransferCounts(ctx context.Context, userID int64, now time.Time) (ports.WindowCounts, error) {
	counts, err := s.countsAll(ctx, "transfers", userID, now)
	return ports.WindowCounts{Hour: counts[0], Day: counts[1], Week: counts[2]}, err
}

// DestinationCounts reads the distinct-destination set cardinalities.
func (s *WindowStore) DestinationCounts(ctx context.Context, userID int64, now time.Time) (ports.WindowCounts, error) {
	var out ports.WindowCounts
	pipe := s.client.Pipeline()
	cmds := make([]*goredis.IntCmd, len(windows))
	for i, w := range windows {
		ordinal := now.Unix() / int64(w.size.Seconds())
		cmds[i] = pipe.SCard(ctx, s.key("dests", userID, w.name, ordinal))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
		return out, fmt.Errorf("redis activity scard: %w", err)
	}
	out.Hour = cmds[0].Val()
	out.Day = cmds[1].Val()
	out.Week = cmds[2].Val()
	return out, nil
}
