package database

import (
	"context"
	"time"
)

// AnswerStore is the external key-value cache for computed answers.
// Keys are question fingerprints; expiry is owned by the backing store.
//
// Both operations are fail-open: a backend error on Get is a cache miss
// and a backend error on Set is logged and swallowed, so the cache can
// never block an answer from being delivered.
type AnswerStore interface {
	Get(ctx context.Context, fingerprint string) (string, bool)
	Set(ctx context.Context, fingerprint, answer string, ttl time.Duration)
	Close(ctx context.Context) error
}
