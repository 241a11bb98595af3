package usecase

import (
	"context"
	"time"
)

// MatchCache stores finished match reports and other JSON payloads.
// Implementations degrade to no-ops when the backing cache is unavailable.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
