package schedule

import "context"

// Cache da grade livre por (barbeiro, data). Misses and errors fall back
// to the snapshot query.
type Cache interface {
	Get(ctx context.Context, barberID uint, date string) ([]string, error)
	Set(ctx context.Context, barberID uint, date string, slots []string) error
	Invalidate(ctx context.Context, barberID uint, date string) error
}
