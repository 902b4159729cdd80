package player

import "context"

// Repository serves the pre-aggregated scorer roster.
type Repository interface {
	List(ctx context.Context) ([]Stats, error)
	Get(ctx context.Context, teamCode, name string) (Stats, bool, error)
}
