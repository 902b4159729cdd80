package team

import "context"

// Repository describes the team directory needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListCodesByYear(ctx context.Context, year string) ([]string, bool, error)
}
