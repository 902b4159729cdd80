package match

import "context"

// Repository describes read access to the loaded match collection.
type Repository interface {
	ListAll(ctx context.Context) ([]Match, error)
	Count(ctx context.Context) (int, error)
	GetByGlobalID(ctx context.Context, globalID string) (Match, bool, error)
	GetByYearAndNumber(ctx context.Context, year string, number int) (Match, bool, error)
}

// Source produces the full historical corpus, typically once at startup.
type Source interface {
	Load(ctx context.Context) (Corpus, error)
}
