package position

import "context"

// Repository describes position persistence needs from use cases.
type Repository interface {
	GetByAbbreviation(ctx context.Context, abbreviation string) (Position, bool, error)
	// FirstOrCreate returns the stored position for p.Abbreviation, inserting p
	// when none exists. An existing row is never modified.
	FirstOrCreate(ctx context.Context, p Position) (Position, error)
	DeleteAll(ctx context.Context) error
}
