package projar

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=projar

// Repository defines the read operations the catalog needs from a data store.
type Repository interface {
	Find(ctx context.Context, q Query) ([]Record, error)
	Get(ctx context.Context, id int) (Record, error)
	Count(ctx context.Context) (int, error)
	Locations(ctx context.Context) ([]Location, error)
	Sectors(ctx context.Context) ([]Sector, error)
	Subjects(ctx context.Context) ([]Subject, error)
	Executors(ctx context.Context) ([]Executor, error)
	Authors(ctx context.Context) ([]Author, error)
	Contents(ctx context.Context) ([]string, error)
}
