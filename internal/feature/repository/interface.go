package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// GetPageRank returns the cached rank; ok is false on a miss.
	GetPageRank(ctx context.Context, opt GetPageRankOptions) (rank float64, ok bool, err error)
	SavePageRank(ctx context.Context, opt SavePageRankOptions) error
}
