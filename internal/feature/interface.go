package feature

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Collect(ctx context.Context, input CollectInput) (HostnameFeature, error)
	CollectMany(ctx context.Context, input CollectManyInput) ([]HostnameFeature, error)
}
