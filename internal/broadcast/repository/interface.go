package repository

import (
	"context"
	"errors"

	"civic-notify/internal/model"
	"civic-notify/pkg/paginator"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Broadcast, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Broadcast, paginator.Paginator, error)
	Detail(ctx context.Context, id string) (model.Broadcast, error)
	Delete(ctx context.Context, id string) error
}
