package business

import (
	"context"
)

type Repository interface {
	FindOne(ctx context.Context, options *FindOneOptions) (*Business, error)
	FindAll(ctx context.Context, options *FindOptions) ([]*Business, error)
	Create(ctx context.Context, business *Business) (*Business, error)
}
