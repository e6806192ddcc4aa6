package review

import (
	"context"
)

type Repository interface {
	FindOne(ctx context.Context, options *FindOneOptions) (*Review, error)
	FindAll(ctx context.Context, options *FindOptions) ([]*Review, error)
	Create(ctx context.Context, review *Review) (*Review, error)
}
