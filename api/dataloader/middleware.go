package dataloader

import (
	"context"
	"net/http"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/dataloader"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
)

// NewMiddleware installs a fresh set of loaders into every request context.
// Loaders are never shared between requests.
func NewMiddleware(
	maxBatch int,
	reviewService review.Service,
	userService user.Service,
	categoryService category.Service,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := NewContext(r.Context(), maxBatch, reviewService, userService, categoryService)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewContext returns a child context carrying one loader per relation.
func NewContext(
	ctx context.Context,
	maxBatch int,
	reviewService review.Service,
	userService user.Service,
	categoryService category.Service,
) context.Context {
	ctx = context.WithValue(ctx, businessReviewsLoaderCtxKey, dataloader.New(dataloader.Config[string, []*model.Review]{
		Fetch:    businessReviewsFetcher(ctx, reviewService),
		MaxBatch: maxBatch,
	}))

	ctx = context.WithValue(ctx, reviewAuthorLoaderCtxKey, dataloader.New(dataloader.Config[string, *model.User]{
		Fetch:    reviewAuthorFetcher(ctx, reviewService, userService),
		MaxBatch: maxBatch,
	}))

	ctx = context.WithValue(ctx, businessCategoriesLoaderCtxKey, dataloader.New(dataloader.Config[string, []*model.Category]{
		Fetch:    businessCategoriesFetcher(ctx, categoryService),
		MaxBatch: maxBatch,
	}))

	return ctx
}
