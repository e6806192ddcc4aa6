package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
)

func (r *mutationResolver) CreateReview(ctx context.Context, input model.CreateReviewInput) (*model.Review, error) {
	createOptions, err := model.CreateReviewInputToCreateOptions(input)
	if err != nil {
		return nil, err
	}

	createdReview, err := r.reviewService.CreateReview(ctx, createOptions)
	if err != nil {
		return nil, err
	}
	return model.ToReview(createdReview), nil
}
