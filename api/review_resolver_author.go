package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/dataloader"
	"github.com/reviewgraph/reviewgraph/api/model"
)

// Author resolves through the review author loader, keyed by review id. The
// loader follows the review to its user, the API review type carries no
// author id.
func (r *reviewResolver) Author(ctx context.Context, rev *model.Review) (func() (interface{}, error), error) {
	reviewId, err := rev.ID.String(model.IdKindReview)
	if err != nil {
		return nil, err
	}

	reviewAuthorLoader, err := dataloader.ReviewAuthorLoaderFromContext(ctx)
	if err != nil {
		return nil, err
	}

	thunk := reviewAuthorLoader.LoadThunk(reviewId)
	return func() (interface{}, error) {
		author, err := thunk()
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, nil
		}
		return author, nil
	}, nil
}
