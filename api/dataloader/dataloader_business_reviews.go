package dataloader

import (
	"context"
	"errors"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/dataloader"
	"github.com/reviewgraph/reviewgraph/review"
)

var businessReviewsLoaderCtxKey = &contextKey{"businessReviewsLoader"}

// BusinessReviewsLoaderFromContext returns the per-request loader resolving
// a business id to the reviews written for that business.
func BusinessReviewsLoaderFromContext(ctx context.Context) (dataloader.DataLoader[string, []*model.Review], error) {
	dataLoader, ok := ctx.Value(businessReviewsLoaderCtxKey).(dataloader.DataLoader[string, []*model.Review])
	if !ok {
		return nil, errors.New("business reviews loader not found")
	}
	return dataLoader, nil
}

func businessReviewsFetcher(ctx context.Context, reviewService review.Service) func([]string) ([][]*model.Review, []error) {
	return func(businessIds []string) ([][]*model.Review, []error) {
		reviews, err := reviewService.FindReviews(ctx, &review.FindOptions{
			BusinessIds: businessIds,
		})
		if err != nil {
			return nil, repeatError(err, len(businessIds))
		}

		reviewsByBusinessId := make(map[string][]*model.Review, len(businessIds))
		for _, rev := range reviews {
			reviewsByBusinessId[rev.BusinessId] = append(reviewsByBusinessId[rev.BusinessId], model.ToReview(rev))
		}

		results := make([][]*model.Review, len(businessIds))
		for i, businessId := range businessIds {
			reviewsOfBusiness, ok := reviewsByBusinessId[businessId]
			if !ok {
				reviewsOfBusiness = []*model.Review{}
			}
			results[i] = reviewsOfBusiness
		}
		return results, nil
	}
}
