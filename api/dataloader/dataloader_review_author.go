package dataloader

import (
	"context"
	"errors"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/dataloader"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
	"golang.org/x/exp/slices"
)

var reviewAuthorLoaderCtxKey = &contextKey{"reviewAuthorLoader"}

// ReviewAuthorLoaderFromContext returns the per-request loader resolving
// a review id to the user who wrote the review.
func ReviewAuthorLoaderFromContext(ctx context.Context) (dataloader.DataLoader[string, *model.User], error) {
	dataLoader, ok := ctx.Value(reviewAuthorLoaderCtxKey).(dataloader.DataLoader[string, *model.User])
	if !ok {
		return nil, errors.New("review author loader not found")
	}
	return dataLoader, nil
}

func reviewAuthorFetcher(ctx context.Context, reviewService review.Service, userService user.Service) func([]string) ([]*model.User, []error) {
	return func(reviewIds []string) ([]*model.User, []error) {
		reviews, err := reviewService.FindReviews(ctx, &review.FindOptions{
			Ids: reviewIds,
		})
		if err != nil {
			return nil, repeatError(err, len(reviewIds))
		}

		userIds := make([]string, 0, len(reviews))
		for _, rev := range reviews {
			if !slices.Contains(userIds, rev.UserId) {
				userIds = append(userIds, rev.UserId)
			}
		}

		users, err := userService.FindUsers(ctx, &user.FindOptions{
			Ids: userIds,
		})
		if err != nil {
			return nil, repeatError(err, len(reviewIds))
		}

		userById := make(map[string]*model.User, len(users))
		for _, usr := range users {
			userById[usr.Id] = model.ToUser(usr)
		}

		orderedReviews := orderByKeys(reviewIds, reviews, func(rev *review.Review) string {
			return rev.Id
		})

		results := make([]*model.User, len(reviewIds))
		for i, rev := range orderedReviews {
			if rev == nil {
				continue
			}
			results[i] = userById[rev.UserId]
		}
		return results, nil
	}
}
