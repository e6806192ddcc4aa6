package model

import (
	"github.com/reviewgraph/reviewgraph/review"
)

func ToReview(review *review.Review) *Review {
	if review == nil {
		return nil
	}
	return &Review{
		ID:        StringID(IdKindReview, review.Id),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func CreateReviewInputToCreateOptions(input CreateReviewInput) (*review.CreateOptions, error) {
	businessId, err := input.BusinessID.String(IdKindBusiness)
	if err != nil {
		return nil, err
	}

	userId, err := input.UserID.String(IdKindUser)
	if err != nil {
		return nil, err
	}

	return &review.CreateOptions{
		BusinessId: businessId,
		UserId:     userId,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}, nil
}
