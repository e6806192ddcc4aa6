package review

import (
	"errors"
)

var (
	ErrIdRequired            = errors.New("id is required")
	ErrBusinessIdRequired    = errors.New("business id is required")
	ErrUserIdRequired        = errors.New("user id is required")
	ErrRatingOutOfRange      = errors.New("rating must be between 1 and 5")
	ErrOneOptionRequired     = errors.New("one option is required")
	ErrReviewNotFound        = errors.New("review not found")
	ErrReviewIdAlreadyExists = errors.New("review id already exists")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
