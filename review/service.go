package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/user"
)

type Service interface {
	FindReview(ctx context.Context, options *FindOneOptions) (*Review, error)
	FindReviews(ctx context.Context, options *FindOptions) ([]*Review, error)
	CreateReview(ctx context.Context, options *CreateOptions) (*Review, error)
}

type service struct {
	reviewRepository Repository
	businessService  business.Service
	userService      user.Service
}

func NewService(
	reviewRepository Repository,
	businessService business.Service,
	userService user.Service,
) Service {
	return &service{
		reviewRepository: reviewRepository,
		businessService:  businessService,
		userService:      userService,
	}
}

func (s *service) FindReview(ctx context.Context, options *FindOneOptions) (*Review, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.reviewRepository.FindOne(ctx, options)
}

func (s *service) FindReviews(ctx context.Context, options *FindOptions) ([]*Review, error) {
	return s.reviewRepository.FindAll(ctx, options)
}

func (s *service) CreateReview(ctx context.Context, options *CreateOptions) (*Review, error) {
	rev, err := processCreateReview(options)
	if err != nil {
		return nil, err
	}

	biz, err := s.businessService.FindBusiness(ctx, &business.FindOneOptions{
		IdOption: &business.IdOption{
			Id: options.BusinessId,
		},
	})
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, business.ErrBusinessNotFound
	}

	author, err := s.userService.FindUser(ctx, &user.FindOneOptions{
		IdOption: &user.IdOption{
			Id: options.UserId,
		},
	})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, user.ErrUserNotFound
	}

	return s.reviewRepository.Create(ctx, rev)
}

func processCreateReview(options *CreateOptions) (*Review, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if len(options.BusinessId) == 0 {
		return nil, ErrBusinessIdRequired
	}
	if len(options.UserId) == 0 {
		return nil, ErrUserIdRequired
	}
	if options.Rating < 1 || options.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	return &Review{
		Id:         id.String(),
		BusinessId: options.BusinessId,
		UserId:     options.UserId,
		Rating:     options.Rating,
		Comment:    options.Comment,
		CreatedAt:  time.Now(),
	}, nil
}
