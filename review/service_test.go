package review

import (
	"context"
	"errors"
	"testing"

	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/user"
)

type fakeRepository struct {
	created []*Review
}

func (r *fakeRepository) FindOne(ctx context.Context, options *FindOneOptions) (*Review, error) {
	return nil, nil
}

func (r *fakeRepository) FindAll(ctx context.Context, options *FindOptions) ([]*Review, error) {
	return r.created, nil
}

func (r *fakeRepository) Create(ctx context.Context, review *Review) (*Review, error) {
	r.created = append(r.created, review)
	return review, nil
}

type fakeBusinessService struct {
	businesses map[string]*business.Business
}

func (s *fakeBusinessService) FindBusiness(ctx context.Context, options *business.FindOneOptions) (*business.Business, error) {
	if options.IdOption == nil {
		return nil, business.ErrOneOptionRequired
	}
	return s.businesses[options.IdOption.Id], nil
}

func (s *fakeBusinessService) FindBusinesses(ctx context.Context, options *business.FindOptions) ([]*business.Business, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeBusinessService) CreateBusiness(ctx context.Context, options *business.CreateOptions) (*business.Business, error) {
	return nil, errors.New("not implemented")
}

type fakeUserService struct {
	users map[string]*user.User
}

func (s *fakeUserService) FindUser(ctx context.Context, options *user.FindOneOptions) (*user.User, error) {
	if options.IdOption == nil {
		return nil, user.ErrOneOptionRequired
	}
	return s.users[options.IdOption.Id], nil
}

func (s *fakeUserService) FindUsers(ctx context.Context, options *user.FindOptions) ([]*user.User, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeUserService) CreateUser(ctx context.Context, options *user.CreateOptions) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func newTestService(repository Repository) Service {
	return NewService(
		repository,
		&fakeBusinessService{
			businesses: map[string]*business.Business{
				"b1": {Id: "b1", Name: "Joe's"},
			},
		},
		&fakeUserService{
			users: map[string]*user.User{
				"u1": {Id: "u1", Name: "vancly"},
			},
		},
	)
}

func TestCreateReview(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	created, err := service.CreateReview(context.Background(), &CreateOptions{
		BusinessId: "b1",
		UserId:     "u1",
		Rating:     4,
		Comment:    "Food is good but too expensive.",
	})
	if err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	if created.Id == "" {
		t.Fatal("expected a generated id")
	}
	if created.BusinessId != "b1" || created.UserId != "u1" || created.Rating != 4 {
		t.Fatalf("unexpected review: %+v", created)
	}
	if len(repository.created) != 1 {
		t.Fatalf("expected 1 stored review, got: %d", len(repository.created))
	}
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name        string
		options     *CreateOptions
		expectedErr error
	}{
		{
			name:        "nil options",
			options:     nil,
			expectedErr: ErrCreateOptionsRequired,
		},
		{
			name:        "missing business id",
			options:     &CreateOptions{UserId: "u1", Rating: 3},
			expectedErr: ErrBusinessIdRequired,
		},
		{
			name:        "missing user id",
			options:     &CreateOptions{BusinessId: "b1", Rating: 3},
			expectedErr: ErrUserIdRequired,
		},
		{
			name:        "rating too low",
			options:     &CreateOptions{BusinessId: "b1", UserId: "u1", Rating: 0},
			expectedErr: ErrRatingOutOfRange,
		},
		{
			name:        "rating too high",
			options:     &CreateOptions{BusinessId: "b1", UserId: "u1", Rating: 6},
			expectedErr: ErrRatingOutOfRange,
		},
		{
			name:        "unknown business",
			options:     &CreateOptions{BusinessId: "nope", UserId: "u1", Rating: 3},
			expectedErr: business.ErrBusinessNotFound,
		},
		{
			name:        "unknown user",
			options:     &CreateOptions{BusinessId: "b1", UserId: "nope", Rating: 3},
			expectedErr: user.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(&fakeRepository{})
			if _, err := service.CreateReview(context.Background(), tt.options); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error: %v, got: %v", tt.expectedErr, err)
			}
		})
	}
}

func TestFindReviewRequiresIdOption(t *testing.T) {
	service := newTestService(&fakeRepository{})
	if _, err := service.FindReview(context.Background(), &FindOneOptions{}); !errors.Is(err, ErrOneOptionRequired) {
		t.Fatalf("expected error: %v, got: %v", ErrOneOptionRequired, err)
	}
}
