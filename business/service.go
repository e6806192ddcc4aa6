package business

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	FindBusiness(ctx context.Context, options *FindOneOptions) (*Business, error)
	FindBusinesses(ctx context.Context, options *FindOptions) ([]*Business, error)
	CreateBusiness(ctx context.Context, options *CreateOptions) (*Business, error)
}

type service struct {
	businessRepository Repository
}

func NewService(businessRepository Repository) Service {
	return &service{
		businessRepository: businessRepository,
	}
}

func (s *service) FindBusiness(ctx context.Context, options *FindOneOptions) (*Business, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.businessRepository.FindOne(ctx, options)
}

func (s *service) FindBusinesses(ctx context.Context, options *FindOptions) ([]*Business, error) {
	return s.businessRepository.FindAll(ctx, options)
}

func (s *service) CreateBusiness(ctx context.Context, options *CreateOptions) (*Business, error) {
	biz, err := processCreateBusiness(options)
	if err != nil {
		return nil, err
	}

	existingBusiness, err := s.businessRepository.FindOne(ctx, &FindOneOptions{
		NameOption: &NameOption{
			Name: options.Name,
		},
	})
	if err != nil {
		return nil, err
	}
	if existingBusiness != nil {
		return nil, ErrNameAlreadyExists
	}

	return s.businessRepository.Create(ctx, biz)
}

func processCreateBusiness(options *CreateOptions) (*Business, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if len(options.Name) == 0 {
		return nil, ErrNameRequired
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Business{
		Id:          id.String(),
		Name:        options.Name,
		Description: options.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
