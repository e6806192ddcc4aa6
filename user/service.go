package user

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type Service interface {
	FindUser(ctx context.Context, options *FindOneOptions) (*User, error)
	FindUsers(ctx context.Context, options *FindOptions) ([]*User, error)
	CreateUser(ctx context.Context, options *CreateOptions) (*User, error)
}

type service struct {
	userRepository Repository
}

func NewService(userRepository Repository) Service {
	return &service{
		userRepository: userRepository,
	}
}

func (s *service) FindUser(ctx context.Context, options *FindOneOptions) (*User, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.userRepository.FindOne(ctx, options)
}

func (s *service) FindUsers(ctx context.Context, options *FindOptions) ([]*User, error) {
	return s.userRepository.FindAll(ctx, options)
}

func (s *service) CreateUser(ctx context.Context, options *CreateOptions) (*User, error) {
	usr, err := processCreateUser(options)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepository.FindOne(ctx, &FindOneOptions{
		EmailOption: &EmailOption{
			Email: options.Email,
		},
	})
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	return s.userRepository.Create(ctx, usr)
}

func processCreateUser(options *CreateOptions) (*User, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}
	if len(options.Name) == 0 {
		return nil, ErrNameRequired
	}
	if len(options.Email) == 0 {
		return nil, ErrEmailRequired
	}
	if !govalidator.IsEmail(options.Email) {
		return nil, ErrEmailInvalid
	}

	id, err := newId()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		Id:        id,
		Name:      options.Name,
		Email:     options.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func newId() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
