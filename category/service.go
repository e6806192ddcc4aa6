package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	FindCategory(ctx context.Context, options *FindOneOptions) (*Category, error)
	FindCategories(ctx context.Context, options *FindOptions) ([]*Category, error)
	CreateCategory(ctx context.Context, options *CreateOptions) (*Category, error)
	// FindCategoriesForBusinesses resolves the categories assigned to each of
	// the given business ids, keyed by business id.
	FindCategoriesForBusinesses(ctx context.Context, businessIds []string) (map[string][]*Category, error)
	AssignBusiness(ctx context.Context, businessId string, categoryId string) error
}

type service struct {
	categoryRepository Repository
}

func NewService(categoryRepository Repository) Service {
	return &service{
		categoryRepository: categoryRepository,
	}
}

func (s *service) FindCategory(ctx context.Context, options *FindOneOptions) (*Category, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.categoryRepository.FindOne(ctx, options)
}

func (s *service) FindCategories(ctx context.Context, options *FindOptions) ([]*Category, error) {
	return s.categoryRepository.FindAll(ctx, options)
}

func (s *service) CreateCategory(ctx context.Context, options *CreateOptions) (*Category, error) {
	cat, err := processCreateCategory(options)
	if err != nil {
		return nil, err
	}

	existingCategory, err := s.categoryRepository.FindOne(ctx, &FindOneOptions{
		NameOption: &NameOption{
			Name: options.Name,
		},
	})
	if err != nil {
		return nil, err
	}
	if existingCategory != nil {
		return nil, ErrNameAlreadyExists
	}

	return s.categoryRepository.Create(ctx, cat)
}

func (s *service) FindCategoriesForBusinesses(ctx context.Context, businessIds []string) (map[string][]*Category, error) {
	assignments, err := s.categoryRepository.FindAssignments(ctx, &FindAssignmentOptions{
		BusinessIds: businessIds,
	})
	if err != nil {
		return nil, err
	}

	categoryIds := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		categoryIds = append(categoryIds, assignment.CategoryId)
	}

	categories, err := s.categoryRepository.FindAll(ctx, &FindOptions{
		Ids: categoryIds,
	})
	if err != nil {
		return nil, err
	}

	categoryById := make(map[string]*Category, len(categories))
	for _, cat := range categories {
		categoryById[cat.Id] = cat
	}

	categoriesByBusinessId := make(map[string][]*Category, len(businessIds))
	for _, assignment := range assignments {
		if cat, ok := categoryById[assignment.CategoryId]; ok {
			categoriesByBusinessId[assignment.BusinessId] = append(categoriesByBusinessId[assignment.BusinessId], cat)
		}
	}
	return categoriesByBusinessId, nil
}

func (s *service) AssignBusiness(ctx context.Context, businessId string, categoryId string) error {
	if len(businessId) == 0 {
		return ErrBusinessIdRequired
	}
	if len(categoryId) == 0 {
		return ErrIdRequired
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	_, err = s.categoryRepository.Assign(ctx, &Assignment{
		Id:         id.String(),
		BusinessId: businessId,
		CategoryId: categoryId,
		CreatedAt:  time.Now(),
	})
	return err
}

func processCreateCategory(options *CreateOptions) (*Category, error) {
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

	return &Category{
		Id:          id.String(),
		Name:        options.Name,
		Description: options.Description,
		CreatedAt:   time.Now(),
	}, nil
}
