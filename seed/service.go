package seed

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
)

// Service populates the datastore with the demo graph. Seeding is
// idempotent, existing entities are looked up instead of recreated.
type Service interface {
	Seed(ctx context.Context) error
}

type service struct {
	businessService business.Service
	reviewService   review.Service
	userService     user.Service
	categoryService category.Service
}

func NewService(
	businessService business.Service,
	reviewService review.Service,
	userService user.Service,
	categoryService category.Service,
) Service {
	return &service{
		businessService: businessService,
		reviewService:   reviewService,
		userService:     userService,
		categoryService: categoryService,
	}
}

func (s *service) Seed(ctx context.Context) error {
	van, err := s.ensureUser(ctx, "vancly", "vancly@example.com")
	if err != nil {
		return err
	}

	emma, err := s.ensureUser(ctx, "emmaly", "emmaly@example.com")
	if err != nil {
		return err
	}

	dining, err := s.ensureCategory(ctx, "dining", "Restaurants, diners, etc.")
	if err != nil {
		return err
	}

	entertainment, err := s.ensureCategory(ctx, "entertainment", "General entertainment business.")
	if err != nil {
		return err
	}

	if _, err = s.ensureCategory(ctx, "finance", "Banks, credit unions, etc."); err != nil {
		return err
	}

	var errs *multierror.Error
	errs = multierror.Append(errs, s.seedBusiness(ctx, "Joe's", "Eat at Joe's!",
		[]*category.Category{dining},
		[]seedReview{
			{user: emma, rating: 5, comment: "I love their clam chowder!"},
			{user: van, rating: 4, comment: "Food is good but too expensive."},
		},
	))
	errs = multierror.Append(errs, s.seedBusiness(ctx, "Movies & Burgers", "Have a burger and the movie's on us!",
		[]*category.Category{dining, entertainment},
		[]seedReview{
			{user: emma, rating: 3, comment: "Burger was disappointing."},
			{user: van, rating: 4, comment: "Food is good. Movie was OK."},
		},
	))
	errs = multierror.Append(errs, s.seedBusiness(ctx, "SuperPlex", "20 theaters for your pleasure!",
		[]*category.Category{entertainment},
		nil,
	))
	return errs.ErrorOrNil()
}

type seedReview struct {
	user    *user.User
	rating  int
	comment string
}

func (s *service) seedBusiness(
	ctx context.Context,
	name string,
	description string,
	categories []*category.Category,
	reviews []seedReview,
) error {
	b, err := s.ensureBusiness(ctx, name, description)
	if err != nil {
		return err
	}

	var errs error
	for _, c := range categories {
		if err := s.categoryService.AssignBusiness(ctx, b.Id, c.Id); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for _, rev := range reviews {
		if err := s.ensureReview(ctx, b, rev); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func (s *service) ensureUser(ctx context.Context, name string, email string) (*user.User, error) {
	existing, err := s.userService.FindUser(ctx, &user.FindOneOptions{
		EmailOption: &user.EmailOption{
			Email: email,
		},
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	logrus.WithField("name", name).Info("seeding user")
	return s.userService.CreateUser(ctx, &user.CreateOptions{
		Name:  name,
		Email: email,
	})
}

func (s *service) ensureCategory(ctx context.Context, name string, description string) (*category.Category, error) {
	existing, err := s.categoryService.FindCategory(ctx, &category.FindOneOptions{
		NameOption: &category.NameOption{
			Name: name,
		},
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	logrus.WithField("name", name).Info("seeding category")
	return s.categoryService.CreateCategory(ctx, &category.CreateOptions{
		Name:        name,
		Description: description,
	})
}

func (s *service) ensureBusiness(ctx context.Context, name string, description string) (*business.Business, error) {
	existing, err := s.businessService.FindBusiness(ctx, &business.FindOneOptions{
		NameOption: &business.NameOption{
			Name: name,
		},
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	logrus.WithField("name", name).Info("seeding business")
	return s.businessService.CreateBusiness(ctx, &business.CreateOptions{
		Name:        name,
		Description: description,
	})
}

func (s *service) ensureReview(ctx context.Context, b *business.Business, rev seedReview) error {
	existing, err := s.reviewService.FindReviews(ctx, &review.FindOptions{
		BusinessIds: []string{b.Id},
		UserIds:     []string{rev.user.Id},
	})
	if err != nil {
		return err
	}
	if len(existing) != 0 {
		return nil
	}

	_, err = s.reviewService.CreateReview(ctx, &review.CreateOptions{
		BusinessId: b.Id,
		UserId:     rev.user.Id,
		Rating:     rev.rating,
		Comment:    rev.comment,
	})
	return err
}
