package api

import (
	"context"
	"errors"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/reviewgraph/reviewgraph/api/dataloader"
	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
	"golang.org/x/exp/slices"
)

type fakeBusinessService struct {
	businesses []*business.Business
}

func (s *fakeBusinessService) FindBusiness(ctx context.Context, options *business.FindOneOptions) (*business.Business, error) {
	for _, b := range s.businesses {
		if options.IdOption != nil && options.IdOption.Id == b.Id {
			return b, nil
		}
	}
	return nil, nil
}

func (s *fakeBusinessService) FindBusinesses(ctx context.Context, options *business.FindOptions) ([]*business.Business, error) {
	return s.businesses, nil
}

func (s *fakeBusinessService) CreateBusiness(ctx context.Context, options *business.CreateOptions) (*business.Business, error) {
	created := &business.Business{
		Id:          "created",
		Name:        options.Name,
		Description: options.Description,
	}
	s.businesses = append(s.businesses, created)
	return created, nil
}

type fakeReviewService struct {
	reviews         []*review.Review
	businessIdCalls [][]string
	reviewIdCalls   [][]string
}

func (s *fakeReviewService) FindReview(ctx context.Context, options *review.FindOneOptions) (*review.Review, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeReviewService) FindReviews(ctx context.Context, options *review.FindOptions) ([]*review.Review, error) {
	if len(options.BusinessIds) != 0 {
		s.businessIdCalls = append(s.businessIdCalls, options.BusinessIds)
	}
	if len(options.Ids) != 0 {
		s.reviewIdCalls = append(s.reviewIdCalls, options.Ids)
	}
	var matched []*review.Review
	for _, rev := range s.reviews {
		if len(options.Ids) != 0 && !slices.Contains(options.Ids, rev.Id) {
			continue
		}
		if len(options.BusinessIds) != 0 && !slices.Contains(options.BusinessIds, rev.BusinessId) {
			continue
		}
		matched = append(matched, rev)
	}
	return matched, nil
}

func (s *fakeReviewService) CreateReview(ctx context.Context, options *review.CreateOptions) (*review.Review, error) {
	return nil, errors.New("not implemented")
}

type fakeUserService struct {
	users   []*user.User
	batches [][]string
}

func (s *fakeUserService) FindUser(ctx context.Context, options *user.FindOneOptions) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeUserService) FindUsers(ctx context.Context, options *user.FindOptions) ([]*user.User, error) {
	if len(options.Ids) != 0 {
		s.batches = append(s.batches, options.Ids)
	}
	var matched []*user.User
	for _, usr := range s.users {
		if len(options.Ids) == 0 || slices.Contains(options.Ids, usr.Id) {
			matched = append(matched, usr)
		}
	}
	return matched, nil
}

func (s *fakeUserService) CreateUser(ctx context.Context, options *user.CreateOptions) (*user.User, error) {
	return nil, errors.New("not implemented")
}

type fakeCategoryService struct {
	categoriesByBusinessId map[string][]*category.Category
}

func (s *fakeCategoryService) FindCategory(ctx context.Context, options *category.FindOneOptions) (*category.Category, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeCategoryService) FindCategories(ctx context.Context, options *category.FindOptions) ([]*category.Category, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeCategoryService) CreateCategory(ctx context.Context, options *category.CreateOptions) (*category.Category, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeCategoryService) FindCategoriesForBusinesses(ctx context.Context, businessIds []string) (map[string][]*category.Category, error) {
	result := make(map[string][]*category.Category)
	for _, businessId := range businessIds {
		if categories, ok := s.categoriesByBusinessId[businessId]; ok {
			result[businessId] = categories
		}
	}
	return result, nil
}

func (s *fakeCategoryService) AssignBusiness(ctx context.Context, businessId string, categoryId string) error {
	return errors.New("not implemented")
}

type testServices struct {
	businessService *fakeBusinessService
	reviewService   *fakeReviewService
	userService     *fakeUserService
	categoryService *fakeCategoryService
}

func newTestServices() *testServices {
	return &testServices{
		businessService: &fakeBusinessService{
			businesses: []*business.Business{
				{Id: "b1", Name: "Joe's", Description: "Burgers"},
				{Id: "b2", Name: "SuperPlex", Description: "Movies"},
			},
		},
		reviewService: &fakeReviewService{
			reviews: []*review.Review{
				{Id: "r1", BusinessId: "b1", UserId: "u1", Rating: 5, Comment: "great"},
				{Id: "r2", BusinessId: "b1", UserId: "u2", Rating: 3, Comment: "ok"},
				{Id: "r3", BusinessId: "b2", UserId: "u1", Rating: 4, Comment: "fun"},
			},
		},
		userService: &fakeUserService{
			users: []*user.User{
				{Id: "u1", Name: "vancly", Email: "vancly@example.com"},
				{Id: "u2", Name: "emmaly", Email: "emmaly@example.com"},
			},
		},
		categoryService: &fakeCategoryService{
			categoriesByBusinessId: map[string][]*category.Category{
				"b1": {{Id: "c1", Name: "dining", Description: "Food"}},
			},
		},
	}
}

func (s *testServices) do(t *testing.T, query string) *graphql.Result {
	t.Helper()

	schema, err := newSchema(newResolverRoot(s.businessService, s.reviewService, s.userService, s.categoryService))
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	ctx := dataloader.NewContext(context.Background(), 100, s.reviewService, s.userService, s.categoryService)
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

func TestQueryBusinessesWithNestedRelations(t *testing.T) {
	services := newTestServices()
	result := services.do(t, `{
		businesses {
			name
			reviews {
				rating
				comment
				author {
					name
				}
			}
			categories {
				name
			}
		}
	}`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	businesses := result.Data.(map[string]interface{})["businesses"].([]interface{})
	if len(businesses) != 2 {
		t.Fatalf("expected 2 businesses, got: %d", len(businesses))
	}

	first := businesses[0].(map[string]interface{})
	if first["name"] != "Joe's" {
		t.Fatalf("unexpected business: %v", first)
	}
	reviews := first["reviews"].([]interface{})
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got: %d", len(reviews))
	}
	firstReview := reviews[0].(map[string]interface{})
	if firstReview["rating"] != 5 || firstReview["comment"] != "great" {
		t.Fatalf("unexpected review: %v", firstReview)
	}
	author := firstReview["author"].(map[string]interface{})
	if author["name"] != "vancly" {
		t.Fatalf("unexpected author: %v", author)
	}
	categories := first["categories"].([]interface{})
	if len(categories) != 1 || categories[0].(map[string]interface{})["name"] != "dining" {
		t.Fatalf("unexpected categories: %v", categories)
	}

	second := businesses[1].(map[string]interface{})
	if len(second["categories"].([]interface{})) != 0 {
		t.Fatalf("expected no categories for %v", second["name"])
	}

	assertNoKeyRepeats(t, services.reviewService.businessIdCalls)
	assertNoKeyRepeats(t, services.reviewService.reviewIdCalls)
	assertNoKeyRepeats(t, services.userService.batches)
}

// assertNoKeyRepeats verifies the loader window contract as seen from the
// backend: within a request no key is fetched twice, neither inside one
// batch nor across batches.
func assertNoKeyRepeats(t *testing.T, batches [][]string) {
	t.Helper()
	seen := make(map[string]struct{})
	for _, batch := range batches {
		for _, key := range batch {
			if _, ok := seen[key]; ok {
				t.Fatalf("key %q fetched more than once: %v", key, batches)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestQueryBusinessById(t *testing.T) {
	services := newTestServices()
	id := model.StringID(model.IdKindBusiness, "b2").Base64()
	result := services.do(t, `{ business(id: "`+id+`") { name } }`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	b := result.Data.(map[string]interface{})["business"].(map[string]interface{})
	if b["name"] != "SuperPlex" {
		t.Fatalf("unexpected business: %v", b)
	}
}

func TestQueryBusinessByIdNotFound(t *testing.T) {
	services := newTestServices()
	id := model.StringID(model.IdKindBusiness, "nope").Base64()
	result := services.do(t, `{ business(id: "`+id+`") { name } }`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	if b := result.Data.(map[string]interface{})["business"]; b != nil {
		t.Fatalf("expected null business, got: %v", b)
	}
}

func TestQueryBusinessByIdWrongKind(t *testing.T) {
	services := newTestServices()
	id := model.StringID(model.IdKindUser, "u1").Base64()
	result := services.do(t, `{ business(id: "`+id+`") { name } }`)
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a user id passed as business id")
	}
}

func TestMutationCreateBusiness(t *testing.T) {
	services := newTestServices()
	result := services.do(t, `mutation {
		createBusiness(input: { name: "Cinema Cafe", description: "Dinner and a movie" }) {
			id
			name
			description
		}
	}`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	created := result.Data.(map[string]interface{})["createBusiness"].(map[string]interface{})
	if created["name"] != "Cinema Cafe" || created["description"] != "Dinner and a movie" {
		t.Fatalf("unexpected business: %v", created)
	}
	if created["id"] != model.StringID(model.IdKindBusiness, "created").Base64() {
		t.Fatalf("unexpected id: %v", created["id"])
	}
}

func TestQueryReviewsWithoutLoaderMiddleware(t *testing.T) {
	services := newTestServices()
	schema, err := newSchema(newResolverRoot(services.businessService, services.reviewService, services.userService, services.categoryService))
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ businesses { reviews { rating } } }`,
		Context:       context.Background(),
	})
	if len(result.Errors) == 0 {
		t.Fatal("expected an error when the loader middleware is missing")
	}
}
