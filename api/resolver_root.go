package api

import (
	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
)

type resolverRoot struct {
	businessService business.Service
	reviewService   review.Service
	userService     user.Service
	categoryService category.Service
}

func newResolverRoot(
	businessService business.Service,
	reviewService review.Service,
	userService user.Service,
	categoryService category.Service,
) *resolverRoot {
	return &resolverRoot{
		businessService: businessService,
		reviewService:   reviewService,
		userService:     userService,
		categoryService: categoryService,
	}
}

type queryResolver struct {
	*resolverRoot
}

type mutationResolver struct {
	*resolverRoot
}

type businessResolver struct {
	*resolverRoot
}

type reviewResolver struct {
	*resolverRoot
}

func (r *resolverRoot) Query() *queryResolver {
	return &queryResolver{r}
}

func (r *resolverRoot) Mutation() *mutationResolver {
	return &mutationResolver{r}
}

func (r *resolverRoot) Business() *businessResolver {
	return &businessResolver{r}
}

func (r *resolverRoot) Review() *reviewResolver {
	return &reviewResolver{r}
}
