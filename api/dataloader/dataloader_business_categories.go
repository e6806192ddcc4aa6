package dataloader

import (
	"context"
	"errors"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/dataloader"
	"github.com/reviewgraph/reviewgraph/internal/adapt"
)

var businessCategoriesLoaderCtxKey = &contextKey{"businessCategoriesLoader"}

// BusinessCategoriesLoaderFromContext returns the per-request loader resolving
// a business id to the categories assigned to that business.
func BusinessCategoriesLoaderFromContext(ctx context.Context) (dataloader.DataLoader[string, []*model.Category], error) {
	dataLoader, ok := ctx.Value(businessCategoriesLoaderCtxKey).(dataloader.DataLoader[string, []*model.Category])
	if !ok {
		return nil, errors.New("business categories loader not found")
	}
	return dataLoader, nil
}

func businessCategoriesFetcher(ctx context.Context, categoryService category.Service) func([]string) ([][]*model.Category, []error) {
	return func(businessIds []string) ([][]*model.Category, []error) {
		categoriesByBusinessId, err := categoryService.FindCategoriesForBusinesses(ctx, businessIds)
		if err != nil {
			return nil, repeatError(err, len(businessIds))
		}

		results := make([][]*model.Category, len(businessIds))
		for i, businessId := range businessIds {
			categoriesOfBusiness := adapt.Array(categoriesByBusinessId[businessId], model.ToCategory)
			if categoriesOfBusiness == nil {
				categoriesOfBusiness = []*model.Category{}
			}
			results[i] = categoriesOfBusiness
		}
		return results, nil
	}
}
