package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/dataloader"
	"github.com/reviewgraph/reviewgraph/api/model"
)

func (r *businessResolver) Categories(ctx context.Context, b *model.Business) (func() (interface{}, error), error) {
	businessId, err := b.ID.String(model.IdKindBusiness)
	if err != nil {
		return nil, err
	}

	businessCategoriesLoader, err := dataloader.BusinessCategoriesLoaderFromContext(ctx)
	if err != nil {
		return nil, err
	}

	thunk := businessCategoriesLoader.LoadThunk(businessId)
	return func() (interface{}, error) {
		return thunk()
	}, nil
}
