package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
)

func (r *mutationResolver) CreateBusiness(ctx context.Context, input model.CreateBusinessInput) (*model.Business, error) {
	createdBusiness, err := r.businessService.CreateBusiness(ctx, model.CreateBusinessInputToCreateOptions(input))
	if err != nil {
		return nil, err
	}
	return model.ToBusiness(createdBusiness), nil
}
