package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/business"
)

func (r *queryResolver) Business(ctx context.Context, id model.ID) (*model.Business, error) {
	businessId, err := id.String(model.IdKindBusiness)
	if err != nil {
		return nil, err
	}

	b, err := r.businessService.FindBusiness(ctx, &business.FindOneOptions{
		IdOption: &business.IdOption{
			Id: businessId,
		},
	})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return model.ToBusiness(b), nil
}
