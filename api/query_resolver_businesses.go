package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/internal/adapt"
)

func (r *queryResolver) Businesses(ctx context.Context, query *string) ([]*model.Business, error) {
	businesses, err := r.businessService.FindBusinesses(ctx, &business.FindOptions{
		Query: adapt.Dereference(query),
	})
	if err != nil {
		return nil, err
	}
	return adapt.Array(businesses, model.ToBusiness), nil
}
