package model

import (
	"github.com/reviewgraph/reviewgraph/business"
)

func ToBusiness(business *business.Business) *Business {
	if business == nil {
		return nil
	}
	return &Business{
		ID:          StringID(IdKindBusiness, business.Id),
		Name:        business.Name,
		Description: business.Description,
		CreatedAt:   business.CreatedAt,
		UpdatedAt:   business.UpdatedAt,
	}
}

func CreateBusinessInputToCreateOptions(input CreateBusinessInput) *business.CreateOptions {
	return &business.CreateOptions{
		Name:        input.Name,
		Description: input.Description,
	}
}
