package model

import (
	"github.com/reviewgraph/reviewgraph/category"
)

func ToCategory(category *category.Category) *Category {
	if category == nil {
		return nil
	}
	return &Category{
		ID:          StringID(IdKindCategory, category.Id),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}
