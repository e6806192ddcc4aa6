package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
	"github.com/reviewgraph/reviewgraph/internal/adapt"
	"github.com/reviewgraph/reviewgraph/user"
)

func (r *queryResolver) Users(ctx context.Context, query *string) ([]*model.User, error) {
	users, err := r.userService.FindUsers(ctx, &user.FindOptions{
		Query: adapt.Dereference(query),
	})
	if err != nil {
		return nil, err
	}
	return adapt.Array(users, model.ToUser), nil
}
