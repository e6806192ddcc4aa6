package api

import (
	"context"

	"github.com/reviewgraph/reviewgraph/api/model"
)

func (r *mutationResolver) CreateUser(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	createdUser, err := r.userService.CreateUser(ctx, model.CreateUserInputToCreateOptions(input))
	if err != nil {
		return nil, err
	}
	return model.ToUser(createdUser), nil
}
