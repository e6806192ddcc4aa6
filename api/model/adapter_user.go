package model

import (
	"github.com/reviewgraph/reviewgraph/user"
)

func ToUser(user *user.User) *User {
	if user == nil {
		return nil
	}
	return &User{
		ID:        StringID(IdKindUser, user.Id),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func CreateUserInputToCreateOptions(input CreateUserInput) *user.CreateOptions {
	return &user.CreateOptions{
		Name:  input.Name,
		Email: input.Email,
	}
}
