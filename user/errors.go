package user

import (
	"errors"
)

var (
	ErrIdRequired            = errors.New("id is required")
	ErrNameRequired          = errors.New("name is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrEmailInvalid          = errors.New("email is invalid")
	ErrOneOptionRequired     = errors.New("one option is required")
	ErrOnlyOneOptionAllowed  = errors.New("only one option is allowed")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserIdAlreadyExists   = errors.New("user id already exists")
	ErrEmailAlreadyExists    = errors.New("user email already exists")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
