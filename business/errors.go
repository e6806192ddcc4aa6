package business

import (
	"errors"
)

var (
	ErrIdRequired              = errors.New("id is required")
	ErrNameRequired            = errors.New("name is required")
	ErrOneOptionRequired       = errors.New("one option is required")
	ErrOnlyOneOptionAllowed    = errors.New("only one option is allowed")
	ErrBusinessNotFound        = errors.New("business not found")
	ErrBusinessIdAlreadyExists = errors.New("business id already exists")
	ErrNameAlreadyExists       = errors.New("business name already exists")
	ErrCreateOptionsRequired   = errors.New("create options are required")
)
