package category

import (
	"errors"
)

var (
	ErrIdRequired              = errors.New("id is required")
	ErrNameRequired            = errors.New("name is required")
	ErrBusinessIdRequired      = errors.New("business id is required")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCategoryIdAlreadyExists = errors.New("category id already exists")
	ErrNameAlreadyExists       = errors.New("category name already exists")
	ErrCreateOptionsRequired   = errors.New("create options are required")
)
