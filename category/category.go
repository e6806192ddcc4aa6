package category

import (
	"time"
)

type Category struct {
	Id          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Assignment links a business to a category.
type Assignment struct {
	Id         string
	BusinessId string
	CategoryId string
	CreatedAt  time.Time
}
