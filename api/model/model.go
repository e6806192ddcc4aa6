package model

import (
	"time"
)

type Business struct {
	ID          ID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Review struct {
	ID        ID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type User struct {
	ID        ID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID          ID
	Name        string
	Description string
	CreatedAt   time.Time
}

type CreateBusinessInput struct {
	Name        string
	Description string
}

type CreateUserInput struct {
	Name  string
	Email string
}

type CreateReviewInput struct {
	BusinessID ID
	UserID     ID
	Rating     int
	Comment    string
}
