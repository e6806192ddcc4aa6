package review

import (
	"time"
)

type Review struct {
	Id         string
	BusinessId string
	UserId     string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
