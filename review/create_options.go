package review

type CreateOptions struct {
	BusinessId string
	UserId     string
	Rating     int
	Comment    string
}
