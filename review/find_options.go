package review

type FindOptions struct {
	Ids         []string
	BusinessIds []string
	UserIds     []string
	Query       string
}
