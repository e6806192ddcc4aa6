package business

type FindOptions struct {
	Ids   []string
	Query string
}
