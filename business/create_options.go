package business

type CreateOptions struct {
	Name        string
	Description string
}
