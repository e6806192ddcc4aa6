package category

type CreateOptions struct {
	Name        string
	Description string
}
