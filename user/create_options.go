package user

type CreateOptions struct {
	Name  string
	Email string
}
