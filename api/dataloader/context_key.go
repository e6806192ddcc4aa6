package dataloader

type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "api/dataloader context value " + k.name
}
