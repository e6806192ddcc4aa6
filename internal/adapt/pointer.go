package adapt

func ToPointer[T any](v T) *T {
	return &v
}

func Dereference[T any](v *T) (result T) {
	if v == nil {
		return result
	}
	return *v
}
