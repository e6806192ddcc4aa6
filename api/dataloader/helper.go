package dataloader

func repeatError(err error, count int) []error {
	var errs []error
	for i := 0; i < count; i++ {
		errs = append(errs, err)
	}
	return errs
}

// orderByKeys reorders a backend result set to match the requested key order,
// leaving the zero value in place for keys the backend did not return.
func orderByKeys[T any](keys []string, items []T, keyFn func(T) string) []T {
	itemByKey := make(map[string]T, len(items))
	for _, item := range items {
		itemByKey[keyFn(item)] = item
	}

	results := make([]T, len(keys))
	for i, key := range keys {
		results[i] = itemByKey[key]
	}
	return results
}
