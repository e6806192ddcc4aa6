package dataloader

// Config captures the config to create a new Loader
type Config[K comparable, V any] struct {
	// Fetch is a method that provides the data for the loader.
	// It receives the deduplicated keys accumulated since the last flush,
	// in first-occurrence order, and must return one value per key in the
	// same order. The errors slice may be nil (no failures), have a single
	// element (the whole batch failed) or match the keys in length.
	Fetch func(keys []K) ([]V, []error)

	// MaxBatch will limit the maximum number of keys to send in one batch, 0 = no limit
	MaxBatch int
}
