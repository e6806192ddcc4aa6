package dataloader

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBatchLength is returned to every pending caller of a flush whose fetch
// function violated the batch contract by returning a result slice that does
// not match the key slice in length.
var ErrBatchLength = errors.New("dataloader: fetch returned wrong number of results")

// New creates a new Loader given a fetch function and batch limit.
//
// A Loader is scoped to one logical window of work, typically one inbound
// request. Its cache holds every key ever requested for the lifetime of the
// loader and is discarded with it, so a key hits the backend at most once
// per window.
func New[K comparable, V any](config Config[K, V]) *Loader[K, V] {
	return &Loader[K, V]{
		fetch:    config.Fetch,
		maxBatch: config.MaxBatch,
		cache:    make(map[K]func() (V, error)),
	}
}

// Loader batches and caches requests
type Loader[K comparable, V any] struct {
	// this method provides the data for the loader
	fetch func(keys []K) ([]V, []error)

	// the maximum batch size. Set to 0 if you want it to be unbounded.
	maxBatch int

	// INTERNAL

	// lazily created cache of result handles, one per key ever requested
	cache map[K]func() (V, error)

	// the current batch accumulating keys. keys will continue to be collected
	// until the first thunk is awaited or the batch grows to maxBatch keys.
	batch *loaderBatch[K, V]

	// mutex to prevent races
	mu sync.Mutex
}

type loaderBatch[K comparable, V any] struct {
	keys    []K
	data    []V
	errors  []error
	closing bool
	done    chan struct{}
}

// Load a value by key, batching and caching will be applied automatically
func (l *Loader[K, V]) Load(key K) (V, error) {
	return l.LoadThunk(key)()
}

// LoadThunk returns a function that when called will block waiting for a value.
// This method should be used if you want one goroutine to make requests to many
// different data loaders without blocking until the thunk is called.
//
// Repeated calls for the same key return the same handle, whether the key is
// still pending or already resolved.
func (l *Loader[K, V]) LoadThunk(key K) func() (V, error) {
	l.mu.Lock()
	if thunk, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return thunk
	}

	if l.batch == nil {
		l.batch = &loaderBatch[K, V]{done: make(chan struct{})}
	}
	batch := l.batch
	pos := batch.keyIndex(l, key)

	thunk := func() (V, error) {
		batch.flush(l)
		<-batch.done

		var data V
		if pos < len(batch.data) {
			data = batch.data[pos]
		}
		return data, batch.errorAt(pos)
	}
	l.cache[key] = thunk
	l.mu.Unlock()

	return thunk
}

// LoadAll fetches many keys at once. It will be broken into appropriate sized
// sub batches depending on how the loader is configured
func (l *Loader[K, V]) LoadAll(keys []K) ([]V, []error) {
	return l.LoadAllThunk(keys)()
}

// LoadAllThunk returns a function that when called will block waiting for the values.
// This method should be used if you want one goroutine to make requests to many
// different data loaders without blocking until the thunk is called.
func (l *Loader[K, V]) LoadAllThunk(keys []K) func() ([]V, []error) {
	thunks := make([]func() (V, error), len(keys))
	for i, key := range keys {
		thunks[i] = l.LoadThunk(key)
	}
	return func() ([]V, []error) {
		values := make([]V, len(keys))
		errors := make([]error, len(keys))
		for i, thunk := range thunks {
			values[i], errors[i] = thunk()
		}
		return values, errors
	}
}

// Prime the cache with the provided key and value. If the key already exists, no change is made
// and false is returned.
// (To forcefully prime the cache, clear the key first with loader.Clear(key) then Prime(key, value).)
func (l *Loader[K, V]) Prime(key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, found := l.cache[key]; found {
		return false
	}
	l.cache[key] = func() (V, error) {
		return value, nil
	}
	return true
}

// Clear the value at key from the cache, if it exists
func (l *Loader[K, V]) Clear(key K) {
	l.mu.Lock()
	delete(l.cache, key)
	l.mu.Unlock()
}

// keyIndex will return the location of the key in the batch, if it's not found
// it will add the key to the batch
func (b *loaderBatch[K, V]) keyIndex(l *Loader[K, V], key K) int {
	for i, existingKey := range b.keys {
		if key == existingKey {
			return i
		}
	}

	pos := len(b.keys)
	b.keys = append(b.keys, key)

	if l.maxBatch != 0 && pos >= l.maxBatch-1 {
		if !b.closing {
			b.closing = true
			l.batch = nil
			go b.run(l)
		}
	}

	return pos
}

// flush closes the batch and runs the fetch in the calling goroutine. The
// first caller to await a thunk performs the flush; by then every resolver
// that could have registered a key in this wave has already done so, which
// is what makes the batch maximal without a wait timer. Later waves started
// after this flush delivers will accumulate into a fresh batch.
func (b *loaderBatch[K, V]) flush(l *Loader[K, V]) {
	l.mu.Lock()
	if b.closing {
		l.mu.Unlock()
		return
	}
	b.closing = true
	if l.batch == b {
		l.batch = nil
	}
	l.mu.Unlock()

	b.run(l)
}

func (b *loaderBatch[K, V]) run(l *Loader[K, V]) {
	b.data, b.errors = l.fetch(b.keys)

	if len(b.data) != len(b.keys) {
		// a fetch that failed as a whole legitimately returns no data, with
		// either a single error for the batch or one error per key
		wholeBatchFailure := len(b.data) == 0 && (len(b.errors) == 1 || len(b.errors) == len(b.keys))
		if !wholeBatchFailure {
			err := fmt.Errorf("%w: got %d results for %d keys", ErrBatchLength, len(b.data), len(b.keys))
			b.data = nil
			b.errors = []error{err}
		}
	}

	close(b.done)
}

func (b *loaderBatch[K, V]) errorAt(pos int) error {
	switch len(b.errors) {
	case 0:
		return nil
	case 1:
		return b.errors[0]
	default:
		if pos < len(b.errors) {
			return b.errors[pos]
		}
		return nil
	}
}
