package dataloader

import (
	"errors"
	"fmt"
	"testing"
)

type fetchRecorder struct {
	calls   [][]int
	results func(keys []int) ([]string, []error)
}

func (r *fetchRecorder) fetch(keys []int) ([]string, []error) {
	recorded := make([]int, len(keys))
	copy(recorded, keys)
	r.calls = append(r.calls, recorded)
	return r.results(keys)
}

func valuesByKey(keys []int) ([]string, []error) {
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = fmt.Sprintf("value-%d", key)
	}
	return values, nil
}

func TestLoadThunkBatchesAndDeduplicates(t *testing.T) {
	recorder := &fetchRecorder{results: valuesByKey}
	loader := New(Config[int, string]{Fetch: recorder.fetch})

	thunkOne := loader.LoadThunk(1)
	thunkTwo := loader.LoadThunk(2)
	thunkOneAgain := loader.LoadThunk(1)

	if value, err := thunkOneAgain(); err != nil || value != "value-1" {
		t.Fatalf("expected value-1, got %q, %v", value, err)
	}
	if value, err := thunkOne(); err != nil || value != "value-1" {
		t.Fatalf("expected value-1, got %q, %v", value, err)
	}
	if value, err := thunkTwo(); err != nil || value != "value-2" {
		t.Fatalf("expected value-2, got %q, %v", value, err)
	}

	if len(recorder.calls) != 1 {
		t.Fatalf("expected a single batch call, got %d", len(recorder.calls))
	}
	if got := recorder.calls[0]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected batch keys [1 2], got %v", got)
	}
}

func TestLoadCachesAcrossWaves(t *testing.T) {
	recorder := &fetchRecorder{results: valuesByKey}
	loader := New(Config[int, string]{Fetch: recorder.fetch})

	first := loader.LoadThunk(7)
	second := loader.LoadThunk(7)
	if _, err := first(); err != nil {
		t.Fatal(err)
	}
	if _, err := second(); err != nil {
		t.Fatal(err)
	}

	// resolved key must be served from the cache in the next wave
	if value, err := loader.Load(7); err != nil || value != "value-7" {
		t.Fatalf("expected cached value-7, got %q, %v", value, err)
	}

	if len(recorder.calls) != 1 {
		t.Fatalf("expected one batch call for key 7, got %d", len(recorder.calls))
	}
}

func TestLoadResolvesPositionally(t *testing.T) {
	loader := New(Config[string, string]{
		Fetch: func(keys []string) ([]string, []error) {
			return []string{"v0", "v1", "v2"}, nil
		},
	})

	loader.LoadThunk("a")
	thunkB := loader.LoadThunk("b")
	loader.LoadThunk("c")

	if value, err := thunkB(); err != nil || value != "v1" {
		t.Fatalf("expected load(b) to resolve to v1, got %q, %v", value, err)
	}
}

func TestBatchLengthMismatch(t *testing.T) {
	loader := New(Config[int, string]{
		Fetch: func(keys []int) ([]string, []error) {
			return []string{"only-one"}, nil
		},
	})

	thunkOne := loader.LoadThunk(1)
	thunkTwo := loader.LoadThunk(2)

	if _, err := thunkOne(); !errors.Is(err, ErrBatchLength) {
		t.Fatalf("expected ErrBatchLength, got %v", err)
	}
	if _, err := thunkTwo(); !errors.Is(err, ErrBatchLength) {
		t.Fatalf("expected ErrBatchLength, got %v", err)
	}
}

func TestWholeBatchFailure(t *testing.T) {
	expectedErr := errors.New("backend unavailable")
	loader := New(Config[int, string]{
		Fetch: func(keys []int) ([]string, []error) {
			return nil, []error{expectedErr}
		},
	})

	thunkOne := loader.LoadThunk(1)
	thunkTwo := loader.LoadThunk(2)

	if _, err := thunkOne(); !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if _, err := thunkTwo(); !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
}

func TestWholeBatchFailureWithErrorPerKey(t *testing.T) {
	expectedErr := errors.New("backend unavailable")
	loader := New(Config[int, string]{
		Fetch: func(keys []int) ([]string, []error) {
			errs := make([]error, len(keys))
			for i := range errs {
				errs[i] = expectedErr
			}
			return nil, errs
		},
	})

	thunkOne := loader.LoadThunk(1)
	thunkTwo := loader.LoadThunk(2)

	if _, err := thunkOne(); !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if _, err := thunkTwo(); !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
}

func TestPerKeyErrors(t *testing.T) {
	keyErr := errors.New("no such key")
	loader := New(Config[int, string]{
		Fetch: func(keys []int) ([]string, []error) {
			values := make([]string, len(keys))
			errs := make([]error, len(keys))
			for i, key := range keys {
				if key == 2 {
					errs[i] = keyErr
					continue
				}
				values[i] = fmt.Sprintf("value-%d", key)
			}
			return values, errs
		},
	})

	thunkOne := loader.LoadThunk(1)
	thunkTwo := loader.LoadThunk(2)

	if value, err := thunkOne(); err != nil || value != "value-1" {
		t.Fatalf("expected value-1, got %q, %v", value, err)
	}
	if _, err := thunkTwo(); !errors.Is(err, keyErr) {
		t.Fatalf("expected %v, got %v", keyErr, err)
	}
}

func TestMissingKeyResolvesToZeroValue(t *testing.T) {
	type user struct {
		id string
	}
	loader := New(Config[int, *user]{
		Fetch: func(keys []int) ([]*user, []error) {
			return make([]*user, len(keys)), nil
		},
	})

	value, err := loader.Load(42)
	if err != nil {
		t.Fatalf("missing key should not error, got %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil for missing key, got %#v", value)
	}
}

func TestMaxBatchSplitsBatches(t *testing.T) {
	recorder := &fetchRecorder{results: valuesByKey}
	loader := New(Config[int, string]{Fetch: recorder.fetch, MaxBatch: 2})

	thunks := []func() (string, error){
		loader.LoadThunk(1),
		loader.LoadThunk(2),
		loader.LoadThunk(3),
	}
	for i, thunk := range thunks {
		if value, err := thunk(); err != nil || value != fmt.Sprintf("value-%d", i+1) {
			t.Fatalf("thunk %d: got %q, %v", i, value, err)
		}
	}

	if len(recorder.calls) != 2 {
		t.Fatalf("expected two batch calls, got %d: %v", len(recorder.calls), recorder.calls)
	}
	if got := recorder.calls[0]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected first batch [1 2], got %v", got)
	}
	if got := recorder.calls[1]; len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected second batch [3], got %v", got)
	}
}

func TestLoadAllSharesOneBatch(t *testing.T) {
	recorder := &fetchRecorder{results: valuesByKey}
	loader := New(Config[int, string]{Fetch: recorder.fetch})

	values, errs := loader.LoadAll([]int{5, 9, 5})
	for i, err := range errs {
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
	}
	if values[0] != "value-5" || values[1] != "value-9" || values[2] != "value-5" {
		t.Fatalf("unexpected values %v", values)
	}

	if len(recorder.calls) != 1 {
		t.Fatalf("expected one batch call, got %d", len(recorder.calls))
	}
	if got := recorder.calls[0]; len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("expected deduplicated batch [5 9], got %v", got)
	}
}

func TestNestedWavesFlushSeparately(t *testing.T) {
	businessReviews := &fetchRecorder{}
	businessReviews.results = func(keys []int) ([]string, []error) {
		values := make([]string, len(keys))
		for i, key := range keys {
			values[i] = fmt.Sprintf("reviews-of-%d", key)
		}
		return values, nil
	}
	reviewAuthors := &fetchRecorder{results: valuesByKey}

	reviewLoader := New(Config[int, string]{Fetch: businessReviews.fetch})
	authorLoader := New(Config[int, string]{Fetch: reviewAuthors.fetch})

	// wave one: all businesses ask for their reviews before anyone awaits
	reviewThunks := []func() (string, error){
		reviewLoader.LoadThunk(1),
		reviewLoader.LoadThunk(2),
	}
	for _, thunk := range reviewThunks {
		if _, err := thunk(); err != nil {
			t.Fatal(err)
		}
	}

	// wave two: reviews of business one yield authors 5, 9 and 5 again
	authorThunks := []func() (string, error){
		authorLoader.LoadThunk(5),
		authorLoader.LoadThunk(9),
		authorLoader.LoadThunk(5),
	}
	for _, thunk := range authorThunks {
		if _, err := thunk(); err != nil {
			t.Fatal(err)
		}
	}

	if len(businessReviews.calls) != 1 {
		t.Fatalf("expected one review batch, got %d", len(businessReviews.calls))
	}
	if len(reviewAuthors.calls) != 1 {
		t.Fatalf("expected one author batch, got %d", len(reviewAuthors.calls))
	}
	if got := reviewAuthors.calls[0]; len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("expected author batch [5 9], got %v", got)
	}
}

func TestPrimeAndClear(t *testing.T) {
	recorder := &fetchRecorder{results: valuesByKey}
	loader := New(Config[int, string]{Fetch: recorder.fetch})

	if !loader.Prime(1, "primed") {
		t.Fatal("expected prime of a new key to succeed")
	}
	if loader.Prime(1, "primed-again") {
		t.Fatal("expected prime of an existing key to be rejected")
	}

	if value, err := loader.Load(1); err != nil || value != "primed" {
		t.Fatalf("expected primed value, got %q, %v", value, err)
	}
	if len(recorder.calls) != 0 {
		t.Fatalf("expected no batch call for a primed key, got %d", len(recorder.calls))
	}

	loader.Clear(1)
	if value, err := loader.Load(1); err != nil || value != "value-1" {
		t.Fatalf("expected fetched value after clear, got %q, %v", value, err)
	}
	if len(recorder.calls) != 1 {
		t.Fatalf("expected one batch call after clear, got %d", len(recorder.calls))
	}
}

func TestLoaderImplementsDataLoader(t *testing.T) {
	var _ DataLoader[string, int] = New(Config[string, int]{
		Fetch: func(keys []string) ([]int, []error) {
			return make([]int, len(keys)), nil
		},
	})
}
