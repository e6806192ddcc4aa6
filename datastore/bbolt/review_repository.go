package bbolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twelvedata/searchindex"
	"go.etcd.io/bbolt"
	"golang.org/x/exp/slices"

	"github.com/reviewgraph/reviewgraph/review"
)

const (
	reviewBucket = "review"
)

type reviewRepository struct {
	db *bbolt.DB
}

func NewReviewRepository(db *bbolt.DB) review.Repository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) FindOne(_ context.Context, options *review.FindOneOptions) (*review.Review, error) {
	return dbView(r.db, reviewBucket, func(bucket *bbolt.Bucket) (*review.Review, error) {
		jsonState := bucket.Get([]byte(options.IdOption.Id))
		if jsonState == nil {
			return nil, nil
		}

		var rev *review.Review
		if err := json.Unmarshal(jsonState, &rev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal review: %w", err)
		}
		return rev, nil
	})
}

func (r *reviewRepository) FindAll(_ context.Context, options *review.FindOptions) ([]*review.Review, error) {
	return dbView(r.db, reviewBucket, func(bucket *bbolt.Bucket) (reviews []*review.Review, err error) {
		var reviewsCount int
		var searchList searchindex.SearchList
		err = bucket.ForEach(func(k, v []byte) error {
			reviewsCount++
			var rev *review.Review
			if err := json.Unmarshal(v, &rev); err != nil {
				return fmt.Errorf("failed to unmarshal review: %w", err)
			}

			var optionsLen int
			if len(options.Ids) != 0 {
				optionsLen++
				if slices.Contains(options.Ids, rev.Id) {
					reviews = append(reviews, rev)
					return nil
				}
			}

			if len(options.BusinessIds) != 0 {
				optionsLen++
				if slices.Contains(options.BusinessIds, rev.BusinessId) {
					reviews = append(reviews, rev)
					return nil
				}
			}

			if len(options.UserIds) != 0 {
				optionsLen++
				if slices.Contains(options.UserIds, rev.UserId) {
					reviews = append(reviews, rev)
					return nil
				}
			}

			if len(options.Query) != 0 {
				optionsLen++
				searchList = append(searchList, &searchindex.SearchItem{
					Key:  rev.Comment,
					Data: rev,
				})
			}

			if optionsLen == 0 {
				reviews = append(reviews, rev)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if len(options.Query) != 0 {
			searchIndex := searchindex.NewSearchIndex(searchList, reviewsCount, nil, nil, true, nil)
			matches := searchIndex.Search(searchindex.SearchParams{
				Text:       options.Query,
				OutputSize: reviewsCount,
				Matching:   searchindex.Beginning,
			})
			for _, match := range matches {
				reviews = append(reviews, match.(*review.Review))
			}
		}

		return reviews, nil
	})
}

func (r *reviewRepository) Create(_ context.Context, rev *review.Review) (*review.Review, error) {
	return dbUpdate(r.db, reviewBucket, func(bucket *bbolt.Bucket) (*review.Review, error) {
		id := []byte(rev.Id)
		if bucket.Get(id) != nil {
			return nil, review.ErrReviewIdAlreadyExists
		}

		jsonState, err := json.Marshal(rev)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal review: %w", err)
		}

		return rev, bucket.Put(id, jsonState)
	})
}
