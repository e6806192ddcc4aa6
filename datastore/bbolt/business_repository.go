package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twelvedata/searchindex"
	"go.etcd.io/bbolt"
	"golang.org/x/exp/slices"

	"github.com/reviewgraph/reviewgraph/business"
)

const (
	businessBucket = "business"
)

type businessRepository struct {
	db *bbolt.DB
}

func NewBusinessRepository(db *bbolt.DB) business.Repository {
	return &businessRepository{
		db: db,
	}
}

func (r *businessRepository) FindOne(_ context.Context, options *business.FindOneOptions) (*business.Business, error) {
	return dbView(r.db, businessBucket, func(bucket *bbolt.Bucket) (*business.Business, error) {
		if idOption := options.IdOption; idOption != nil {
			jsonState := bucket.Get([]byte(idOption.Id))
			if jsonState == nil {
				return nil, nil
			}

			var biz *business.Business
			if err := json.Unmarshal(jsonState, &biz); err != nil {
				return nil, fmt.Errorf("failed to unmarshal business: %w", err)
			}
			return biz, nil
		}

		if nameOption := options.NameOption; nameOption != nil {
			var found *business.Business
			err := bucket.ForEach(func(k, v []byte) error {
				var biz *business.Business
				if err := json.Unmarshal(v, &biz); err != nil {
					return fmt.Errorf("failed to unmarshal business: %w", err)
				}
				if strings.EqualFold(biz.Name, nameOption.Name) {
					found = biz
				}
				return nil
			})
			return found, err
		}

		return nil, nil
	})
}

func (r *businessRepository) FindAll(_ context.Context, options *business.FindOptions) ([]*business.Business, error) {
	return dbView(r.db, businessBucket, func(bucket *bbolt.Bucket) (businesses []*business.Business, err error) {
		var businessesCount int
		var searchList searchindex.SearchList
		err = bucket.ForEach(func(k, v []byte) error {
			businessesCount++
			var biz *business.Business
			if err := json.Unmarshal(v, &biz); err != nil {
				return fmt.Errorf("failed to unmarshal business: %w", err)
			}

			var optionsLen int
			if len(options.Ids) != 0 {
				optionsLen++
				if slices.Contains(options.Ids, biz.Id) {
					businesses = append(businesses, biz)
					return nil
				}
			}

			if len(options.Query) != 0 {
				optionsLen++
				searchList = append(searchList, &searchindex.SearchItem{
					Key:  biz.Name,
					Data: biz,
				})
			}

			if optionsLen == 0 {
				businesses = append(businesses, biz)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if len(options.Query) != 0 {
			searchIndex := searchindex.NewSearchIndex(searchList, businessesCount, nil, nil, true, nil)
			matches := searchIndex.Search(searchindex.SearchParams{
				Text:       options.Query,
				OutputSize: businessesCount,
				Matching:   searchindex.Beginning,
			})
			for _, match := range matches {
				businesses = append(businesses, match.(*business.Business))
			}
		}

		return businesses, nil
	})
}

func (r *businessRepository) Create(_ context.Context, biz *business.Business) (*business.Business, error) {
	return dbUpdate(r.db, businessBucket, func(bucket *bbolt.Bucket) (*business.Business, error) {
		id := []byte(biz.Id)
		if bucket.Get(id) != nil {
			return nil, business.ErrBusinessIdAlreadyExists
		}

		jsonState, err := json.Marshal(biz)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal business: %w", err)
		}

		return biz, bucket.Put(id, jsonState)
	})
}
