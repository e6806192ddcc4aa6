package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twelvedata/searchindex"
	"go.etcd.io/bbolt"
	"golang.org/x/exp/slices"

	"github.com/reviewgraph/reviewgraph/category"
)

const (
	categoryBucket           = "category"
	categoryAssignmentBucket = "categoryAssignment"
)

type categoryRepository struct {
	db *bbolt.DB
}

func NewCategoryRepository(db *bbolt.DB) category.Repository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) FindOne(_ context.Context, options *category.FindOneOptions) (*category.Category, error) {
	return dbView(r.db, categoryBucket, func(bucket *bbolt.Bucket) (*category.Category, error) {
		if idOption := options.IdOption; idOption != nil {
			jsonState := bucket.Get([]byte(idOption.Id))
			if jsonState == nil {
				return nil, nil
			}

			var cat *category.Category
			if err := json.Unmarshal(jsonState, &cat); err != nil {
				return nil, fmt.Errorf("failed to unmarshal category: %w", err)
			}
			return cat, nil
		}

		if nameOption := options.NameOption; nameOption != nil {
			var found *category.Category
			err := bucket.ForEach(func(k, v []byte) error {
				var cat *category.Category
				if err := json.Unmarshal(v, &cat); err != nil {
					return fmt.Errorf("failed to unmarshal category: %w", err)
				}
				if strings.EqualFold(cat.Name, nameOption.Name) {
					found = cat
				}
				return nil
			})
			return found, err
		}

		return nil, nil
	})
}

func (r *categoryRepository) FindAll(_ context.Context, options *category.FindOptions) ([]*category.Category, error) {
	return dbView(r.db, categoryBucket, func(bucket *bbolt.Bucket) (categories []*category.Category, err error) {
		var categoriesCount int
		var searchList searchindex.SearchList
		err = bucket.ForEach(func(k, v []byte) error {
			categoriesCount++
			var cat *category.Category
			if err := json.Unmarshal(v, &cat); err != nil {
				return fmt.Errorf("failed to unmarshal category: %w", err)
			}

			var optionsLen int
			if len(options.Ids) != 0 {
				optionsLen++
				if slices.Contains(options.Ids, cat.Id) {
					categories = append(categories, cat)
					return nil
				}
			}

			if len(options.Query) != 0 {
				optionsLen++
				searchList = append(searchList, &searchindex.SearchItem{
					Key:  cat.Name,
					Data: cat,
				})
			}

			if optionsLen == 0 {
				categories = append(categories, cat)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if len(options.Query) != 0 {
			searchIndex := searchindex.NewSearchIndex(searchList, categoriesCount, nil, nil, true, nil)
			matches := searchIndex.Search(searchindex.SearchParams{
				Text:       options.Query,
				OutputSize: categoriesCount,
				Matching:   searchindex.Beginning,
			})
			for _, match := range matches {
				categories = append(categories, match.(*category.Category))
			}
		}

		return categories, nil
	})
}

func (r *categoryRepository) Create(_ context.Context, cat *category.Category) (*category.Category, error) {
	return dbUpdate(r.db, categoryBucket, func(bucket *bbolt.Bucket) (*category.Category, error) {
		id := []byte(cat.Id)
		if bucket.Get(id) != nil {
			return nil, category.ErrCategoryIdAlreadyExists
		}

		jsonState, err := json.Marshal(cat)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category: %w", err)
		}

		return cat, bucket.Put(id, jsonState)
	})
}

func (r *categoryRepository) FindAssignments(_ context.Context, options *category.FindAssignmentOptions) ([]*category.Assignment, error) {
	return dbView(r.db, categoryAssignmentBucket, func(bucket *bbolt.Bucket) (assignments []*category.Assignment, err error) {
		err = bucket.ForEach(func(k, v []byte) error {
			var assignment *category.Assignment
			if err := json.Unmarshal(v, &assignment); err != nil {
				return fmt.Errorf("failed to unmarshal category assignment: %w", err)
			}

			if len(options.BusinessIds) != 0 && !slices.Contains(options.BusinessIds, assignment.BusinessId) {
				return nil
			}
			if len(options.CategoryIds) != 0 && !slices.Contains(options.CategoryIds, assignment.CategoryId) {
				return nil
			}

			assignments = append(assignments, assignment)
			return nil
		})
		return assignments, err
	})
}

func (r *categoryRepository) Assign(_ context.Context, assignment *category.Assignment) (*category.Assignment, error) {
	return dbUpdate(r.db, categoryAssignmentBucket, func(bucket *bbolt.Bucket) (*category.Assignment, error) {
		var existing *category.Assignment
		err := bucket.ForEach(func(k, v []byte) error {
			var candidate *category.Assignment
			if err := json.Unmarshal(v, &candidate); err != nil {
				return fmt.Errorf("failed to unmarshal category assignment: %w", err)
			}
			if candidate.BusinessId == assignment.BusinessId && candidate.CategoryId == assignment.CategoryId {
				existing = candidate
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}

		jsonState, err := json.Marshal(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category assignment: %w", err)
		}

		return assignment, bucket.Put([]byte(assignment.Id), jsonState)
	})
}
