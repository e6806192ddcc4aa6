package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twelvedata/searchindex"
	"go.etcd.io/bbolt"
	"golang.org/x/exp/slices"

	"github.com/reviewgraph/reviewgraph/user"
)

const (
	userBucket = "user"
)

type userRepository struct {
	db *bbolt.DB
}

func NewUserRepository(db *bbolt.DB) user.Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindOne(_ context.Context, options *user.FindOneOptions) (*user.User, error) {
	return dbView(r.db, userBucket, func(bucket *bbolt.Bucket) (*user.User, error) {
		if idOption := options.IdOption; idOption != nil {
			jsonState := bucket.Get([]byte(idOption.Id))
			if jsonState == nil {
				return nil, nil
			}

			var usr *user.User
			if err := json.Unmarshal(jsonState, &usr); err != nil {
				return nil, fmt.Errorf("failed to unmarshal user: %w", err)
			}
			return usr, nil
		}

		if emailOption := options.EmailOption; emailOption != nil {
			var found *user.User
			c := bucket.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var usr *user.User
				if err := json.Unmarshal(v, &usr); err != nil {
					return nil, fmt.Errorf("failed to unmarshal user: %w", err)
				}
				if strings.EqualFold(usr.Email, emailOption.Email) {
					found = usr
					break
				}
			}
			return found, nil
		}

		return nil, nil
	})
}

func (r *userRepository) FindAll(_ context.Context, options *user.FindOptions) ([]*user.User, error) {
	return dbView(r.db, userBucket, func(bucket *bbolt.Bucket) (users []*user.User, err error) {
		var usersCount int
		var searchList searchindex.SearchList
		err = bucket.ForEach(func(k, v []byte) error {
			usersCount++
			var usr *user.User
			if err := json.Unmarshal(v, &usr); err != nil {
				return fmt.Errorf("failed to unmarshal user: %w", err)
			}

			var optionsLen int
			if len(options.Ids) != 0 {
				optionsLen++
				if slices.Contains(options.Ids, usr.Id) {
					users = append(users, usr)
					return nil
				}
			}

			if len(options.Query) != 0 {
				optionsLen++
				searchList = append(searchList, &searchindex.SearchItem{
					Key:  usr.Name,
					Data: usr,
				})
			}

			if optionsLen == 0 {
				users = append(users, usr)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if len(options.Query) != 0 {
			searchIndex := searchindex.NewSearchIndex(searchList, usersCount, nil, nil, true, nil)
			matches := searchIndex.Search(searchindex.SearchParams{
				Text:       options.Query,
				OutputSize: usersCount,
				Matching:   searchindex.Beginning,
			})
			for _, match := range matches {
				users = append(users, match.(*user.User))
			}
		}

		return users, nil
	})
}

func (r *userRepository) Create(_ context.Context, usr *user.User) (*user.User, error) {
	return dbUpdate(r.db, userBucket, func(bucket *bbolt.Bucket) (*user.User, error) {
		id := []byte(usr.Id)
		if bucket.Get(id) != nil {
			return nil, user.ErrUserIdAlreadyExists
		}

		jsonState, err := json.Marshal(usr)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal user: %w", err)
		}

		return usr, bucket.Put(id, jsonState)
	})
}
