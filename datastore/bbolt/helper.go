package bbolt

import (
	"go.etcd.io/bbolt"
)

func dbView[T any](db *bbolt.DB, bucketName string, callback func(bucket *bbolt.Bucket) (T, error)) (result T, err error) {
	err = db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		result, err = callback(bucket)
		return err
	})
	return result, err
}

func dbUpdate[T any](db *bbolt.DB, bucketName string, callback func(bucket *bbolt.Bucket) (T, error)) (result T, err error) {
	err = db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		result, err = callback(bucket)
		return err
	})
	return result, err
}
