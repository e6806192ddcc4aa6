package config

import (
	"time"
)

type BoltDB struct {
	Path    string        `default:"data/reviewgraph.db"`
	Timeout time.Duration `default:"5s"`
}
