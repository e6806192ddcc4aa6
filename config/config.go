package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BoltDB             *BoltDB      `split_words:"true"`
	HttpServer         *HttpServer  `split_words:"true"`
	DebugServer        *DebugServer `split_words:"true"`
	Seed               *Seed        `split_words:"true"`
	CorsAllowedOrigins []string     `split_words:"true" default:"*"`
	DataLoaderMaxBatch int          `split_words:"true" default:"100"`
}

func Load(prefix string) (*Config, error) {
	prefix = strings.ToUpper(prefix)
	prefix = strings.ReplaceAll(prefix, "-", "_")
	prefix = strings.ReplaceAll(prefix, " ", "_")
	var config Config
	if err := envconfig.Process(prefix, &config); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	return &config, nil
}
