package config

import (
	"fmt"
)

type HttpServer struct {
	Host            string `default:""`
	Port            uint16 `default:"8080"`
	GraphiQLEnabled bool   `default:"true" split_words:"true"`
}

func (s *HttpServer) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
