package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/promash/pkg/codec"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodeFailure describes where a recipe file failed to decode
type DecodeFailure struct {
	Kind   codec.ErrorKind `json:"kind"`
	State  codec.State     `json:"state,omitempty"`
	Record string          `json:"record,omitempty"`
	Index  int             `json:"index"`
	Field  string          `json:"field,omitempty"`
	Path   string          `json:"path,omitempty"`
	Offset int             `json:"offset"`
}

// StoredRecipe is returned when a recipe is archived or fetched by id
type StoredRecipe struct {
	ID     ksuid.KSUID `json:"id"`
	Recipe *codec.File `json:"recipe"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	MaxBodyBytes int64

	// Registry receives the server metrics and backs /metrics. A fresh
	// registry is created when nil.
	Registry *prometheus.Registry
}

// DefaultMaxBodyBytes bounds uploaded recipe files. Real files are a few
// dozen kilobytes.
const DefaultMaxBodyBytes = 8 << 20
