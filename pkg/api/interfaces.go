// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/promash/pkg/codec"
	"github.com/ssargent/promash/pkg/storage"
	"go.uber.org/zap"
)

// RecipeDecoder decodes raw recipe files
type RecipeDecoder interface {
	Decode(data []byte) (*codec.File, error)
}

// RecipeArchive defines the archive operations used by the API
type RecipeArchive interface {
	Put(data []byte) (ksuid.KSUID, *codec.File, error)
	Get(id ksuid.KSUID) ([]byte, error)
	Load(id ksuid.KSUID) (*codec.File, error)
	Delete(id ksuid.KSUID) error
	List() ([]storage.Entry, error)
	Count() (int, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, decoder RecipeDecoder, archive RecipeArchive, config ServerConfig, logger *zap.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
