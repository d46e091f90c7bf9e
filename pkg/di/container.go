// Package di provides dependency injection container
package di

import (
	"fmt"

	"github.com/ssargent/promash/pkg/api"
	"github.com/ssargent/promash/pkg/codec"
	"github.com/ssargent/promash/pkg/config"
	"github.com/ssargent/promash/pkg/storage"
	"go.uber.org/zap"
)

// ArchiveOpener opens the recipe archive stored in dir
type ArchiveOpener func(dir string, decoder storage.Decoder) (*storage.Archive, error)

// Container holds all the dependencies for the application
type Container struct {
	serverFactory api.ServerFactory
	archiveOpener ArchiveOpener
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory: api.NewServerFactory(),
		archiveOpener: storage.NewArchive,
	}
}

// NewCodec builds a recipe codec from the decode settings in cfg
func (c *Container) NewCodec(cfg *config.Config, logger *zap.Logger) (*codec.RecipeCodec, error) {
	opts, err := cfg.CodecOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid decode settings: %w", err)
	}
	opts = append(opts, codec.WithLogger(logger))
	return codec.NewRecipeCodec(opts...), nil
}

// OpenArchive opens the archive at dir
func (c *Container) OpenArchive(dir string, decoder storage.Decoder) (*storage.Archive, error) {
	return c.archiveOpener(dir, decoder)
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// SetArchiveOpener allows overriding how archives are opened (for testing)
func (c *Container) SetArchiveOpener(opener ArchiveOpener) {
	c.archiveOpener = opener
}
