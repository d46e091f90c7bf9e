package di

import (
	"errors"
	"testing"

	"github.com/ssargent/promash/pkg/codec"
	"github.com/ssargent/promash/pkg/config"
	"github.com/ssargent/promash/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer()
	assert.NotNil(t, c.GetServerFactory())
	assert.NotNil(t, c.GetServerFactory().CreateServerStarter())
}

func TestContainer_NewCodec(t *testing.T) {
	c := NewContainer()

	cfg := config.DefaultConfig()
	rc, err := c.NewCodec(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, rc)

	cfg.Decode.Charset = "klingon"
	_, err = c.NewCodec(cfg, zap.NewNop())
	assert.ErrorContains(t, err, "invalid decode settings")
}

func TestContainer_OpenArchive(t *testing.T) {
	c := NewContainer()

	archive, err := c.OpenArchive(t.TempDir(), codec.NewRecipeCodec())
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	sentinel := errors.New("no archive for you")
	c.SetArchiveOpener(func(string, storage.Decoder) (*storage.Archive, error) {
		return nil, sentinel
	})
	_, err = c.OpenArchive(t.TempDir(), nil)
	assert.ErrorIs(t, err, sentinel)
}
