package storage

import (
	"errors"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/promash/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	archive, err := NewArchive(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })
	return archive
}

func encodeRecipe(t *testing.T, name string, hops int) []byte {
	t.Helper()
	f := &codec.File{}
	f.Header.Name = name
	f.Mash.RecipeSimpleMashType = codec.MashSingleStep
	for i := 0; i < hops; i++ {
		f.Hops = append(f.Hops, codec.Hop{Name: "Cascade", Type: codec.HopAroma})
	}
	data, err := codec.NewRecipeCodec().Encode(f)
	require.NoError(t, err)
	return data
}

func TestArchive_PutGet(t *testing.T) {
	archive := newTestArchive(t)
	data := encodeRecipe(t, "Dry Stout", 1)

	id, file, err := archive.Put(data)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)
	assert.Equal(t, "Dry Stout", file.Header.Name)

	got, err := archive.Get(id)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	loaded, err := archive.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "Dry Stout", loaded.Header.Name)
	assert.Len(t, loaded.Hops, 1)
}

func TestArchive_PutRejectsInvalidFile(t *testing.T) {
	archive := newTestArchive(t)
	data := encodeRecipe(t, "Short", 0)

	_, _, err := archive.Put(data[:len(data)-1])
	assert.True(t, errors.Is(err, codec.ErrTruncatedInput))

	count, err := archive.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestArchive_GetMissing(t *testing.T) {
	archive := newTestArchive(t)

	_, err := archive.Get(ksuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = archive.Load(ksuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchive_Delete(t *testing.T) {
	archive := newTestArchive(t)

	id, _, err := archive.Put(encodeRecipe(t, "Mild", 0))
	require.NoError(t, err)

	require.NoError(t, archive.Delete(id))

	_, err = archive.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, archive.Delete(id), ErrNotFound)
}

func TestArchive_List(t *testing.T) {
	archive := newTestArchive(t)

	entries, err := archive.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	want := map[ksuid.KSUID]string{}
	for _, name := range []string{"Pale Ale", "Porter", "Saison"} {
		id, _, err := archive.Put(encodeRecipe(t, name, 2))
		require.NoError(t, err)
		want[id] = name
	}

	entries, err = archive.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, entry := range entries {
		assert.Equal(t, want[entry.ID], entry.Name)
		assert.Equal(t, entry.ID.Time(), entry.Created)
		assert.Equal(t, codec.HeaderSize+codec.StyleSize+2*codec.HopSize+codec.YeastSize+codec.WaterSize+codec.MashSize, entry.Size)
		if i > 0 {
			assert.True(t, entries[i-1].ID.String() < entry.ID.String(), "entries not in key order")
		}
	}

	count, err := archive.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestArchive_Reopen(t *testing.T) {
	dir := t.TempDir()

	archive, err := NewArchive(dir, nil)
	require.NoError(t, err)
	id, _, err := archive.Put(encodeRecipe(t, "Bock", 0))
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	archive, err = NewArchive(dir, codec.NewRecipeCodec())
	require.NoError(t, err)
	defer archive.Close()

	file, err := archive.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "Bock", file.Header.Name)
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("recipe0"), prefixUpperBound([]byte("recipe/")))
	assert.Equal(t, []byte{0x01}, prefixUpperBound([]byte{0x00, 0xff}))
	assert.Nil(t, prefixUpperBound([]byte{0xff, 0xff}))
}
