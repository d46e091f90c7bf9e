// Package storage keeps an archive of raw recipe files in pebble.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/promash/pkg/codec"
)

var recipePrefix = []byte("recipe/")

// ErrNotFound is returned when no recipe is stored under an id.
var ErrNotFound = errors.New("recipe not found")

// Decoder validates and decodes recipe files.
type Decoder interface {
	Decode(data []byte) (*codec.File, error)
}

// Entry summarises one archived recipe.
type Entry struct {
	ID      ksuid.KSUID `json:"id"`
	Name    string      `json:"name"`
	Created time.Time   `json:"created"`
	Size    int         `json:"size"`
}

// Archive stores the raw bytes of recipe files keyed by ksuid. Files are
// decoded before they are accepted, so every stored value is well formed.
type Archive struct {
	db      *pebble.DB
	decoder Decoder
}

// NewArchive opens (or creates) the archive at path.
func NewArchive(path string, decoder Decoder) (*Archive, error) {
	if decoder == nil {
		decoder = codec.NewRecipeCodec()
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db, decoder: decoder}, nil
}

func recipeKey(id ksuid.KSUID) []byte {
	return append(bytes.Clone(recipePrefix), id.String()...)
}

// prefixUpperBound returns the smallest key greater than every key with prefix.
func prefixUpperBound(prefix []byte) []byte {
	upper := bytes.Clone(prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper[:i+1]
		}
	}
	return nil
}

// Put decodes data and stores it under a new id.
func (a *Archive) Put(data []byte) (ksuid.KSUID, *codec.File, error) {
	file, err := a.decoder.Decode(data)
	if err != nil {
		return ksuid.Nil, nil, err
	}

	id := ksuid.New()
	if err := a.db.Set(recipeKey(id), data, pebble.Sync); err != nil {
		return ksuid.Nil, nil, fmt.Errorf("failed to store recipe: %w", err)
	}
	return id, file, nil
}

// Get returns a copy of the raw file stored under id.
func (a *Archive) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := a.db.Get(recipeKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	defer closer.Close()

	return bytes.Clone(data), nil
}

// Load returns the decoded recipe stored under id.
func (a *Archive) Load(id ksuid.KSUID) (*codec.File, error) {
	data, err := a.Get(id)
	if err != nil {
		return nil, err
	}
	return a.decoder.Decode(data)
}

// Delete removes the recipe stored under id.
func (a *Archive) Delete(id ksuid.KSUID) error {
	key := recipeKey(id)
	_, closer, err := a.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read recipe: %w", err)
	}
	closer.Close()

	if err := a.db.Delete(key, pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// List returns every archived recipe, oldest first.
func (a *Archive) List() ([]Entry, error) {
	entries := []Entry{}
	err := a.scan(func(id ksuid.KSUID, value []byte) {
		entry := Entry{ID: id, Created: id.Time(), Size: len(value)}
		if file, err := a.decoder.Decode(value); err == nil {
			entry.Name = file.Header.Name
		}
		entries = append(entries, entry)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of archived recipes.
func (a *Archive) Count() (int, error) {
	n := 0
	err := a.scan(func(ksuid.KSUID, []byte) { n++ })
	return n, err
}

// scan visits recipes in key order. Encoded ksuids sort by creation time.
func (a *Archive) scan(fn func(id ksuid.KSUID, value []byte)) error {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: recipePrefix,
		UpperBound: prefixUpperBound(recipePrefix),
	})
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.Parse(string(iter.Key()[len(recipePrefix):]))
		if err != nil {
			return fmt.Errorf("invalid archive key %q: %w", iter.Key(), err)
		}
		fn(id, iter.Value())
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
