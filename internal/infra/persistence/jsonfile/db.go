// Package jsonfile implements the persistence layer on top of a single JSON document on disk.
// The document maps collection names to arrays of records, e.g. {"products": [...], "orders": [...]}.
package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"develfood/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection names of the develfood document.
const (
	CollectionUsers       = "users"
	CollectionRestaurants = "restaurants"
	CollectionProducts    = "products"
	CollectionPromotions  = "promotions"
	CollectionOrders      = "orders"
)

// DB is the file-backed record store. Every mutation is written to disk before it returns.
type DB struct {
	mu   sync.RWMutex
	path string
	doc  map[string]json.RawMessage
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the document configured in store.path.
func New(params Params) (*DB, error) {
	db, err := Open(params.Config.Store.Path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("Record store opened",
				slog.String("path", db.path),
				slog.Int("collections", db.collectionCount()),
			)

			return nil
		},
	})

	return db, nil
}

// Open loads path into memory. A missing or empty file yields an empty document,
// created on the first write.
func Open(path string) (*DB, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	return &DB{path: path, doc: doc}, nil
}

// Path returns the file backing the store.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) collectionCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.doc)
}

// read hands the raw collection to fn under the read lock.
func (db *DB) read(ctx context.Context, name string, fn func(raw json.RawMessage) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(db.doc[name])
}

// write replaces a collection with whatever fn returns and persists the document.
// If fn fails, or the file cannot be written, memory is left untouched.
func (db *DB) write(ctx context.Context, name string, fn func(raw json.RawMessage) (json.RawMessage, error)) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	updated, err := fn(db.doc[name])
	if err != nil {
		return err
	}

	next := make(map[string]json.RawMessage, len(db.doc)+1)
	for k, v := range db.doc {
		next[k] = v
	}
	next[name] = updated

	if err := writeDocument(db.path, next); err != nil {
		return err
	}
	db.doc = next

	return nil
}

func readDocument(path string) (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}

		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return doc, nil
}

// writeDocument persists through a temp file so a crash never leaves a truncated document.
func writeDocument(path string, doc map[string]json.RawMessage) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode document")
	}

	temp := path + ".tmp"
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", temp)
	}

	return errors.WithStack(os.Rename(temp, path))
}
