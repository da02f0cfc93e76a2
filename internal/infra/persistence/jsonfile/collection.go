package jsonfile

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
)

// collection is a typed view over one array of the document.
type collection[T any] struct {
	db   *DB
	name string
}

func newCollection[T any](db *DB, name string) collection[T] {
	return collection[T]{db: db, name: name}
}

// all returns every record in store order; never nil.
func (c collection[T]) all(ctx context.Context) ([]T, error) {
	var records []T
	err := c.db.read(ctx, c.name, func(raw json.RawMessage) error {
		var err error
		records, err = decodeRecords[T](c.name, raw)

		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// find returns the first record matching pred.
func (c collection[T]) find(ctx context.Context, pred func(T) bool) (T, bool, error) {
	var zero T

	records, err := c.all(ctx)
	if err != nil {
		return zero, false, err
	}

	idx := slices.IndexFunc(records, pred)
	if idx < 0 {
		return zero, false, nil
	}

	return records[idx], true, nil
}

// append adds record at the end of the collection.
func (c collection[T]) append(ctx context.Context, record T) error {
	return c.db.write(ctx, c.name, func(raw json.RawMessage) (json.RawMessage, error) {
		records, err := decodeRecords[T](c.name, raw)
		if err != nil {
			return nil, err
		}

		return encodeRecords(c.name, append(records, record))
	})
}

// replace swaps the first record matching pred for record.
// It reports false, and writes nothing, when no record matches.
func (c collection[T]) replace(ctx context.Context, pred func(T) bool, record T) (bool, error) {
	found := false
	err := c.db.write(ctx, c.name, func(raw json.RawMessage) (json.RawMessage, error) {
		records, err := decodeRecords[T](c.name, raw)
		if err != nil {
			return nil, err
		}

		idx := slices.IndexFunc(records, pred)
		if idx < 0 {
			return nil, errNoMatch
		}
		records[idx] = record
		found = true

		return encodeRecords(c.name, records)
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}

	return found, err
}

// remove deletes every record matching pred.
// It reports false, and writes nothing, when no record matches.
func (c collection[T]) remove(ctx context.Context, pred func(T) bool) (bool, error) {
	found := false
	err := c.db.write(ctx, c.name, func(raw json.RawMessage) (json.RawMessage, error) {
		records, err := decodeRecords[T](c.name, raw)
		if err != nil {
			return nil, err
		}

		kept := slices.DeleteFunc(records, pred)
		if len(kept) == len(records) {
			return nil, errNoMatch
		}
		found = true

		return encodeRecords(c.name, kept)
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}

	return found, err
}

var errNoMatch = errors.New("no matching record")

func decodeRecords[T any](name string, raw json.RawMessage) ([]T, error) {
	records := []T{}
	if len(raw) == 0 || string(raw) == "null" {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(err, "decode collection %s", name)
	}

	return records, nil
}

func encodeRecords[T any](name string, records []T) (json.RawMessage, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrapf(err, "encode collection %s", name)
	}

	return data, nil
}
