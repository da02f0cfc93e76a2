package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"

	"github.com/pkg/errors"
)

func pointers[T any](records []T) []*T {
	out := make([]*T, len(records))
	for i := range records {
		out[i] = &records[i]
	}

	return out
}

func hasID[T entity.Record](id int) func(T) bool {
	return func(record T) bool { return record.RecordID() == id }
}

func findByID[T entity.Record](ctx context.Context, c collection[T], id int) (*T, error) {
	record, ok, err := c.find(ctx, hasID[T](id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return &record, nil
}

// replaceByID updates the first record sharing record's id.
func replaceByID[T entity.Record](ctx context.Context, c collection[T], record T) error {
	ok, err := c.replace(ctx, hasID[T](record.RecordID()), record)
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", c.name)
	}
	if !ok {
		return repository.ErrRecordNotFound
	}

	return nil
}

// removeByID drops every record carrying id. Ids are not guaranteed unique.
func removeByID[T entity.Record](ctx context.Context, c collection[T], id int) error {
	ok, err := c.remove(ctx, hasID[T](id))
	if err != nil {
		return errors.Wrapf(err, "failed to delete from %s", c.name)
	}
	if !ok {
		return repository.ErrRecordNotFound
	}

	return nil
}
