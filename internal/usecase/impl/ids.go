// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"develfood/config"
	deliverycontext "develfood/internal/delivery/context"
	"develfood/internal/domain/entity"
)

// nextID picks the id of a record about to be appended to records.
//
// With the length strategy ids repeat once anything has been deleted: after
// deleting id 1 from [1, 2], the next record gets id 2 again. Callers read
// and append without a lock, so concurrent creates can also share an id.
func nextID[R entity.Record](strategy string, records []R) int {
	if strategy == config.IDStrategyMax {
		highest := 0
		for _, r := range records {
			highest = max(highest, r.RecordID())
		}

		return highest + 1
	}

	return len(records) + 1
}

func idStrategy(cfg *config.Config) string {
	if cfg == nil {
		return config.IDStrategyLength
	}

	return cfg.Store.IDStrategy
}

// imageOrNull stores null for a falsy image.
func imageOrNull(image entity.Value) entity.Value {
	if !image.Truthy() {
		return entity.NullValue
	}

	return image
}

// imageOrPrevious keeps the stored image unless a truthy one was sent.
func imageOrPrevious(image, previous entity.Value) entity.Value {
	if !image.Truthy() {
		return previous
	}

	return image
}

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
