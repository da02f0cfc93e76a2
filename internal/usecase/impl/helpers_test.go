package impl

import (
	"io"
	"log/slog"

	"develfood/config"
	"develfood/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(idStrategy string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.IDStrategy = idStrategy

	return cfg
}

func str(s string) entity.Value {
	return entity.StringValue(s)
}

func raw(literal string) entity.Value {
	return entity.Value(literal)
}
