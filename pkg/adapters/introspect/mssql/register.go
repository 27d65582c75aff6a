package mssql

import (
	"context"

	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/adapters/introspect"
)

func init() {
	introspect.Register("mssql", func(ctx context.Context, dsn string, logger *zap.Logger) (introspect.Discoverer, error) {
		return NewDiscoverer(ctx, dsn, logger)
	})
}
