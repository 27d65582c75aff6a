package introspect

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/apperrors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a backend available under the given kind. Called from
// each backend package's init(); thread-safe for concurrent init calls.
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

// Kinds returns the registered backend kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New creates a Discoverer for the given backend kind.
func New(ctx context.Context, kind, dsn string, logger *zap.Logger) (Discoverer, error) {
	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("introspect %q: %w", kind, apperrors.ErrUnknownBackend)
	}
	return factory(ctx, dsn, logger)
}
