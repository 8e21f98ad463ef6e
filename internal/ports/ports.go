// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The clip service depends only on these abstractions,
// so tests can substitute in-memory stores, fake clipboards, and zero-delay
// sleepers without touching the OS.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/keyclip-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.keyclip/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// EntryStore persists credential entries. FindEntryByPath returns (nil, nil)
// when no entry exists at the path.
type EntryStore interface {
	FindEntryByPath(ctx context.Context, path string) (*domain.Entry, error)
	Save(ctx context.Context, entry *domain.Entry) error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Clipboard writes text to the process-wide system clipboard. Copying the
// empty string clears it. Copy errors preserve the helper's exit status when
// the platform tool fails.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Sleeper suspends the calling goroutine. Injected so the clipboard-clearing
// countdown can run without real delays in tests.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
