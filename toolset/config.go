package toolset

import (
	"errors"
	"fmt"

	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/manuals"
)

// ErrConfiguration indicates an invalid or incomplete configuration.
var ErrConfiguration = errors.New("configuration error")

// Config holds the host capabilities the toolset reads from.
type Config struct {
	// Registry is the host's live symbol table. Required.
	Registry host.Registry

	// Resolver is the host's definition-finding facility. Required.
	Resolver host.Resolver

	// Sources provides source unit text. Required.
	Sources host.Sources

	// Docs navigates the documentation corpus. Required.
	Docs *manuals.Navigator

	// Evaluator is the host's evaluation primitive. Optional; when nil,
	// the evaluation tool is not registered at all.
	Evaluator host.Evaluator

	// Logger receives toolset events. Optional.
	Logger Logger
}

// Validate checks that all required capabilities are present.
func (c *Config) Validate() error {
	if c.Registry == nil {
		return fmt.Errorf("%w: Registry is required", ErrConfiguration)
	}
	if c.Resolver == nil {
		return fmt.Errorf("%w: Resolver is required", ErrConfiguration)
	}
	if c.Sources == nil {
		return fmt.Errorf("%w: Sources is required", ErrConfiguration)
	}
	if c.Docs == nil {
		return fmt.Errorf("%w: Docs is required", ErrConfiguration)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}

// Logger is an optional interface for observability.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}
