package manifest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// DefaultMaxAttempts bounds the read-modify-write retries of a Registrar.
const DefaultMaxAttempts = 5

// ErrConcurrentUpdate is returned when the manifest kept changing underneath
// a registration.
var ErrConcurrentUpdate = errors.New("manifest updated concurrently")

// Registrar serialises theme registrations against one manifest file.
//
// Callers in the same process are queued on a mutex. Each registration is an
// optimistic read-modify-write: if the file changes between the read and the
// write the whole cycle is retried rather than overwriting the other writer.
type Registrar struct {
	Path        string
	MaxAttempts int
	DryRun      bool
	Logger      hclog.Logger

	mu sync.Mutex

	// beforeWrite runs between load and write; tests use it to race the file.
	beforeWrite func(attempt int)
}

// NewRegistrar returns a registrar for the manifest at path.
func NewRegistrar(path string, logger hclog.Logger) *Registrar {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Registrar{
		Path:        path,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      logger,
	}
}

// Register adds e to the manifest unless an entry with the same label or id
// is already present. It reports whether the entry was added. In dry-run mode
// nothing is written but the result reflects what would happen.
func (r *Registrar) Register(ctx context.Context, e Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := r.logger().With("label", e.Label, "manifest", r.Path)

	attempts := r.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		m, err := Load(r.Path)
		if err != nil {
			return false, err
		}

		added, err := m.Register(e)
		if err != nil {
			return false, err
		}
		if !added {
			logger.Debug("theme already registered")
			return false, nil
		}
		if r.DryRun {
			logger.Debug("dry run, manifest not written")
			return true, nil
		}

		if r.beforeWrite != nil {
			r.beforeWrite(attempt)
		}

		err = m.saveIfUnchanged()
		if errors.Is(err, errChanged) {
			logger.Warn("manifest changed during update, retrying", "attempt", attempt)
			continue
		}
		if err != nil {
			return false, err
		}

		logger.Debug("theme registered", "id", e.ID, "attempt", attempt)
		return true, nil
	}

	return false, fmt.Errorf("%w: %s after %d attempts", ErrConcurrentUpdate, r.Path, attempts)
}

// Themes lists the registered entries.
func (r *Registrar) Themes() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := Load(r.Path)
	if err != nil {
		return nil, err
	}
	return m.Themes()
}

func (r *Registrar) logger() hclog.Logger {
	if r.Logger == nil {
		return hclog.NewNullLogger()
	}
	return r.Logger
}
