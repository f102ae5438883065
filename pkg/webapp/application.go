// Package webapp is a minimal web application host satisfying the
// capability surface the bootstrap package installs into. It exists for
// examples and tests; real frameworks adapt their own application type to
// the same interfaces.
package webapp

import (
	"sync"

	"github.com/shuldan/bootstrap"
	"go.uber.org/zap"
)

// Application is a reference implementation of bootstrap.WebApplication.
type Application struct {
	name   string
	logger *zap.Logger
	markup markupSettings
	guard  bootstrap.ResourceGuard

	mu        sync.RWMutex
	listeners []bootstrap.ComponentListener
	mounts    map[string]bootstrap.ResourceReference
}

// New builds an application host. The default host carries a
// SecureResourceGuard and a no-op logger.
func New(opts ...Option) (*Application, error) {
	a := &Application{
		name:   "webapp",
		logger: zap.NewNop(),
		guard:  NewSecureResourceGuard(),
		mounts: make(map[string]bootstrap.ResourceReference),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *Application) Name() string { return a.name }

func (a *Application) MarkupSettings() bootstrap.MarkupSettings { return &a.markup }

func (a *Application) ResourceGuard() bootstrap.ResourceGuard { return a.guard }

func (a *Application) AddComponentListener(l bootstrap.ComponentListener) {
	if l == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, l)
}

// MountResource registers a static resource. The mount table only records
// the mapping; serving it is up to the embedding HTTP layer.
func (a *Application) MountResource(path string, ref bootstrap.ResourceReference) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, replaced := a.mounts[path]; replaced {
		a.logger.Debug("replacing mounted resource", zap.String("path", path))
	}
	a.mounts[path] = ref
}

// MountedResource returns the resource mounted at path.
func (a *Application) MountedResource(path string) (bootstrap.ResourceReference, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ref, ok := a.mounts[path]
	return ref, ok
}

// Mounts returns a copy of the mount table.
func (a *Application) Mounts() map[string]bootstrap.ResourceReference {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]bootstrap.ResourceReference, len(a.mounts))
	for path, ref := range a.mounts {
		out[path] = ref
	}
	return out
}

// NotifyComponentCreated runs every registered instantiation listener
// against c. Hosts call it from their component constructor path.
func (a *Application) NotifyComponentCreated(c bootstrap.Component) {
	a.mu.RLock()
	listeners := make([]bootstrap.ComponentListener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.RUnlock()

	for _, l := range listeners {
		l(c)
	}
}

// ListenerCount reports how many instantiation listeners are registered.
func (a *Application) ListenerCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.listeners)
}

type markupSettings struct {
	mu    sync.RWMutex
	strip bool
}

func (m *markupSettings) SetStripComponentTags(strip bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strip = strip
}

func (m *markupSettings) StripComponentTags() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strip
}
