package bootstrap

import (
	"errors"
	"sync"
)

type mockMarkupSettings struct {
	strip bool
}

func (m *mockMarkupSettings) SetStripComponentTags(strip bool) { m.strip = strip }
func (m *mockMarkupSettings) StripComponentTags() bool { return m.strip }

type mockApplication struct {
	name   string
	markup mockMarkupSettings
	guard  ResourceGuard

	mu        sync.Mutex
	listeners []ComponentListener
}

func newMockApp(name string) *mockApplication {
	return &mockApplication{name: name}
}

func (a *mockApplication) Name() string { return a.name }
func (a *mockApplication) MarkupSettings() MarkupSettings { return &a.markup }
func (a *mockApplication) ResourceGuard() ResourceGuard { return a.guard }

func (a *mockApplication) AddComponentListener(l ComponentListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, l)
}

func (a *mockApplication) listenerCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.listeners)
}

func (a *mockApplication) notify(c Component) {
	a.mu.Lock()
	listeners := make([]ComponentListener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()
	for _, l := range listeners {
		l(c)
	}
}

type mockWebApplication struct {
	mockApplication
	mounts map[string]ResourceReference
}

func newMockWebApp(name string) *mockWebApplication {
	return &mockWebApplication{
		mockApplication: mockApplication{name: name},
		mounts:          make(map[string]ResourceReference),
	}
}

func (a *mockWebApplication) MountResource(path string, ref ResourceReference) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mounts[path] = ref
}

func (a *mockWebApplication) mountCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mounts)
}

// mockPatternGuard records added patterns and accepts nothing.
type mockPatternGuard struct {
	patterns []string
}

func (g *mockPatternGuard) Accepts(string) bool { return false }
func (g *mockPatternGuard) AddPattern(pattern string) { g.patterns = append(g.patterns, pattern) }

// fixedGuard is a non-extensible guard; the installer must leave it alone.
type fixedGuard struct {
	accepts bool
}

func (g *fixedGuard) Accepts(string) bool { return g.accepts }

type mockHeaderResponse struct {
	refs []ResourceReference
}

func (r *mockHeaderResponse) Render(ref ResourceReference) { r.refs = append(r.refs, ref) }

type mockComponent struct {
	app      Application
	response HeaderResponse
}

func (c *mockComponent) Application() Application { return c.app }
func (c *mockComponent) HeaderResponse() HeaderResponse { return c.response }

type mockSelectorSupport struct {
	preinstalled bool
	installs     int
	failWith     error
}

func (s *mockSelectorSupport) IsInstalled(Application) bool { return s.preinstalled }

func (s *mockSelectorSupport) Install(Application) error {
	s.installs++
	return s.failWith
}

type mockPackager struct {
	installs int
	failWith error
}

func (p *mockPackager) Install(WebApplication) error {
	p.installs++
	return p.failWith
}

var errTest = errors.New("test error")
