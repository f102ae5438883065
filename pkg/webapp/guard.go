package webapp

import (
	"path"
	"strings"
	"sync"
)

// SecureResourceGuard is a pattern-whitelist resource guard. A resource is
// served only when its file name matches an accepted glob pattern and none
// of the blocked ones. It satisfies bootstrap.PatternGuard, so the installer
// can extend the accept list.
type SecureResourceGuard struct {
	mu      sync.RWMutex
	accept  []string
	blocked []string
}

// NewSecureResourceGuard seeds the guard with the common web asset
// extensions and blocks source files outright.
func NewSecureResourceGuard() *SecureResourceGuard {
	return &SecureResourceGuard{
		accept: []string{
			"*.css",
			"*.js",
			"*.png",
			"*.jpg",
			"*.jpeg",
			"*.gif",
			"*.ico",
			"*.html",
		},
		blocked: []string{
			"*.go",
			"*.mod",
			"*.sum",
		},
	}
}

// AddPattern whitelists an additional file name glob.
func (g *SecureResourceGuard) AddPattern(pattern string) {
	if pattern == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accept = append(g.accept, pattern)
}

// Accepts reports whether the named resource may be served. Only the final
// path element is matched, so nested asset paths work unchanged.
func (g *SecureResourceGuard) Accepts(name string) bool {
	base := path.Base(strings.TrimSuffix(name, "/"))
	if base == "." || base == "/" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, pattern := range g.blocked {
		if matched, err := path.Match(pattern, base); err == nil && matched {
			return false
		}
	}
	for _, pattern := range g.accept {
		if matched, err := path.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the accept list.
func (g *SecureResourceGuard) Patterns() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.accept))
	copy(out, g.accept)
	return out
}
