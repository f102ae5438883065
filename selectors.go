package bootstrap

import "sync"

// SelectorSupport installs the selector engine resources the toolkit's
// scripts depend on. Install is expected to be idempotent per host;
// IsInstalled lets callers skip the call entirely.
type SelectorSupport interface {
	IsInstalled(app Application) bool
	Install(app Application) error
}

// selectorSupport is the default implementation. It mounts the selector
// script on web-capable hosts and tracks installation per host identity.
type selectorSupport struct {
	mu        sync.Mutex
	installed map[Application]struct{}
}

func newSelectorSupport() *selectorSupport {
	return &selectorSupport{
		installed: make(map[Application]struct{}),
	}
}

const selectorScriptPath = PackagedMountPrefix + "/js/selectors.min.js"

func (s *selectorSupport) IsInstalled(app Application) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.installed[app]
	return ok
}

func (s *selectorSupport) Install(app Application) error {
	if app == nil {
		return ErrNilApplication
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.installed[app]; ok {
		return nil
	}

	if web, ok := app.(WebApplication); ok {
		web.MountResource(selectorScriptPath, ResourceReference{
			Kind: KindJS,
			Path: selectorScriptPath,
		})
	}

	s.installed[app] = struct{}{}
	return nil
}
