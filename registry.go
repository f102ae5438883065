package bootstrap

import "sync"

// settingsRegistry maps host applications, by identity, to the settings
// installed on them. Entries are created exactly once and never replaced or
// removed; the host's process lifetime bounds the entry's lifetime.
type settingsRegistry struct {
	mu      sync.RWMutex
	entries map[Application]*Settings
}

func newSettingsRegistry() *settingsRegistry {
	return &settingsRegistry{
		entries: make(map[Application]*Settings),
	}
}

func (r *settingsRegistry) get(app Application) (*Settings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[app]
	return s, ok
}

// put commits settings for app. A second writer for the same app loses with
// errDuplicateInstallation; the existing entry is kept untouched.
func (r *settingsRegistry) put(app Application, s *Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[app]; exists {
		return errDuplicateInstallation
	}
	r.entries[app] = s
	return nil
}

var registry = newSettingsRegistry()
