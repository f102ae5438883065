package bootstrap

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the toolkit version used when none is configured.
const DefaultVersion = "3.4.1"

// Settings holds the effective toolkit configuration for one application.
// A Settings value is immutable once installed; build it with NewSettings
// and hand it over to Install.
type Settings struct {
	version              *semver.Version
	useCDNResources      bool
	usePackagedResources bool
	updateResourceGuard  bool
	autoAppendResources  bool
	themeProvider        ThemeProvider
	selectors            SelectorSupport
	packager             ResourcePackager
}

// SettingsOption mutates settings under construction.
type SettingsOption func(*Settings) error

// NewSettings builds settings with sane defaults: packaged resources served
// by the host, resource guard updates and automatic resource appending
// enabled, CDN references disabled, base theme active.
func NewSettings(opts ...SettingsOption) (*Settings, error) {
	s := &Settings{
		version:              semver.MustParse(DefaultVersion),
		usePackagedResources: true,
		updateResourceGuard:  true,
		autoAppendResources:  true,
		themeProvider:        NewSingleThemeProvider(nil),
		selectors:            newSelectorSupport(),
		packager:             newAssetPackager(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("apply settings option: %w", err)
		}
	}

	return s, nil
}

// WithVersion sets the toolkit version used for CDN references.
func WithVersion(version string) SettingsOption {
	return func(s *Settings) error {
		v, err := semver.NewVersion(version)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidVersion, version)
		}
		s.version = v
		return nil
	}
}

// WithCDNResources switches the core references between CDN URLs and paths
// served by the host.
func WithCDNResources(use bool) SettingsOption {
	return func(s *Settings) error {
		s.useCDNResources = use
		return nil
	}
}

// WithPackagedResources controls whether Install mounts the packaged toolkit
// assets on web-capable hosts.
func WithPackagedResources(use bool) SettingsOption {
	return func(s *Settings) error {
		s.usePackagedResources = use
		return nil
	}
}

// WithResourceGuardUpdates controls whether Install whitelists the toolkit's
// file extensions on pattern-capable resource guards.
func WithResourceGuardUpdates(update bool) SettingsOption {
	return func(s *Settings) error {
		s.updateResourceGuard = update
		return nil
	}
}

// WithAutoAppendResources controls whether Install registers the component
// instantiation listener that appends the toolkit references to every new
// component.
func WithAutoAppendResources(auto bool) SettingsOption {
	return func(s *Settings) error {
		s.autoAppendResources = auto
		return nil
	}
}

// WithThemeProvider replaces the default single base theme provider.
func WithThemeProvider(p ThemeProvider) SettingsOption {
	return func(s *Settings) error {
		if p == nil {
			return ErrNilThemeProvider
		}
		s.themeProvider = p
		return nil
	}
}

// WithSelectorSupport replaces the selector support collaborator, mainly
// for tests.
func WithSelectorSupport(sel SelectorSupport) SettingsOption {
	return func(s *Settings) error {
		if sel != nil {
			s.selectors = sel
		}
		return nil
	}
}

// WithResourcePackager replaces the packaged asset installer, mainly for
// tests.
func WithResourcePackager(p ResourcePackager) SettingsOption {
	return func(s *Settings) error {
		if p != nil {
			s.packager = p
		}
		return nil
	}
}

func (s *Settings) Version() string { return s.version.String() }
func (s *Settings) UseCDNResources() bool { return s.useCDNResources }
func (s *Settings) UsePackagedResources() bool { return s.usePackagedResources }
func (s *Settings) UpdateResourceGuard() bool { return s.updateResourceGuard }
func (s *Settings) AutoAppendResources() bool { return s.autoAppendResources }
func (s *Settings) ThemeProvider() ThemeProvider {
	return s.themeProvider
}

// CSSReference returns the core stylesheet reference, CDN or host-served
// depending on the settings.
func (s *Settings) CSSReference() ResourceReference {
	if s.useCDNResources {
		return cdnReference(KindCSS, s.version, assetCSS)
	}
	return packagedReference(KindCSS, assetCSS)
}

// JSReference returns the core script reference, CDN or host-served
// depending on the settings.
func (s *Settings) JSReference() ResourceReference {
	if s.useCDNResources {
		return cdnReference(KindJS, s.version, assetJS)
	}
	return packagedReference(KindJS, assetJS)
}
