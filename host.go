package bootstrap

// Application is the host object the toolkit installs into. Implementations
// are compared by identity, so each host must be a distinct pointer value.
type Application interface {
	Name() string

	// MarkupSettings returns the host's markup rendering settings.
	MarkupSettings() MarkupSettings

	// ResourceGuard returns the guard deciding which packaged resources may
	// be served, or nil if the host does not guard resource access.
	ResourceGuard() ResourceGuard

	// AddComponentListener registers a listener invoked for every component
	// the host instantiates.
	AddComponentListener(l ComponentListener)
}

// WebApplication is the capability an Application exposes when it serves
// static resources over HTTP. Packaged toolkit assets are only mounted on
// hosts that implement it.
type WebApplication interface {
	Application

	// MountResource makes the referenced resource available at path.
	// Mounting the same path twice replaces the previous reference.
	MountResource(path string, ref ResourceReference)
}

// MarkupSettings is the slice of host configuration the installer touches.
type MarkupSettings interface {
	SetStripComponentTags(strip bool)
	StripComponentTags() bool
}

// ResourceGuard decides whether a packaged resource may be served.
type ResourceGuard interface {
	Accepts(name string) bool
}

// PatternGuard is a ResourceGuard that can be extended with glob patterns.
// Guards that do not implement it are left untouched by the installer.
type PatternGuard interface {
	ResourceGuard
	AddPattern(pattern string)
}

// ComponentListener is notified by the host for every component it creates.
type ComponentListener func(c Component)

// Component is a UI component instantiated by the host.
type Component interface {
	Application() Application
	HeaderResponse() HeaderResponse
}

// HeaderResponse collects the resource references contributed to a rendered
// page's header section.
type HeaderResponse interface {
	Render(ref ResourceReference)
}
