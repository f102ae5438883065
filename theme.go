package bootstrap

// Theme contributes additional resource references on top of the core
// toolkit stylesheet, rendered between the toolkit CSS and JS.
type Theme interface {
	Name() string
	References() []ResourceReference
}

// ThemeProvider selects the active theme and lists the available ones.
type ThemeProvider interface {
	ActiveTheme() Theme
	Themes() []Theme
}

type theme struct {
	name string
	refs []ResourceReference
}

// NewTheme builds a theme from a fixed reference list.
func NewTheme(name string, refs ...ResourceReference) Theme {
	return &theme{name: name, refs: refs}
}

func (t *theme) Name() string { return t.name }

func (t *theme) References() []ResourceReference {
	out := make([]ResourceReference, len(t.refs))
	copy(out, t.refs)
	return out
}

// BaseTheme is the plain toolkit look. It contributes no references of its
// own; the core stylesheet already carries it.
func BaseTheme() Theme {
	return NewTheme("bootstrap")
}

type singleThemeProvider struct {
	theme Theme
}

// NewSingleThemeProvider returns a provider that always serves the given
// theme. A nil theme falls back to the base theme.
func NewSingleThemeProvider(t Theme) ThemeProvider {
	if t == nil {
		t = BaseTheme()
	}
	return &singleThemeProvider{theme: t}
}

func (p *singleThemeProvider) ActiveTheme() Theme { return p.theme }

func (p *singleThemeProvider) Themes() []Theme { return []Theme{p.theme} }
