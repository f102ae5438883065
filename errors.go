package bootstrap

import "errors"

var (
	ErrNilApplication      = errors.New("application must not be nil")
	ErrNilSettings         = errors.New("settings must not be nil")
	ErrNilResponse         = errors.New("header response must not be nil")
	ErrNotInstalled        = errors.New("bootstrap is not installed on this application")
	ErrNoActiveApplication = errors.New("no application bound to this context")
	ErrInvalidVersion      = errors.New("toolkit version must be valid semver")
	ErrNilThemeProvider    = errors.New("theme provider must not be nil")
)

// errDuplicateInstallation signals that another caller committed settings for
// the same application first. Install swallows it; callers never see it.
var errDuplicateInstallation = errors.New("settings already installed for application")
