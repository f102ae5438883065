package webapp

import (
	"errors"

	"github.com/shuldan/bootstrap"
	"go.uber.org/zap"
)

var ErrAppNameEmpty = errors.New("application name must not be empty")

// Option mutates an Application under construction.
type Option func(*Application) error

func WithName(name string) Option {
	return func(a *Application) error {
		if name == "" {
			return ErrAppNameEmpty
		}
		a.name = name
		return nil
	}
}

// WithResourceGuard replaces the default SecureResourceGuard. A nil guard
// means the host does not guard resource access at all.
func WithResourceGuard(g bootstrap.ResourceGuard) Option {
	return func(a *Application) error {
		a.guard = g
		return nil
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Application) error {
		if l == nil {
			l = zap.NewNop()
		}
		a.logger = l
		return nil
	}
}
