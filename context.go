package bootstrap

import "context"

type applicationKeyType struct{}

var contextKeyApplication = applicationKeyType{}

// WithApplication binds app as the ambient application of the returned
// context. Request-handling code uses it so CurrentSettings and
// RenderCurrentHead can resolve the host without threading it explicitly.
func WithApplication(ctx context.Context, app Application) context.Context {
	return context.WithValue(ctx, contextKeyApplication, app)
}

// ApplicationFrom returns the ambient application bound to ctx, if any.
func ApplicationFrom(ctx context.Context) (Application, bool) {
	app, ok := ctx.Value(contextKeyApplication).(Application)
	return app, ok
}
