// Package bootstrap wires the Bootstrap front-end toolkit into a host web
// application. Call Install once during application startup, with or without
// custom settings, to enable it:
//
//	if err := bootstrap.Install(app, nil); err != nil {
//		return err
//	}
//
// or with custom settings:
//
//	settings, err := bootstrap.NewSettings(bootstrap.WithCDNResources(true))
//	if err != nil {
//		return err
//	}
//	if err := bootstrap.Install(app, settings); err != nil {
//		return err
//	}
//
// Install adjusts a few host settings: component markup tags are always
// stripped (toolkit CSS selectors do not match otherwise), the host's
// resource guard learns the toolkit's font and source-map file extensions
// when it supports pattern whitelisting, and a component instantiation
// listener is registered so every new component picks up the toolkit's
// resource references. Each of these can be disabled through Settings except
// markup stripping. Duplicate Install calls on the same application are
// ignored.
//
// The host application is borrowed, never owned: any type satisfying the
// Application interface can be installed into. pkg/webapp ships a minimal
// reference host.
package bootstrap
