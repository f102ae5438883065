package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// guardPatterns are the file extensions the toolkit needs the host's
// resource guard to accept: font formats referenced by the core stylesheet
// and the stylesheet's source map.
var guardPatterns = []string{
	"*.woff",
	"*.woff2",
	"*.eot",
	"*.svg",
	"*.ttf",
	"*.css.map",
}

// Install wires the toolkit into app. A nil settings value installs
// defaults. Duplicate calls on an already-installed application are ignored,
// whatever settings they carry.
//
// The steps applied to the host are not rolled back on failure: if a
// collaborator errors out mid-sequence, no settings are committed and a
// retried Install re-runs every step from scratch. Under concurrent
// first-time installs, both callers may mutate the host before the registry
// settles the race; exactly one settings value wins and the loser returns
// nil. Collaborator errors propagate unwrapped.
func Install(app Application, settings *Settings) error {
	if app == nil {
		return ErrNilApplication
	}

	if _, ok := registry.get(app); ok {
		return nil
	}

	if settings == nil {
		var err error
		settings, err = NewSettings()
		if err != nil {
			return err
		}
	}

	log := Logger()

	if !settings.selectors.IsInstalled(app) {
		log.Debug("installing selector support", zap.String("application", app.Name()))
		if err := settings.selectors.Install(app); err != nil {
			return err
		}
	}

	if settings.usePackagedResources {
		if web, ok := app.(WebApplication); ok {
			log.Debug("mounting packaged toolkit resources", zap.String("application", app.Name()))
			if err := settings.packager.Install(web); err != nil {
				return err
			}
		}
	}

	if settings.updateResourceGuard {
		updateResourceGuard(app)
	}

	if settings.autoAppendResources {
		appender := &resourceAppender{settings: settings}
		app.AddComponentListener(appender.componentCreated)
	}

	app.MarkupSettings().SetStripComponentTags(true)

	if err := registry.put(app, settings); err != nil {
		if errors.Is(err, errDuplicateInstallation) {
			log.Debug("lost concurrent install race, keeping first settings",
				zap.String("application", app.Name()))
			return nil
		}
		return err
	}

	log.Info("bootstrap installed",
		zap.String("application", app.Name()),
		zap.String("version", settings.Version()))
	return nil
}

// updateResourceGuard whitelists the toolkit's file extensions. Guards that
// cannot be extended with patterns are left alone.
func updateResourceGuard(app Application) {
	guard, ok := app.ResourceGuard().(PatternGuard)
	if !ok {
		return
	}
	for _, pattern := range guardPatterns {
		guard.AddPattern(pattern)
	}
}

// SettingsFor returns the settings installed on app.
func SettingsFor(app Application) (*Settings, error) {
	if app == nil {
		return nil, ErrNilApplication
	}
	s, ok := registry.get(app)
	if !ok {
		return nil, ErrNotInstalled
	}
	return s, nil
}

// CurrentSettings returns the settings of the application bound to ctx.
func CurrentSettings(ctx context.Context) (*Settings, error) {
	app, ok := ApplicationFrom(ctx)
	if !ok {
		return nil, ErrNoActiveApplication
	}
	return SettingsFor(app)
}

// RenderHead appends the toolkit's resource references to response: core
// stylesheet first, then the active theme's references, then the core
// script. The output is a pure function of settings.
func RenderHead(settings *Settings, response HeaderResponse) error {
	if settings == nil {
		return ErrNilSettings
	}
	if response == nil {
		return ErrNilResponse
	}

	response.Render(settings.CSSReference())
	if theme := settings.themeProvider.ActiveTheme(); theme != nil {
		for _, ref := range theme.References() {
			response.Render(ref)
		}
	}
	response.Render(settings.JSReference())
	return nil
}

// RenderCurrentHead renders the head references of the application bound
// to ctx.
func RenderCurrentHead(ctx context.Context, response HeaderResponse) error {
	if response == nil {
		return ErrNilResponse
	}
	settings, err := CurrentSettings(ctx)
	if err != nil {
		return err
	}
	return RenderHead(settings, response)
}
