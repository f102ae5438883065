package bootstrap

import (
	"context"
	"errors"
	"testing"
)

func TestApplicationFrom_Unbound(t *testing.T) {
	t.Parallel()
	if _, ok := ApplicationFrom(context.Background()); ok {
		t.Errorf("expected no ambient application")
	}
}

func TestApplicationFrom_Bound(t *testing.T) {
	t.Parallel()
	app := newMockApp("ambient")
	ctx := WithApplication(context.Background(), app)
	got, ok := ApplicationFrom(ctx)
	if !ok || got != Application(app) {
		t.Errorf("expected the bound application back, got %v", got)
	}
}

func TestCurrentSettings_NoActiveApplication(t *testing.T) {
	t.Parallel()
	if _, err := CurrentSettings(context.Background()); !errors.Is(err, ErrNoActiveApplication) {
		t.Errorf("expected ErrNoActiveApplication, got %v", err)
	}
}

func TestCurrentSettings_BoundButNotInstalled(t *testing.T) {
	t.Parallel()
	ctx := WithApplication(context.Background(), newMockApp("bound-not-installed"))
	if _, err := CurrentSettings(ctx); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestCurrentSettings_Installed(t *testing.T) {
	t.Parallel()
	app := newMockApp("bound-installed")
	settings, _ := NewSettings()
	if err := Install(app, settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := WithApplication(context.Background(), app)
	got, err := CurrentSettings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != settings {
		t.Errorf("expected the installed settings back")
	}
}

func TestRenderCurrentHead(t *testing.T) {
	t.Parallel()
	app := newMockApp("render-current")
	if err := Install(app, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := WithApplication(context.Background(), app)

	response := &mockHeaderResponse{}
	if err := RenderCurrentHead(ctx, response); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.refs) != 2 {
		t.Errorf("expected css and js references, got %v", response.refs)
	}
}

func TestRenderCurrentHead_NilResponse(t *testing.T) {
	t.Parallel()
	if err := RenderCurrentHead(context.Background(), nil); !errors.Is(err, ErrNilResponse) {
		t.Errorf("expected ErrNilResponse, got %v", err)
	}
}

func TestRenderCurrentHead_NoActiveApplication(t *testing.T) {
	t.Parallel()
	err := RenderCurrentHead(context.Background(), &mockHeaderResponse{})
	if !errors.Is(err, ErrNoActiveApplication) {
		t.Errorf("expected ErrNoActiveApplication, got %v", err)
	}
}
