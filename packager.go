package bootstrap

import "sync"

// ResourcePackager makes the packaged toolkit assets available on a
// web-capable host. Install must be idempotent per host.
type ResourcePackager interface {
	Install(app WebApplication) error
}

// assetPackager is the default implementation: it mounts every packaged
// asset under PackagedMountPrefix.
type assetPackager struct {
	mu        sync.Mutex
	installed map[Application]struct{}
}

func newAssetPackager() *assetPackager {
	return &assetPackager{
		installed: make(map[Application]struct{}),
	}
}

func (p *assetPackager) Install(app WebApplication) error {
	if app == nil {
		return ErrNilApplication
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.installed[app]; ok {
		return nil
	}

	for _, asset := range packagedAssets {
		app.MountResource(PackagedMountPrefix+"/"+asset.Path, asset)
	}

	p.installed[app] = struct{}{}
	return nil
}
