package bootstrap

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ReferenceKind tells a HeaderResponse how to render a reference.
type ReferenceKind string

const (
	KindCSS ReferenceKind = "css"
	KindJS  ReferenceKind = "js"
)

// ResourceReference identifies one stylesheet or script the toolkit needs.
// References are plain values; their content is a static function of the
// installed settings and never carries user-influenced data.
type ResourceReference struct {
	Kind ReferenceKind
	Path string
}

const (
	cdnURLPattern = "https://cdn.jsdelivr.net/npm/bootstrap@%s/dist/%s"

	// PackagedMountPrefix is where the default packager mounts the toolkit
	// assets on a web-capable host.
	PackagedMountPrefix = "/static/bootstrap"
)

const (
	assetCSS    = "css/bootstrap.min.css"
	assetCSSMap = "css/bootstrap.min.css.map"
	assetJS     = "js/bootstrap.min.js"
)

// packagedAssets is everything the default packager mounts, including the
// glyphicon font variants covered by the guard patterns.
var packagedAssets = []ResourceReference{
	{Kind: KindCSS, Path: assetCSS},
	{Kind: KindCSS, Path: assetCSSMap},
	{Kind: KindJS, Path: assetJS},
	{Kind: KindCSS, Path: "fonts/glyphicons-halflings-regular.eot"},
	{Kind: KindCSS, Path: "fonts/glyphicons-halflings-regular.svg"},
	{Kind: KindCSS, Path: "fonts/glyphicons-halflings-regular.ttf"},
	{Kind: KindCSS, Path: "fonts/glyphicons-halflings-regular.woff"},
	{Kind: KindCSS, Path: "fonts/glyphicons-halflings-regular.woff2"},
}

func cdnReference(kind ReferenceKind, version *semver.Version, asset string) ResourceReference {
	return ResourceReference{
		Kind: kind,
		Path: fmt.Sprintf(cdnURLPattern, version.String(), asset),
	}
}

func packagedReference(kind ReferenceKind, asset string) ResourceReference {
	return ResourceReference{
		Kind: kind,
		Path: PackagedMountPrefix + "/" + asset,
	}
}
