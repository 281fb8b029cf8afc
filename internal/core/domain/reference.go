// Package domain contains the core value types and resolution rules for
// static asset references.
package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// Kind classifies an asset for scaffold grouping.
type Kind string

const (
	// KindScript is a javascript bundle.
	KindScript Kind = "script"
	// KindStylesheet is a css bundle.
	KindStylesheet Kind = "stylesheet"
)

var (
	stylesheetExtensions = map[string]bool{"css": true}

	// Source formats that are compiled away before publishing. A reference to
	// one of these would work against a local dev daemon but 404 on the CDN.
	precompiledExtensions = map[string]bool{"sass": true, "scss": true, "coffee": true}
)

// AssetReference is a parsed logical asset path of the form
// "<project>/static/<dir>/<bundle>".
type AssetReference struct {
	// Raw is the reference exactly as supplied by the caller.
	Raw string
	// Project is the owning project name.
	Project InternedName
	// Path is everything from "static/" on, separators preserved verbatim.
	Path string
	// Kind is derived from the path for scaffold grouping.
	Kind Kind
}

// ParseReference parses a logical asset path. A single leading slash is
// tolerated and stripped. The bundle portion may itself contain slashes.
func ParseReference(raw string) (AssetReference, error) {
	trimmed := strings.TrimPrefix(raw, "/")

	project, rest, found := strings.Cut(trimmed, "/static/")
	if !found || project == "" || strings.Contains(project, "/") || rest == "" {
		return AssetReference{}, zerr.With(
			zerr.Wrap(ErrInvalidReference, "expected <project>/static/<bundle>"),
			"reference", raw)
	}

	ext := referenceExtension(rest)
	if precompiledExtensions[ext] {
		err := zerr.Wrap(ErrPrecompiledExtension, "source formats are compiled away before publish")
		return AssetReference{}, zerr.With(zerr.With(err, "reference", raw), "extension", ext)
	}

	return AssetReference{
		Raw:     raw,
		Project: NewInternedName(project),
		Path:    "static/" + rest,
		Kind:    classifyKind(rest, ext),
	}, nil
}

// referenceExtension returns the file extension without the leading dot,
// falling back to the leading path segment when the file has no extension
// (e.g. "css/all.css" and "css/all" both report "css").
func referenceExtension(rest string) string {
	ext := strings.TrimPrefix(path.Ext(rest), ".")
	if ext == "" {
		ext, _, _ = strings.Cut(rest, "/")
	}
	return strings.ToLower(ext)
}

func classifyKind(rest, ext string) Kind {
	if stylesheetExtensions[ext] {
		return KindStylesheet
	}
	if dir, _, found := strings.Cut(rest, "/"); found && stylesheetExtensions[dir] {
		return KindStylesheet
	}
	// Everything else loads as a script include, matching how bundles with
	// unrecognized extensions have always been grouped.
	return KindScript
}
