package resolver

import (
	"strings"

	"github.com/asset-bender/bender/internal/core/domain"
)

// buildURL composes the final asset URL:
//
//	https://<domain>/<project>/<version>/static/<dir>/<bundle>
//
// The version segment is always present so every URL is fully cache-busted.
// The path portion of the reference is appended verbatim; separators inside
// the bundle name are never collapsed or re-encoded. Dev mode serves plain
// http from the local daemon instead of the CDN.
func buildURL(settings domain.Settings, dev bool, project domain.InternedName, version, path string) string {
	var b strings.Builder
	if dev {
		b.WriteString("http://")
		b.WriteString(settings.DaemonDomain)
	} else {
		b.WriteString("https://")
		b.WriteString(settings.Domain())
	}
	b.WriteByte('/')
	b.WriteString(project.String())
	b.WriteByte('/')
	b.WriteString(version)
	b.WriteByte('/')
	b.WriteString(path)
	return b.String()
}

// PrefixedDomain returns the domain ready for direct interpolation into
// markup: protocol-relative unless a scheme is already present.
func PrefixedDomain(d string) string {
	if d == "" {
		return d
	}
	if strings.HasPrefix(d, "//") || strings.HasPrefix(d, "http:") || strings.HasPrefix(d, "https:") {
		return d
	}
	return "//" + d
}
