// Package purl builds and parses Package URLs (PURLs) for module
// coordinates. PURLs are a standardized way to identify software packages
// across ecosystems. See: https://github.com/package-url/purl-spec
//
// This package is used by SBOM generation (CycloneDX, SPDX) to attach a
// stable cross-tool identifier to every reported dependency.
package purl

import (
	"fmt"
	"net/url"
	"strings"
)

// TypeMaven is the PURL type for Maven-style module coordinates; the
// namespace is the group and the name is the module name.
const TypeMaven = "maven"

// PURL represents a parsed Package URL
type PURL struct {
	Type      string
	Namespace string
	Name      string
	Version   string
}

// Maven builds the maven-type PURL string for a group/name/version triple.
func Maven(group, name, version string) string {
	p := PURL{Type: TypeMaven, Namespace: group, Name: name, Version: version}
	return p.String()
}

// String formats the PURL as a standard PURL string
func (p *PURL) String() string {
	if p.Type == "" || p.Name == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("pkg:")
	sb.WriteString(p.Type)
	sb.WriteRune('/')

	if p.Namespace != "" {
		sb.WriteString(url.PathEscape(p.Namespace))
		sb.WriteRune('/')
	}

	sb.WriteString(url.PathEscape(p.Name))

	if p.Version != "" {
		sb.WriteRune('@')
		sb.WriteString(url.PathEscape(p.Version))
	}

	return sb.String()
}

// Parse parses a PURL string into its components. Only the scheme, type,
// namespace, name and version are handled; qualifiers and subpaths are not
// produced by this tool and are rejected.
func Parse(s string) (PURL, error) {
	if !strings.HasPrefix(s, "pkg:") {
		return PURL{}, fmt.Errorf("invalid purl %q: missing pkg scheme", s)
	}
	rest := strings.TrimPrefix(s, "pkg:")
	if strings.ContainsAny(rest, "?#") {
		return PURL{}, fmt.Errorf("invalid purl %q: qualifiers and subpaths are not supported", s)
	}

	var version string
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		var err error
		version, err = url.PathUnescape(rest[at+1:])
		if err != nil {
			return PURL{}, fmt.Errorf("invalid purl %q: %w", s, err)
		}
		rest = rest[:at]
	}

	parts := strings.Split(rest, "/")
	if len(parts) < 2 {
		return PURL{}, fmt.Errorf("invalid purl %q: expected pkg:type/name", s)
	}

	p := PURL{Type: parts[0], Version: version}
	name, err := url.PathUnescape(parts[len(parts)-1])
	if err != nil {
		return PURL{}, fmt.Errorf("invalid purl %q: %w", s, err)
	}
	p.Name = name

	if len(parts) > 2 {
		namespace, err := url.PathUnescape(strings.Join(parts[1:len(parts)-1], "/"))
		if err != nil {
			return PURL{}, fmt.Errorf("invalid purl %q: %w", s, err)
		}
		p.Namespace = namespace
	}

	if p.Type == "" || p.Name == "" {
		return PURL{}, fmt.Errorf("invalid purl %q: type and name are required", s)
	}
	return p, nil
}
