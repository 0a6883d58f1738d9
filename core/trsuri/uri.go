// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trsuri parses TRS endpoint addresses and resource identifiers,
// including hostname-based TRS URIs of the form
// trs://<host>/<tool-id>[/versions/<version-id>].
package trsuri

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultBasePath is the path at which spec-compliant registries serve
	// the TRS API.
	DefaultBasePath = "ga4gh/trs/v2"

	maxHostLength = 253
)

var (
	// ErrInvalidAddress is returned when an endpoint address cannot be parsed.
	ErrInvalidAddress = errors.New("invalid TRS address")

	// ErrInvalidResourceIdentifier is returned when a tool or version
	// identifier, or a TRS URI carrying them, cannot be parsed.
	ErrInvalidResourceIdentifier = errors.New("invalid TRS resource identifier")
)

const (
	reDomainPart = `[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?`
	reDomain     = `(?:` + reDomainPart + `\.)*` + reDomainPart + `\.?`
	reID         = `[a-z0-9\-_~.%#]+`
)

var (
	reAddress = regexp.MustCompile(
		`(?i)^(?P<scheme>trs|http|https)://(?P<host>` + reDomain + `)(?::(?P<port>[0-9]{1,5}))?(?:/\S*)?$`,
	)
	reToolID = regexp.MustCompile(
		`(?i)^(?:trs://(?P<host>` + reDomain + `)/)?(?P<tool_id>` + reID + `)(?:/versions/(?P<version_id>` + reID + `))?$`,
	)
	reVersionID = regexp.MustCompile(`(?i)^` + reID + `$`)
)

// Endpoint is the resolved root of a TRS instance.
type Endpoint struct {
	Scheme   string
	Host     string
	Port     uint16
	BasePath string
}

// URL renders the endpoint as scheme://host:port/base_path.
func (e Endpoint) URL() string {
	return fmt.Sprintf("%s://%s:%d/%s", e.Scheme, e.Host, e.Port, e.BasePath)
}

// EndpointConfig carries the caller overrides applied by ParseEndpoint.
// Zero values select the defaults.
type EndpointConfig struct {
	// Port overrides both the port written in the address and the scheme
	// default.
	Port uint16
	// BasePath overrides DefaultBasePath.
	BasePath string
	// Insecure resolves the trs scheme to http instead of https.
	Insecure bool
}

// ParseEndpoint resolves an http(s) address or a hostname-based TRS URI into
// an Endpoint. Only the scheme, host and port of the address are used;
// anything following the host is ignored.
func ParseEndpoint(address string, cfg EndpointConfig) (Endpoint, error) {
	m := reAddress.FindStringSubmatch(address)
	if m == nil {
		return Endpoint{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidAddress, address)
	}
	scheme := strings.ToLower(m[reAddress.SubexpIndex("scheme")])
	host := m[reAddress.SubexpIndex("host")]
	if len(host) > maxHostLength {
		return Endpoint{}, fmt.Errorf("%w: host exceeds %d characters", ErrInvalidAddress, maxHostLength)
	}

	switch scheme {
	case "trs":
		scheme = "https"
		if cfg.Insecure {
			scheme = "http"
		}
	case "http", "https":
	default:
		return Endpoint{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAddress, scheme)
	}

	port := cfg.Port
	if port == 0 {
		if p := m[reAddress.SubexpIndex("port")]; p != "" {
			n, err := strconv.ParseUint(p, 10, 16)
			if err != nil || n == 0 {
				return Endpoint{}, fmt.Errorf("%w: invalid port %q", ErrInvalidAddress, p)
			}
			port = uint16(n)
		}
	}
	if port == 0 {
		port = defaultPort(scheme)
	}

	basePath := strings.Trim(cfg.BasePath, "/")
	if basePath == "" {
		basePath = DefaultBasePath
	}

	return Endpoint{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		BasePath: basePath,
	}, nil
}

func defaultPort(scheme string) uint16 {
	if scheme == "http" {
		return 80
	}
	return 443
}

// ResourceRef is a resolved, percent-encoded pair of tool and version
// identifiers. An absent component is the empty string.
type ResourceRef struct {
	ToolID    string
	VersionID string
}

// HasVersion reports whether a version identifier was supplied or embedded.
func (r ResourceRef) HasVersion() bool {
	return r.VersionID != ""
}

// ParseResourceRef resolves a tool identifier, a version identifier, or a
// TRS URI carrying either into a ResourceRef. An empty argument means the
// identifier was not supplied. An explicit versionID always takes precedence
// over a version embedded in a TRS URI passed as toolID.
func ParseResourceRef(toolID, versionID string) (ResourceRef, error) {
	if toolID == "" && versionID == "" {
		return ResourceRef{}, fmt.Errorf("%w: no TRS URI, tool or version identifier supplied", ErrInvalidResourceIdentifier)
	}

	var ref ResourceRef
	if toolID != "" {
		m := reToolID.FindStringSubmatch(toolID)
		if m == nil {
			return ResourceRef{}, fmt.Errorf("%w: tool identifier %q", ErrInvalidResourceIdentifier, toolID)
		}
		if host := m[reToolID.SubexpIndex("host")]; len(host) > maxHostLength {
			return ResourceRef{}, fmt.Errorf("%w: host exceeds %d characters", ErrInvalidResourceIdentifier, maxHostLength)
		}
		ref.ToolID = m[reToolID.SubexpIndex("tool_id")]
		ref.VersionID = m[reToolID.SubexpIndex("version_id")]
	}

	if versionID != "" {
		if !reVersionID.MatchString(versionID) {
			return ResourceRef{}, fmt.Errorf("%w: version identifier %q", ErrInvalidResourceIdentifier, versionID)
		}
		ref.VersionID = versionID
	}

	ref.ToolID = Escape(ref.ToolID)
	ref.VersionID = Escape(ref.VersionID)
	return ref, nil
}

// Escape percent-encodes every byte of s except the RFC 3986 unreserved
// characters (letters, digits, '-', '.', '_' and '~'). Slashes are escaped
// too, so the result is always a single path segment.
func Escape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
