// Package safelink validates link targets found in user-authored
// messages. Every href in a message originates from another user, so
// the policy is a strict allowlist: anything it cannot positively
// vouch for is rejected and the link renders as plain text.
package safelink

import (
	"net/url"
	"strings"
)

// allowedSchemes is the full set of protocols a message link may use.
// Notably absent: javascript, data, vbscript, file, blob.
var allowedSchemes = map[string]bool{
	"https":  true,
	"http":   true,
	"mailto": true,
}

// Normalize validates rawHref against the link policy and returns the
// parsed URL, or nil if any check fails. It never returns an error:
// callers only need to know whether the link is usable.
//
// Checks, in order: non-empty after trimming, parses as a strict
// absolute URL, allowlisted scheme, no embedded userinfo, and for
// http/https a non-empty host.
func Normalize(rawHref string) *url.URL {
	raw := strings.TrimSpace(rawHref)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return nil
	}

	if !allowedSchemes[u.Scheme] {
		return nil
	}

	// user:pass@host authority tricks leak credentials and let a
	// hostile author fake the apparent destination.
	if u.User != nil && u.User.String() != "" {
		return nil
	}

	if (u.Scheme == "https" || u.Scheme == "http") && u.Hostname() == "" {
		return nil
	}

	return u
}

// Confirmation describes a link destination for the confirm-before-
// navigate surface: the fully decoded URL and, when the scheme carries
// one, the bare host.
type Confirmation struct {
	// Destination is the decoded form of the URL shown to the viewer.
	Destination string
	// Host is the bare hostname, empty for schemes without one
	// (mailto).
	Host string
}

// Describe prepares the confirmation view for a validated URL.
func Describe(u *url.URL) Confirmation {
	dest := u.String()
	if decoded, err := url.QueryUnescape(dest); err == nil {
		dest = decoded
	}
	return Confirmation{Destination: dest, Host: u.Hostname()}
}
