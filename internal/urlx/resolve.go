// Package urlx holds the canonical relative-reference resolution used by both
// the playlist parser and the resource proxy. Keeping a single routine here
// guarantees the two paths cannot drift apart on URL-join edge cases.
package urlx

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolve turns ref into an absolute URL:
//   - a ref that already has a scheme is returned as-is;
//   - a root-relative ref ("/seg.ts") resolves against base's origin;
//   - anything else resolves against base's directory (base up to and
//     including the last "/").
func Resolve(base *url.URL, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty reference")
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse reference %q: %w", ref, err)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	if base == nil {
		return "", fmt.Errorf("relative reference %q without a base", ref)
	}
	return base.ResolveReference(u).String(), nil
}

// ResolveAgainst is Resolve with a string base, for callers that only carry
// the playlist/manifest URL around as text.
func ResolveAgainst(baseURL, ref string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base %q: %w", baseURL, err)
	}
	return Resolve(base, ref)
}
