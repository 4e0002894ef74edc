package proxy

import (
	"net/url"
	"strings"

	"github.com/julisunkan/maka/internal/urlx"
)

// PathPrefix is where rewritten manifest entries point back to.
const PathPrefix = "/proxy_resource/"

// stripQuery drops the query and fragment so suffix checks only see the path.
func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// IsManifestURL reports whether the resource is an HLS manifest, which gets
// rewritten instead of streamed through.
func IsManifestURL(rawURL string) bool {
	trimmed := stripQuery(rawURL)
	return strings.HasSuffix(trimmed, ".m3u8") || strings.HasSuffix(trimmed, ".m3u")
}

// RewriteManifest routes every URI line of an HLS manifest back through the
// proxy: each non-comment line becomes PathPrefix plus the percent-encoded
// absolute URL, resolved against manifestURL when relative. Comments and
// blank lines pass through untouched, in order.
func RewriteManifest(content, manifestURL string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			out = append(out, line)
			continue
		}

		absolute, err := urlx.ResolveAgainst(manifestURL, line)
		if err != nil {
			absolute = line
		}
		out = append(out, PathPrefix+url.QueryEscape(absolute))
	}
	return strings.Join(out, "\n")
}
