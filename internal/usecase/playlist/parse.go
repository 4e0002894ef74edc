package playlist

import (
	"strconv"
	"strings"

	"github.com/julisunkan/maka/internal/port"
	"github.com/julisunkan/maka/internal/urlx"
)

// Parse materialises playlist text into items, resolving every URI against
// baseURL. Text containing an #EXTM3U marker is read as extended M3U; anything
// else is a plain list, one URI per line.
func Parse(content, baseURL string) []port.PlaylistItem {
	if strings.Contains(content, "#EXTM3U") {
		return parseExtended(content, baseURL)
	}
	return parsePlain(content, baseURL)
}

func parseExtended(content, baseURL string) []port.PlaylistItem {
	var items []port.PlaylistItem

	var pendingTitle string
	var pendingDuration float64

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#EXTM3U"):
			continue

		case strings.HasPrefix(line, "#EXTINF:"):
			pendingDuration, pendingTitle = parseExtInf(line)

		case strings.HasPrefix(line, "#EXT-X-STREAM-INF:"):
			pendingTitle = "Stream"

		case strings.HasPrefix(line, "#"):
			continue

		default:
			title := pendingTitle
			if title == "" {
				title = "Untitled"
			}
			items = append(items, port.PlaylistItem{
				URI:      resolve(baseURL, line),
				Title:    title,
				Duration: positiveDuration(pendingDuration),
			})
			pendingTitle = ""
			pendingDuration = 0
		}
	}
	return items
}

func parsePlain(content, baseURL string) []port.PlaylistItem {
	var items []port.PlaylistItem
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, port.PlaylistItem{
			URI:   resolve(baseURL, line),
			Title: "Item " + strconv.Itoa(len(items)+1),
		})
	}
	return items
}

// parseExtInf reads "#EXTINF:<duration> [attrs],<title>". An unparseable
// duration comes back as -1 so it renders as absent.
func parseExtInf(line string) (duration float64, title string) {
	rest := strings.TrimPrefix(line, "#EXTINF:")
	durationPart, title, hasTitle := strings.Cut(rest, ",")
	if !hasTitle {
		title = "Untitled"
	}

	duration = -1
	if fields := strings.Fields(durationPart); len(fields) > 0 {
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			duration = v
		}
	}
	return duration, title
}

func positiveDuration(d float64) *float64 {
	if d > 0 {
		return &d
	}
	return nil
}

func resolve(baseURL, ref string) string {
	resolved, err := urlx.ResolveAgainst(baseURL, ref)
	if err != nil {
		return ref
	}
	return resolved
}
