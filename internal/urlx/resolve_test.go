package urlx

import (
	"net/url"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"absolute stays absolute", "https://host.example.com/lists/main.m3u8", "https://cdn.example.com/live.m3u8", "https://cdn.example.com/live.m3u8"},
		{"relative against directory", "https://host.example.com/lists/main.m3u8", "song1.mp3", "https://host.example.com/lists/song1.mp3"},
		{"root-relative against origin", "https://h/vod/index.m3u8", "/other/seg0.ts", "https://h/other/seg0.ts"},
		{"plain relative segment", "https://h/vod/index.m3u8", "seg0.ts", "https://h/vod/seg0.ts"},
		{"relative with subdirectory", "https://h/vod/index.m3u8", "1080p/seg0.ts", "https://h/vod/1080p/seg0.ts"},
		{"relative with query string", "https://h/vod/index.m3u8", "seg0.ts?token=abc", "https://h/vod/seg0.ts?token=abc"},
		{"parent directory traversal", "https://h/vod/hd/index.m3u8", "../sd/seg0.ts", "https://h/vod/sd/seg0.ts"},
		{"base with query is dropped for relative refs", "https://h/vod/index.m3u8?sig=1", "seg0.ts", "https://h/vod/seg0.ts"},
		{"surrounding whitespace is trimmed", "https://h/x/list.txt", "  a.mp4 ", "https://h/x/a.mp4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, err := url.Parse(tc.base)
			if err != nil {
				t.Fatalf("parse base: %v", err)
			}
			got, err := Resolve(base, tc.ref)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Resolve(%q, %q) = %q; want %q", tc.base, tc.ref, got, tc.want)
			}
		})
	}
}

func TestResolve_EmptyRef(t *testing.T) {
	base, _ := url.Parse("https://h/vod/index.m3u8")
	if _, err := Resolve(base, "   "); err == nil {
		t.Fatal("expected error for blank reference")
	}
}

func TestResolveAgainst_BadBase(t *testing.T) {
	if _, err := ResolveAgainst("://nope", "seg0.ts"); err == nil {
		t.Fatal("expected error for unparsable base")
	}
}
