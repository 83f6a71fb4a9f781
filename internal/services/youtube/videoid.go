package youtube

import (
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID pulls the canonical 11-character video identifier out of
// a bare ID or any of the common URL forms (youtu.be/<id>,
// youtube.com/watch?v=<id>, youtube.com/embed/<id>). It never panics on
// malformed input; ok is false when nothing matches.
func ExtractVideoID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if videoIDPattern.MatchString(s) {
		return s, true
	}

	candidate := ""
	switch {
	case strings.Contains(s, "youtu.be/"):
		candidate = after(s, "youtu.be/")
	case strings.Contains(s, "/embed/"):
		candidate = after(s, "/embed/")
	case strings.Contains(s, "watch?v="):
		candidate = after(s, "watch?v=")
	case strings.Contains(s, "v="):
		candidate = after(s, "v=")
	default:
		return "", false
	}

	candidate = trimAfterAny(candidate, "?&#/")
	if videoIDPattern.MatchString(candidate) {
		return candidate, true
	}
	return "", false
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func after(s, marker string) string {
	idx := strings.Index(s, marker)
	return s[idx+len(marker):]
}

func trimAfterAny(s, cutset string) string {
	if idx := strings.IndexAny(s, cutset); idx >= 0 {
		return s[:idx]
	}
	return s
}
