package metadict

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultSeparator joins path segments in flat keys.
const DefaultSeparator = "."

// Path is a key path through nested maps, one segment per level.
type Path []string

// Join serializes the path with sep.
func (p Path) Join(sep string) string {
	return strings.Join(p, sep)
}

// String joins the path with DefaultSeparator.
func (p Path) String() string {
	return p.Join(DefaultSeparator)
}

// Child returns a new path with seg appended. The receiver is not modified.
func (p Path) Child(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, seg)
}

// HasPrefix returns true if prefix matches the leading segments of p.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// SplitPath parses a flat key into a Path.
// Supports: "station", "station.channel.sample_rate".
func SplitPath(key, sep string) (Path, error) {
	if key == "" {
		return nil, errors.New("empty path")
	}

	if sep == "" {
		return Path{key}, nil
	}

	var segments Path

	for _, part := range strings.Split(key, sep) {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", key)
		}

		segments = append(segments, part)
	}

	return segments, nil
}
