package catalog

import (
	"path/filepath"
	"strings"
)

// organizationalSegment is a container directory name that must not leak into
// derived skill names. Source trees commonly group bundles under a "skills"
// directory, with or without a plugin directory above it.
const organizationalSegment = "skills"

// deriveName computes a skill's catalog name from its directory's path
// relative to the scan root. Segments equal to "skills" are removed, then
// immediately-adjacent duplicates are collapsed against the last kept
// segment, and the remainder is joined with "-". A marker at the scan root
// itself derives an empty name; such skills are not addressable and the
// second return value is false.
func deriveName(rootDir, skillDir string) (string, bool) {
	rel, err := filepath.Rel(rootDir, skillDir)
	if err != nil {
		return "", false
	}
	if rel == "." {
		return "", false
	}

	var kept []string
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == organizationalSegment {
			continue
		}
		if len(kept) > 0 && kept[len(kept)-1] == segment {
			continue
		}
		kept = append(kept, segment)
	}

	name := strings.Join(kept, "-")
	if name == "" {
		return "", false
	}
	return name, true
}
