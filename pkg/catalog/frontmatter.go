package catalog

import (
	"context"
	"os"
	"strings"

	"github.com/eliyastein/skills/pkg/logger"
)

// PlaceholderDescription is used when a marker file has no parsable
// description in its metadata header.
const PlaceholderDescription = "No description available."

const descriptionKey = "description:"

// extractDescription reads a marker file and pulls the description out of its
// metadata header. Every failure mode (unreadable file, missing or unclosed
// header, missing key) degrades to the placeholder; nothing is surfaced.
func extractDescription(ctx context.Context, markerPath string) string {
	content, err := os.ReadFile(markerPath)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("path", markerPath).Debug("failed to read marker file")
		return PlaceholderDescription
	}

	desc, ok := parseHeaderDescription(string(content))
	if !ok {
		return PlaceholderDescription
	}
	return desc
}

// parseHeaderDescription scans a "---"-delimited header at the top of content
// for a description value. Two styles are supported: an inline scalar on the
// "description:" line, and a folded block ("description: >") whose
// continuation lines are indented by at least two spaces and joined with
// single spaces. Folding stops at the first blank or unindented header line.
func parseHeaderDescription(content string) (string, bool) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", false
	}

	headerEnd := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			headerEnd = i
			break
		}
	}
	if headerEnd == -1 {
		return "", false
	}

	header := lines[1:headerEnd]
	for i, line := range header {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, descriptionKey) {
			continue
		}

		value := strings.TrimSpace(strings.TrimPrefix(trimmed, descriptionKey))
		if value != ">" {
			return value, true
		}

		// Folded block scalar: consume indented continuation lines.
		var folded []string
		for _, next := range header[i+1:] {
			if strings.TrimSpace(next) == "" || !strings.HasPrefix(next, "  ") {
				break
			}
			folded = append(folded, strings.TrimSpace(next))
		}
		return strings.Join(folded, " "), true
	}

	return "", false
}

// headerBounds returns the line index just past the closing "---" of the
// metadata header, or -1 when content has no complete header.
func headerBounds(lines []string) int {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i + 1
		}
	}
	return -1
}
