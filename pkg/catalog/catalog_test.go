package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root string, relDir string, content string) string {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(relDir))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MarkerFileName), []byte(content), 0o644))
	return dir
}

const basicMarker = `---
description: A test skill
---

# Instructions
`

func newTestBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	b, err := NewBuilder(opts...)
	require.NoError(t, err)
	return b
}

func TestScanMissingRoot(t *testing.T) {
	b := newTestBuilder(t)
	entries := b.Scan(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, entries)
}

func TestScanEmptyRoot(t *testing.T) {
	b := newTestBuilder(t)
	entries := b.Scan(context.Background(), t.TempDir())
	assert.Empty(t, entries)
}

func TestScanDiscoversSkills(t *testing.T) {
	root := t.TempDir()
	dir := writeSkill(t, root, "my-skill", basicMarker)

	entries := newTestBuilder(t).Scan(context.Background(), root)
	require.Len(t, entries, 1)
	assert.Equal(t, "my-skill", entries[0].Name)
	assert.Equal(t, dir, entries[0].SourcePath)
	assert.Equal(t, "A test skill", entries[0].Description)
}

func TestScanNameDerivation(t *testing.T) {
	tests := []struct {
		name     string
		relDir   string
		expected string
	}{
		{
			name:     "single segment",
			relDir:   "pdf-tools",
			expected: "pdf-tools",
		},
		{
			name:     "skills segment is removed",
			relDir:   "skills/pdf-tools",
			expected: "pdf-tools",
		},
		{
			name:     "nested skills segments are removed",
			relDir:   "plugin/skills/pdf-tools",
			expected: "plugin-pdf-tools",
		},
		{
			name:     "adjacent duplicate segments collapse",
			relDir:   "my-plugin/my-plugin",
			expected: "my-plugin",
		},
		{
			name:     "duplicate made adjacent by skills removal collapses",
			relDir:   "my-plugin/skills/my-plugin",
			expected: "my-plugin",
		},
		{
			name:     "non-adjacent duplicates survive",
			relDir:   "alpha/beta/alpha",
			expected: "alpha-beta-alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeSkill(t, root, tt.relDir, basicMarker)

			entries := newTestBuilder(t).Scan(context.Background(), root)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expected, entries[0].Name)
		})
	}
}

func TestScanSkipsMarkerAtRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, MarkerFileName), []byte(basicMarker), 0o644))
	writeSkill(t, root, "real-skill", basicMarker)

	entries := newTestBuilder(t).Scan(context.Background(), root)
	require.Len(t, entries, 1)
	assert.Equal(t, "real-skill", entries[0].Name)
}

func TestScanSortedByName(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		writeSkill(t, root, name, basicMarker)
	}

	b := newTestBuilder(t)
	entries := b.Scan(context.Background(), root)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, b.collator.CompareString(entries[i-1].Name, entries[i].Name), 0,
			"catalog must be non-decreasing by name")
	}
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zeta", entries[2].Name)
}

func TestScanKeepsDuplicateNames(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "skills/dup", basicMarker)
	writeSkill(t, root, "dup", basicMarker)

	entries := newTestBuilder(t).Scan(context.Background(), root)
	require.Len(t, entries, 2)
	assert.Equal(t, "dup", entries[0].Name)
	assert.Equal(t, "dup", entries[1].Name)
	assert.NotEqual(t, entries[0].SourcePath, entries[1].SourcePath)
}

func TestScanIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "node_modules/dep", basicMarker)
	writeSkill(t, root, ".git/hooks", basicMarker)
	writeSkill(t, root, "kept", basicMarker)

	entries := newTestBuilder(t).Scan(context.Background(), root)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Name)
}

func TestScanCustomIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "vendor-x/bundled", basicMarker)
	writeSkill(t, root, "kept", basicMarker)

	b := newTestBuilder(t, WithIgnorePatterns("vendor-*"))
	entries := b.Scan(context.Background(), root)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Name)
}

func TestInvalidIgnorePattern(t *testing.T) {
	_, err := NewBuilder(WithIgnorePatterns("[unclosed"))
	assert.Error(t, err)
}

func TestScanNeverYieldsSkillsSegmentOrAdjacentDuplicates(t *testing.T) {
	root := t.TempDir()
	for _, relDir := range []string{
		"skills/a", "p/skills/p", "x/x/x", "a/skills", "deep/skills/deep/deep",
	} {
		writeSkill(t, root, relDir, basicMarker)
	}

	entries := newTestBuilder(t).Scan(context.Background(), root)
	for _, entry := range entries {
		// Fixture directory names carry no hyphens, so splitting on "-"
		// recovers the original segments.
		segments := strings.Split(entry.Name, "-")
		for i, segment := range segments {
			assert.NotEqual(t, "skills", segment, "name %q leaks the skills segment", entry.Name)
			if i > 0 {
				assert.NotEqual(t, segments[i-1], segment, "name %q has adjacent duplicates", entry.Name)
			}
		}
	}
}

func TestDeriveName(t *testing.T) {
	root := filepath.FromSlash("/src/tree")

	tests := []struct {
		name     string
		skillDir string
		expected string
		ok       bool
	}{
		{"root marker", "/src/tree", "", false},
		{"plain", "/src/tree/pdf", "pdf", true},
		{"skills only", "/src/tree/skills", "", false},
		{"skills container", "/src/tree/skills/pdf", "pdf", true},
		{"repeated leaf", "/src/tree/pdf/pdf", "pdf", true},
		{"plugin layout", "/src/tree/acme/skills/acme", "acme", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := deriveName(root, filepath.FromSlash(tt.skillDir))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}
