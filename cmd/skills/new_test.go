package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliyastein/skills/pkg/catalog"
)

// Scaffolded skills must round-trip through discovery: the catalog picks the
// new skill up under its name with the exact description it was given.
func TestScaffoldRoundTripsThroughCatalog(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{
			name:        "plain description",
			description: "Work with PDF files",
		},
		{
			name:        "colon and quotes",
			description: `Reads "mixed" input: PDFs, scans, and photos`,
		},
		{
			name: "long description",
			description: "Convert, merge, split, and annotate PDF documents using the " +
				"bundled command line scripts, including password protected files " +
				"and scanned pages that first need OCR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sourceRoot := t.TempDir()
			dir := filepath.Join(sourceRoot, "pdf-tools")
			require.NoError(t, os.MkdirAll(dir, 0o755))

			content, err := scaffoldMarker("pdf-tools", tt.description)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.MarkerFileName), content, 0o644))

			builder, err := catalog.NewBuilder()
			require.NoError(t, err)

			entries := builder.Scan(context.Background(), sourceRoot)
			require.Len(t, entries, 1)
			assert.Equal(t, "pdf-tools", entries[0].Name)
			assert.Equal(t, tt.description, entries[0].Description)
		})
	}
}

func TestScaffoldDefaultsDescription(t *testing.T) {
	content, err := scaffoldMarker("bare", "")
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "---\n"))
	assert.Contains(t, text, "name: bare")
	assert.Contains(t, text, catalog.PlaceholderDescription)
	assert.Contains(t, text, "# bare")
}
