package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Details carries the full contents of a skill's marker file: the complete
// metadata header and the markdown body below it.
type Details struct {
	Metadata map[string]interface{}
	Body     string
}

// LoadDetails reads and parses an entry's marker file. Unlike catalog
// scanning, which swallows metadata problems, this reports read and parse
// failures so the caller can show them. A marker without a header yields
// empty metadata and the full content as body.
func LoadDetails(entry Entry) (*Details, error) {
	markerPath := filepath.Join(entry.SourcePath, MarkerFileName)
	content, err := os.ReadFile(markerPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read marker file")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse marker file")
	}

	metadata := meta.Get(pctx)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &Details{
		Metadata: metadata,
		Body:     bodyContent(string(content)),
	}, nil
}

// bodyContent strips the metadata header, returning everything below the
// closing delimiter. Content without a complete header is returned as-is.
func bodyContent(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	bodyStart := headerBounds(lines)
	if bodyStart == -1 {
		return content
	}
	return strings.TrimLeft(strings.Join(lines[bodyStart:], "\n"), "\n")
}
