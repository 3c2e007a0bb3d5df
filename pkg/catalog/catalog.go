// Package catalog discovers skill bundles in a source tree. A skill is any
// directory containing a SKILL.md marker file; the catalog derives a stable
// name for each skill from its path and extracts a human-readable description
// from the marker's metadata header.
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eliyastein/skills/pkg/logger"
)

// MarkerFileName is the fixed file name that identifies a skill root.
const MarkerFileName = "SKILL.md"

// Entry describes one discovered skill.
type Entry struct {
	Name        string // derived from the skill's path relative to the scan root
	SourcePath  string // absolute path to the skill's root directory
	Description string // extracted from the marker header, or the placeholder
}

// Builder scans a source tree and produces sorted catalogs of skill entries.
type Builder struct {
	ignore   []glob.Glob
	collator *collate.Collator
}

// Option configures a Builder.
type Option func(*Builder) error

// WithIgnorePatterns sets glob patterns for directory base names the scanner
// skips without descending.
func WithIgnorePatterns(patterns ...string) Option {
	return func(b *Builder) error {
		compiled := make([]glob.Glob, 0, len(patterns))
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return errors.Wrapf(err, "invalid ignore pattern %q", pattern)
			}
			compiled = append(compiled, g)
		}
		b.ignore = compiled
		return nil
	}
}

// DefaultIgnorePatterns are the directory names skipped when no custom
// patterns are configured.
var DefaultIgnorePatterns = []string{".git", "node_modules"}

// NewBuilder creates a catalog builder. Without options it skips the default
// ignore set.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		collator: collate.New(language.Und),
	}
	if len(opts) == 0 {
		opts = []Option{WithIgnorePatterns(DefaultIgnorePatterns...)}
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Scan walks rootDir and returns the catalog of discovered skills, sorted by
// name. Scan never fails: an absent or unreadable root, and any unreadable
// file or directory along the way, degrades to fewer (or zero) entries.
func (b *Builder) Scan(ctx context.Context, rootDir string) []Entry {
	log := logger.G(ctx)

	root := rootDir
	if abs, err := filepath.Abs(rootDir); err == nil {
		root = abs
	}

	var entries []Entry
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("skipping unreadable path")
			return nil
		}
		if info.IsDir() {
			if path != root && b.ignored(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != MarkerFileName {
			return nil
		}

		skillDir := filepath.Dir(path)
		name, ok := deriveName(root, skillDir)
		if !ok {
			log.WithField("path", skillDir).Debug("skipping skill with empty derived name")
			return nil
		}

		entries = append(entries, Entry{
			Name:        name,
			SourcePath:  skillDir,
			Description: extractDescription(ctx, path),
		})
		return nil
	})

	b.sort(entries)
	warnDuplicates(ctx, entries)
	return entries
}

// sort orders entries by name ascending using locale-aware comparison,
// preserving discovery order among equal names.
func (b *Builder) sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return b.collator.CompareString(entries[i].Name, entries[j].Name) < 0
	})
}

func (b *Builder) ignored(baseName string) bool {
	for _, g := range b.ignore {
		if g.Match(baseName) {
			return true
		}
	}
	return false
}

// warnDuplicates surfaces name collisions: the catalog keeps every entry, and
// install resolution takes the first match in sorted order.
func warnDuplicates(ctx context.Context, entries []Entry) {
	for i := 1; i < len(entries); i++ {
		if entries[i].Name == entries[i-1].Name {
			logger.G(ctx).WithFields(logrus.Fields{
				"name":  entries[i].Name,
				"first": entries[i-1].SourcePath,
				"other": entries[i].SourcePath,
			}).Warn("duplicate skill name in catalog")
		}
	}
}
