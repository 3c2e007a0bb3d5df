// Package installer copies discovered skills into a local install root, one
// directory per skill name. Installs are idempotent: a destination that
// already exists is never touched again.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/logger"
)

// Status classifies the outcome of an install attempt.
type Status int

const (
	// StatusNotFound means no catalog entry matched the requested name.
	StatusNotFound Status = iota
	// StatusAlreadyInstalled means the destination already exists; nothing was written.
	StatusAlreadyInstalled
	// StatusInstalled means the skill was copied to the destination.
	StatusInstalled
	// StatusFailed means directory creation or the copy failed partway.
	StatusFailed
)

// Result reports the outcome of Install. Filesystem failures are carried in
// Err rather than returned as errors: they describe the environment, not a
// fault in the request.
type Result struct {
	Status Status
	Name   string
	Path   string // destination path, set for AlreadyInstalled and Installed
	Err    error  // underlying cause, set for Failed
}

// Message renders the outcome as the single text message handed back to the
// calling agent.
func (r Result) Message() string {
	switch r.Status {
	case StatusAlreadyInstalled:
		return fmt.Sprintf("Skill %q is already installed at %s", r.Name, r.Path)
	case StatusInstalled:
		return fmt.Sprintf("Installed skill %q to %s", r.Name, r.Path)
	case StatusFailed:
		return fmt.Sprintf("Failed to install skill %q: %v", r.Name, r.Err)
	default:
		return fmt.Sprintf("Skill %q not found", r.Name)
	}
}

// Installer resolves skills against a freshly built catalog and copies them
// into installRoot. The root is an explicit parameter so callers decide where
// installs land.
type Installer struct {
	builder     *catalog.Builder
	installRoot string
}

// New creates an Installer that installs into installRoot.
func New(builder *catalog.Builder, installRoot string) *Installer {
	return &Installer{builder: builder, installRoot: installRoot}
}

// Install rebuilds the catalog from rootDir and copies the first entry whose
// name equals requestedName into the install root. The catalog is always
// rebuilt so the installer never acts on stale discovery data. A failure
// partway through the copy leaves the partial destination in place; there is
// no rollback.
func (i *Installer) Install(ctx context.Context, rootDir, requestedName string) Result {
	entries := i.builder.Scan(ctx, rootDir)

	var found *catalog.Entry
	for idx := range entries {
		if entries[idx].Name == requestedName {
			found = &entries[idx]
			break
		}
	}
	if found == nil {
		return Result{Status: StatusNotFound, Name: requestedName}
	}

	dest := filepath.Join(i.installRoot, requestedName)
	if _, err := os.Stat(dest); err == nil {
		return Result{Status: StatusAlreadyInstalled, Name: requestedName, Path: dest}
	}

	if err := os.MkdirAll(i.installRoot, 0o755); err != nil {
		return Result{
			Status: StatusFailed,
			Name:   requestedName,
			Err:    errors.Wrap(err, "failed to create install root"),
		}
	}

	if err := copyTree(found.SourcePath, dest); err != nil {
		return Result{
			Status: StatusFailed,
			Name:   requestedName,
			Err:    errors.Wrap(err, "failed to copy skill"),
		}
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"skill": requestedName,
		"from":  found.SourcePath,
		"to":    dest,
	}).Info("installed skill")

	return Result{Status: StatusInstalled, Name: requestedName, Path: dest}
}
