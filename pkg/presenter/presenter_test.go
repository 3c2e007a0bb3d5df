package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestErrorOutput(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, out, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "failed to install skill")
		assert.Empty(t, out.String())
		assert.Equal(t, "[ERROR] failed to install skill: boom\n", errOut.String())
	})

	t.Run("without context", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "")
		assert.Equal(t, "[ERROR] boom\n", errOut.String())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(nil, "context")
		assert.Empty(t, errOut.String())
	})
}

func TestMessageOutput(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("installed")
	p.Warning("already there")
	p.Info("details")

	assert.Contains(t, out.String(), "✓ installed\n")
	assert.Contains(t, out.String(), "⚠ already there\n")
	assert.Contains(t, out.String(), "details\n")
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.Section("Skills")
	assert.Equal(t, "Skills\n------\n", out.String())
}

func TestQuietMode(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")
	p.Section("hidden")
	p.Separator()
	assert.Empty(t, out.String())

	// Errors are never suppressed.
	p.Error(errors.New("boom"), "")
	assert.Equal(t, "[ERROR] boom\n", errOut.String())
}
