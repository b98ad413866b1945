package diagnostic

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsAggregation(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning("missing_node", "node is gone", "toggle#1", "Avatar/Hat")
	assert.False(t, d.HasErrors())
	assert.True(t, d.HasWarning("missing_node"))
	assert.False(t, d.HasWarning("other"))

	d.AddError("renderer_conflict", "renderer claimed twice", "haptic_plug#2", "Avatar/Body")
	d.AddError("no_staging", "no staging location", "", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[haptic_plug#2] Avatar/Body: [renderer_conflict] renderer claimed twice; [no_staging] no staging location",
		err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("i", "info", "", "")
	b.AddWarning("w", "warn", "", "")
	b.AddError("e", "err", "", "")

	a.Merge(b)
	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
}

func TestDiagnosticsLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var d Diagnostics
	d.AddWarning("mixed_conventions", "controller mixes conventions", "", "")
	d.Log(logger)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=mixed_conventions")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
