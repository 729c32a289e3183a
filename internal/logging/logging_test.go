package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			lvl, err := ParseLevel(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, lvl)
		})
	}

	_, err := ParseLevel("loud")
	assert.WrapTB(t).MustAssert(err != nil)
}

func TestNewJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "warn", Format: "json"})
	tt.MustOK(err)

	log.Info("dropped")
	log.Warn("kept", "n", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	tt.MustEqual(1, len(lines))

	var rec map[string]any
	tt.MustOK(json.Unmarshal([]byte(lines[0]), &rec))
	tt.MustEqual("kept", rec["msg"])
	tt.MustEqual(float64(1), rec["n"])
}

func TestNewUnknownFormat(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	tt.MustAssert(err != nil)
}
