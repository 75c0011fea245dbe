// Package telemetry provides the structured logging and run-identification
// used to trace a Driver's phase transitions and shrink steps, adapted from
// the pretty-JSON logging this module's teacher used to decorate HTTP
// handlers with.
package telemetry

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"
)

// PrettyHandler pretty-prints JSON log records, one indented object per
// record, for local development. ProdLogger's JSONHandler is the one meant
// to ship; this one is for a human staring at a terminal.
type PrettyHandler struct {
	*slog.JSONHandler
	writer io.Writer
}

func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	pretty, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}
	_, err = h.writer.Write(append(pretty, '\n'))
	return err
}

// NewPrettyHandler wraps a JSONHandler writing to w so its output is
// indented rather than one-line-per-record.
func NewPrettyHandler(w io.Writer) *PrettyHandler {
	return &PrettyHandler{
		JSONHandler: slog.NewJSONHandler(w, nil),
		writer:      w,
	}
}

// ProdLogger emits compact single-line JSON, suitable for CI log capture.
var ProdLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// DevLogger emits indented JSON for interactive use.
var DevLogger = slog.New(NewPrettyHandler(os.Stdout))

// NewRunID returns a fresh identifier for one Check invocation, used to
// correlate its Generate/StartShrink/Shrink log lines. It only needs to
// distinguish concurrent runs within a single log stream, not resist
// guessing, so 8 random bytes hex-encoded is plenty — no need for the
// pooled-buffer, URL-safe-alphabet machinery a public-facing ID would want.
func NewRunID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("telemetry: failed to generate run ID: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
