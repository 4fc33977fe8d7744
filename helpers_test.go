// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"context"
	"log/slog"
	"time"

	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordAttrs flattens the attributes of a record into a map.
func recordAttrs(record slog.Record) map[string]slog.Value {
	out := make(map[string]slog.Value)
	record.Attrs(func(attr slog.Attr) bool {
		out[attr.Key] = attr.Value
		return true
	})
	return out
}

// recordMessages returns the messages of the given records in order.
func recordMessages(records []slog.Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.Message)
	}
	return out
}

// newFixedTimeConfig returns a [*Config] whose clock always returns t0.
func newFixedTimeConfig(t0 time.Time) *Config {
	cfg := NewConfig()
	cfg.TimeNow = func() time.Time { return t0 }
	return cfg
}
