// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mucodec

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/mugraph-payments/mucodec/hwy"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with decoding from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by mucodec. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels used by mucodec:
//   - [slog.LevelDebug]: rejected decodes (wrong length, invalid characters,
//     invalid bit widths) and the active dispatch target
//
// Example:
//
//	mucodec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	l.Debug("mucodec: logger configured",
		slog.String("dispatch", hwy.CurrentName()),
		slog.Int("width", hwy.CurrentWidth()))
}

// Logger returns the current logger used by mucodec.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// rejected logs a decode failure at debug level and returns err unchanged.
func rejected(op string, err error) error {
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("mucodec: decode rejected", slog.String("op", op), slog.Any("err", err))
	}
	return err
}
