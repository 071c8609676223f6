// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	l *slog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(trim(format, args), slog.String("source", "badger"))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(trim(format, args), slog.String("source", "badger"))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Info(trim(format, args), slog.String("source", "badger"))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(trim(format, args), slog.String("source", "badger"))
}

func trim(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
