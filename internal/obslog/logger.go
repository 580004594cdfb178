// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obslog provides the structured logger used by the server and CLI
// entry points. It wraps zap the way fabric's flogging package wraps it:
// a small sugared adapter named after the component that holds it, rather
// than a bare *zap.Logger passed around by value.
package obslog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin adapter around a zap.SugaredLogger. Methods without a
// formatting suffix build the log line with fmt.Sprintln semantics so
// multiple arguments are space-separated, matching the convention callers
// expect from legacy-style logging calls.
type Logger struct{ s *zap.SugaredLogger }

// New builds a Logger at the given level ("debug", "info", "warn", "error")
// writing JSON lines to stderr when json is true, or a human-readable
// console encoding otherwise.
func New(name string, level string, json bool) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{s: base.Named(name).Sugar()}, nil
}

func (l *Logger) Debug(args ...interface{})                   { l.s.Debugf(formatArgs(args)) }
func (l *Logger) Debugf(template string, args ...interface{}) { l.s.Debugf(template, args...) }
func (l *Logger) Debugw(msg string, kv ...interface{})        { l.s.Debugw(msg, kv...) }
func (l *Logger) Info(args ...interface{})                     { l.s.Infof(formatArgs(args)) }
func (l *Logger) Infof(template string, args ...interface{})   { l.s.Infof(template, args...) }
func (l *Logger) Infow(msg string, kv ...interface{})          { l.s.Infow(msg, kv...) }
func (l *Logger) Warn(args ...interface{})                     { l.s.Warnf(formatArgs(args)) }
func (l *Logger) Warnf(template string, args ...interface{})   { l.s.Warnf(template, args...) }
func (l *Logger) Error(args ...interface{})                    { l.s.Errorf(formatArgs(args)) }
func (l *Logger) Errorf(template string, args ...interface{})  { l.s.Errorf(template, args...) }
func (l *Logger) Errorw(msg string, kv ...interface{})         { l.s.Errorw(msg, kv...) }

func (l *Logger) Named(name string) *Logger { return &Logger{s: l.s.Named(name)} }
func (l *Logger) With(args ...interface{}) *Logger { return &Logger{s: l.s.With(args...)} }
func (l *Logger) Sync() error { return l.s.Sync() }

func formatArgs(args []interface{}) string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
