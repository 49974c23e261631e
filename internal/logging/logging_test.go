package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	if quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("non-verbose logger should drop info")
	}
	if !quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("non-verbose logger should keep warnings")
	}

	verbose, err := New(true)
	if err != nil {
		t.Fatal(err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("verbose logger should keep debug")
	}
}

func TestWithRun_AddsRunField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	WithRun(zap.New(core)).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	run, ok := entries[0].ContextMap()["run"].(string)
	if !ok || len(run) != 36 {
		t.Fatalf("run field = %v", entries[0].ContextMap()["run"])
	}
}
