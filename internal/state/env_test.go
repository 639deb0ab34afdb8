package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gogpu/sprite"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContextPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from std log")
	sprite.Logger().Info("from sprite", "frames", 2)
	env.RestoreStdLog()

	sprite.Logger().Info("after restore")

	if n := logs.FilterMessage("from std log").Len(); n != 1 {
		t.Errorf("std log entries = %d, want 1", n)
	}
	entries := logs.FilterMessage("from sprite").All()
	if len(entries) != 1 {
		t.Fatalf("sprite entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["frames"]; got != int64(2) {
		t.Errorf("frames field = %v (%T), want 2", got, got)
	}
	if n := logs.FilterMessage("after restore").Len(); n != 0 {
		t.Errorf("entries after restore = %d, want 0", n)
	}
}

func TestLocalEnv_WithoutLogger(t *testing.T) {
	env := &LocalEnv{}

	// Should not panic
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}
