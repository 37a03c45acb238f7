package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepio.log")
	l, err := New(Config{Level: "debug", Encoding: "json", Output: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Debug("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("expected json line, got %s", data)
	}
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", Output: filepath.Join(t.TempDir(), "x.log")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled")
	}
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be enabled")
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected a no-op logger")
	}
	l, _ := New(Config{Output: filepath.Join(t.TempDir(), "x.log")})
	if got := FromContext(WithContext(context.Background(), l)); got != l {
		t.Fatalf("expected stored logger back")
	}
}
