package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		emit    func(*log.Logger)
		wantLog bool
	}{
		{"info passes at info", log.InfoLevel, func(l *log.Logger) { l.Info("layout written") }, true},
		{"debug dropped at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit for repos") }, false},
		{"debug passes at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit for repos") }, true},
		{"warn passes at info", log.InfoLevel, func(l *log.Logger) { l.Warn("source alerts unreachable") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("wrote output = %v, want %v (output %q)", got, tt.wantLog, buf.String())
			}
		})
	}
}

func TestProgressLogsMessageAndDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	p.done("Fetched 4 signals")

	out := buf.String()
	if !strings.Contains(out, "Fetched 4 signals") {
		t.Errorf("progress output %q should contain the message", out)
	}
	if !strings.Contains(out, "ms)") && !strings.Contains(out, "s)") {
		t.Errorf("progress output %q should contain an elapsed duration", out)
	}
}

func TestLoggerRoundTripsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)
	if got != logger {
		t.Fatal("loggerFromContext should return the logger stored by withLogger")
	}

	got.Info("serving on :8421")
	if !strings.Contains(buf.String(), "serving on :8421") {
		t.Errorf("context logger output %q should contain the message", buf.String())
	}
}

func TestLoggerFromContextFallsBackToDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext without a stored logger should fall back to log.Default")
	}
}
