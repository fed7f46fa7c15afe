package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("color must be disabled for non-terminal writers")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		logger.LogError("dropped")
		if logger.writer != nil {
			t.Error("expected nil writer")
		}
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "verbose")
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "  DEBUG ")
		if logger.logLevel != "debug" {
			t.Errorf("expected log level %q, got %q", "debug", logger.logLevel)
		}
	})
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel + " msg"

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(message)
			case "debug":
				logger.LogDebug(message)
			case "info":
				logger.LogInfo(message)
			case "warn":
				logger.LogWarn(message)
			case "error":
				logger.LogError(message)
			}

			contains := strings.Contains(buf.String(), message)
			if tt.shouldAppear && !contains {
				t.Errorf("expected %q in output, got %q", message, buf.String())
			}
			if !tt.shouldAppear && contains {
				t.Errorf("did not expect %q in output, got %q", message, buf.String())
			}
		})
	}
}

// TestLogFormat verifies the "[HH:MM:SS] [LEVEL] message" layout.
func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogWarn("skipped unreadable directory")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[WARN\] skipped unreadable directory\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

// TestConcurrentLogging verifies lines are never interleaved.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("message")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "[INFO] message") {
			t.Errorf("corrupted line: %q", line)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "WARN"} {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "fatal"} {
		if IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = true, want false", level)
		}
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogTrace("a")
	l.LogDebug("b")
	l.LogInfo("c")
	l.LogWarn("d")
	l.LogError("e")
}
