package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	InitLogger(level)
	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:  "info log",
			level: "info",
			logFn: func() {
				Info("test info message")
			},
			contains: []string{"test info message"},
		},
		{
			name:  "debug log with debug level",
			level: "debug",
			logFn: func() {
				Debug("test debug message")
			},
			contains: []string{"test debug message", "level=DEBUG"},
		},
		{
			name:  "debug log with info level",
			level: "info",
			logFn: func() {
				Debug("test debug message")
			},
			excludes: []string{"test debug message"},
		},
		{
			name:  "warn log with fields",
			level: "warn",
			logFn: func() {
				Warn("test warning", Fields{"pkg": "http-utils"})
			},
			contains: []string{"test warning", "level=WARN", "pkg=http-utils"},
		},
		{
			name:  "formatted error log",
			level: "error",
			logFn: func() {
				Errorf("failed to install %s", "http-utils")
			},
			contains: []string{"failed to install http-utils", "level=ERROR"},
		},
		{
			name:  "success log",
			level: "info",
			logFn: func() {
				Successf("%s installed", "http-utils")
			},
			contains: []string{"SUCCESS: http-utils installed"},
		},
		{
			name:  "unknown level falls back to info",
			level: "chatty",
			logFn: func() {
				Info("still visible")
			},
			contains: []string{"still visible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}
