package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level string, buf *bytes.Buffer) *Logger {
	t.Helper()
	return New(Config{
		Level:         level,
		Pretty:        false,
		Output:        buf,
		MaxRecentLogs: 3,
		CrashDir:      t.TempDir(),
	})
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "warn", &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "chatty", &buf)

	logger.Debug("debug message")
	logger.Info("info message")

	assert.NotContains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "info message")
}

func TestGetRecentLogs_KeepsNewestInOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "info", &buf)

	for _, msg := range []string{"one", "two", "three", "four"} {
		logger.Info(msg)
	}

	recent := logger.GetRecentLogs()
	require.Len(t, recent, 3)
	assert.Contains(t, recent[0], "two")
	assert.Contains(t, recent[1], "three")
	assert.Contains(t, recent[2], "four")
}

func TestWriteCrashFile(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "info", &buf)
	logger.Info("before the crash")

	path := logger.WriteCrashFile("boom")
	require.NotEmpty(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "==== Crash Report ===="))
	assert.Contains(t, string(content), "Panic: boom")
	assert.Contains(t, string(content), "before the crash")
}

func TestRecoverAndLogPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "info", &buf)

	func() {
		defer logger.RecoverAndLogPanic()
		panic("handled")
	}()

	entries, err := os.ReadDir(logger.crashDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(t, "info", &buf)

	_, err := logger.Writer().Write([]byte("GET /ping 200"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "GET /ping 200")
}

func TestGetLogger_DefaultsWithoutInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
	assert.Same(t, GetLogger(), GetLogger())
}
