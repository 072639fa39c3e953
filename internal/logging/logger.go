package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config contains logger configuration.
type Config struct {
	// Level sets the logging level (debug, info, warn, error).
	Level string
	// Pretty enables human-readable console output.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// MaxRecentLogs is how many lines are kept for crash reports.
	MaxRecentLogs int
	// CrashDir is where crash reports are written.
	CrashDir string
}

func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Pretty:        true,
		Output:        os.Stdout,
		MaxRecentLogs: 10,
		CrashDir:      "logs/crash",
	}
}

type Logger struct {
	zl       zerolog.Logger
	mu       sync.Mutex
	logs     []string
	logIndex int
	maxLogs  int
	crashDir string
}

var instance *Logger
var once sync.Once

// Initializes the static logger. Only the first call has any effect.
func InitLogger(cfg Config) {
	once.Do(func() {
		instance = New(cfg)
	})
}

// Singleton accessor. Falls back to DefaultConfig when InitLogger was never called.
func GetLogger() *Logger {
	InitLogger(DefaultConfig())
	return instance
}

// New builds a standalone Logger. Most code should use GetLogger.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.MaxRecentLogs <= 0 {
		cfg.MaxRecentLogs = 10
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.DateTime,
			NoColor:    true,
		}
	}

	l := &Logger{
		logs:     make([]string, cfg.MaxRecentLogs),
		maxLogs:  cfg.MaxRecentLogs,
		crashDir: cfg.CrashDir,
	}
	l.zl = zerolog.New(zerolog.MultiLevelWriter(output, &recentWriter{logger: l})).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Zerolog exposes the underlying logger for structured fields.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Writer returns an io.Writer that logs each write as a level-less entry, for plugging
// into libraries that expect a standard logger.
func (l *Logger) Writer() io.Writer {
	return l.zl
}

func (l *Logger) Info(message string) {
	l.zl.Info().Msg(message)
}

func (l *Logger) Debug(message string) {
	l.zl.Debug().Msg(message)
}

func (l *Logger) Warn(message string) {
	l.zl.Warn().Msg(message)
}

func (l *Logger) Error(message string) {
	l.zl.Error().Msg(message)
}

// recentWriter keeps every emitted line in the ring buffer.
type recentWriter struct {
	logger *Logger
}

func (w *recentWriter) Write(p []byte) (int, error) {
	w.logger.remember(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (l *Logger) remember(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs[l.logIndex] = line
	l.logIndex = (l.logIndex + 1) % l.maxLogs
}

// Global recovery system
func (l *Logger) RecoverAndLogPanic() {
	if r := recover(); r != nil {
		l.WriteCrashFile(r)
	}
}

// Write all logs to file from the array. Returns the crash file path.
func (l *Logger) WriteCrashFile(r any) string {
	recentLogs := l.GetRecentLogs()

	if err := os.MkdirAll(l.crashDir, os.ModePerm); err != nil {
		l.zl.Error().Err(err).Msg("failed to create crash log directory")
		return ""
	}

	timestamp := time.Now().Format("20060102-150405")
	crashFile := filepath.Join(l.crashDir, fmt.Sprintf("crash-%s.log", timestamp))
	file, err := os.Create(crashFile)
	if err != nil {
		l.zl.Error().Err(err).Msg("failed to create crash file")
		return ""
	}
	defer file.Close()

	fmt.Fprintf(file, "==== Crash Report ====\n")
	fmt.Fprintf(file, "Time: %s\n", time.Now().Format(time.DateTime))
	fmt.Fprintf(file, "Panic: %v\n\n", r)
	fmt.Fprintf(file, "==== Last %d Logs ====\n", l.maxLogs)
	for _, log := range recentLogs {
		fmt.Fprintln(file, log)
	}
	return crashFile
}

// Get the recent logs stored in the array, oldest first.
func (l *Logger) GetRecentLogs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var recentLogs []string
	for i := 0; i < l.maxLogs; i++ {
		index := (l.logIndex + i) % l.maxLogs
		if l.logs[index] != "" {
			recentLogs = append(recentLogs, l.logs[index])
		}
	}
	return recentLogs
}
