package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	level  slog.Level
	output string
}

type logMessage struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"additional_info,omitempty"`
}

var logInstance = &logger{out: os.Stderr, level: slog.LevelWarn, output: "stderr"}

func (l *logger) log(level slog.Level, msg string, data map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.out == nil {
		return
	}

	logMessage := logMessage{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Data:      data,
	}

	logData, err := json.Marshal(logMessage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error marshaling log message:", err)
		return
	}

	if _, err := l.out.Write(append(logData, '\n')); err != nil {
		return
	}

	if f, ok := l.out.(*os.File); ok && f != os.Stderr && f != os.Stdout {
		f.Sync()
	}
}

func (l *logger) setWriter(w io.Writer, closer io.Closer, output string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			return err
		}
	}

	l.out = w
	l.closer = closer
	l.output = output
	return nil
}

func (l *logger) SetFile(filename string) error {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return l.setWriter(file, file, filename)
}

// SetDirectory routes log output to a daily rotated file inside dir.
func (l *logger) SetDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	rl, err := rotatelogs.New(
		filepath.Join(dir, "app.%Y-%m-%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "app.log")),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize rotatelogs: %w", err)
	}

	return l.setWriter(rl, rl, dir)
}

func (l *logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

func SetLevel(level slog.Level) {
	logInstance.SetLevel(level)
}

func SetFile(filename string) error {
	return logInstance.SetFile(filename)
}

func SetDirectory(dir string) error {
	return logInstance.SetDirectory(dir)
}

// SetOutput replaces the sink with w. The previous sink is closed if the
// logger opened it.
func SetOutput(w io.Writer) error {
	return logInstance.setWriter(w, nil, "writer")
}

// Output reports where log lines currently go.
func Output() string {
	logInstance.mu.Lock()
	defer logInstance.mu.Unlock()
	return logInstance.output
}

func ReinitializeForTesting(projectRoot string) error {
	logsDir := filepath.Join(projectRoot, "storage", "logs")

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFilename := fmt.Sprintf("%s/app.%s.log", logsDir, time.Now().Format("2006-01-02"))

	if err := logInstance.SetFile(logFilename); err != nil {
		return fmt.Errorf("failed to set log file: %w", err)
	}

	return nil
}

func Debug(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelDebug, msg, first(data))
}

func Info(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelInfo, msg, first(data))
}

func Warn(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelWarn, msg, first(data))
}

func Error(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelError, msg, first(data))
}

func Fatal(msg string, data ...map[string]any) {
	logData := first(data)
	logInstance.log(slog.LevelError, msg, logData)

	fmt.Fprintf(os.Stderr, "FATAL ERROR: %s\n", msg)
	if len(logData) > 0 {
		fmt.Fprintf(os.Stderr, "📋 Details:\n")
		for key, value := range logData {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", key, value)
		}
	}

	os.Exit(1)
}

func first(data []map[string]any) map[string]any {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
