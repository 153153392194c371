package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Format represents the log output format
type Format int

const (
	Text Format = iota
	JSON
)

// Logger handles leveled, structured logging to a single writer.
type Logger struct {
	out    io.Writer
	level  Level
	format Format
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level  Level
	Format Format
}

var (
	defaultLogger = &Logger{
		out:    os.Stderr,
		level:  INFO,
		format: Text,
	}

	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// Configure sets up the default logger
func Configure(config LogConfig) {
	defaultLogger.level = config.Level
	defaultLogger.format = config.Format
}

// ParseLevel converts a level name to a Level, defaulting to INFO.
func ParseLevel(name string) Level {
	switch name {
	case "DEBUG", "debug":
		return DEBUG
	case "WARN", "warn":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

type logEntry struct {
	Timestamp string      `json:"timestamp"`
	Level     string      `json:"level"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

func (l *Logger) log(level Level, msg string, data interface{}) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")

	if l.format == JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   msg,
			Data:      data,
		}
		if err := json.NewEncoder(l.out).Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode log entry: %v\n", err)
		}
		return
	}

	var levelColor *color.Color
	switch level {
	case DEBUG:
		levelColor = debugColor
	case WARN:
		levelColor = warnColor
	case ERROR:
		levelColor = errorColor
	default:
		levelColor = infoColor
	}

	levelStr := levelColor.Sprintf("%-5s", level.String())
	fmt.Fprintf(l.out, "%s %s: %s", timestamp, levelStr, msg)
	if data != nil {
		fmt.Fprintf(l.out, " %+v", data)
	}
	fmt.Fprintln(l.out)
}

func (l *Logger) Debug(msg string, data ...interface{}) {
	l.log(DEBUG, msg, firstOrNil(data))
}

func (l *Logger) Info(msg string, data ...interface{}) {
	l.log(INFO, msg, firstOrNil(data))
}

func (l *Logger) Warn(msg string, data ...interface{}) {
	l.log(WARN, msg, firstOrNil(data))
}

func (l *Logger) Error(msg string, err error, data ...interface{}) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	l.log(ERROR, msg, firstOrNil(data))
}

func firstOrNil(data []interface{}) interface{} {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

// ScanStart logs the start of a provider scan with its scope and kind set.
func (l *Logger) ScanStart(provider string, kinds []string, scopes []string) {
	l.Info("Starting scan", map[string]interface{}{
		"provider": provider,
		"kinds":    kinds,
		"scopes":   scopes,
	})
}

// ScopeFallback logs that scope discovery failed and a default is used.
// This is informational: the scan still proceeds with the fallback scope.
func (l *Logger) ScopeFallback(provider, fallback string, err error) {
	data := map[string]interface{}{
		"provider": provider,
		"fallback": fallback,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	l.Warn("Scope discovery failed, using default scope", data)
}

// CollectorStart logs the start of one collector against one scope.
func (l *Logger) CollectorStart(provider, kind, scope string) {
	l.Debug("Collecting", map[string]interface{}{
		"provider": provider,
		"kind":     kind,
		"scope":    scope,
	})
}

// CollectorComplete logs a collector result for one scope.
func (l *Logger) CollectorComplete(provider, kind, scope string, count int) {
	l.Info("Collector completed", map[string]interface{}{
		"provider": provider,
		"kind":     kind,
		"scope":    scope,
		"count":    count,
	})
}

// CollectorError logs a collector failure that was recorded in the report.
func (l *Logger) CollectorError(provider, kind, scope string, err error) {
	l.Error("Collector failed", err, map[string]interface{}{
		"provider": provider,
		"kind":     kind,
		"scope":    scope,
	})
}

// ProviderComplete logs the completion of one provider scan.
func (l *Logger) ProviderComplete(provider string, total, failures int) {
	l.Info("Provider scan complete", map[string]interface{}{
		"provider": provider,
		"total":    total,
		"failures": failures,
	})
}

// Default logger methods
func Debug(msg string, data ...interface{}) {
	defaultLogger.Debug(msg, data...)
}

func Info(msg string, data ...interface{}) {
	defaultLogger.Info(msg, data...)
}

func Warn(msg string, data ...interface{}) {
	defaultLogger.Warn(msg, data...)
}

func Error(msg string, err error, data ...interface{}) {
	defaultLogger.Error(msg, err, data...)
}

func ScanStart(provider string, kinds []string, scopes []string) {
	defaultLogger.ScanStart(provider, kinds, scopes)
}

func ScopeFallback(provider, fallback string, err error) {
	defaultLogger.ScopeFallback(provider, fallback, err)
}

func CollectorStart(provider, kind, scope string) {
	defaultLogger.CollectorStart(provider, kind, scope)
}

func CollectorComplete(provider, kind, scope string, count int) {
	defaultLogger.CollectorComplete(provider, kind, scope, count)
}

func CollectorError(provider, kind, scope string, err error) {
	defaultLogger.CollectorError(provider, kind, scope, err)
}

func ProviderComplete(provider string, total, failures int) {
	defaultLogger.ProviderComplete(provider, total, failures)
}
