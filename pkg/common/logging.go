// Package common provides shared utilities and types used across claunch.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Global application logger
var globalLogger *Logger

// LogLevel represents logging verbosity levels
type LogLevel int

const (
	// LogLevelNone disables logging
	LogLevelNone LogLevel = iota
	// LogLevelError logs only errors
	LogLevelError
	// LogLevelInfo logs information and errors
	LogLevelInfo
	// LogLevelDebug logs detailed debug information
	LogLevelDebug
)

// LogLevelFromString converts a string representation to a LogLevel
func LogLevelFromString(level string) LogLevel {
	switch level {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "error":
		return LogLevelError
	case "none":
		return LogLevelNone
	default:
		return LogLevelInfo
	}
}

// Logger provides a leveled logging interface for the application.
//
// It wraps a standard log.Logger, optionally writing to a log file. The URL
// handler runs detached from any terminal when triggered by the OS, so file
// logging is the only way to see diagnostics for real invocations.
type Logger struct {
	*log.Logger
	level    LogLevel
	filePath string
	file     *os.File
}

// NewLogger creates a new Logger instance.
//
// Parameters:
//   - prefix: The prefix for all log messages
//   - filePath: Path to the log file (empty string logs to stderr)
//   - level: The logging verbosity level
//
// Returns:
//   - A new Logger instance
//   - An error if the log file cannot be opened
func NewLogger(prefix string, filePath string, level LogLevel) (*Logger, error) {
	var writer io.Writer
	var file *os.File
	var err error

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = file
	} else if level == LogLevelNone {
		writer = io.Discard
	} else {
		writer = os.Stderr
	}

	logger := &Logger{
		Logger:   log.New(writer, prefix, log.Ldate|log.Ltime|log.Lshortfile),
		level:    level,
		filePath: filePath,
		file:     file,
	}

	if filePath != "" && level >= LogLevelInfo {
		logger.Printf("----------------------------")
		logger.Printf("Logging initialized to file: %s", filePath)
	}

	return logger, nil
}

// Close closes the log file if it's open
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs a message at debug level
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs a message at info level
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.Printf("[INFO] "+format, v...)
	}
}

// Error logs a message at error level
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.Printf("[ERROR] "+format, v...)
	}
}

// FilePath returns the current log file path
func (l *Logger) FilePath() string {
	return l.filePath
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	return l.level
}

//////////////////////////////////////////////////////////////////////

// GetLogger returns the global application logger.
// If the logger hasn't been initialized yet, it returns a default stderr logger.
func GetLogger() *Logger {
	if globalLogger == nil {
		logger, err := NewLogger("[claunch] ", "", LogLevelInfo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating default logger: %v\n", err)
			minimalLogger, _ := NewLogger("[claunch] ", "", LogLevelError)
			return minimalLogger
		}
		return logger
	}
	return globalLogger
}

// SetLogger sets the global application logger
func SetLogger(logger *Logger) {
	globalLogger = logger
}
