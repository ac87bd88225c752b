/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for the Akaylee seed generator. Provides structured logging
with optional timestamped log files and text, JSON or custom output formats, plus
seed-specific helpers for reporting created, unknown and failed seeds.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

const logFilePattern = "akaylee-seedgen_*.log"

// LoggerConfig holds the configuration for the logger.
// An empty OutputDir logs to the console only.
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"`
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Caller    bool      `json:"caller"`
	Colors    bool      `json:"colors"`
}

// DefaultLoggerConfig returns console-only custom logging at info level
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    true,
	}
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must not be negative")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger wraps a logrus logger with seed-generation helpers
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	console    io.Writer
	fileHandle *os.File
	logPath    string
	startTime  time.Time
}

// NewLogger creates a new logger instance. A nil config uses DefaultLoggerConfig.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return l, nil
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *Logger {
	l := &Logger{
		config:    DefaultLoggerConfig(),
		logger:    logrus.New(),
		console:   io.Discard,
		startTime: time.Now(),
	}
	l.logger.SetOutput(l.console)
	return l
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetReportCaller(l.config.Caller)
	l.console = os.Stderr
	l.logger.SetOutput(l.console)

	if err := l.setFormatter(); err != nil {
		return err
	}

	return l.setupFileOutput()
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	callerPrettyfier := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			ForceColors:      l.config.Colors,
			DisableColors:    !l.config.Colors,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatCustom:
		l.logger.SetFormatter(&SeedFormatter{
			CustomFormatter: CustomFormatter{
				Timestamp: l.config.Timestamp,
				Caller:    l.config.Caller,
				Colors:    l.config.Colors,
			},
		})

	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}

	return nil
}

// setupFileOutput tees log output into a timestamped file when OutputDir is set
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := l.startTime.Format("2006-01-02_15-04-05")
	l.logPath = filepath.Join(l.config.OutputDir, fmt.Sprintf("akaylee-seedgen_%s.log", timestamp))

	file, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file

	l.logger.SetOutput(io.MultiWriter(l.console, file))

	l.logger.WithFields(logrus.Fields{
		"log_file": l.logPath,
		"level":    l.config.Level,
		"format":   l.config.Format,
	}).Debug("Logging system initialized")

	return nil
}

// cleanup removes the oldest log files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" || l.config.MaxFiles == 0 {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, logFilePattern))
	if err != nil {
		return err
	}

	if len(files) <= l.config.MaxFiles {
		return nil
	}

	// Names embed the start timestamp, so lexical order is age order
	sort.Strings(files)

	for _, file := range files[:len(files)-l.config.MaxFiles] {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// SetOutput redirects console output, keeping the log file if one is open
func (l *Logger) SetOutput(w io.Writer) {
	l.console = w
	if l.fileHandle != nil {
		w = io.MultiWriter(w, l.fileHandle)
	}
	l.logger.SetOutput(w)
}

// LogPath returns the current log file path, or "" when logging to console only
func (l *Logger) LogPath() string {
	return l.logPath
}

// Seed-specific logging methods

// LogSeed logs a seed file written for a format identifier
func (l *Logger) LogSeed(identifier string, path string, size int, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["identifier"] = identifier
	fields["path"] = path
	fields["size"] = size

	l.logger.WithFields(fields).Info("Seed created")
}

// LogBoundary logs a boundary payload file
func (l *Logger) LogBoundary(name string, path string, size int) {
	l.logger.WithFields(logrus.Fields{
		"payload": name,
		"path":    path,
		"size":    size,
	}).Info("Boundary payload created")
}

// LogUnknown logs an identifier that did not resolve in the active registry
func (l *Logger) LogUnknown(identifier string, mode string) {
	l.logger.WithFields(logrus.Fields{
		"identifier": identifier,
		"mode":       mode,
	}).Warn("Unknown format")
}

// LogWriteFailure logs a seed file that could not be written
func (l *Logger) LogWriteFailure(identifier string, path string, err error) {
	l.logger.WithFields(logrus.Fields{
		"identifier": identifier,
		"path":       path,
	}).WithError(err).Error("Seed write failed")
}

// LogSummary logs the totals for one generation run
func (l *Logger) LogSummary(runID string, created, unknown, failed int, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"created":  created,
		"unknown":  unknown,
		"failed":   failed,
		"duration": duration,
	}).Info("Generation summary")
}

// LogCheck logs the inspection result for one seed file
func (l *Logger) LogCheck(path string, size int, err error) {
	entry := l.logger.WithFields(logrus.Fields{
		"path": path,
		"size": size,
	})
	if err != nil {
		entry.WithError(err).Warn("Seed check failed")
		return
	}
	entry.Debug("Seed check passed")
}

// Close closes the log file and prunes old ones
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		if err := l.fileHandle.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		l.fileHandle = nil
		l.logger.SetOutput(l.console)
	}

	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}

	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
