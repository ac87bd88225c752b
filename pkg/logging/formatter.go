/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatters for the Akaylee seed generator. Provides readable,
optionally coloured console output and a seed-aware variant that tags entries by
the kind of event they describe.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter provides structured single-line logging output
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, ""), nil
}

func (f *CustomFormatter) format(entry *logrus.Entry, prefix string) []byte {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		output.WriteString(f.paint(36, timestamp)) // Cyan
		output.WriteString(" ")
	}

	level := strings.ToUpper(entry.Level.String())
	output.WriteString(f.paint(f.getLevelColor(entry.Level), level))
	output.WriteString(" ")

	if prefix != "" {
		output.WriteString(f.paint(35, "["+prefix+"]")) // Magenta
		output.WriteString(" ")
	}

	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		output.WriteString(f.paint(33, "["+caller+"]")) // Yellow
		output.WriteString(" ")
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String())
}

func (f *CustomFormatter) paint(color int, s string) string {
	if !f.Colors {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37
	}
}

// formatFields renders fields as key=value pairs sorted by key
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := f.formatValue(fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}

	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 80 {
			return fmt.Sprintf("%s...", v[:80])
		}
		return v
	case []byte:
		if len(v) > 20 {
			return fmt.Sprintf("[%d bytes]", len(v))
		}
		return fmt.Sprintf("%x", v)
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SeedFormatter tags seed-generation events with a short prefix
type SeedFormatter struct {
	CustomFormatter
}

// Format formats a log entry with its seed event prefix
func (f *SeedFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, seedPrefix(entry.Message)), nil
}

// seedPrefix returns a prefix based on the log message
func seedPrefix(message string) string {
	switch {
	case strings.HasPrefix(message, "Seed created"):
		return "SEED"
	case strings.HasPrefix(message, "Boundary payload"):
		return "BOUNDARY"
	case strings.HasPrefix(message, "Unknown format"):
		return "UNKNOWN"
	case strings.HasPrefix(message, "Seed write failed"):
		return "WRITE"
	case strings.HasPrefix(message, "Generation summary"):
		return "SUMMARY"
	case strings.HasPrefix(message, "Seed check"):
		return "VERIFY"
	default:
		return ""
	}
}
