/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers config validation, formats, seed
event prefixes, file output and log file retention.
*/

package logging_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-seedgen/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidation tests config validation
func TestLoggerConfigValidation(t *testing.T) {
	config := logging.DefaultLoggerConfig()
	require.NoError(t, config.Validate())

	config.Format = "xml"
	assert.Error(t, config.Validate())

	config = logging.DefaultLoggerConfig()
	config.Level = "loud"
	assert.Error(t, config.Validate())

	config = logging.DefaultLoggerConfig()
	config.MaxFiles = -1
	assert.Error(t, config.Validate())

	_, err := logging.NewLogger(config)
	assert.Error(t, err)
}

// TestLogFormats tests every output format
func TestLogFormats(t *testing.T) {
	formats := []logging.LogFormat{
		logging.LogFormatText,
		logging.LogFormatJSON,
		logging.LogFormatCustom,
	}

	for _, format := range formats {
		t.Run(string(format), func(t *testing.T) {
			logger, err := logging.NewLogger(&logging.LoggerConfig{
				Level:  logging.LogLevelInfo,
				Format: format,
			})
			require.NoError(t, err)
			defer logger.Close()

			var buf bytes.Buffer
			logger.SetOutput(&buf)
			logger.LogSeed("png", "/tmp/seed.png", 67, nil)

			assert.Contains(t, buf.String(), "Seed created")
			assert.Contains(t, buf.String(), "png")
		})
	}
}

// TestSeedFormatterPrefixes tests the seed event tags in custom output
func TestSeedFormatterPrefixes(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatCustom,
	})
	require.NoError(t, err)
	defer logger.Close()

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.LogSeed("json", "out/seed.json", 2, map[string]interface{}{"mode": "simple"})
	logger.LogBoundary("nulls", "out/seed_nulls.dat", 100)
	logger.LogUnknown("bogus", "normal")
	logger.LogWriteFailure("txt", "out/seed.txt", errors.New("disk full"))
	logger.LogSummary("run-1", 2, 1, 1, 5*time.Millisecond)
	logger.LogCheck("out/seed.bmp", 4, errors.New("bad header"))

	out := buf.String()
	assert.Contains(t, out, "INFO [SEED] Seed created identifier=json mode=simple path=out/seed.json size=2")
	assert.Contains(t, out, "[BOUNDARY]")
	assert.Contains(t, out, "WARNING [UNKNOWN] Unknown format identifier=bogus mode=normal")
	assert.Contains(t, out, "error=disk full")
	assert.Contains(t, out, "[SUMMARY]")
	assert.Contains(t, out, "WARNING [VERIFY] Seed check failed error=bad header path=out/seed.bmp size=4")
}

// TestCustomFormatterColors tests that colours are only emitted when enabled
func TestCustomFormatterColors(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{"k": "v"},
	}

	plain, err := (&logging.CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO hello k=v\n", string(plain))

	colored, err := (&logging.CustomFormatter{Colors: true}).Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(colored), "\033[32mINFO\033[0m")
}

// TestLevelFiltering tests that entries below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelWarning,
		Format: logging.LogFormatCustom,
	})
	require.NoError(t, err)
	defer logger.Close()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Info("hidden", nil)
	logger.Warning("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

// TestFileOutput tests that log entries reach the log file
func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  5,
	})
	require.NoError(t, err)
	logger.SetOutput(&bytes.Buffer{})

	logger.LogUnknown("bogus", "simple")
	path := logger.LogPath()
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"identifier":"bogus"`)
}

// TestLogRetention tests that Close prunes the oldest log files
func TestLogRetention(t *testing.T) {
	dir := t.TempDir()
	old := []string{
		"akaylee-seedgen_2020-01-01_00-00-00.log",
		"akaylee-seedgen_2020-01-02_00-00-00.log",
		"akaylee-seedgen_2020-01-03_00-00-00.log",
	}
	for _, name := range old {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  2,
	})
	require.NoError(t, err)
	logger.SetOutput(&bytes.Buffer{})
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-seedgen_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NoFileExists(t, filepath.Join(dir, old[0]))
	assert.NoFileExists(t, filepath.Join(dir, old[1]))
	assert.FileExists(t, logger.LogPath())
}

// TestNopLogger tests that the discard logger accepts calls silently
func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	logger.LogSeed("txt", "seed.txt", 1, nil)
	assert.NoError(t, logger.Close())
	assert.Empty(t, logger.LogPath())
}
