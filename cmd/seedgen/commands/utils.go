/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the seed generator commands. Provides configuration
loading and logger setup used across all command implementations.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-seedgen/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// AKAYLEE_SEEDGEN_OUTPUT_DIR, AKAYLEE_SEEDGEN_LOG_LEVEL, ...
	viper.SetEnvPrefix("AKAYLEE_SEEDGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from the loaded configuration, sending console
// output to w
func SetupLogging(w io.Writer) (*logging.Logger, error) {
	config := logging.DefaultLoggerConfig()
	config.Level = logging.LogLevel(viper.GetString("log_level"))
	config.Format = logging.LogFormat(viper.GetString("log_format"))
	config.OutputDir = viper.GetString("log_dir")

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(w)
	return logger, nil
}
