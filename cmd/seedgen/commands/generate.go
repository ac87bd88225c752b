/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Seed generation command. Turns flags, config file values and positional
arguments into an explicit seedgen.Config, runs the batch and prints one line per
requested seed.
*/

package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/kleascm/akaylee-seedgen/pkg/formats"
	"github.com/kleascm/akaylee-seedgen/pkg/seedgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGenerate generates the requested seeds
func RunGenerate(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	cfg, err := generateConfig(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	label := ""
	if cfg.Mode == formats.ModeSimple {
		label = "simple "
	}
	fmt.Fprintf(out, "🌱 Generating %sseeds in: %s\n", label, cfg.OutputDir)

	report, err := seedgen.New(logger).Run(cfg)
	if report == nil {
		return err
	}

	printReport(out, report)

	if err != nil {
		return err
	}
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d seed files could not be written", len(failed), len(report.Outcomes)-len(report.Unknown()))
	}
	return nil
}

// generateConfig merges positional arguments over config file values.
// Positional form: <output_dir> [format...]
func generateConfig(args []string) (seedgen.Config, error) {
	cfg := seedgen.Config{
		OutputDir: viper.GetString("output_dir"),
		Formats:   viper.GetStringSlice("formats"),
		Boundary:  viper.GetBool("boundary"),
		Manifest:  viper.GetBool("manifest"),
	}

	if len(args) > 0 {
		cfg.OutputDir = args[0]
	}
	if len(args) > 1 {
		cfg.Formats = args[1:]
	}

	if cfg.OutputDir == "" {
		return cfg, errors.New("an output directory is required")
	}
	if len(cfg.Formats) == 0 && !cfg.Boundary {
		return cfg, errors.New("no formats requested; pass formats or --boundary")
	}

	mode, err := formats.ParseMode(viper.GetString("mode"))
	if err != nil {
		return cfg, err
	}
	if viper.GetBool("simple") {
		mode = formats.ModeSimple
	}
	cfg.Mode = mode

	return cfg, nil
}

func printReport(out io.Writer, report *seedgen.Report) {
	boundaryHeader := false
	for _, o := range report.Outcomes {
		if o.Kind == seedgen.KindBoundary && !boundaryHeader {
			fmt.Fprintln(out, "  Generating boundary condition files...")
			boundaryHeader = true
		}

		switch o.Status {
		case seedgen.StatusCreated:
			fmt.Fprintf(out, "  ✓ Created %s\n", filepath.Base(o.Path))
		case seedgen.StatusUnknown:
			fmt.Fprintf(out, "  ✗ Unknown file type: %s\n", o.Identifier)
		case seedgen.StatusFailed:
			fmt.Fprintf(out, "  ✗ Failed %s: %v\n", filepath.Base(o.Path), o.Err)
		}
	}

	fmt.Fprintf(out, "📊 %d created, %d unknown, %d failed (run %s)\n",
		len(report.Created()), len(report.Unknown()), len(report.Failed()), report.RunID)
}
