/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for the seed generator: listing supported formats and
verifying an existing seed directory.
*/

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kleascm/akaylee-seedgen/pkg/boundary"
	"github.com/kleascm/akaylee-seedgen/pkg/formats"
	"github.com/kleascm/akaylee-seedgen/pkg/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListFormats lists the identifiers of both registries and the boundary payloads
func ListFormats(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "🧬 Akaylee Seed Generator - Supported Formats")
	fmt.Fprintln(out, "=============================================")
	fmt.Fprintln(out)

	for _, registry := range []*formats.Registry{formats.NormalRegistry(), formats.SimpleRegistry()} {
		fmt.Fprintf(out, "%s: %s\n", registry.Mode(), strings.Join(registry.Identifiers(), ", "))
	}
	fmt.Fprintf(out, "boundary: %s\n", strings.Join(boundary.Names(), ", "))
}

// RunVerify inspects every seed in a directory
func RunVerify(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Same mode resolution as generate: config file or environment, then --simple
	mode, err := formats.ParseMode(viper.GetString("mode"))
	if err != nil {
		return err
	}
	simple, err := cmd.Flags().GetBool("simple")
	if err != nil {
		return err
	}
	if simple {
		mode = formats.ModeSimple
	}

	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	results, err := verify.Dir(args[0], mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔍 Verifying %s seeds in: %s\n", mode, args[0])

	failed := 0
	for _, r := range results {
		logger.LogCheck(r.Path, r.Size, r.Err)
		if r.OK() {
			fmt.Fprintf(out, "  ✓ %s (%d bytes)\n", filepath.Base(r.Path), r.Size)
			continue
		}
		failed++
		fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(r.Path), r.Err)
	}

	fmt.Fprintf(out, "📊 Results: %d/%d seeds passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d/%d seeds failed verification", failed, len(results))
	}
	return nil
}
