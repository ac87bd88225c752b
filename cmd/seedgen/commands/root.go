/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Command tree for the Akaylee seed generator. Declares the root command,
its persistent logging/config flags, and the generate, list and verify subcommands,
binding flags into viper so config files and environment variables can supply them.
*/

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "akaylee-seedgen",
		Short: "Akaylee Seed Generator - seed corpora for coverage-guided fuzzers",
		Long: `Akaylee Seed Generator writes deterministic seed files for common file formats
so a fuzzing campaign starts from inputs that reach real parser code. Each format
has a well-formed variant and a truncated variant, and a fixed set of boundary
payloads probes empty, oversized, null-filled and mixed-encoding inputs.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Configuration and logging
	rootCmd.PersistentFlags().String("config", "", "Configuration file path (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Log output directory (console only when empty)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	generateCmd := &cobra.Command{
		Use:   "generate [output_dir] [format...]",
		Short: "Generate seed files",
		Long: `Generate one seed.<format> file per requested format in the output directory,
creating the directory if needed. Unknown formats are reported and skipped.
With --boundary the five boundary payloads are written as seed_<name>.dat.`,
		Example: `  akaylee-seedgen generate ./corpus png json
  akaylee-seedgen generate ./corpus pdf bmp --simple --boundary`,
		RunE: RunGenerate,
	}

	generateCmd.Flags().Bool("simple", false, "Generate truncated/malformed seeds instead of well-formed ones")
	generateCmd.Flags().Bool("boundary", false, "Also generate boundary condition payloads")
	generateCmd.Flags().Bool("manifest", false, "Write manifest.json describing the run")

	viper.BindPFlag("simple", generateCmd.Flags().Lookup("simple"))
	viper.BindPFlag("boundary", generateCmd.Flags().Lookup("boundary"))
	viper.BindPFlag("manifest", generateCmd.Flags().Lookup("manifest"))

	rootCmd.AddCommand(generateCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported formats and boundary payloads",
		Args:  cobra.NoArgs,
		Run:   ListFormats,
	})

	verifyCmd := &cobra.Command{
		Use:   "verify <dir>",
		Short: "Check that the seeds in a directory are recognisable",
		Long: `Inspect every seed.<format> and seed_<name>.dat file in a directory. Format seeds
are checked for magic bytes and, for well-formed seeds, a structural parse; boundary
payloads are compared byte for byte.`,
		Args: cobra.ExactArgs(1),
		RunE: RunVerify,
	}
	verifyCmd.Flags().Bool("simple", false, "Check seeds as truncated/malformed variants")

	rootCmd.AddCommand(verifyCmd)

	return rootCmd
}
