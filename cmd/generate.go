package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/site2c/site2c/internal/config"
	"github.com/site2c/site2c/internal/generator"
	"github.com/site2c/site2c/pkg/log"
)

// Flag values shared by the generate, watch and doctor commands. Each
// command registers the same flag set; empty values fall through to the
// YAML config file.
var (
	flagConfig   string
	flagSource   string
	flagOutput   string
	flagTarget   string
	flagAuthor   string
	flagExclude  []string
	flagLogLevel string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the embedded C header/source pair from a website tree",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", config.DefaultFile, "Path to the YAML config file")
	cmd.Flags().StringVarP(&flagSource, "source", "s", "", "Directory containing the compiled website")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output directory for the generated pair (default \"lib\")")
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "Target framework: arduino or espidf (default \"arduino\")")
	cmd.Flags().StringVar(&flagAuthor, "author", "", "Author name for the copyright banner")
	cmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "Glob pattern to skip (repeatable)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// resolveConfig loads the YAML config (if present) and merges the CLI
// flags over it, then applies defaults and validates the result.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagTarget != "" {
		cfg.Target = flagTarget
	}
	if flagAuthor != "" {
		cfg.Author = flagAuthor
	}
	if len(flagExclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, flagExclude...)
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runGenerate resolves the configuration and runs one full generation pass.
func runGenerate() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}
	return generateOnce(cfg)
}

// generateOnce checks the source-directory precondition and invokes the
// generator on a filesystem rooted at the source.
func generateOnce(cfg *config.Config) error {
	info, err := os.Stat(cfg.Source)
	if err != nil {
		return fmt.Errorf("source directory %s: %w", cfg.Source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path %s is not a directory", cfg.Source)
	}
	return generator.Generate(cfg, osfs.New(cfg.Source))
}
