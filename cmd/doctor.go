package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/site2c/site2c/internal/website"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect the website tree and report what would be embedded",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDoctor(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addGenerateFlags(doctorCmd)
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor walks the source tree without generating anything and prints
// a per-asset report: route, content type, stored size, gzip flag. It
// surfaces the problems a generate run would abort on (identifier
// collisions) and the ones it would only warn about (fallback content
// types, missing root index).
func runDoctor() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.Source)
	if err != nil {
		return fmt.Errorf("source directory %s: %w", cfg.Source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path %s is not a directory", cfg.Source)
	}

	src := osfs.New(cfg.Source)
	site, err := website.Walk(src, cfg.Exclude)
	if err != nil {
		return err
	}

	printHeader(fmt.Sprintf("Assets under %s (target: %s)", cfg.Source, cfg.Target))

	var total int64
	for _, a := range site.Assets {
		fi, err := src.Stat(a.StoredPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", a.StoredPath, err)
		}
		total += fi.Size()

		detail := fmt.Sprintf("%s, %d bytes", a.ContentType, fi.Size())
		if a.Compressed {
			detail += ", gzip"
		}
		if _, known := website.TypeForName(a.LogicalPath); !known {
			printWarning(a.Route(), detail+" (fallback content type)")
		} else {
			printSuccess(a.Route(), detail)
		}
	}

	printHeader("Summary")
	printSuccess("assets", fmt.Sprintf("%d files, %d bytes of flash", len(site.Assets), total))

	if site.Index != nil {
		printSuccess("root route", "/ serves "+site.Index.StoredPath)
	} else {
		printWarning("root route", "no index.html at the source root, / will not be registered")
	}

	if err := site.CheckIdentifiers(); err != nil {
		printError("identifiers", err.Error())
		return err
	}
	printSuccess("identifiers", "all unique and valid")

	return nil
}
