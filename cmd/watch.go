package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/site2c/site2c/pkg/log"
)

// debounceDelay batches bursts of filesystem events (build tools rewrite
// many files at once) into a single regeneration.
const debounceDelay = 250 * time.Millisecond

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the output pair whenever the website tree changes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWatch(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addGenerateFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

// runWatch performs an initial generation, then re-runs the full pipeline
// on every change to the source tree until interrupted. Generation errors
// inside the loop are logged, not fatal; the next change gets a fresh run.
func runWatch() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}

	if err := generateOnce(cfg); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTree(watcher, cfg.Source); err != nil {
		return err
	}
	slog.Info("watching for changes", "source", cfg.Source)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addWatchTree(watcher, ev.Name); err != nil {
						slog.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			pending = time.After(debounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-pending:
			pending = nil
			slog.Info("source changed, regenerating")
			if err := generateOnce(cfg); err != nil {
				slog.Error("generation failed", "error", err)
			}
		case <-sig:
			slog.Info("stopping watch")
			return nil
		}
	}
}

// addWatchTree registers root and every directory below it with the
// watcher. fsnotify does not watch recursively by itself.
func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
