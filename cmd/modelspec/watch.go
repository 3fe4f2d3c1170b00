package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/modelspec/output"
	"github.com/c360studio/modelspec/validate"
)

// watchDebounce coalesces bursts of file events into one re-validation.
const watchDebounce = 500 * time.Millisecond

func watchCmd(configPath, logLevel, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-validate a model tree whenever it changes",
		Long: `Watch runs a full validation pass on start, then again whenever a
document under the tree changes. Every pass is a complete run; no state
is carried between passes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			logger, err := setupLogging(*logLevel)
			if err != nil {
				return err
			}

			outFormat := output.Format(strings.ToLower(*format))
			if !outFormat.IsValid() {
				return fmt.Errorf("unknown format: %s", *format)
			}

			cfg, absRoot, err := loadConfig(*configPath, root, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			engine := validate.New(cfg, logger)

			run := func() {
				result := engine.Run(ctx, absRoot)
				if err := output.Write(cmd.OutOrStdout(), result, outFormat); err != nil {
					logger.Error("Failed to write report", slog.String("error", err.Error()))
				}
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			if err := addWatchDirs(watcher, absRoot); err != nil {
				return err
			}

			run()
			logger.Info("Watching for changes", slog.String("root", absRoot))

			var timer *time.Timer
			pending := make(chan struct{}, 1)

			for {
				select {
				case <-ctx.Done():
					logger.Info("Watch stopped")
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !relevantEvent(event) {
						continue
					}
					// New directories need watching too.
					if event.Op.Has(fsnotify.Create) {
						if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
							_ = addWatchDirs(watcher, event.Name)
						}
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(watchDebounce, func() {
						select {
						case pending <- struct{}{}:
						default:
						}
					})
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Warn("Watcher error", slog.String("error", err.Error()))
				case <-pending:
					run()
				}
			}
		},
	}
}

// addWatchDirs registers root and all its subdirectories with the watcher.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat watch root: %w", err)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// relevantEvent filters watcher events down to document-affecting changes.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext == ".yaml" || ext == ".yml" || ext == ".md" || ext == ".txt" {
		return true
	}
	// Directory events carry no extension.
	return ext == ""
}
