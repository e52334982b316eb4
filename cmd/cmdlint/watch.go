package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmdlint/cmdlint/pkg/logger"
	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/runner"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const watchDebounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Re-validate command documents whenever they change",
	Long: `Watch validates the directory, then keeps watching for changes to
markdown files and re-validates on every change. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := getValidateConfigFromFlags(cmd, args)

		r, err := newRunnerFromConfig(config)
		if err != nil {
			presenter.Error(err, "Failed to configure validation")
			os.Exit(2)
		}

		if err := watchLoop(ctx, r, config); err != nil {
			presenter.Error(err, "Watch failed")
			os.Exit(2)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	watchCmd.Flags().StringP("category", "c", defaults.Category, "Only validate documents whose file category matches this glob")
	watchCmd.Flags().String("ruleset", defaults.Ruleset, "Path to a ruleset YAML overriding the built-in limits")
	watchCmd.Flags().String("agents-dir", defaults.AgentsDir, "Directory containing agent definitions for reference checks")
	watchCmd.Flags().String("skills-dir", defaults.SkillsDir, "Directory containing skill packages for reference checks")
	watchCmd.Flags().BoolP("verbose", "v", defaults.Verbose, "Show passing checks as well as failing ones")
}

func watchLoop(ctx context.Context, r *runner.Runner, config *ValidateConfig) error {
	runOnce := func() {
		report, err := r.Run(ctx, config.Root)
		if err != nil {
			presenter.Error(err, "Failed to scan directory")
			return
		}
		runner.RenderText(os.Stdout, report, config.Verbose)
		presenter.Separator()
	}

	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, config.Root); err != nil {
		return err
	}

	log := logger.G(ctx).WithField("root", config.Root)
	presenter.Info("Watching for changes... (Ctrl-C to stop)")

	// Debounce: editors fire bursts of events per save, and one re-run per
	// burst is enough.
	var timer *time.Timer
	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New subdirectories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						log.WithError(err).WithField("dir", event.Name).Warn("Failed to watch new directory")
					}
					continue
				}
			}

			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			log.WithField("path", event.Name).WithField("op", event.Op.String()).Debug("Document changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("File watcher error")
		case <-trigger:
			runOnce()
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk '%s'", path)
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return errors.Wrapf(err, "failed to watch '%s'", path)
			}
		}
		return nil
	})
}
