package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gorewood/visailu/internal/output"
	"github.com/gorewood/visailu/internal/publish"
)

// settleDelay collapses the burst of events editors emit for one save.
const settleDelay = 100 * time.Millisecond

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	var fileFlag string
	var outFlag string
	var flags verbosity

	cmd := &cobra.Command{
		Use:   "watch [PATH]",
		Short: "Publish the model again whenever it changes",
		Long: `Publish the model once, then again every time the file is saved.

Failures are reported and watching continues; stop with Ctrl+C.

Examples:
  visailu watch quiz.yml           # Keep build/quiz.json up to date
  visailu watch quiz.yml -o dist   # Keep dist/quiz.json up to date`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, fileFlag, args, outFlag, flags)
		},
	}
	addDocumentFlag(cmd, &fileFlag)
	cmd.Flags().StringVarP(&outFlag, "output-path", "o", "", "Directory to write the quiz to (default: build_dir setting)")
	addVerbosityFlags(cmd, &flags, "Show validation and export details")
	return cmd
}

// runWatch executes the watch command.
func runWatch(cmd *cobra.Command, fileFlag string, args []string, outFlag string, flags verbosity) error {
	printer := newPrinter(cmd)

	path, err := resolveDocumentPath(fileFlag, args)
	if err != nil {
		return failWith(printer, err)
	}

	settings, err := loadSettings()
	if err != nil {
		return failWith(printer, err)
	}
	buildDir := settings.BuildDir
	if outFlag != "" {
		buildDir = outFlag
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return failWith(printer, output.NewUsageErrorWithCause(err.Error(), err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return failWith(printer, output.NewUsageErrorWithCause("cannot start file watcher", err))
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors that save by rename replace the inode.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return failWith(printer, output.NewUsageErrorWithCause(
			fmt.Sprintf("cannot watch %s", filepath.Dir(target)), err))
	}

	silenced := settings.Silenced(flags.verbose, flags.strict)
	verbose := flags.verbose || settings.Verbose
	republish := func() {
		publishOnce(printer, path, buildDir, shapeOf(settings), silenced, verbose)
	}

	printer.Detail("watching %s (Ctrl+C to stop)", path)
	republish()

	return watchLoop(cmd.Context(), watcher.Events, watcher.Errors, target, republish,
		func(err error) { printer.Warn("watcher: %v", err) })
}

// publishOnce publishes the model and reports the outcome without failing.
func publishOnce(printer *output.Printer, path, buildDir string, shape publish.Shape, quiet, verbose bool) {
	result, err := publish.File(path, buildDir, shape)
	if err != nil {
		if isModelError(err) {
			printer.Error(modelError(path, err))
			return
		}
		printer.Error(err)
		return
	}

	message := fmt.Sprintf("published quiz data at %s (from model at %s)", result.Target, path)
	if printer.IsJSON() {
		_ = printer.Success(map[string]any{
			"message":    message,
			"path":       result.Target,
			"source":     path,
			"questions":  len(result.Quiz),
			"advisories": advisoryMessages(result.Advisories),
		})
		return
	}
	if verbose {
		printExportDetails(printer, path, result, shape)
	}
	reportAdvisories(printer, result.Advisories, quiet)
	_ = printer.Success(map[string]any{"message": message})
}

// watchLoop calls onChange once events for target settle, until ctx is
// done or the event channel closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	target string,
	onChange func(),
	onError func(error),
) error {
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if shouldRepublish(event, target) {
				settle = time.After(settleDelay)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			onError(err)
		case <-settle:
			settle = nil
			onChange()
		}
	}
}

// shouldRepublish reports whether event changed the watched file.
func shouldRepublish(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(target) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
