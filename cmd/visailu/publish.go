package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/visailu/internal/output"
	"github.com/gorewood/visailu/internal/publish"
)

// newPublishCmd creates the publish command.
func newPublishCmd() *cobra.Command {
	var fileFlag string
	var outFlag string
	var stdoutFlag bool
	var flags verbosity

	cmd := &cobra.Command{
		Use:   "publish [PATH]",
		Short: "Publish the model data in simplified JSON syntax",
		Long: `Publish the model data in simplified JSON syntax.

The model is validated, missing ratings are filled from the defaults, and
the quiz is written as <build dir>/<model name>.json: an array of at most
10 questions, each {"id", "question", "options": [{"answer", "isCorrect"}]}.
Question and answer counts other than 10 and 4 produce warnings only.

Examples:
  visailu publish quiz.yml                # Write build/quiz.json
  visailu publish quiz.yml -o dist        # Write dist/quiz.json
  visailu publish quiz.yml --stdout       # Print the quiz instead of writing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, fileFlag, args, outFlag, stdoutFlag, flags)
		},
	}
	addDocumentFlag(cmd, &fileFlag)
	cmd.Flags().StringVarP(&outFlag, "output-path", "o", "", "Directory to write the quiz to (default: build_dir setting)")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Print the quiz JSON to stdout instead of writing a file")
	addVerbosityFlags(cmd, &flags, "Show validation and export details")
	return cmd
}

// runPublish executes the publish command.
func runPublish(cmd *cobra.Command, fileFlag string, args []string, outFlag string, toStdout bool, flags verbosity) error {
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

	silenced := settings.Silenced(flags.verbose, flags.strict)
	verbose := flags.verbose || settings.Verbose
	shape := shapeOf(settings)

	if toStdout {
		return publishToStdout(cmd, path, silenced, verbose, shape)
	}

	result, err := publish.File(path, buildDir, shape)
	if err != nil {
		if isModelError(err) {
			return failWith(printer, modelError(path, err))
		}
		return failWith(printer, output.NewUsageErrorWithCause(err.Error(), err))
	}

	message := fmt.Sprintf("published quiz data at %s (from model at %s)", result.Target, path)
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"message":    message,
			"path":       result.Target,
			"source":     path,
			"questions":  len(result.Quiz),
			"advisories": advisoryMessages(result.Advisories),
		})
	}

	if verbose {
		printExportDetails(printer, path, result, shape)
	}
	reportAdvisories(printer, result.Advisories, silenced)
	return printer.Success(map[string]any{"message": message})
}

// publishToStdout writes the quiz JSON to stdout; advisories go to stderr
// so the output stays parseable.
func publishToStdout(cmd *cobra.Command, path string, quiet, verbose bool, shape publish.Shape) error {
	errW := cmd.ErrOrStderr()
	stderr := output.NewPrinter(errW, false, output.ResolveColorMode(colorMode(cmd), output.IsTTY(errW))).WithStderr(errW)

	result, err := publish.Build(path, shape)
	if err != nil {
		return failWith(stderr, modelError(path, err))
	}

	if verbose {
		printExportDetails(stderr, path, result, shape)
	}
	reportAdvisories(stderr, result.Advisories, quiet)

	if err := publish.Encode(cmd.OutOrStdout(), result.Quiz); err != nil {
		return failWith(stderr, output.NewUsageErrorWithCause(err.Error(), err))
	}
	return nil
}

// printExportDetails writes the verbose summary of one export.
func printExportDetails(printer *output.Printer, path string, result *publish.Result, shape publish.Shape) {
	printer.Detail("model at %s is valid", path)
	printer.Detail("exported %d questions (nominal %d with %d answers each)",
		len(result.Quiz), shape.Questions, shape.Answers)
}
