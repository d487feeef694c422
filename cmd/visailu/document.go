package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/visailu/internal/config"
	"github.com/gorewood/visailu/internal/output"
	"github.com/gorewood/visailu/internal/publish"
	"github.com/gorewood/visailu/internal/quiz"
)

// addDocumentFlag registers -f/--file, the alternative to the positional path.
func addDocumentFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "file", "f", "", "File path to read model from")
}

// verbosity holds the -v/--verbose and -s/--strict flags of the model
// commands. Either one overrides the quiet setting.
type verbosity struct {
	verbose bool
	strict  bool
}

// addVerbosityFlags registers -v/--verbose and -s/--strict.
func addVerbosityFlags(cmd *cobra.Command, v *verbosity, verboseUsage string) {
	cmd.Flags().BoolVarP(&v.verbose, "verbose", "v", false, verboseUsage)
	cmd.Flags().BoolVarP(&v.strict, "strict", "s", false, "Show warnings even when quiet is configured")
}

// resolveDocumentPath picks the model path from --file or the first
// positional argument (--file wins) and checks that it names a file.
func resolveDocumentPath(fileFlag string, args []string) (string, error) {
	doc := strings.TrimSpace(fileFlag)
	if doc == "" && len(args) > 0 {
		doc = strings.TrimSpace(args[0])
	}
	if doc == "" {
		return "", output.NewUsageError("Document path required")
	}

	info, err := os.Stat(doc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", output.NewUsageError(fmt.Sprintf("requested model file path at (%s) does not exist", doc))
		}
		return "", output.NewUsageErrorWithCause(fmt.Sprintf("requested model file path at (%s) is not accessible", doc), err)
	}
	if !info.Mode().IsRegular() {
		return "", output.NewUsageError(fmt.Sprintf("requested model file path at (%s) is not a file", doc))
	}
	return doc, nil
}

// loadSettings resolves settings for the current working directory.
func loadSettings() (config.Settings, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return config.Settings{}, output.NewUsageErrorWithCause("cannot determine working directory", err)
	}
	settings, err := config.Load(workDir)
	if err != nil {
		return config.Settings{}, output.NewUsageErrorWithCause(err.Error(), err)
	}
	return settings, nil
}

// shapeOf maps settings onto the export shape.
func shapeOf(settings config.Settings) publish.Shape {
	shape := publish.DefaultShape()
	if settings.Questions > 0 {
		shape.Questions = settings.Questions
	}
	if settings.Answers > 0 {
		shape.Answers = settings.Answers
	}
	return shape
}

// modelError converts a quiz error into an exit error for path.
func modelError(path string, err error) *output.ExitError {
	kind := quiz.KindOf(err)
	if kind == 0 {
		return output.NewInvalidError("", fmt.Sprintf("path %s %v", path, err), err)
	}
	return output.NewInvalidError(kind.String(), fmt.Sprintf("path %s %s", path, slugify(err.Error())), err)
}

// reportAdvisories prints advisories as warnings unless quiet.
func reportAdvisories(printer *output.Printer, advisories []publish.Advisory, quiet bool) {
	if quiet {
		return
	}
	for _, adv := range advisories {
		printer.Warn("%s", adv.Message)
	}
}

// advisoryMessages flattens advisories for JSON output.
func advisoryMessages(advisories []publish.Advisory) []string {
	out := make([]string, 0, len(advisories))
	for _, adv := range advisories {
		out = append(out, adv.Message)
	}
	return out
}

// slugify collapses newlines and runs of whitespace into single spaces.
func slugify(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// failWith prints err and returns it, the common tail of every RunE.
func failWith(printer *output.Printer, err error) error {
	printer.Error(err)
	return err
}

// isModelError reports whether err came from loading or validating a model.
func isModelError(err error) bool {
	return quiz.KindOf(err) != 0
}
