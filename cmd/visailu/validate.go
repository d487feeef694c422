package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/visailu/internal/output"
	"github.com/gorewood/visailu/internal/quiz"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var fileFlag string
	var flags verbosity

	cmd := &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Validate the YAML data against the model",
		Long: `Validate the YAML data against the quiz model.

Checks that id, title and questions are present, that every question
resolves a rating scale with usable defaults, and that every answer has
text and a rating inside its scale. The first violation is reported.

Examples:
  visailu validate quiz.yml        # Validate a model
  visailu validate quiz.yml -v     # Also show the scale of every question
  visailu validate quiz.yml --json # Structured result`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, fileFlag, args, flags)
		},
	}
	addDocumentFlag(cmd, &fileFlag)
	addVerbosityFlags(cmd, &flags, "Show the resolved scale of every question")
	return cmd
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, fileFlag string, args []string, flags verbosity) error {
	printer := newPrinter(cmd)

	path, err := resolveDocumentPath(fileFlag, args)
	if err != nil {
		return failWith(printer, err)
	}

	settings, err := loadSettings()
	if err != nil {
		return failWith(printer, err)
	}
	verbose := flags.verbose || settings.Verbose

	doc, err := quiz.Load(path)
	if err != nil {
		return failWith(printer, modelError(path, err))
	}

	if printer.IsJSON() {
		data := map[string]any{
			"path":      path,
			"valid":     true,
			"id":        doc.ID,
			"title":     doc.Title,
			"questions": len(doc.Questions),
		}
		if verbose {
			data["scales"] = quiz.Describe(doc)
		}
		return printer.Success(data)
	}

	if verbose {
		printValidateDetails(printer, doc)
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("path %s is a valid model with %d questions", path, len(doc.Questions)),
	})
}

// printValidateDetails shows the model header and per-question scales.
func printValidateDetails(printer *output.Printer, doc *quiz.Document) {
	printer.KeyValue("Id", doc.ID)
	printer.KeyValue("Title", doc.Title)
	printer.Section("Scales")

	rows := make([][]string, 0, len(doc.Questions))
	for _, info := range quiz.Describe(doc) {
		source := "question"
		if info.Inherited {
			source = "document"
		}
		rows = append(rows, []string{
			strconv.Itoa(info.Position),
			strconv.Itoa(info.Answers),
			info.ScaleName,
			fmt.Sprint(info.Range),
			fmt.Sprint(info.Default),
			source,
		})
	}
	printer.Table([]string{"#", "ANSWERS", "SCALE", "RANGE", "DEFAULT", "META"}, rows)
	printer.Println()
}
