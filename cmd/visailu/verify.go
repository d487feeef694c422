package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/visailu/internal/output"
	"github.com/gorewood/visailu/internal/quiz"
)

// newVerifyCmd creates the verify command.
func newVerifyCmd() *cobra.Command {
	var fileFlag string
	var flags verbosity

	cmd := &cobra.Command{
		Use:   "verify [PATH]",
		Short: "Verify the model data against YAML syntax",
		Long: `Verify the model data against YAML syntax.

Only the YAML syntax is checked; use validate to check the model itself.

Examples:
  visailu verify quiz.yml          # Check YAML syntax
  visailu verify -f quiz.yml       # Same, path given by flag
  visailu verify quiz.yml --json   # Structured result`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, fileFlag, args, flags)
		},
	}
	addDocumentFlag(cmd, &fileFlag)
	addVerbosityFlags(cmd, &flags, "Show what was parsed")
	return cmd
}

// runVerify executes the verify command.
func runVerify(cmd *cobra.Command, fileFlag string, args []string, flags verbosity) error {
	printer := newPrinter(cmd)

	path, err := resolveDocumentPath(fileFlag, args)
	if err != nil {
		return failWith(printer, err)
	}

	verbose := flags.verbose
	if settings, err := loadSettings(); err == nil {
		verbose = verbose || settings.Verbose
	}
	if verbose {
		printer.Detail("checking YAML syntax of %s", path)
	}

	node, err := quiz.ReadFile(path)
	if err != nil {
		return failWith(printer, syntaxError(path, err))
	}
	if verbose {
		printer.Detail("document root is %s", rootKind(node))
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"path": path, "valid": true})
	}
	return printer.Success(map[string]any{"message": fmt.Sprintf("path %s is valid YAML", path)})
}

// rootKind names the top-level node of a parsed document.
func rootKind(node *yaml.Node) string {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return "empty"
		}
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "empty"
	}
}

// syntaxError reports why path is not usable YAML.
func syntaxError(path string, err error) *output.ExitError {
	detail := err
	var vErr *quiz.ValidationError
	if errors.As(err, &vErr) && vErr.Cause != nil {
		detail = vErr.Cause
	}
	message := fmt.Sprintf("path %s is not a valid YAML file. Details: %s", path, slugify(detail.Error()))
	return output.NewInvalidError(quiz.InvalidSource.String(), message, err)
}
