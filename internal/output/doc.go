// Package output provides structured output handling for the visailu CLI.
//
// Every command writes through a Printer so the same code path serves
// humans and scripts.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "published quiz data at build/ten.json"})
//	printer.Warn("model with too few questions %d instead of %d", 1, 10)
//	printer.Error(err)
//
// # JSON Mode
//
// With --json every result is a JSON object:
//
//	// Success: {"message": "...", "path": "...", ...}
//	// Error:   {"error": "message", "code": N, "kind": "MissingValues"}
//
// # Exit Codes
//
//	output.ExitSuccess // 0: success, advisories included
//	output.ExitInvalid // 1: document rejected (bad YAML, failed validation)
//	output.ExitUsage   // 2: missing or unreadable path, bad arguments
//
// Errors built with NewInvalidError and NewUsageError carry their exit code
// through cobra and fang back to main.
package output
