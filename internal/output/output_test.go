package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode parses one JSON object written by a printer.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	err := printer.Success(map[string]any{
		"path":      "build/minimal.json",
		"questions": 1,
	})
	require.NoError(t, err)

	result := decode(t, &buf)
	assert.Equal(t, "build/minimal.json", result["path"])
	assert.Equal(t, float64(1), result["questions"])
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewInvalidError("MissingValues", "path quiz.yml misses model values", nil))

	result := decode(t, &buf)
	assert.Equal(t, "path quiz.yml misses model values", result["error"])
	assert.Equal(t, float64(ExitInvalid), result["code"])
	assert.Equal(t, "MissingValues", result["kind"])
}

func TestPrinter_JSON_ErrorWithoutKind(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewUsageError("Document path required"))

	assert.NotContains(t, decode(t, &buf), "kind", "kind is omitted for usage errors")
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	require.NoError(t, printer.Success(map[string]any{"message": "model at quiz.yml is valid"}))
	assert.Contains(t, buf.String(), "model at quiz.yml is valid")
}

func TestPrinter_Human_ErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.Error(NewUsageError("Document path required"))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error: Document path required")
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("path", "quiz.yml")
	printer.Println()

	assert.Equal(t, "path quiz.yml\n\n", buf.String())
}

func TestPrinter_Warn(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf, false, false).Warn("model with too few questions %d instead of %d", 1, 10)

		assert.Equal(t, "Warning: model with too few questions 1 instead of 10\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf, true, false).Warn("too many")

		assert.Equal(t, "too many", decode(t, &buf)["warning"])
	})
}

func TestPrinter_Detail(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Detail("question %d uses %s", 1, "boolean")
	assert.Equal(t, "question 1 uses boolean\n", buf.String())

	buf.Reset()
	NewPrinter(&buf, true, false).Detail("hidden")
	assert.Empty(t, buf.String(), "Detail is silent in JSON mode")
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"#", "SCALE"}, [][]string{{"1", "boolean"}, {"10", "fraction"}})

	assert.Equal(t, "#   SCALE   \n1   boolean \n10  fraction\n", buf.String())
}

func TestPrinter_KeyValueAndSection(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Scales")
	printer.KeyValue("Title", "Capitals")

	assert.Equal(t, "\nScales\n──────\nTitle: Capitals\n", buf.String())
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", "", ExitInvalid)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	require.NoError(t, json.Unmarshal(result, &parsed))
	assert.Equal(t, "test error", parsed.Error)
	assert.Equal(t, ExitInvalid, parsed.Code)
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: "never", isTTY: true, want: false},
		{name: "always enables on non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "unknown value defaults to auto", colorMode: "bogus", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveColorMode(tt.colorMode, tt.isTTY))
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
}

func TestNewPrinter_NonTTYClearsStyles(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	empty := lipgloss.NewStyle()
	assert.Equal(t, empty.GetForeground(), printer.styles.Error.GetForeground(), "no foreground without a TTY")

	colored := NewPrinter(&buf, false, true)
	assert.NotEqual(t, empty.GetForeground(), colored.styles.Error.GetForeground(), "foreground on a TTY")
}
