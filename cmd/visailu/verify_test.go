package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/visailu/internal/output"
)

func TestVerifyCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "positional path", args: []string{"verify", "models/minimal.yml"}, wantCode: output.ExitSuccess, wantOut: "is valid YAML"},
		{name: "file flag", args: []string{"verify", "-f", "models/minimal.yml"}, wantCode: output.ExitSuccess},
		{name: "file flag wins", args: []string{"verify", "-f", "models/minimal.yml", "missing.yml"}, wantCode: output.ExitSuccess},
		{name: "not a model still valid yaml", args: []string{"verify", "models/list.yml"}, wantCode: output.ExitSuccess},
		{name: "bad file", args: []string{"verify", "file-does-not-exist"}, wantCode: output.ExitUsage, wantErr: "does not exist"},
		{name: "no file", args: []string{"verify"}, wantCode: output.ExitUsage, wantErr: "Document path required"},
		{name: "directory", args: []string{"verify", "models"}, wantCode: output.ExitUsage, wantErr: "is not a file"},
		{name: "bad yaml", args: []string{"verify", "models/invalid-yaml.yml"}, wantCode: output.ExitInvalid, wantErr: "is not a valid YAML file. Details:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			writeFile(t, "models/minimal.yml", minimalModel)
			writeFile(t, "models/list.yml", "- a\n- b\n")
			writeFile(t, "models/invalid-yaml.yml", "id: x\ntitle: [unclosed\n")

			stdout, stderr, code := runCLI(t, tt.args...)
			require.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			if tt.wantOut != "" {
				assert.Contains(t, stdout, tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, stderr, tt.wantErr)
			}
		})
	}
}

func TestVerifyCommand_Verbose(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "mapping", content: minimalModel, wantErr: "document root is a mapping"},
		{name: "list", content: "- a\n- b\n", wantErr: "document root is a list"},
		{name: "scalar", content: "just text\n", wantErr: "document root is a scalar"},
		{name: "empty", content: "", wantErr: "document root is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, "quiz.yml", tt.content)

			stdout, stderr, code := runCLI(t, "verify", path, "-v")
			require.Equal(t, output.ExitSuccess, code, "stderr: %s", stderr)
			assert.Contains(t, stdout, "is valid YAML")
			assert.Contains(t, stderr, "checking YAML syntax of quiz.yml")
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestVerifyCommand_QuietByDefault(t *testing.T) {
	isolate(t)
	path := writeFile(t, "quiz.yml", minimalModel)

	_, stderr, code := runCLI(t, "verify", path)
	require.Equal(t, output.ExitSuccess, code)
	assert.NotContains(t, stderr, "document root")
}

func TestVerifyCommand_JSON(t *testing.T) {
	isolate(t)
	path := writeFile(t, "quiz.yml", minimalModel)
	writeFile(t, "broken.yml", "a: [1\n")

	stdout, _, code := runCLI(t, "verify", path, "--json", "-v")
	require.Equal(t, output.ExitSuccess, code)
	result := decodeJSON(t, stdout)
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, path, result["path"])

	stdout, _, code = runCLI(t, "verify", "broken.yml", "--json")
	require.Equal(t, output.ExitInvalid, code)
	result = decodeJSON(t, stdout)
	assert.Equal(t, "InvalidSource", result["kind"])
	assert.NotContains(t, result["error"], "\n", "error message should be a single line")
}
