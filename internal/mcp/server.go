// Package mcp provides a Model Context Protocol server for visailu.
// It exposes model checks and quiz publishing as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/visailu/internal/publish"
)

// Options configures the publish tool.
type Options struct {
	// BuildDir receives written quizzes when a call does not name one.
	BuildDir string
	// Shape is the nominal export shape used for advisories.
	Shape publish.Shape
}

// NewServer creates an MCP server with all visailu tools registered.
func NewServer(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "visailu",
		Version: version,
	}, nil)
	registerTools(server, opts)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that may write the build
// directory. Rewriting the same quiz is harmless.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all visailu tools to the server.
func registerTools(server *mcp.Server, opts Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "verify",
		Description: "Check that a quiz model is syntactically valid YAML. Pass either a file path or the YAML content.",
		Annotations: readOnlyAnnotations(),
	}, handleVerify())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a quiz model: id, title, questions, answers and rating scales. Returns the first violation or the effective scale of every question.",
		Annotations: readOnlyAnnotations(),
	}, handleValidate())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "publish",
		Description: "Validate a quiz model and convert it to the flat quiz JSON (id, question, options with answer/isCorrect). Set write=true to also write <build dir>/<model>.json.",
		Annotations: writeAnnotations(),
	}, handlePublish(opts))
}
