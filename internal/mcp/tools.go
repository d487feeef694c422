package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/visailu/internal/publish"
	"github.com/gorewood/visailu/internal/quiz"
)

// errNoSource is returned when a call names neither a path nor content.
var errNoSource = errors.New("either path or content is required")

// rejection splits a model error into its kind name and message. Rejected
// models are reported in the tool output, not as tool errors.
func rejection(err error) (kind, message string) {
	return quiz.KindOf(err).String(), err.Error()
}

// --- Verify tool ---

// VerifyInput is the input for the verify tool.
type VerifyInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"path of the YAML model file"`
	Content string `json:"content,omitempty" jsonschema:"YAML model text, used when path is empty"`
}

// VerifyOutput is the output for the verify tool.
type VerifyOutput struct {
	Valid bool   `json:"valid"           jsonschema:"true when the model is valid YAML"`
	Kind  string `json:"kind,omitempty"  jsonschema:"error kind when the model was rejected"`
	Error string `json:"error,omitempty" jsonschema:"error message when the model was rejected"`
}

func handleVerify() mcp.ToolHandlerFor[VerifyInput, VerifyOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input VerifyInput) (*mcp.CallToolResult, VerifyOutput, error) {
		var err error
		switch {
		case strings.TrimSpace(input.Path) != "":
			_, err = quiz.ReadFile(input.Path)
		case input.Content != "":
			_, err = quiz.Parse([]byte(input.Content))
		default:
			return nil, VerifyOutput{}, errNoSource
		}
		if err != nil {
			out := VerifyOutput{}
			out.Kind, out.Error = rejection(err)
			return nil, out, nil
		}
		return nil, VerifyOutput{Valid: true}, nil
	}
}

// --- Validate tool ---

// ValidateInput is the input for the validate tool.
type ValidateInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"path of the YAML model file"`
	Content string `json:"content,omitempty" jsonschema:"YAML model text, used when path is empty"`
}

// ValidateOutput is the output for the validate tool.
type ValidateOutput struct {
	Valid     bool                `json:"valid"            jsonschema:"true when the model passed validation"`
	Kind      string              `json:"kind,omitempty"   jsonschema:"error kind when the model was rejected"`
	Error     string              `json:"error,omitempty"  jsonschema:"error message when the model was rejected"`
	ID        string              `json:"id,omitempty"     jsonschema:"model id"`
	Title     string              `json:"title,omitempty"  jsonschema:"model title"`
	Questions int                 `json:"questions"        jsonschema:"number of questions in the model"`
	Scales    []quiz.QuestionInfo `json:"scales,omitempty" jsonschema:"effective rating scale per question"`
}

func handleValidate() mcp.ToolHandlerFor[ValidateInput, ValidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		doc, err := load(input.Path, input.Content)
		if errors.Is(err, errNoSource) {
			return nil, ValidateOutput{}, err
		}
		if err != nil {
			out := ValidateOutput{}
			out.Kind, out.Error = rejection(err)
			return nil, out, nil
		}
		return nil, ValidateOutput{
			Valid:     true,
			ID:        doc.ID,
			Title:     doc.Title,
			Questions: len(doc.Questions),
			Scales:    quiz.Describe(doc),
		}, nil
	}
}

// --- Publish tool ---

// PublishInput is the input for the publish tool.
type PublishInput struct {
	Path     string `json:"path,omitempty"      jsonschema:"path of the YAML model file"`
	Content  string `json:"content,omitempty"   jsonschema:"YAML model text, used when path is empty"`
	Write    bool   `json:"write,omitempty"     jsonschema:"write <build_dir>/<model>.json (requires path)"`
	BuildDir string `json:"build_dir,omitempty" jsonschema:"directory to write to (default: server build dir)"`
}

// PublishOutput is the output for the publish tool.
type PublishOutput struct {
	Valid      bool               `json:"valid"                jsonschema:"true when the model passed validation"`
	Kind       string             `json:"kind,omitempty"       jsonschema:"error kind when the model was rejected"`
	Error      string             `json:"error,omitempty"      jsonschema:"error message when the model was rejected"`
	Target     string             `json:"target,omitempty"     jsonschema:"file written when write was set"`
	Quiz       []publish.Question `json:"quiz,omitempty"       jsonschema:"published quiz questions"`
	Advisories []string           `json:"advisories,omitempty" jsonschema:"non-fatal shape warnings"`
}

func handlePublish(opts Options) mcp.ToolHandlerFor[PublishInput, PublishOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PublishInput) (*mcp.CallToolResult, PublishOutput, error) {
		path := strings.TrimSpace(input.Path)
		if input.Write && path == "" {
			return nil, PublishOutput{}, errors.New("write requires a model path")
		}

		doc, err := load(path, input.Content)
		if errors.Is(err, errNoSource) {
			return nil, PublishOutput{}, err
		}
		if err != nil {
			out := PublishOutput{}
			out.Kind, out.Error = rejection(err)
			return nil, out, nil
		}

		questions, advisories := publish.Transform(doc, opts.Shape)
		out := PublishOutput{
			Valid:      true,
			Quiz:       questions,
			Advisories: messages(advisories),
		}

		if input.Write {
			dir := input.BuildDir
			if dir == "" {
				dir = opts.BuildDir
			}
			target, err := publish.WriteFile(dir, path, questions)
			if err != nil {
				return nil, PublishOutput{}, err
			}
			out.Target = target
		}
		return nil, out, nil
	}
}

// load reads and validates a model from path, or from content when path
// is empty.
func load(path, content string) (*quiz.Document, error) {
	switch {
	case strings.TrimSpace(path) != "":
		return quiz.Load(strings.TrimSpace(path))
	case content != "":
		return quiz.LoadBytes([]byte(content))
	default:
		return nil, errNoSource
	}
}

func messages(advisories []publish.Advisory) []string {
	if len(advisories) == 0 {
		return nil
	}
	out := make([]string, 0, len(advisories))
	for _, adv := range advisories {
		out = append(out, adv.Message)
	}
	return out
}
