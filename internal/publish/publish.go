// Package publish converts validated quiz models into the flat quiz export.
package publish

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/visailu/internal/quiz"
)

// Nominal export shape.
const (
	DefaultQuestionCount = 10
	DefaultAnswerCount   = 4
)

// Shape is the nominal number of questions and answers per question.
type Shape struct {
	Questions int
	Answers   int
}

// DefaultShape returns the 10 x 4 shape consumers expect.
func DefaultShape() Shape {
	return Shape{Questions: DefaultQuestionCount, Answers: DefaultAnswerCount}
}

// Question is one exported quiz question.
type Question struct {
	ID       int      `json:"id"       jsonschema:"1-based position in the export"`
	Question string   `json:"question" jsonschema:"question text"`
	Options  []Option `json:"options"  jsonschema:"answers in model order"`
}

// Option is one exported answer. IsCorrect carries the resolved rating,
// which is a boolean or a number depending on the model's scale.
type Option struct {
	Answer    string `json:"answer"    jsonschema:"answer text"`
	IsCorrect any    `json:"isCorrect" jsonschema:"rating of the answer (boolean or number)"`
}

// Advisory is a non-fatal note about the export diverging from its shape.
type Advisory struct {
	Message string `json:"message"`
}

// String returns the advisory text.
func (a Advisory) String() string {
	return a.Message
}

// Transform reshapes a validated document into the export format.
// At most shape.Questions questions are emitted; all answers of an emitted
// question are kept. Shape mismatches are reported as advisories only.
func Transform(doc *quiz.Document, shape Shape) ([]Question, []Advisory) {
	if shape.Questions <= 0 {
		shape.Questions = DefaultQuestionCount
	}
	if shape.Answers <= 0 {
		shape.Answers = DefaultAnswerCount
	}

	var advisories []Advisory
	advise := func(format string, args ...any) {
		advisories = append(advisories, Advisory{Message: fmt.Sprintf(format, args...)})
	}

	var questions []quiz.Question
	if doc != nil {
		questions = doc.Questions
	}
	if problem := mismatch(len(questions), shape.Questions); problem != "" {
		advise("model with %s questions %d instead of %d", problem, len(questions), shape.Questions)
	}

	out := make([]Question, 0, min(len(questions), shape.Questions))
	for _, entry := range questions {
		if len(out) == shape.Questions {
			break
		}
		exportID := len(out) + 1
		if problem := mismatch(len(entry.Answers), shape.Answers); problem != "" {
			advise("model with %s answers %d instead of %d at question %d",
				problem, len(entry.Answers), shape.Answers, exportID)
		}

		options := make([]Option, 0, len(entry.Answers))
		for _, answer := range entry.Answers {
			options = append(options, Option{Answer: answer.Answer, IsCorrect: answer.Rating})
		}
		out = append(out, Question{ID: exportID, Question: entry.Question, Options: options})
	}

	if len(out) < shape.Questions {
		advise("quiz with too few questions %d instead of %d", len(out), shape.Questions)
	}

	return out, advisories
}

func mismatch(actual, nominal int) string {
	switch {
	case actual < nominal:
		return "too few"
	case actual > nominal:
		return "too many"
	default:
		return ""
	}
}

// Encode writes the export as two-space indented JSON.
func Encode(w io.Writer, questions []Question) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orEmpty(questions)); err != nil {
		return fmt.Errorf("encoding quiz: %w", err)
	}
	return nil
}

// TargetPath returns the export path for a model: <dir>/<model stem>.json.
func TargetPath(dir, modelPath string) string {
	base := filepath.Base(modelPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+".json")
}

// WriteFile writes the export for modelPath into dir, creating dir as
// needed, and returns the path written.
func WriteFile(dir, modelPath string, questions []Question) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating build directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(orEmpty(questions), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling quiz: %w", err)
	}

	target := TargetPath(dir, modelPath)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

func orEmpty(questions []Question) []Question {
	if questions == nil {
		return []Question{}
	}
	return questions
}
