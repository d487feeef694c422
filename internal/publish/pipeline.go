package publish

import (
	"github.com/gorewood/visailu/internal/quiz"
)

// Result is the outcome of publishing one model.
type Result struct {
	Source     string     `json:"source"`
	Target     string     `json:"target,omitempty"`
	Quiz       []Question `json:"quiz"`
	Advisories []Advisory `json:"advisories,omitempty"`
}

// Build loads and validates the model at modelPath and transforms it,
// without writing anything.
func Build(modelPath string, shape Shape) (*Result, error) {
	doc, err := quiz.Load(modelPath)
	if err != nil {
		return nil, err
	}
	questions, advisories := Transform(doc, shape)
	return &Result{Source: modelPath, Quiz: questions, Advisories: advisories}, nil
}

// File builds the model at modelPath and writes the export into buildDir.
func File(modelPath, buildDir string, shape Shape) (*Result, error) {
	result, err := Build(modelPath, shape)
	if err != nil {
		return nil, err
	}
	target, err := WriteFile(buildDir, modelPath, result.Quiz)
	if err != nil {
		return nil, err
	}
	result.Target = target
	return result, nil
}
