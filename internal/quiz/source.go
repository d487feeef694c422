package quiz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse turns raw YAML text into a generic node tree.
// Only the first document of a multi-document stream is read.
func Parse(data []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &ValidationError{Kind: InvalidSource, Cause: err}
	}
	return &node, nil
}

// ReadFile reads and parses the YAML file at path.
func ReadFile(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ValidationError{Kind: InvalidSource, Cause: fmt.Errorf("reading %s: %w", path, err)}
	}
	return Parse(data)
}

// Load reads, decodes, and validates the quiz model at path.
func Load(path string) (*Document, error) {
	node, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeAndValidate(node)
}

// LoadBytes decodes and validates a quiz model held in memory.
func LoadBytes(data []byte) (*Document, error) {
	node, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeAndValidate(node)
}

// DecodeAndValidate runs Decode followed by Validate.
func DecodeAndValidate(node *yaml.Node) (*Document, error) {
	doc, err := Decode(node)
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}
