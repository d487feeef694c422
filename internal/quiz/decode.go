package quiz

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// falsy reports whether a node holds a value the model treats as absent:
// null, false, zero, the empty string, or an empty sequence or mapping.
func falsy(node *yaml.Node) bool {
	switch node.Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		return len(node.Content) == 0
	case yaml.ScalarNode:
	default:
		return false
	}

	switch node.ShortTag() {
	case "!!null":
		return true
	case "!!bool":
		var val bool
		return node.Decode(&val) == nil && !val
	case "!!int", "!!float":
		var val float64
		return node.Decode(&val) == nil && val == 0
	case "!!str":
		return node.Value == ""
	}
	return false
}

// text is a scalar decoded into its source text. Falsy scalars decode to
// the empty string so `id: 0` or `answer: false` count as missing.
type text string

func (t *text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected text, got %s", node.Line, kindName(node))
	}
	if falsy(node) {
		*t = ""
		return nil
	}
	*t = text(node.Value)
	return nil
}

// list is a sequence field that also accepts an empty mapping or a falsy
// scalar as the empty list.
type list[T any] []T

func (l *list[T]) UnmarshalYAML(node *yaml.Node) error {
	if falsy(node) {
		*l = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a list, got %s", node.Line, kindName(node))
	}
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %q", node.Value)
	default:
		return "an unexpected node"
	}
}

// UnmarshalYAML decodes the root mapping with truthiness rules for the
// required fields.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID        text           `yaml:"id"`
		Title     text           `yaml:"title"`
		Meta      *Meta          `yaml:"meta"`
		Questions list[Question] `yaml:"questions"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = Document{ID: string(raw.ID), Title: string(raw.Title), Meta: raw.Meta, Questions: raw.Questions}
	return nil
}

// UnmarshalYAML decodes a question entry.
func (q *Question) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Question text         `yaml:"question"`
		Answers  list[Answer] `yaml:"answers"`
		Meta     *Meta        `yaml:"meta"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*q = Question{Question: string(raw.Question), Answers: raw.Answers, Meta: raw.Meta}
	return nil
}

// UnmarshalYAML decodes an answer entry; the rating is kept as decoded.
func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Answer text `yaml:"answer"`
		Rating any  `yaml:"rating"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*a = Answer{Answer: string(raw.Answer), Rating: raw.Rating}
	return nil
}
