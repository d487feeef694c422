package quiz

import (
	"gopkg.in/yaml.v3"
)

// Document is the root of a quiz model.
type Document struct {
	ID        string     `yaml:"id"              json:"id"`
	Title     string     `yaml:"title"           json:"title"`
	Meta      *Meta      `yaml:"meta,omitempty"  json:"meta,omitempty"`
	Questions []Question `yaml:"questions"       json:"questions"`
}

// Question is a single quiz question with its candidate answers.
// A non-nil Meta replaces the document meta for this question.
type Question struct {
	Question string   `yaml:"question"       json:"question"`
	Answers  []Answer `yaml:"answers"        json:"answers"`
	Meta     *Meta    `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Answer is a candidate answer. Rating holds the decoded scalar as-is
// (bool, int, float64, string) and is nil when the source omitted it.
type Answer struct {
	Answer string `yaml:"answer"           json:"answer"`
	Rating any    `yaml:"rating,omitempty" json:"rating,omitempty"`
}

// Meta declares the rating scale and defaults for a document or question.
type Meta struct {
	Scale    *Scale         `yaml:"scale,omitempty"    json:"scale,omitempty"`
	Defaults map[string]any `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// Scale holds the raw range declaration: a two element list or a keyword.
type Scale struct {
	Range any `yaml:"range,omitempty" json:"range,omitempty"`
}

// Decode converts a parsed YAML tree into a Document.
// Returns a MalformedStructure error when the tree is empty, its root is
// not a mapping, or a known field holds a value of the wrong shape.
func Decode(node *yaml.Node) (*Document, error) {
	root := rootMapping(node)
	if root == nil {
		return nil, fail(MalformedStructure, 0, 0)
	}

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, &ValidationError{Kind: MalformedStructure, Cause: err}
	}
	return &doc, nil
}

// rootMapping unwraps document and alias nodes down to the root mapping.
func rootMapping(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		case yaml.MappingNode:
			return node
		default:
			return nil
		}
	}
	return nil
}

// EffectiveMeta returns the meta governing question: its own when present,
// otherwise the document's. There is no merging between the two levels, so
// a question meta without defaults never falls back to document defaults.
func EffectiveMeta(doc *Document, question *Question) (*Meta, bool) {
	if question != nil && question.Meta != nil {
		return question.Meta, true
	}
	if doc != nil && doc.Meta != nil {
		return doc.Meta, true
	}
	return nil, false
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		ID:    d.ID,
		Title: d.Title,
		Meta:  d.Meta.clone(),
	}
	if d.Questions != nil {
		out.Questions = make([]Question, len(d.Questions))
		for i, question := range d.Questions {
			out.Questions[i] = Question{
				Question: question.Question,
				Meta:     question.Meta.clone(),
			}
			if question.Answers != nil {
				out.Questions[i].Answers = append([]Answer(nil), question.Answers...)
			}
		}
	}
	return out
}

func (m *Meta) clone() *Meta {
	if m == nil {
		return nil
	}
	out := &Meta{}
	if m.Scale != nil {
		scale := *m.Scale
		if pair, ok := scale.Range.([]any); ok {
			scale.Range = append([]any(nil), pair...)
		}
		out.Scale = &scale
	}
	if m.Defaults != nil {
		out.Defaults = make(map[string]any, len(m.Defaults))
		for key, val := range m.Defaults {
			out.Defaults[key] = val
		}
	}
	return out
}
