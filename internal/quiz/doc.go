// Package quiz parses and validates quiz models.
//
// A quiz model is a YAML document with an id, a title, an optional meta
// block, and an ordered list of questions, each with an ordered list of
// answers:
//
//	id: capitals
//	title: European capitals
//	meta:
//	  scale:
//	    range: boolean
//	  defaults:
//	    rating: false
//	questions:
//	  - question: Capital of Finland?
//	    answers:
//	      - answer: Helsinki
//	        rating: true
//	      - answer: Turku
//
// # Scales
//
// meta.scale.range declares the rating domain. A two element list is a
// boolean domain whose members are the list items. The keywords binary,
// bool and boolean map to [false, true]; fract, fraction and relative map
// to the inclusive numeric range [0, 1]; perc and percentage map to [0, 100].
//
// # Inheritance
//
// A question's own meta replaces the document meta entirely. There is no
// merging: a question meta without defaults is rejected even when the
// document meta has them.
//
// # Pipeline
//
//	node, err := quiz.ReadFile(path) // InvalidSource on bad YAML
//	doc, err := quiz.Decode(node)    // MalformedStructure on wrong shapes
//	doc, err = quiz.Validate(doc)    // remaining ErrorKinds, ratings filled
//
// Errors are *ValidationError values; use errors.Is with an ErrorKind or
// KindOf to classify them.
package quiz
