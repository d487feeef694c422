package quiz

import "errors"

// Validate checks doc against the quiz model and returns a copy in which
// every answer carries an explicit rating. The input is never modified.
//
// Questions are checked in order and answers within each question in order;
// the first violation is returned as a *ValidationError. Re-validating a
// returned document yields an equal document.
func Validate(doc *Document) (*Document, error) {
	if doc == nil {
		return nil, fail(MalformedStructure, 0, 0)
	}
	if doc.ID == "" || doc.Title == "" || len(doc.Questions) == 0 {
		return nil, fail(MissingValues, 0, 0)
	}

	out := doc.Clone()
	for idx := range out.Questions {
		if err := validateQuestion(out, idx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// validateQuestion resolves the effective defaults for one question, checks
// its answers, and back-fills missing ratings in place on the working copy.
func validateQuestion(doc *Document, idx int) error {
	question := &doc.Questions[idx]
	pos := idx + 1

	meta, _ := EffectiveMeta(doc, question)
	domain, fallback, ok := ResolveDefaults(meta)
	if !ok {
		return fail(InvalidDefaults, pos, 0)
	}
	if err := domain.Check(fallback); err != nil {
		return fail(kindOr(err, InvalidRangeValue), pos, 0)
	}

	if question.Question == "" || len(question.Answers) == 0 {
		return fail(IncompleteQuestion, pos, 0)
	}

	for slot := range question.Answers {
		answer := &question.Answers[slot]
		if answer.Answer == "" {
			return fail(AnswerMissing, pos, slot+1)
		}

		rating := answer.Rating
		if rating == nil {
			rating = fallback
		}
		if err := domain.Check(rating); err != nil {
			kind := kindOr(err, InvalidRangeValue)
			if kind == InvalidRangeValue {
				kind = InvalidRangeValueRating
			}
			return fail(kind, pos, slot+1)
		}
		if rating == nil {
			return fail(AnswerMissingRating, pos, slot+1)
		}
		answer.Rating = rating
	}
	return nil
}

func kindOr(err error, fallback ErrorKind) ErrorKind {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return fallback
}

// QuestionInfo describes how a question's rating scale was resolved.
type QuestionInfo struct {
	Position  int       `json:"position"`
	Answers   int       `json:"answers"`
	Scale     ScaleType `json:"-"`
	ScaleName string    `json:"scale"`
	Range     []any     `json:"range,omitempty"`
	Default   any       `json:"default,omitempty"`
	Inherited bool      `json:"inherited"`
}

// Describe reports the effective scale of every question in doc.
// It performs no validation; unresolvable scales show as "unresolved".
func Describe(doc *Document) []QuestionInfo {
	if doc == nil {
		return nil
	}
	infos := make([]QuestionInfo, 0, len(doc.Questions))
	for idx := range doc.Questions {
		question := &doc.Questions[idx]
		meta, _ := EffectiveMeta(doc, question)
		var domain Domain
		var fallback any
		if meta != nil {
			domain = ParseScaleRange(meta.Scale)
			fallback = meta.Defaults["rating"]
		}
		infos = append(infos, QuestionInfo{
			Position:  idx + 1,
			Answers:   len(question.Answers),
			Scale:     domain.Type,
			ScaleName: domain.Type.String(),
			Range:     domain.Range,
			Default:   fallback,
			Inherited: question.Meta == nil,
		})
	}
	return infos
}
