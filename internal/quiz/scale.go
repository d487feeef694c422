package quiz

import (
	"math"
	"strings"
)

// ScaleType is the kind of rating domain a scale declaration resolves to.
type ScaleType int

const (
	// ScaleUnresolved means the scale was missing or could not be parsed.
	ScaleUnresolved ScaleType = iota
	// ScaleBoolean accepts exactly one of two declared members.
	ScaleBoolean
	// ScaleFraction accepts any number within an inclusive range.
	ScaleFraction
)

// String returns a short name for the scale type.
func (t ScaleType) String() string {
	switch t {
	case ScaleBoolean:
		return "boolean"
	case ScaleFraction:
		return "fraction"
	default:
		return "unresolved"
	}
}

// Domain is the set of values a rating may take.
// For ScaleBoolean Range holds the two members verbatim; for ScaleFraction
// it holds the float64 low and high bounds.
type Domain struct {
	Type  ScaleType
	Range []any
}

// Resolved reports whether the domain can be used to check ratings.
func (d Domain) Resolved() bool {
	return d.Type != ScaleUnresolved && len(d.Range) == 2
}

// ParseScaleRange interprets a scale declaration.
// A two element list becomes a boolean domain over its members; the keywords
// binary/bool/boolean, fract/fraction/relative, and perc/percentage map to
// fixed domains. Anything else yields an unresolved, empty domain.
func ParseScaleRange(scale *Scale) Domain {
	if scale == nil || scale.Range == nil {
		return Domain{}
	}

	switch decl := scale.Range.(type) {
	case []any:
		if len(decl) != 2 {
			return Domain{}
		}
		return Domain{Type: ScaleBoolean, Range: []any{decl[0], decl[1]}}
	case string:
		return keywordDomain(decl)
	default:
		return Domain{}
	}
}

func keywordDomain(keyword string) Domain {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "binary", "bool", "boolean":
		return Domain{Type: ScaleBoolean, Range: []any{false, true}}
	case "fract", "fraction", "relative":
		return Domain{Type: ScaleFraction, Range: []any{0.0, 1.0}}
	case "perc", "percentage":
		return Domain{Type: ScaleFraction, Range: []any{0.0, 100.0}}
	default:
		return Domain{}
	}
}

// ResolveDefaults resolves the domain and default rating of meta.
// ok is false when meta is nil or has no (or an empty) defaults block.
// The returned default may be nil when defaults lacks a rating key.
func ResolveDefaults(meta *Meta) (domain Domain, rating any, ok bool) {
	if meta == nil || len(meta.Defaults) == 0 {
		return Domain{}, nil, false
	}
	return ParseScaleRange(meta.Scale), meta.Defaults["rating"], true
}

// Check validates candidate against the domain.
// Returns InvalidRange for an unresolved domain and InvalidRangeValue when
// the candidate is not a member (boolean) or not a number within the
// inclusive bounds (fraction). Literal booleans are never numbers here.
func (d Domain) Check(candidate any) error {
	if !d.Resolved() {
		return InvalidRange
	}

	switch d.Type {
	case ScaleBoolean:
		for _, member := range d.Range {
			if sameValue(member, candidate) {
				return nil
			}
		}
		return InvalidRangeValue
	case ScaleFraction:
		val, ok := number(candidate)
		if !ok {
			return InvalidRangeValue
		}
		low, lowOK := number(d.Range[0])
		high, highOK := number(d.Range[1])
		// Negated form so NaN is rejected.
		if !lowOK || !highOK || !(low <= val && val <= high) {
			return InvalidRangeValue
		}
		return nil
	default:
		return InvalidRange
	}
}

// sameValue compares two decoded scalars without cross-type coercion:
// booleans only equal booleans, strings only strings, numbers only numbers.
// Infinite and NaN numbers never match.
func sameValue(member, candidate any) bool {
	if member == nil || candidate == nil {
		return member == nil && candidate == nil
	}

	switch want := member.(type) {
	case bool:
		got, ok := candidate.(bool)
		return ok && got == want
	case string:
		got, ok := candidate.(string)
		return ok && got == want
	}

	want, ok := number(member)
	if !ok || math.IsInf(want, 0) {
		return false
	}
	got, ok := number(candidate)
	return ok && got == want
}

// number converts numeric scalars to float64. Booleans are rejected.
func number(val any) (float64, bool) {
	switch num := val.(type) {
	case int:
		return float64(num), true
	case int8:
		return float64(num), true
	case int16:
		return float64(num), true
	case int32:
		return float64(num), true
	case int64:
		return float64(num), true
	case uint:
		return float64(num), true
	case uint8:
		return float64(num), true
	case uint16:
		return float64(num), true
	case uint32:
		return float64(num), true
	case uint64:
		return float64(num), true
	case float32:
		return float64(num), true
	case float64:
		return num, true
	default:
		return 0, false
	}
}
