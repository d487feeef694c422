package quiz

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScaleRange(t *testing.T) {
	tests := []struct {
		name      string
		scale     *Scale
		wantType  ScaleType
		wantRange []any
	}{
		{name: "nil scale", scale: nil, wantType: ScaleUnresolved},
		{name: "missing range", scale: &Scale{}, wantType: ScaleUnresolved},
		{name: "pair", scale: &Scale{Range: []any{"no", "yes"}}, wantType: ScaleBoolean, wantRange: []any{"no", "yes"}},
		{name: "numeric pair stays boolean", scale: &Scale{Range: []any{0, 1}}, wantType: ScaleBoolean, wantRange: []any{0, 1}},
		{name: "single element", scale: &Scale{Range: []any{true}}, wantType: ScaleUnresolved},
		{name: "three elements", scale: &Scale{Range: []any{1, 2, 3}}, wantType: ScaleUnresolved},
		{name: "empty list", scale: &Scale{Range: []any{}}, wantType: ScaleUnresolved},
		{name: "binary", scale: &Scale{Range: "binary"}, wantType: ScaleBoolean, wantRange: []any{false, true}},
		{name: "bool", scale: &Scale{Range: "bool"}, wantType: ScaleBoolean, wantRange: []any{false, true}},
		{name: "boolean mixed case", scale: &Scale{Range: "  BooLean "}, wantType: ScaleBoolean, wantRange: []any{false, true}},
		{name: "fract", scale: &Scale{Range: "fract"}, wantType: ScaleFraction, wantRange: []any{0.0, 1.0}},
		{name: "fraction", scale: &Scale{Range: "fraction"}, wantType: ScaleFraction, wantRange: []any{0.0, 1.0}},
		{name: "relative", scale: &Scale{Range: "Relative"}, wantType: ScaleFraction, wantRange: []any{0.0, 1.0}},
		{name: "perc", scale: &Scale{Range: "perc"}, wantType: ScaleFraction, wantRange: []any{0.0, 100.0}},
		{name: "percentage", scale: &Scale{Range: "percentage"}, wantType: ScaleFraction, wantRange: []any{0.0, 100.0}},
		{name: "unknown keyword", scale: &Scale{Range: "stars"}, wantType: ScaleUnresolved},
		{name: "number", scale: &Scale{Range: 5}, wantType: ScaleUnresolved},
		{name: "mapping", scale: &Scale{Range: map[string]any{"low": 0}}, wantType: ScaleUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScaleRange(tt.scale)
			assert.Equal(t, tt.wantType, got.Type)
			if tt.wantRange == nil {
				assert.Empty(t, got.Range)
				assert.False(t, got.Resolved())
				return
			}
			assert.Equal(t, tt.wantRange, got.Range)
			assert.True(t, got.Resolved())
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Run("nil meta", func(t *testing.T) {
		_, _, ok := ResolveDefaults(nil)
		assert.False(t, ok)
	})

	t.Run("missing defaults", func(t *testing.T) {
		_, _, ok := ResolveDefaults(&Meta{Scale: &Scale{Range: "bool"}})
		assert.False(t, ok)
	})

	t.Run("empty defaults", func(t *testing.T) {
		_, _, ok := ResolveDefaults(&Meta{Scale: &Scale{Range: "bool"}, Defaults: map[string]any{}})
		assert.False(t, ok)
	})

	t.Run("defaults with rating", func(t *testing.T) {
		domain, rating, ok := ResolveDefaults(&Meta{
			Scale:    &Scale{Range: "percentage"},
			Defaults: map[string]any{"rating": 25},
		})
		require.True(t, ok)
		assert.Equal(t, ScaleFraction, domain.Type)
		assert.Equal(t, 25, rating)
	})

	t.Run("defaults without rating key", func(t *testing.T) {
		domain, rating, ok := ResolveDefaults(&Meta{
			Scale:    &Scale{Range: "bool"},
			Defaults: map[string]any{"weight": 1},
		})
		require.True(t, ok)
		assert.Equal(t, ScaleBoolean, domain.Type)
		assert.Nil(t, rating)
	})

	t.Run("defaults with unparseable scale", func(t *testing.T) {
		domain, rating, ok := ResolveDefaults(&Meta{
			Scale:    &Scale{Range: "stars"},
			Defaults: map[string]any{"rating": true},
		})
		require.True(t, ok)
		assert.False(t, domain.Resolved())
		assert.Equal(t, true, rating)
	})
}

func TestDomainCheck(t *testing.T) {
	boolean := ParseScaleRange(&Scale{Range: "bool"})
	numericPair := ParseScaleRange(&Scale{Range: []any{0, 1}})
	wordPair := ParseScaleRange(&Scale{Range: []any{"wrong", "right"}})
	fraction := ParseScaleRange(&Scale{Range: "fraction"})
	percent := ParseScaleRange(&Scale{Range: "percentage"})
	infinitePair := ParseScaleRange(&Scale{Range: []any{math.Inf(1), math.Inf(-1)}})

	tests := []struct {
		name      string
		domain    Domain
		candidate any
		want      error
	}{
		{name: "unresolved domain", domain: Domain{}, candidate: true, want: InvalidRange},
		{name: "typed but empty range", domain: Domain{Type: ScaleFraction}, candidate: 0.5, want: InvalidRange},
		{name: "boolean true", domain: boolean, candidate: true},
		{name: "boolean false", domain: boolean, candidate: false},
		{name: "boolean rejects string", domain: boolean, candidate: "true", want: InvalidRangeValue},
		{name: "boolean rejects number", domain: boolean, candidate: 1, want: InvalidRangeValue},
		{name: "boolean rejects nil", domain: boolean, candidate: nil, want: InvalidRangeValue},
		{name: "numeric pair accepts int", domain: numericPair, candidate: 1},
		{name: "numeric pair accepts equal float", domain: numericPair, candidate: 0.0},
		{name: "numeric pair rejects string digit", domain: numericPair, candidate: "1", want: InvalidRangeValue},
		{name: "numeric pair rejects bool", domain: numericPair, candidate: true, want: InvalidRangeValue},
		{name: "numeric pair rejects other number", domain: numericPair, candidate: 2, want: InvalidRangeValue},
		{name: "word pair member", domain: wordPair, candidate: "right"},
		{name: "word pair is case sensitive", domain: wordPair, candidate: "Right", want: InvalidRangeValue},
		{name: "fraction low bound", domain: fraction, candidate: 0},
		{name: "fraction high bound", domain: fraction, candidate: 1.0},
		{name: "fraction inside", domain: fraction, candidate: 0.25},
		{name: "fraction above by epsilon", domain: fraction, candidate: math.Nextafter(1, 2), want: InvalidRangeValue},
		{name: "fraction below by epsilon", domain: fraction, candidate: math.Nextafter(0, -1), want: InvalidRangeValue},
		{name: "fraction rejects true", domain: fraction, candidate: true, want: InvalidRangeValue},
		{name: "fraction rejects false", domain: fraction, candidate: false, want: InvalidRangeValue},
		{name: "fraction rejects numeric string", domain: fraction, candidate: "0.5", want: InvalidRangeValue},
		{name: "fraction rejects nil", domain: fraction, candidate: nil, want: InvalidRangeValue},
		{name: "fraction rejects NaN", domain: fraction, candidate: math.NaN(), want: InvalidRangeValue},
		{name: "percent high bound", domain: percent, candidate: 100},
		{name: "percent above", domain: percent, candidate: 100.5, want: InvalidRangeValue},
		{name: "infinite pair rejects +Inf", domain: infinitePair, candidate: math.Inf(1), want: InvalidRangeValue},
		{name: "infinite pair rejects -Inf", domain: infinitePair, candidate: math.Inf(-1), want: InvalidRangeValue},
		{name: "numeric pair rejects +Inf", domain: numericPair, candidate: math.Inf(1), want: InvalidRangeValue},
		{name: "percent large unsigned", domain: percent, candidate: uint64(1 << 63), want: InvalidRangeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.domain.Check(tt.candidate)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestScaleTypeString(t *testing.T) {
	assert.Equal(t, "boolean", ScaleBoolean.String())
	assert.Equal(t, "fraction", ScaleFraction.String())
	assert.Equal(t, "unresolved", ScaleUnresolved.String())
}
