package evaltree

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rjooske/match-transformer/internal/dtree"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// valueMatchesType is an independent, fully-recursive "does this runtime
// value inhabit this type" check. It deliberately does not call
// matchesOuterShape (which only tests the outer shape a compiled CheckNode
// tests) and reuses only the leaf literalMatches/primitiveMatches tests:
// the point is to verify the compiled decision tree against a second,
// independent implementation of "did this value match this pattern", not
// against itself.
func valueMatchesType(v any, t mtype.Type) bool {
	switch tt := t.(type) {
	case *mtype.Unknown:
		return true
	case *mtype.Lit:
		return literalMatches(tt.Value, v)
	case *mtype.Prim:
		return primitiveMatches(tt.Kind, v)
	case *mtype.Tuple:
		s, ok := v.([]any)
		if !ok || len(s) != len(tt.Elements) {
			return false
		}
		for i, elemUnion := range tt.Elements {
			if !valueMatchesUnion(s[i], elemUnion) {
				return false
			}
		}
		return true
	case *mtype.Array:
		s, ok := v.([]any)
		if !ok {
			return false
		}
		for _, e := range s {
			if !valueMatchesUnion(e, tt.Element) {
				return false
			}
		}
		return true
	case *mtype.Object:
		m, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for _, f := range tt.Fields {
			fv, present := m[f.Name]
			if !present {
				if f.Optional {
					continue
				}
				return false
			}
			if !valueMatchesUnion(fv, f.Value) {
				return false
			}
		}
		return true
	case *mtype.Record:
		m, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for _, fv := range m {
			if !valueMatchesUnion(fv, tt.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func valueMatchesUnion(v any, u mtype.Union) bool {
	for _, t := range u {
		if valueMatchesType(v, t) {
			return true
		}
	}
	return false
}

// sequentialExpect returns the smallest i with valueMatchesType(v,
// patterns[i]), or defaultCase if none match — the "first matching case
// wins" semantics a compiled tree must reproduce exactly.
func sequentialExpect(v any, patterns []mtype.Type, caseIndices []int, defaultCase int) int {
	for i, p := range patterns {
		if valueMatchesType(v, p) {
			return caseIndices[i]
		}
	}
	return defaultCase
}

// assertScenario compiles patterns+default into a tree and checks every
// (value, expectedCase) pair both against the independent sequential
// reference and against the hand-derived expectation.
func assertScenario(t *testing.T, patterns []mtype.Type, values []any, wantCases []int) {
	t.Helper()
	caseIndices := make([]int, len(patterns))
	patUnions := make([]mtype.Union, len(patterns))
	for i, p := range patterns {
		caseIndices[i] = i
		patUnions[i] = mtype.Union{p}
	}
	// default case
	caseIndices = append(caseIndices, -1)
	patUnions = append(patUnions, mtype.Union{&mtype.Unknown{}})

	tree := dtree.Compile(mtype.Union{&mtype.Unknown{}}, patUnions, caseIndices)

	for i, v := range values {
		got := Eval(tree, v)
		require.False(t, got.Fail, "case %d: tree unexpectedly failed for %#v", i, v)
		require.Equal(t, wantCases[i], got.CaseIndex, "case %d: value %#v", i, v)

		ref := sequentialExpect(v, patterns, caseIndices[:len(patterns)], -1)
		require.Equal(t, ref, got.CaseIndex, "case %d: tree disagrees with sequential reference for %#v", i, v)
	}
}

func TestScenario1Literals(t *testing.T) {
	patterns := []mtype.Type{
		&mtype.Lit{Value: mtype.NewUndefined()},
		&mtype.Lit{Value: mtype.NewNull()},
		&mtype.Lit{Value: mtype.NewBoolean(true)},
		&mtype.Lit{Value: mtype.NewBoolean(false)},
		&mtype.Lit{Value: mtype.NewNumber(65)},
		&mtype.Lit{Value: mtype.NewBigInt(1, "42")},
		&mtype.Lit{Value: mtype.NewString("hello world")},
	}
	values := []any{
		Undefined{}, Null{}, true, false, float64(65), big.NewInt(42), "hello world",
		map[string]any{"foo": float64(1)}, []any{float64(1), float64(2), float64(3)},
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, -1, -1}
	assertScenario(t, patterns, values, want)
}

func TestScenario2Primitives(t *testing.T) {
	patterns := []mtype.Type{
		&mtype.Prim{Kind: mtype.PrimBoolean},
		&mtype.Prim{Kind: mtype.PrimNumber},
		&mtype.Prim{Kind: mtype.PrimBigInt},
		&mtype.Prim{Kind: mtype.PrimString},
	}
	values := []any{false, float64(123), big.NewInt(321), "foo", map[string]any{}}
	want := []int{0, 1, 2, 3, -1}
	assertScenario(t, patterns, values, want)
}

func TestScenario3Arrays(t *testing.T) {
	booleanArr := &mtype.Array{Element: mtype.Union{&mtype.Prim{Kind: mtype.PrimBoolean}}}
	numberArrArr := &mtype.Array{Element: mtype.Union{&mtype.Array{Element: mtype.Union{&mtype.Prim{Kind: mtype.PrimNumber}}}}}
	unknownArr := &mtype.Array{Element: mtype.Union{&mtype.Unknown{}}}

	patterns := []mtype.Type{booleanArr, numberArrArr, unknownArr}
	values := []any{
		[]any{},
		[]any{false, true},
		[]any{[]any{float64(1), float64(2)}, []any{float64(3), float64(4)}},
		[]any{map[string]any{"a": "a"}, "b", []any{"c"}},
		"string",
	}
	want := []int{0, 0, 1, 2, -1}
	assertScenario(t, patterns, values, want)
}

func TestScenario4Tuples(t *testing.T) {
	strTriple := &mtype.Tuple{Elements: []mtype.Union{
		{&mtype.Prim{Kind: mtype.PrimString}},
		{&mtype.Prim{Kind: mtype.PrimString}},
		{&mtype.Prim{Kind: mtype.PrimString}},
	}}
	unkNumPair := &mtype.Tuple{Elements: []mtype.Union{
		{&mtype.Unknown{}},
		{&mtype.Prim{Kind: mtype.PrimNumber}},
	}}

	patterns := []mtype.Type{strTriple, unkNumPair}
	values := []any{
		[]any{"a", "b", "c"},
		[]any{"7", float64(7)},
		[]any{"a", "b", "c", "d"},
		[]any{},
	}
	want := []int{0, 1, -1, -1}
	assertScenario(t, patterns, values, want)
}

func TestScenario5Records(t *testing.T) {
	recBool := &mtype.Record{Value: mtype.Union{&mtype.Prim{Kind: mtype.PrimBoolean}}}
	recPair := &mtype.Record{Value: mtype.Union{&mtype.Tuple{Elements: []mtype.Union{
		{&mtype.Lit{Value: mtype.NewNumber(1)}},
		{&mtype.Lit{Value: mtype.NewNumber(2)}},
	}}}}
	recFoo := &mtype.Record{Value: mtype.Union{&mtype.Lit{Value: mtype.NewString("foo")}}}

	patterns := []mtype.Type{recBool, recPair, recFoo}
	values := []any{
		map[string]any{"yes": true, "no": false},
		map[string]any{},
		map[string]any{"one": []any{float64(1), float64(2)}, "two": []any{float64(1), float64(2)}},
		map[string]any{"a": "foo", "b": "foo"},
		map[string]any{"foo": "bar"},
		float64(999),
	}
	want := []int{0, 0, 1, 2, -1, -1}
	assertScenario(t, patterns, values, want)
}

func TestScenario6TaggedUnionObjects(t *testing.T) {
	caseA := &mtype.Object{Fields: []mtype.Field{
		{Name: "a", Value: mtype.Union{&mtype.Lit{Value: mtype.NewString("A")}}},
	}}
	caseB := &mtype.Object{Fields: []mtype.Field{
		{Name: "b", Value: mtype.Union{
			&mtype.Prim{Kind: mtype.PrimNumber},
			&mtype.Array{Element: mtype.Union{&mtype.Prim{Kind: mtype.PrimNumber}}},
		}},
	}}
	caseC := &mtype.Object{Fields: []mtype.Field{
		{Name: "c", Value: mtype.Union{&mtype.Tuple{Elements: []mtype.Union{
			{&mtype.Prim{Kind: mtype.PrimString}, &mtype.Prim{Kind: mtype.PrimBoolean}},
			{&mtype.Prim{Kind: mtype.PrimBoolean}},
		}}}},
	}}
	ok := &mtype.Object{Fields: []mtype.Field{
		{Name: "kind", Value: mtype.Union{&mtype.Lit{Value: mtype.NewString("ok")}}},
		{Name: "message", Value: mtype.Union{&mtype.Prim{Kind: mtype.PrimString}}},
	}}
	errCase := &mtype.Object{Fields: []mtype.Field{
		{Name: "kind", Value: mtype.Union{&mtype.Lit{Value: mtype.NewString("err")}}},
		{Name: "code", Value: mtype.Union{&mtype.Prim{Kind: mtype.PrimNumber}}},
	}}

	patterns := []mtype.Type{caseA, caseB, caseC, ok, errCase}
	caseIndices := []int{0, 1, 2, 3, 3}
	patUnions := make([]mtype.Union, len(patterns))
	for i, p := range patterns {
		patUnions[i] = mtype.Union{p}
	}
	caseIndices = append(caseIndices, -1)
	patUnions = append(patUnions, mtype.Union{&mtype.Unknown{}})

	tree := dtree.Compile(mtype.Union{&mtype.Unknown{}}, patUnions, caseIndices)

	values := []any{
		map[string]any{"a": "A"},
		map[string]any{"b": []any{float64(6), float64(5)}},
		map[string]any{"c": []any{false, true}},
		map[string]any{"kind": "ok", "message": "hi"},
		map[string]any{"kind": "err", "code": float64(3), "reason": "?"},
		map[string]any{"kind": "ok"},
	}
	want := []int{0, 1, 2, 3, 3, -1}

	for i, v := range values {
		got := Eval(tree, v)
		require.Equal(t, want[i], got.CaseIndex, "value %#v", v)
	}
}

func TestCorrectnessLawAgainstSequentialReference(t *testing.T) {
	// A denser mixed scenario exercising several constructors together,
	// checked purely against the independent sequential reference rather
	// than hand-derived expectations.
	patterns := []mtype.Type{
		&mtype.Lit{Value: mtype.NewNumber(0)},
		&mtype.Prim{Kind: mtype.PrimNumber},
		&mtype.Tuple{Elements: []mtype.Union{{&mtype.Unknown{}}, {&mtype.Unknown{}}}},
		&mtype.Object{Fields: []mtype.Field{{Name: "x", Value: mtype.Union{&mtype.Unknown{}}}}},
	}
	values := []any{
		float64(0),
		float64(42),
		[]any{"a", "b"},
		map[string]any{"x": true},
		map[string]any{"x": true, "y": 1},
		"nope",
		[]any{"a"},
	}

	caseIndices := make([]int, len(patterns))
	patUnions := make([]mtype.Union, len(patterns))
	for i, p := range patterns {
		caseIndices[i] = i
		patUnions[i] = mtype.Union{p}
	}
	caseIndices = append(caseIndices, -1)
	patUnions = append(patUnions, mtype.Union{&mtype.Unknown{}})

	tree := dtree.Compile(mtype.Union{&mtype.Unknown{}}, patUnions, caseIndices)

	for _, v := range values {
		want := sequentialExpect(v, patterns, caseIndices[:len(patterns)], -1)
		got := Eval(tree, v)
		require.Equal(t, want, got.CaseIndex, "value %#v", v)
	}
}
