// Package evaltree is a reference tree evaluator: given a compiled
// dtree.DecisionTree and a live Go value, it walks the tree the way a
// back-end emitting code would — literal strict equality, primitive-kind
// tests, tuple/array/object/record outer-shape tests, and a closed-over
// loop for the array-element/record-values pseudo-accessors that fails the
// whole check on any element mismatch.
//
// This is not a back-end; it exists purely so the compiler's correctness
// has something runnable to check against inside this repository, and so
// the CLI's "check" subcommand has a demo dispatcher.
package evaltree

import (
	"math/big"

	"github.com/rjooske/match-transformer/internal/dtree"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// Undefined is the host-value representation of the literal `undefined`.
type Undefined struct{}

// Null is the host-value representation of the literal `null`.
type Null struct{}

// Result is the outcome of evaluating a decision tree against a value.
type Result struct {
	Fail      bool
	CaseIndex int
}

// Eval walks tree against value, returning the leaf reached.
func Eval(tree dtree.DecisionTree, value any) Result {
	switch n := tree.(type) {
	case *dtree.FailNode:
		return Result{Fail: true}
	case *dtree.SuccessNode:
		return Result{CaseIndex: n.CaseIndex}
	case *dtree.CheckNode:
		if checkAt(value, n.Occurrence, n.Type) {
			return Eval(n.Success, value)
		}
		return Eval(n.Fail, value)
	default:
		return Result{Fail: true}
	}
}

// checkAt walks occ from value, then tests every value it resolves to
// (normally exactly one; more than one when occ ends with a pseudo-
// accessor) against t's outer shape.
func checkAt(value any, occ mtype.Occurrence, t mtype.Type) bool {
	leaves, ok := resolve(value, occ)
	if !ok {
		return false
	}
	for _, v := range leaves {
		if !matchesOuterShape(t, v) {
			return false
		}
	}
	return true
}

// resolve walks occ's accessors from value. Property/Index accessors
// guard on presence (an "name in value" test, or an in-bounds index) and
// fail the whole walk if absent. The ArrayElement/RecordValues pseudo-
// accessors fan a single value out into every element/value found — an
// empty array or record fans out to zero leaves, which later vacuously
// satisfies "every leaf matches".
func resolve(value any, occ mtype.Occurrence) ([]any, bool) {
	values := []any{value}
	for _, acc := range occ {
		var next []any
		switch acc.Kind {
		case mtype.AccessProperty:
			for _, v := range values {
				m, ok := v.(map[string]any)
				if !ok {
					return nil, false
				}
				fv, present := m[acc.Name]
				if !present {
					return nil, false
				}
				next = append(next, fv)
			}
		case mtype.AccessIndex:
			for _, v := range values {
				s, ok := v.([]any)
				if !ok || acc.Index < 0 || acc.Index >= len(s) {
					return nil, false
				}
				next = append(next, s[acc.Index])
			}
		case mtype.AccessArrayElement:
			for _, v := range values {
				s, ok := v.([]any)
				if !ok {
					return nil, false
				}
				next = append(next, s...)
			}
		case mtype.AccessRecordValues:
			for _, v := range values {
				m, ok := v.(map[string]any)
				if !ok {
					return nil, false
				}
				for _, fv := range m {
					next = append(next, fv)
				}
			}
		}
		values = next
	}
	return values, true
}

// matchesOuterShape implements the per-constructor outer-shape test: does
// value have the right top-level constructor to possibly inhabit t, without
// descending into its children (descent happens via further CheckNodes at
// deeper occurrences).
func matchesOuterShape(t mtype.Type, value any) bool {
	switch v := t.(type) {
	case *mtype.Unknown:
		return true
	case *mtype.Lit:
		return literalMatches(v.Value, value)
	case *mtype.Prim:
		return primitiveMatches(v.Kind, value)
	case *mtype.Tuple:
		s, ok := value.([]any)
		return ok && len(s) == len(v.Elements)
	case *mtype.Array:
		_, ok := value.([]any)
		return ok
	case *mtype.Object:
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}
		for _, f := range v.Fields {
			if f.Optional {
				continue
			}
			if _, present := m[f.Name]; !present {
				return false
			}
		}
		return true
	case *mtype.Record:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}

func primitiveMatches(kind mtype.Primitive, value any) bool {
	switch kind {
	case mtype.PrimString:
		_, ok := value.(string)
		return ok
	case mtype.PrimNumber:
		_, ok := value.(float64)
		return ok
	case mtype.PrimBoolean:
		_, ok := value.(bool)
		return ok
	case mtype.PrimBigInt:
		_, ok := value.(*big.Int)
		return ok
	default:
		return false
	}
}

func literalMatches(l mtype.Literal, value any) bool {
	switch l.Kind {
	case mtype.LitNumber:
		n, ok := value.(float64)
		return ok && n == l.Number
	case mtype.LitString:
		s, ok := value.(string)
		return ok && s == l.Str
	case mtype.LitBoolean:
		b, ok := value.(bool)
		return ok && b == l.Bool
	case mtype.LitBigInt:
		bi, ok := value.(*big.Int)
		if !ok {
			return false
		}
		want := bigIntOf(l)
		return bi.Cmp(want) == 0
	case mtype.LitUndefined:
		_, ok := value.(Undefined)
		return ok
	case mtype.LitNull:
		_, ok := value.(Null)
		return ok
	default:
		return false
	}
}

func bigIntOf(l mtype.Literal) *big.Int {
	n := new(big.Int)
	n.SetString(l.BigDigs, 10)
	if l.BigSign < 0 {
		n.Neg(n)
	}
	return n
}
