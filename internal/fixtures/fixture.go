package fixtures

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	merrors "github.com/rjooske/match-transformer/internal/errors"
	"github.com/rjooske/match-transformer/internal/dtree"
	"github.com/rjooske/match-transformer/internal/evaltree"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// caseSpec is one arm of a fixture's match: a type expression and the case
// index it should dispatch to.
type caseSpec struct {
	Pattern string `yaml:"pattern"`
	Case    int    `yaml:"case"`
}

// checkSpec is a sample value together with the case index it is expected
// to reach.
type checkSpec struct {
	Value interface{} `yaml:"value"`
	Want  int         `yaml:"want"`
}

// rawFixture is the literal YAML document shape.
type rawFixture struct {
	Input   string      `yaml:"input"`
	Cases   []caseSpec  `yaml:"cases"`
	Default int         `yaml:"default"`
	Checks  []checkSpec `yaml:"checks"`
}

// Fixture is a parsed, ready-to-compile match scenario.
type Fixture struct {
	Input       mtype.Union
	Patterns    []mtype.Union
	CaseIndices []int
	Checks      []Check
}

// Check is one sample runtime value and the case index it must reach.
type Check struct {
	Value any
	Want  int
}

// Load reads and parses the YAML fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadValue reads a standalone YAML value file (using the same
// $undefined/$null/$bigint tags as a fixture's checks) and converts it to
// the runtime value representation evaltree expects.
func LoadValue(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, merrors.WrapReport(merrors.New(merrors.FIX001, "malformed value YAML: "+err.Error(), nil))
	}
	return ConvertValue(generic)
}

// Parse parses a YAML fixture document.
func Parse(data []byte) (*Fixture, error) {
	var raw rawFixture
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, merrors.WrapReport(merrors.New(merrors.FIX001, "malformed fixture YAML: "+err.Error(), nil))
	}

	input, err := ParseTypeExpr(raw.Input)
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	patterns := make([]mtype.Union, len(raw.Cases))
	caseIndices := make([]int, len(raw.Cases))
	for i, c := range raw.Cases {
		if seen[c.Case] {
			return nil, merrors.WrapReport(merrors.New(merrors.FIX003, fmt.Sprintf("duplicate case index %d", c.Case), nil))
		}
		seen[c.Case] = true
		u, err := ParseTypeExpr(c.Pattern)
		if err != nil {
			return nil, err
		}
		patterns[i] = u
		caseIndices[i] = c.Case
	}
	patterns = append(patterns, mtype.Union{&mtype.Unknown{}})
	caseIndices = append(caseIndices, raw.Default)

	checks := make([]Check, len(raw.Checks))
	for i, c := range raw.Checks {
		v, err := ConvertValue(c.Value)
		if err != nil {
			return nil, err
		}
		checks[i] = Check{Value: v, Want: c.Want}
	}

	return &Fixture{Input: input, Patterns: patterns, CaseIndices: caseIndices, Checks: checks}, nil
}

// Compile builds a dtree.DecisionTree from the fixture using the given
// heuristic (nil selects the deterministic default).
func (f *Fixture) Compile(h dtree.Heuristic) dtree.DecisionTree {
	return dtree.NewCompiler(h).Compile(f.Input, f.Patterns, f.CaseIndices)
}

// RunChecks evaluates every sample check against tree and returns an error
// describing the first mismatch, or nil if all match.
func (f *Fixture) RunChecks(tree dtree.DecisionTree) error {
	for i, c := range f.Checks {
		got := evaltree.Eval(tree, c.Value)
		if got.Fail || got.CaseIndex != c.Want {
			return fmt.Errorf("check %d: want case %d, got fail=%v case=%d", i, c.Want, got.Fail, got.CaseIndex)
		}
	}
	return nil
}

// ConvertValue turns a generic YAML-decoded value into the runtime value
// representation evaltree expects: map[string]any, []any, string, bool,
// float64, *big.Int, evaltree.Undefined, or evaltree.Null. YAML has no
// native way to spell undefined/null/bigint distinctly from its own null
// and numbers, so a single-key map tag is used: {$undefined: true},
// {$null: true}, {$bigint: "42"}.
func ConvertValue(v interface{}) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("bare YAML null is ambiguous; use {$null: true} or {$undefined: true}")
	case map[string]interface{}:
		if _, ok := val["$undefined"]; ok && len(val) == 1 {
			return evaltree.Undefined{}, nil
		}
		if _, ok := val["$null"]; ok && len(val) == 1 {
			return evaltree.Null{}, nil
		}
		if digits, ok := val["$bigint"]; ok && len(val) == 1 {
			s, ok := digits.(string)
			if !ok {
				return nil, fmt.Errorf("$bigint payload must be a string")
			}
			n := new(big.Int)
			if _, ok := n.SetString(s, 10); !ok {
				return nil, fmt.Errorf("malformed $bigint payload %q", s)
			}
			return n, nil
		}
		out := make(map[string]any, len(val))
		for k, fv := range val {
			cv, err := ConvertValue(fv)
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]any, len(val))
		for k, fv := range val {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string map key %v", k)
			}
			cv, err := ConvertValue(fv)
			if err != nil {
				return nil, err
			}
			out[ks] = cv
		}
		return out, nil
	case []interface{}:
		out := make([]any, len(val))
		for i, e := range val {
			cv, err := ConvertValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string, bool:
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
