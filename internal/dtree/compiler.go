package dtree

import (
	"github.com/rjooske/match-transformer/internal/mtable"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// Compiler recursively reduces match tables to decision trees. It carries
// only a Heuristic: the compiler itself is a pure function of its input
// table given a fixed heuristic.
type Compiler struct {
	Heuristic Heuristic
}

// NewCompiler builds a Compiler with the given heuristic. A nil heuristic
// defaults to FewestMinimaHeuristic, the deterministic choice.
func NewCompiler(h Heuristic) *Compiler {
	if h == nil {
		h = FewestMinimaHeuristic{}
	}
	return &Compiler{Heuristic: h}
}

// Compile is the external entry point: wrap the per-case patterns into a
// one-column match table, normalize it once with remove(expand(...)), and
// compile. input is the scrutinee's static upper bound; patterns[i] is the
// top-level pattern union for case caseIndices[i] (a sentinel, typically
// -1, represents the default/wildcard case).
func Compile(input mtype.Union, patterns []mtype.Union, caseIndices []int) DecisionTree {
	return NewCompiler(nil).Compile(input, patterns, caseIndices)
}

// Compile builds a decision tree from the supplied input type and ordered
// per-case pattern unions, using c's heuristic for any non-skippable
// choice point.
func (c *Compiler) Compile(input mtype.Union, patterns []mtype.Union, caseIndices []int) DecisionTree {
	rows := make([][]mtype.Union, len(patterns))
	for i, p := range patterns {
		rows[i] = []mtype.Union{p}
	}
	m := mtable.New(input, []mtype.Occurrence{{}}, caseIndices, rows)
	normalized := mtable.Remove(mtable.Expand(m))
	return c.compile(normalized)
}

// compile is the recursive table reducer: leaf tables short-circuit to
// fail/success, otherwise a candidate check is picked and the table is
// specialized on both its success and fail outcomes.
func (c *Compiler) compile(m *mtable.Table) DecisionTree {
	if m.IsFail() {
		return &FailNode{}
	}
	if idx, ok := m.SuccessCaseIndex(); ok {
		return &SuccessNode{CaseIndex: idx}
	}

	candidates := candidateChecks(m)
	if len(candidates) == 0 {
		panic(newInvariantError("compile: no candidate checks for a non-fail, non-success table"))
	}

	var skippable []candidate
	for _, cc := range candidates {
		if isSkippable(m, cc) {
			skippable = append(skippable, cc)
		}
	}

	if len(skippable) > 0 {
		chosen := c.Heuristic.Pick(skippable)
		return c.compile(specializeSuccessOrPanic(m, chosen))
	}

	chosen := c.Heuristic.Pick(candidates)
	successTree := c.compile(specializeSuccessOrPanic(m, chosen))
	failTable, ok := mtable.SpecializeFail(m, chosen.checkType, chosen.columnIndex)
	if !ok {
		panic(newInvariantError("compile: specializeFail precondition violated after expand+remove"))
	}
	failTree := c.compile(failTable)

	return &CheckNode{
		Type:       chosen.checkType,
		Occurrence: m.Occurrences[chosen.columnIndex],
		Success:    successTree,
		Fail:       failTree,
	}
}

// specializeSuccessOrPanic runs specializeSuccess, then remove(expand(...))
// to re-normalize, asserting the precondition holds (it always does: every
// recursive call operates on an already expand+remove-normalized table).
func specializeSuccessOrPanic(m *mtable.Table, c candidate) *mtable.Table {
	specialized, ok := mtable.SpecializeSuccess(m, c.checkType, c.columnIndex)
	if !ok {
		panic(newInvariantError("compile: specializeSuccess precondition violated after expand+remove"))
	}
	return mtable.Remove(mtable.Expand(specialized))
}
