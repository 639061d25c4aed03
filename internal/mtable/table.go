// Package mtable implements the match-table abstraction and its five
// algebraic operations: specializeSuccess, specializeFail, expand, remove,
// and the success/fail shape queries that drive the decision-tree
// compiler's column refinement.
package mtable

import "github.com/rjooske/match-transformer/internal/mtype"

// Table is the rectangular pattern matrix: an input-type refinement, one
// occurrence per column, the original case index of every row, and the
// rows × columns grid of pattern unions.
//
// Every Table returned by a package function is freshly constructed; no
// operation mutates a Table it is given.
type Table struct {
	Input       mtype.Union
	Occurrences []mtype.Occurrence
	CaseIndices []int
	PatternRows [][]mtype.Union
}

// New builds a table, panicking if the basic rectangularity invariants do
// not hold — constructing a malformed table is always a caller bug, not a
// recoverable condition.
func New(input mtype.Union, occurrences []mtype.Occurrence, caseIndices []int, rows [][]mtype.Union) *Table {
	if len(caseIndices) != len(rows) {
		panic("mtable: caseIndices length must match row count")
	}
	for _, row := range rows {
		if len(row) != len(occurrences) {
			panic("mtable: row width must match occurrence count")
		}
	}
	return &Table{Input: input, Occurrences: occurrences, CaseIndices: caseIndices, PatternRows: rows}
}

// ColumnCount returns the table's width.
func (t *Table) ColumnCount() int { return len(t.Occurrences) }

// RowCount returns the table's height.
func (t *Table) RowCount() int { return len(t.PatternRows) }

// IsFail reports whether no rows remain.
func (t *Table) IsFail() bool { return t.RowCount() == 0 }

// SuccessCaseIndex reports (caseIndex, true) when exactly one row remains
// and it has zero width — the table has been driven down to a single
// unconditional match.
func (t *Table) SuccessCaseIndex() (int, bool) {
	if t.RowCount() == 1 && t.ColumnCount() == 0 {
		return t.CaseIndices[0], true
	}
	return 0, false
}

// isSingleConstructorColumn reports whether every row's cell at column j
// is a union of length exactly 1, the precondition shared by
// SpecializeSuccess and SpecializeFail.
func (t *Table) isSingleConstructorColumn(j int) bool {
	if j < 0 || j >= t.ColumnCount() {
		return false
	}
	for _, row := range t.PatternRows {
		if len(row[j]) != 1 {
			return false
		}
	}
	return true
}

// spliceRow returns a copy of row with column j removed and the
// replacement columns (repl, one per T's argument) spliced in at j's
// former position.
func spliceRow(row []mtype.Union, j int, repl []mtype.Union) []mtype.Union {
	out := make([]mtype.Union, 0, len(row)-1+len(repl))
	out = append(out, row[:j]...)
	out = append(out, repl...)
	out = append(out, row[j+1:]...)
	return out
}

func spliceOccurrences(occs []mtype.Occurrence, j int, repl []mtype.Occurrence) []mtype.Occurrence {
	out := make([]mtype.Occurrence, 0, len(occs)-1+len(repl))
	out = append(out, occs[:j]...)
	out = append(out, repl...)
	out = append(out, occs[j+1:]...)
	return out
}
