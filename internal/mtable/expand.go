package mtable

import "github.com/rjooske/match-transformer/internal/mtype"

// Expand replaces union patterns by a Cartesian explosion: for each row,
// every combination of one type per cell becomes its own row,
// each cell now a singleton union. The case index is repeated across
// expanded rows. Occurrences and input are unchanged. A row with an empty
// (never) cell contributes no rows.
func Expand(m *Table) *Table {
	var newRows [][]mtype.Union
	var newCases []int

	for ri, row := range m.PatternRows {
		for _, combo := range cartesian(row) {
			newRows = append(newRows, combo)
			newCases = append(newCases, m.CaseIndices[ri])
		}
	}

	return &Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: newCases,
		PatternRows: newRows,
	}
}

// cartesian enumerates every way to pick one Type from each cell of row,
// returning each pick as a row of singleton unions.
func cartesian(row []mtype.Union) [][]mtype.Union {
	if len(row) == 0 {
		return [][]mtype.Union{{}}
	}
	rest := cartesian(row[1:])
	if len(row[0]) == 0 {
		return nil
	}
	out := make([][]mtype.Union, 0, len(row[0])*len(rest))
	for _, t := range row[0] {
		for _, tail := range rest {
			combo := make([]mtype.Union, 0, len(tail)+1)
			combo = append(combo, mtype.Union{t})
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
