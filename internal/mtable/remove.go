package mtable

import "github.com/rjooske/match-transformer/internal/mtype"

// Remove drops row i if some earlier row j < i shadows it: every cell of
// row j is a superunion of row i's corresponding cell. Such a row can
// never be reached because whatever it matches, the earlier
// row already matches it too.
func Remove(m *Table) *Table {
	var newRows [][]mtype.Union
	var newCases []int

	for i, row := range m.PatternRows {
		shadowed := false
		for j := 0; j < i; j++ {
			if rowShadows(m.PatternRows[j], row) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			newRows = append(newRows, row)
			newCases = append(newCases, m.CaseIndices[i])
		}
	}

	return &Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: newCases,
		PatternRows: newRows,
	}
}

// rowShadows reports whether earlier is a superunion of later in every
// column: earlier[k] :> later[k] for all k.
func rowShadows(earlier, later []mtype.Union) bool {
	for k := range later {
		if !mtype.UnionSubtype(later[k], earlier[k]) {
			return false
		}
	}
	return true
}
