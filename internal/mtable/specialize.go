package mtable

import "github.com/rjooske/match-transformer/internal/mtype"

// SpecializeSuccess restricts m to the case where the value at column j's
// occurrence has outer constructor T. Its precondition is that every row's
// cell at column j is a single-constructor union; on violation, or if j is
// out of bounds, it returns (nil, false). A row whose pattern at column j is
// unknown matches any constructor: it is kept, with {unknown} in every new
// column.
func SpecializeSuccess(m *Table, T mtype.Type, j int) (*Table, bool) {
	if !m.isSingleConstructorColumn(j) {
		return nil, false
	}

	tWidened := mtype.TypeMakeArgumentsUnknown(T)
	args := mtype.TypeGetArguments(tWidened)

	newOccAtJ := make([]mtype.Occurrence, len(args))
	for i, a := range args {
		newOccAtJ[i] = m.Occurrences[j].Extend(a.Accessor)
	}
	newOccurrences := spliceOccurrences(m.Occurrences, j, newOccAtJ)

	narrowed := mtype.UnionReplaceAt(m.Input, m.Occurrences[j], mtype.Union{tWidened})
	newInput := mtype.UnionIntersect(m.Input, narrowed)

	var newRows [][]mtype.Union
	var newCases []int
	for ri, row := range m.PatternRows {
		p := row[j][0]
		pWidened := mtype.TypeMakeArgumentsUnknown(p)
		_, wildcard := p.(*mtype.Unknown)
		if !wildcard && !mtype.Subtype(pWidened, tWidened) {
			continue
		}

		children := make([]mtype.Union, len(args))
		ok := true
		for ai, a := range args {
			u, accessOK := mtype.TypeAccessUnion(p, a.Accessor)
			if !accessOK {
				ok = false
				break
			}
			children[ai] = u
		}
		if !ok {
			continue
		}

		newRows = append(newRows, spliceRow(row, j, children))
		newCases = append(newCases, m.CaseIndices[ri])
	}

	return &Table{
		Input:       newInput,
		Occurrences: newOccurrences,
		CaseIndices: newCases,
		PatternRows: newRows,
	}, true
}

// SpecializeFail restricts m to rows that could still match even if the
// constructor at column j is NOT T: every row whose pattern at column j has
// a constructor different from T (tested by TypeEqualConstructor) survives
// unchanged; columns and occurrences are untouched. Same precondition and
// failure mode as SpecializeSuccess.
func SpecializeFail(m *Table, T mtype.Type, j int) (*Table, bool) {
	if !m.isSingleConstructorColumn(j) {
		return nil, false
	}

	var newRows [][]mtype.Union
	var newCases []int
	for ri, row := range m.PatternRows {
		p := row[j][0]
		if mtype.TypeEqualConstructor(p, T) {
			continue
		}
		newRows = append(newRows, row)
		newCases = append(newCases, m.CaseIndices[ri])
	}

	return &Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: newCases,
		PatternRows: newRows,
	}, true
}
