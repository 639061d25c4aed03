package dtree

import (
	merrors "github.com/rjooske/match-transformer/internal/errors"
	"github.com/rjooske/match-transformer/internal/mtable"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// newInvariantError builds the CMP001 report panicked when an
// expand+remove-guarded operation still hits a precondition violation —
// always a programmer error, and fatal.
func newInvariantError(message string) error {
	return merrors.WrapReport(merrors.New(merrors.CMP001, message, nil))
}

// candidate is one (type, column) pair the compiler could test next.
type candidate struct {
	checkType   mtype.Type
	columnIndex int
}

// candidateChecks extracts, for each column, the minima of its
// single-constructor patterns and yields one candidate per minimum, made-
// arguments-unknown. m must already be expand+remove-normalized so every
// cell is single-constructor; candidateChecks panics otherwise, since
// reaching it unnormalized is an internal-invariant violation.
func candidateChecks(m *mtable.Table) []candidate {
	var out []candidate
	for j := 0; j < m.ColumnCount(); j++ {
		var column []mtype.Type
		for _, row := range m.PatternRows {
			if len(row[j]) != 1 {
				panic(newInvariantError("candidateChecks: column is not single-constructor after expand+remove"))
			}
			column = append(column, row[j][0])
		}
		for _, t := range mtype.TypeMinima(column) {
			out = append(out, candidate{checkType: mtype.TypeMakeArgumentsUnknown(t), columnIndex: j})
		}
	}
	return out
}

// isSkippable reports whether check c is statically forced by m's current
// input refinement: let input' be m.Input with occurrences[c.columnIndex]
// replaced by {c.checkType}; c is skippable iff m.Input <: input'.
func isSkippable(m *mtable.Table, c candidate) bool {
	inputPrime := mtype.UnionReplaceAt(m.Input, m.Occurrences[c.columnIndex], mtype.Union{c.checkType})
	return mtype.UnionSubtype(m.Input, inputPrime)
}
