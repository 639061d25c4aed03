package mtable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rjooske/match-transformer/internal/mtype"
)

func assertInvariants(t *testing.T, m *Table) {
	t.Helper()
	require.Equal(t, len(m.CaseIndices), len(m.PatternRows))
	for _, row := range m.PatternRows {
		require.Equal(t, len(m.Occurrences), len(row))
	}
}

func TestNewPanicsOnRaggedRows(t *testing.T) {
	require.Panics(t, func() {
		New(mtype.Union{&mtype.Unknown{}}, []mtype.Occurrence{{}, {}}, []int{0}, [][]mtype.Union{{{&mtype.Unknown{}}}}) //nolint
	})
}

func TestNewPanicsOnCaseIndexMismatch(t *testing.T) {
	require.Panics(t, func() {
		New(mtype.Union{&mtype.Unknown{}}, []mtype.Occurrence{{}}, []int{0, 1}, [][]mtype.Union{{{&mtype.Unknown{}}}})
	})
}

func TestOperationsPreserveTableInvariants(t *testing.T) {
	objT := boolObjType("a")
	input := mtype.Union{objT, &mtype.Prim{Kind: mtype.PrimNumber}}
	occ := []mtype.Occurrence{{}}
	rows := [][]mtype.Union{
		{{objT}},
		{{&mtype.Lit{Value: mtype.NewNumber(1)}, &mtype.Lit{Value: mtype.NewNumber(2)}}},
	}
	m := New(input, occ, []int{0, 1}, rows)
	assertInvariants(t, m)

	expanded := Expand(m)
	assertInvariants(t, expanded)

	removed := Remove(expanded)
	assertInvariants(t, removed)

	spec, ok := SpecializeSuccess(removed, objT, 0)
	require.True(t, ok)
	assertInvariants(t, spec)

	fail, ok := SpecializeFail(removed, objT, 0)
	require.True(t, ok)
	assertInvariants(t, fail)
}
