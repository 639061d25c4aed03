package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rjooske/match-transformer/internal/mtype"
)

func TestParseTypeExprPrimitivesAndLiterals(t *testing.T) {
	cases := map[string]mtype.Type{
		"unknown":     &mtype.Unknown{},
		"undefined":   &mtype.Lit{Value: mtype.NewUndefined()},
		"null":        &mtype.Lit{Value: mtype.NewNull()},
		"true":        &mtype.Lit{Value: mtype.NewBoolean(true)},
		"false":       &mtype.Lit{Value: mtype.NewBoolean(false)},
		"42":          &mtype.Lit{Value: mtype.NewNumber(42)},
		"42n":         &mtype.Lit{Value: mtype.NewBigInt(1, "42")},
		`"hi"`:        &mtype.Lit{Value: mtype.NewString("hi")},
		"string":      &mtype.Prim{Kind: mtype.PrimString},
		"number":      &mtype.Prim{Kind: mtype.PrimNumber},
		"bigint":      &mtype.Prim{Kind: mtype.PrimBigInt},
		"boolean":     &mtype.Prim{Kind: mtype.PrimBoolean},
	}
	for src, want := range cases {
		u, err := ParseTypeExpr(src)
		require.NoError(t, err, src)
		require.Len(t, u, 1)
		require.True(t, mtype.TypeEqual(u[0], want), "parsing %q", src)
	}
}

func TestParseTypeExprUnion(t *testing.T) {
	u, err := ParseTypeExpr("string | number")
	require.NoError(t, err)
	require.True(t, mtype.UnionEqual(u, mtype.Union{
		&mtype.Prim{Kind: mtype.PrimString},
		&mtype.Prim{Kind: mtype.PrimNumber},
	}))
}

func TestParseTypeExprArraySuffix(t *testing.T) {
	u, err := ParseTypeExpr("number[][]")
	require.NoError(t, err)
	require.Len(t, u, 1)
	outer, ok := u[0].(*mtype.Array)
	require.True(t, ok)
	inner, ok := outer.Element[0].(*mtype.Array)
	require.True(t, ok)
	require.True(t, mtype.TypeEqual(inner.Element[0], &mtype.Prim{Kind: mtype.PrimNumber}))
}

func TestParseTypeExprTuple(t *testing.T) {
	u, err := ParseTypeExpr(`[string, number]`)
	require.NoError(t, err)
	tup, ok := u[0].(*mtype.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Elements, 2)
}

func TestParseTypeExprObjectWithOptional(t *testing.T) {
	u, err := ParseTypeExpr(`{a: string, b?: number}`)
	require.NoError(t, err)
	obj, ok := u[0].(*mtype.Object)
	require.True(t, ok)
	require.Len(t, obj.Fields, 2)
	bf, ok := obj.Field("b")
	require.True(t, ok)
	require.True(t, bf.Optional)
}

func TestParseTypeExprRecord(t *testing.T) {
	u, err := ParseTypeExpr(`Record<string, boolean>`)
	require.NoError(t, err)
	rec, ok := u[0].(*mtype.Record)
	require.True(t, ok)
	require.True(t, mtype.TypeEqual(rec.Value[0], &mtype.Prim{Kind: mtype.PrimBoolean}))
}

func TestParseTypeExprRejectsGarbage(t *testing.T) {
	_, err := ParseTypeExpr("not a type $$$")
	require.Error(t, err)
}

func TestParseTypeExprRejectsTrailingInput(t *testing.T) {
	_, err := ParseTypeExpr("string extra")
	require.Error(t, err)
}
