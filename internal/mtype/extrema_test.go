package mtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeMinimaExcludesSupertypes(t *testing.T) {
	lit := &Lit{Value: NewNumber(65)}
	prim := &Prim{Kind: PrimNumber}
	unk := &Unknown{}

	minima := TypeMinima([]Type{lit, prim, unk})
	require.Len(t, minima, 1)
	require.True(t, TypeEqual(minima[0], lit))
}

func TestTypeMaximaExcludesSubtypes(t *testing.T) {
	lit := &Lit{Value: NewNumber(65)}
	prim := &Prim{Kind: PrimNumber}
	unk := &Unknown{}

	maxima := TypeMaxima([]Type{lit, prim, unk})
	require.Len(t, maxima, 1)
	require.True(t, TypeEqual(maxima[0], unk))
}

func TestExtremaPairwiseIncomparable(t *testing.T) {
	ts := []Type{
		&Prim{Kind: PrimString},
		&Prim{Kind: PrimNumber},
		&Prim{Kind: PrimBoolean},
	}
	minima := TypeMinima(ts)
	require.Len(t, minima, 3, "mutually incomparable types are all minima")
	for i := range minima {
		for j := range minima {
			if i == j {
				continue
			}
			require.False(t, strictSubtype(minima[i], minima[j]))
		}
	}
}

func TestExtremaNonEmptyForNonEmptyInput(t *testing.T) {
	ts := []Type{&Prim{Kind: PrimString}}
	require.NotEmpty(t, TypeMinima(ts))
	require.NotEmpty(t, TypeMaxima(ts))
}

func TestUnionCanonicalizeIdempotent(t *testing.T) {
	u := Union{
		&Lit{Value: NewNumber(1)},
		&Prim{Kind: PrimNumber},
		&Prim{Kind: PrimNumber},
	}
	once := UnionCanonicalize(u)
	twice := UnionCanonicalize(once)
	require.True(t, UnionEqual(once, twice))
	require.True(t, UnionEqual(once, Union{&Prim{Kind: PrimNumber}}))
}

func TestMakeArgumentsUnknownIsSupertype(t *testing.T) {
	tup := &Tuple{Elements: []Union{
		{&Lit{Value: NewString("a")}},
		{&Prim{Kind: PrimNumber}},
	}}
	widened := TypeMakeArgumentsUnknown(tup)
	require.True(t, Subtype(tup, widened))
}
