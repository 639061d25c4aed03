// Package mtype implements the structural type lattice: literals,
// primitives, tuples, arrays, objects, records, the top "unknown" type, and
// finite unions over them, together with equality, subtyping, intersection,
// canonicalization, and the accessor/occurrence machinery used to walk into
// a type.
package mtype

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LiteralKind tags the payload carried by a Literal.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitBoolean
	LitBigInt
	LitUndefined
	LitNull
)

// Literal is an exactly-one-value type: the tag plus its payload.
// Two literals are equal iff their tags and payloads are equal; a BigInt
// payload is compared by sign and canonical decimal digit string.
type Literal struct {
	Kind    LiteralKind
	Number  float64
	Str     string
	Bool    bool
	BigSign int    // -1, 0, or 1
	BigDigs string // canonical decimal digits, no sign, no leading zeros
}

// NewNumber builds a numeric literal.
func NewNumber(n float64) Literal { return Literal{Kind: LitNumber, Number: n} }

// NewString builds a string literal, NFC-normalized at construction so that
// Unicode-equivalent strings in different normalization forms compare equal
// — the same guarantee the host's lexer gives source text at its boundary.
func NewString(s string) Literal {
	b := []byte(s)
	if !norm.NFC.IsNormal(b) {
		b = norm.NFC.Bytes(b)
	}
	return Literal{Kind: LitString, Str: string(b)}
}

// NewBoolean builds a boolean literal.
func NewBoolean(b bool) Literal { return Literal{Kind: LitBoolean, Bool: b} }

// NewUndefined builds the undefined literal.
func NewUndefined() Literal { return Literal{Kind: LitUndefined} }

// NewNull builds the null literal.
func NewNull() Literal { return Literal{Kind: LitNull} }

// NewBigInt builds an arbitrary-precision integer literal from a sign
// (-1, 0, or 1) and a canonical (no leading zeros, no sign) decimal digit
// string. A zero value must use sign 0 and digits "0".
func NewBigInt(sign int, digits string) Literal {
	if digits == "" {
		digits = "0"
	}
	if digits == "0" {
		sign = 0
	}
	return Literal{Kind: LitBigInt, BigSign: sign, BigDigs: digits}
}

// Equal reports whether two literals carry the same tag and payload.
func (l Literal) Equal(o Literal) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case LitNumber:
		return l.Number == o.Number
	case LitString:
		return l.Str == o.Str
	case LitBoolean:
		return l.Bool == o.Bool
	case LitBigInt:
		return l.BigSign == o.BigSign && l.BigDigs == o.BigDigs
	case LitUndefined, LitNull:
		return true
	default:
		return false
	}
}

// Primitive reports the primitive kind this literal's values belong to,
// and false for undefined/null (neither is a subtype of any primitive).
func (l Literal) Primitive() (Primitive, bool) {
	switch l.Kind {
	case LitNumber:
		return PrimNumber, true
	case LitString:
		return PrimString, true
	case LitBoolean:
		return PrimBoolean, true
	case LitBigInt:
		return PrimBigInt, true
	default:
		return 0, false
	}
}

// String renders a literal the way it would be written as source.
func (l Literal) String() string {
	switch l.Kind {
	case LitNumber:
		return trimFloat(l.Number)
	case LitString:
		return fmt.Sprintf("%q", l.Str)
	case LitBoolean:
		if l.Bool {
			return "true"
		}
		return "false"
	case LitBigInt:
		sign := ""
		if l.BigSign < 0 {
			sign = "-"
		}
		return sign + l.BigDigs + "n"
	case LitUndefined:
		return "undefined"
	case LitNull:
		return "null"
	default:
		return "<?literal>"
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return strings.TrimSuffix(s, ".0")
}
