// Package fixtures loads YAML-described match scenarios — a scrutinee
// type, an ordered list of case patterns, a default case, and sample
// runtime values — and turns them into compiled decision trees plus
// evaltree-ready values for tests and the matchc CLI.
package fixtures

import (
	"fmt"
	"strconv"
	"strings"

	merrors "github.com/rjooske/match-transformer/internal/errors"
	"github.com/rjooske/match-transformer/internal/mtype"
)

// typeTokenKind tags one lexed token of a type expression.
type typeTokenKind int

const (
	tokEOF typeTokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokBigInt
	tokPunct
)

type typeToken struct {
	kind typeTokenKind
	text string
}

// lexTypeExpr splits a type expression into tokens: identifiers, quoted
// strings, numbers, bigint literals (digits followed by 'n'), and single-
// character punctuation (| [ ] { } ( ) , : ? < >).
func lexTypeExpr(s string) ([]typeToken, error) {
	var toks []typeToken
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '"':
			j := i + 1
			var sb strings.Builder
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' && j+1 < len(s) {
					sb.WriteByte(s[j+1])
					j += 2
					continue
				}
				sb.WriteByte(s[j])
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("unterminated string literal in %q", s)
			}
			toks = append(toks, typeToken{kind: tokString, text: sb.String()})
			i = j + 1
		case strings.ContainsRune("|[]{}(),:?<>", rune(c)):
			toks = append(toks, typeToken{kind: tokPunct, text: string(c)})
			i++
		case isDigit(c) || (c == '-' && i+1 < len(s) && isDigit(s[i+1])):
			j := i + 1
			if c == '-' {
				j = i + 1
			}
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			if j < len(s) && s[j] == 'n' {
				toks = append(toks, typeToken{kind: tokBigInt, text: s[i:j]})
				i = j + 1
			} else {
				toks = append(toks, typeToken{kind: tokNumber, text: s[i:j]})
				i = j
			}
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			toks = append(toks, typeToken{kind: tokIdent, text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q in type expression %q", c, s)
		}
	}
	return toks, nil
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// typeParser is a small recursive-descent parser over a token stream,
// implementing the grammar:
//
//	union   := term ('|' term)*
//	term    := array
//	array   := atom ('[' ']')*
//	atom    := 'unknown' | literal | primitive | tuple | object | record
//	tuple   := '[' (union (',' union)*)? ']'
//	object  := '{' (field (',' field)*)? '}'
//	field   := ident '?'? ':' union
//	record  := 'Record' '<' 'string' ',' union '>'
//	literal := 'undefined' | 'null' | 'true' | 'false' | number | bigint | string
type typeParser struct {
	toks []typeToken
	pos  int
}

func newFixtureError(message string) error {
	return merrors.WrapReport(merrors.New(merrors.FIX001, message, nil))
}

func (p *typeParser) peek() typeToken {
	if p.pos >= len(p.toks) {
		return typeToken{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *typeParser) next() typeToken {
	t := p.peek()
	p.pos++
	return t
}

func (p *typeParser) expectPunct(s string) error {
	t := p.next()
	if t.kind != tokPunct || t.text != s {
		return newFixtureError(fmt.Sprintf("expected %q, got %q", s, t.text))
	}
	return nil
}

// ParseTypeExpr parses s as a single type expression, returning its Union.
func ParseTypeExpr(s string) (mtype.Union, error) {
	toks, err := lexTypeExpr(s)
	if err != nil {
		return nil, newFixtureError(err.Error())
	}
	p := &typeParser{toks: toks}
	u, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, newFixtureError(fmt.Sprintf("unexpected trailing input starting at %q", p.peek().text))
	}
	return u, nil
}

func (p *typeParser) parseUnion() (mtype.Union, error) {
	first, err := p.parseArray()
	if err != nil {
		return nil, err
	}
	u := mtype.Union{first}
	for p.peek().kind == tokPunct && p.peek().text == "|" {
		p.next()
		t, err := p.parseArray()
		if err != nil {
			return nil, err
		}
		u = append(u, t)
	}
	return u, nil
}

func (p *typeParser) parseArray() (mtype.Type, error) {
	t, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPunct && p.peek().text == "[" {
		save := p.pos
		p.next()
		if p.peek().kind == tokPunct && p.peek().text == "]" {
			p.next()
			t = &mtype.Array{Element: mtype.Union{t}}
			continue
		}
		p.pos = save
		break
	}
	return t, nil
}

func (p *typeParser) parseAtom() (mtype.Type, error) {
	t := p.peek()
	switch {
	case t.kind == tokPunct && t.text == "[":
		return p.parseTuple()
	case t.kind == tokPunct && t.text == "{":
		return p.parseObject()
	case t.kind == tokIdent && t.text == "Record":
		return p.parseRecord()
	case t.kind == tokIdent && t.text == "unknown":
		p.next()
		return &mtype.Unknown{}, nil
	case t.kind == tokIdent && t.text == "undefined":
		p.next()
		return &mtype.Lit{Value: mtype.NewUndefined()}, nil
	case t.kind == tokIdent && t.text == "null":
		p.next()
		return &mtype.Lit{Value: mtype.NewNull()}, nil
	case t.kind == tokIdent && t.text == "true":
		p.next()
		return &mtype.Lit{Value: mtype.NewBoolean(true)}, nil
	case t.kind == tokIdent && t.text == "false":
		p.next()
		return &mtype.Lit{Value: mtype.NewBoolean(false)}, nil
	case t.kind == tokIdent && isPrimitiveName(t.text):
		p.next()
		return &mtype.Prim{Kind: primitiveByName(t.text)}, nil
	case t.kind == tokNumber:
		p.next()
		n, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, newFixtureError("malformed number literal: " + t.text)
		}
		return &mtype.Lit{Value: mtype.NewNumber(n)}, nil
	case t.kind == tokBigInt:
		p.next()
		return &mtype.Lit{Value: parseBigIntLiteral(t.text)}, nil
	case t.kind == tokString:
		p.next()
		return &mtype.Lit{Value: mtype.NewString(t.text)}, nil
	default:
		return nil, merrors.WrapReport(merrors.New(merrors.FIX002, fmt.Sprintf("unknown constructor tag near %q", t.text), nil))
	}
}

func (p *typeParser) parseTuple() (mtype.Type, error) {
	if err := p.expectPunct("["); err != nil {
		return nil, err
	}
	var elems []mtype.Union
	if !(p.peek().kind == tokPunct && p.peek().text == "]") {
		for {
			u, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			elems = append(elems, u)
			if p.peek().kind == tokPunct && p.peek().text == "," {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return &mtype.Tuple{Elements: elems}, nil
}

func (p *typeParser) parseObject() (mtype.Type, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var fields []mtype.Field
	if !(p.peek().kind == tokPunct && p.peek().text == "}") {
		for {
			name := p.next()
			if name.kind != tokIdent {
				return nil, newFixtureError("expected field name in object type")
			}
			optional := false
			if p.peek().kind == tokPunct && p.peek().text == "?" {
				p.next()
				optional = true
			}
			if err := p.expectPunct(":"); err != nil {
				return nil, err
			}
			u, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			fields = append(fields, mtype.Field{Name: name.text, Value: u, Optional: optional})
			if p.peek().kind == tokPunct && p.peek().text == "," {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &mtype.Object{Fields: fields}, nil
}

func (p *typeParser) parseRecord() (mtype.Type, error) {
	p.next() // 'Record'
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}
	key := p.next()
	if key.kind != tokIdent || key.text != "string" {
		return nil, newFixtureError("Record key type must be string")
	}
	if err := p.expectPunct(","); err != nil {
		return nil, err
	}
	u, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}
	return &mtype.Record{Value: u}, nil
}

func isPrimitiveName(s string) bool {
	switch s {
	case "string", "number", "bigint", "boolean":
		return true
	default:
		return false
	}
}

func primitiveByName(s string) mtype.Primitive {
	switch s {
	case "string":
		return mtype.PrimString
	case "number":
		return mtype.PrimNumber
	case "bigint":
		return mtype.PrimBigInt
	case "boolean":
		return mtype.PrimBoolean
	default:
		return mtype.PrimString
	}
}

// parseBigIntLiteral parses a token like "42n" or "-7n" into a bigint
// Literal.
func parseBigIntLiteral(text string) mtype.Literal {
	digits := strings.TrimSuffix(text, "n")
	sign := 1
	if strings.HasPrefix(digits, "-") {
		sign = -1
		digits = digits[1:]
	}
	return mtype.NewBigInt(sign, digits)
}
