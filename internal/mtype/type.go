package mtype

import (
	"fmt"
	"strings"
)

// Primitive is one of the four primitive kinds.
type Primitive int

const (
	PrimString Primitive = iota
	PrimNumber
	PrimBigInt
	PrimBoolean
)

func (p Primitive) String() string {
	switch p {
	case PrimString:
		return "string"
	case PrimNumber:
		return "number"
	case PrimBigInt:
		return "bigint"
	case PrimBoolean:
		return "boolean"
	default:
		return "<?primitive>"
	}
}

// Type is the closed, finitely recursive sum of constructors: Unknown,
// Lit, Prim, Tuple, Array, Object, Record.
type Type interface {
	fmt.Stringer
	typeNode()
}

// Unknown is the top type; every value is of type Unknown.
type Unknown struct{}

func (*Unknown) typeNode()      {}
func (*Unknown) String() string { return "unknown" }

// Lit is the type inhabited by exactly one literal value.
type Lit struct {
	Value Literal
}

func (*Lit) typeNode()      {}
func (l *Lit) String() string { return l.Value.String() }

// Prim is the type of any value of a given primitive kind.
type Prim struct {
	Kind Primitive
}

func (*Prim) typeNode()      {}
func (p *Prim) String() string { return p.Kind.String() }

// Tuple is a fixed-length heterogeneous sequence; each element is a Union.
type Tuple struct {
	Elements []Union
}

func (*Tuple) typeNode() {}
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Array is a homogeneous variable-length sequence.
type Array struct {
	Element Union
}

func (*Array) typeNode()      {}
func (a *Array) String() string { return a.Element.String() + "[]" }

// Field is one named member of an Object type.
type Field struct {
	Name     string
	Value    Union
	Optional bool
}

// Object is a presence-checked structural record. Fields preserve insertion
// order: order is irrelevant for equality but preserved for deterministic
// emission and iteration.
type Object struct {
	Fields []Field
}

func (*Object) typeNode() {}
func (o *Object) String() string {
	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		opt := ""
		if f.Optional {
			opt = "?"
		}
		parts[i] = fmt.Sprintf("%s%s: %s", f.Name, opt, f.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Field looks up a field by name, returning (field, true) if present.
func (o *Object) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Record is a dictionary of string-keyed entries whose values all lie in
// Value.
type Record struct {
	Value Union
}

func (*Record) typeNode()      {}
func (r *Record) String() string { return "Record<string, " + r.Value.String() + ">" }
