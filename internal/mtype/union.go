package mtype

import "strings"

// Union is an unordered sequence of Types, semantically a set; duplicates
// are permitted before Canonicalize. Order is never semantically
// significant but is preserved for deterministic iteration and emission.
type Union []Type

// String renders a union as "T1 | T2 | ...", or "never" when empty.
func (u Union) String() string {
	if len(u) == 0 {
		return "never"
	}
	parts := make([]string, len(u))
	for i, t := range u {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// UnionFlatten concatenates several unions into one, without deduping.
// Front-ends use this to assemble union literals.
func UnionFlatten(us ...Union) Union {
	var out Union
	for _, u := range us {
		out = append(out, u...)
	}
	return out
}

// UnionEqual reports whether two unions are equal as multisets of types.
func UnionEqual(u, v Union) bool {
	if len(u) != len(v) {
		return false
	}
	used := make([]bool, len(v))
	for _, a := range u {
		found := false
		for i, b := range v {
			if used[i] {
				continue
			}
			if TypeEqual(a, b) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TypeEqual reports structural equality between two types.
func TypeEqual(a, b Type) bool {
	switch av := a.(type) {
	case *Unknown:
		_, ok := b.(*Unknown)
		return ok
	case *Lit:
		bv, ok := b.(*Lit)
		return ok && av.Value.Equal(bv.Value)
	case *Prim:
		bv, ok := b.(*Prim)
		return ok && av.Kind == bv.Kind
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !UnionEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Array:
		bv, ok := b.(*Array)
		return ok && UnionEqual(av.Element, bv.Element)
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, f := range av.Fields {
			of, ok := bv.Field(f.Name)
			if !ok || of.Optional != f.Optional || !UnionEqual(f.Value, of.Value) {
				return false
			}
		}
		return true
	case *Record:
		bv, ok := b.(*Record)
		return ok && UnionEqual(av.Value, bv.Value)
	default:
		return false
	}
}

// UnionDedup removes structurally-equal duplicates, keeping first occurrence
// order.
func UnionDedup(u Union) Union {
	var out Union
	for _, t := range u {
		dup := false
		for _, seen := range out {
			if TypeEqual(t, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// UnionCanonicalize dedups and takes the maxima, recursively canonicalizing
// each surviving member's nested unions.
func UnionCanonicalize(u Union) Union {
	deduped := UnionDedup(u)
	maxima := TypeMaxima(deduped)
	out := make(Union, len(maxima))
	for i, t := range maxima {
		out[i] = canonicalizeType(t)
	}
	return out
}

func canonicalizeType(t Type) Type {
	switch v := t.(type) {
	case *Tuple:
		elems := make([]Union, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = UnionCanonicalize(e)
		}
		return &Tuple{Elements: elems}
	case *Array:
		return &Array{Element: UnionCanonicalize(v.Element)}
	case *Object:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Field{Name: f.Name, Value: UnionCanonicalize(f.Value), Optional: f.Optional}
		}
		return &Object{Fields: fields}
	case *Record:
		return &Record{Value: UnionCanonicalize(v.Value)}
	default:
		return t
	}
}
