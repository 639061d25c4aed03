package mtype

// Intersect computes A ⊓ B. The second return value is false when the
// intersection is undefined: incompatible constructors, or a
// cross-constructor case left undefined by design, such as tuple⊓array or
// object⊓record.
func Intersect(a, b Type) (Type, bool) {
	if _, ok := a.(*Unknown); ok {
		return b, true
	}
	if _, ok := b.(*Unknown); ok {
		return a, true
	}

	switch av := a.(type) {
	case *Lit:
		if bv, ok := b.(*Lit); ok {
			if av.Value.Equal(bv.Value) {
				return a, true
			}
			return nil, false
		}
		if Subtype(a, b) {
			return a, true
		}
		return nil, false

	case *Prim:
		switch bv := b.(type) {
		case *Prim:
			if av.Kind == bv.Kind {
				return a, true
			}
			return nil, false
		case *Lit:
			if Subtype(b, a) {
				return b, true
			}
			return nil, false
		}
		return nil, false

	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return nil, false
		}
		elems := make([]Union, len(av.Elements))
		for i := range av.Elements {
			elems[i] = UnionIntersect(av.Elements[i], bv.Elements[i])
		}
		return &Tuple{Elements: elems}, true

	case *Array:
		bv, ok := b.(*Array)
		if !ok {
			return nil, false
		}
		return &Array{Element: UnionIntersect(av.Element, bv.Element)}, true

	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return nil, false
		}
		return &Object{Fields: intersectFields(av.Fields, bv.Fields)}, true

	case *Record:
		bv, ok := b.(*Record)
		if !ok {
			return nil, false
		}
		return &Record{Value: UnionIntersect(av.Value, bv.Value)}, true
	}

	// b may be a Lit/Prim with a as the other operand, symmetric cases
	// already handled above by the type-switch on a; anything left is a
	// cross-constructor combination with no defined intersection.
	return nil, false
}

// intersectFields unions the field name sets and intersects common fields'
// value unions; a field present in only one operand is kept as-is.
func intersectFields(af, bf []Field) []Field {
	out := make([]Field, 0, len(af)+len(bf))
	seen := make(map[string]bool)
	for _, f := range af {
		if other, ok := fieldByName(bf, f.Name); ok {
			out = append(out, Field{
				Name:     f.Name,
				Value:    UnionIntersect(f.Value, other.Value),
				Optional: f.Optional && other.Optional,
			})
		} else {
			out = append(out, f)
		}
		seen[f.Name] = true
	}
	for _, f := range bf {
		if !seen[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

func fieldByName(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// UnionIntersect is the set of all pairwise intersections that are defined.
func UnionIntersect(u, v Union) Union {
	var out Union
	for _, a := range u {
		for _, b := range v {
			if t, ok := Intersect(a, b); ok {
				out = append(out, t)
			}
		}
	}
	return UnionDedup(out)
}
