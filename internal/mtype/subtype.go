package mtype

// Subtype implements A <: B, cased on B's constructor.
func Subtype(a, b Type) bool {
	switch bv := b.(type) {
	case *Unknown:
		return true
	case *Lit:
		av, ok := a.(*Lit)
		return ok && av.Value.Equal(bv.Value)
	case *Prim:
		switch av := a.(type) {
		case *Prim:
			return av.Kind == bv.Kind
		case *Lit:
			p, ok := av.Value.Primitive()
			return ok && p == bv.Kind
		default:
			return false
		}
	case *Tuple:
		av, ok := a.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !UnionSubtype(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Array:
		switch av := a.(type) {
		case *Array:
			return UnionSubtype(av.Element, bv.Element)
		case *Tuple:
			return UnionSubtype(UnionFlatten(av.Elements...), bv.Element)
		default:
			return false
		}
	case *Object:
		av, ok := a.(*Object)
		if !ok {
			return false
		}
		for _, bf := range bv.Fields {
			af, ok := av.Field(bf.Name)
			if !ok {
				return false
			}
			if !UnionSubtype(af.Value, bf.Value) {
				return false
			}
		}
		return true
	case *Record:
		switch av := a.(type) {
		case *Record:
			return UnionSubtype(av.Value, bv.Value)
		case *Object:
			var flat Union
			for _, f := range av.Fields {
				flat = append(flat, f.Value...)
			}
			return UnionSubtype(flat, bv.Value)
		default:
			return false
		}
	default:
		return false
	}
}

// UnionSubtype reports U <: V: every type in U is a subtype of some type in
// V. The empty union (never) is a subtype of any V, including never.
func UnionSubtype(u, v Union) bool {
	for _, a := range u {
		ok := false
		for _, b := range v {
			if Subtype(a, b) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
