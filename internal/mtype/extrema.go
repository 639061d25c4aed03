package mtype

// TypeMinima returns the subset of ts whose members have no strict subtype
// also present in ts. Reflexive equals are kept: if two
// elements are mutually subtypes (equal up to canonicalization) both are
// minima candidates. Structurally equal duplicates (TypeEqual) are dropped;
// mutual subtypes that are not structurally equal are all kept.
func TypeMinima(ts []Type) []Type {
	return extrema(ts, func(a, b Type) bool { return strictSubtype(a, b) })
}

// TypeMaxima returns the subset of ts whose members have no strict
// supertype also present in ts.
func TypeMaxima(ts []Type) []Type {
	return extrema(ts, func(a, b Type) bool { return strictSubtype(b, a) })
}

// extrema returns the elements t of ts for which no other element u has
// beatenBy(u, t) (u strictly "beats" t, i.e. u should exclude t).
func extrema(ts []Type, beatenBy func(other, t Type) bool) []Type {
	var out []Type
	for i, t := range ts {
		excluded := false
		for j, u := range ts {
			if i == j {
				continue
			}
			if beatenBy(u, t) {
				excluded = true
				break
			}
		}
		if !excluded {
			if !containsEqual(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}

func containsEqual(ts []Type, t Type) bool {
	for _, u := range ts {
		if TypeEqual(u, t) {
			return true
		}
	}
	return false
}

// strictSubtype reports a <: b and not (b <: a).
func strictSubtype(a, b Type) bool {
	return Subtype(a, b) && !Subtype(b, a)
}
