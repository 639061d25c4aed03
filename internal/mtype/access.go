package mtype

// TypeAccessUnion returns the union reachable by one accessor step through
// t. unknown propagates as {unknown}. The second return
// value is false when the accessor is structurally incompatible with t's
// constructor (e.g. property into a primitive).
func TypeAccessUnion(t Type, a Accessor) (Union, bool) {
	if _, ok := t.(*Unknown); ok {
		return Union{&Unknown{}}, true
	}
	switch a.Kind {
	case AccessProperty:
		o, ok := t.(*Object)
		if !ok {
			return nil, false
		}
		f, ok := o.Field(a.Name)
		if !ok {
			return nil, false
		}
		return f.Value, true

	case AccessIndex:
		tup, ok := t.(*Tuple)
		if !ok || a.Index < 0 || a.Index >= len(tup.Elements) {
			return nil, false
		}
		return tup.Elements[a.Index], true

	case AccessArrayElement:
		arr, ok := t.(*Array)
		if !ok {
			return nil, false
		}
		return arr.Element, true

	case AccessRecordValues:
		rec, ok := t.(*Record)
		if !ok {
			return nil, false
		}
		return rec.Value, true
	}
	return nil, false
}

// Argument pairs an accessor with the union it reaches, one of the
// "immediate children" TypeGetArguments enumerates.
type Argument struct {
	Accessor Accessor
	Union    Union
}

// TypeGetArguments enumerates all immediate (accessor, union) children of
// t: every positional element for tuples, the single
// array-element for arrays, every field for objects, the single
// record-values for records, and none for leaves (unknown/literal/
// primitive).
func TypeGetArguments(t Type) []Argument {
	switch v := t.(type) {
	case *Tuple:
		args := make([]Argument, len(v.Elements))
		for i, e := range v.Elements {
			args[i] = Argument{Accessor: Index(i), Union: e}
		}
		return args
	case *Array:
		return []Argument{{Accessor: ArrayElement(), Union: v.Element}}
	case *Object:
		args := make([]Argument, len(v.Fields))
		for i, f := range v.Fields {
			args[i] = Argument{Accessor: Property(f.Name), Union: f.Value}
		}
		return args
	case *Record:
		return []Argument{{Accessor: RecordValues(), Union: v.Value}}
	default:
		return nil
	}
}

// TypeEqualConstructor compares only the outer shape of two types — same
// tuple length, same object field names, same primitive/literal value —
// without inspecting nested unions.
func TypeEqualConstructor(a, b Type) bool {
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
		return ok && len(av.Elements) == len(bv.Elements)
	case *Array:
		_, ok := b.(*Array)
		return ok
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, f := range av.Fields {
			of, ok := bv.Field(f.Name)
			if !ok || of.Optional != f.Optional {
				return false
			}
		}
		return true
	case *Record:
		_, ok := b.(*Record)
		return ok
	default:
		return false
	}
}

// TypeMakeArgumentsUnknown returns a type with the same outer constructor
// but every nested union replaced by {unknown}. This is
// the form stored in decision-tree check nodes: the runtime test is purely
// about outer shape.
func TypeMakeArgumentsUnknown(t Type) Type {
	unk := Union{&Unknown{}}
	switch v := t.(type) {
	case *Tuple:
		elems := make([]Union, len(v.Elements))
		for i := range v.Elements {
			elems[i] = unk
		}
		return &Tuple{Elements: elems}
	case *Array:
		return &Array{Element: unk}
	case *Object:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Field{Name: f.Name, Value: unk, Optional: f.Optional}
		}
		return &Object{Fields: fields}
	case *Record:
		return &Record{Value: unk}
	default:
		return t
	}
}

// UnionReplaceAt replaces the sub-union reachable by path o inside u with
// repl. For each constituent type the path is walked
// down matching constructors; constituents whose constructor disagrees
// with the first accessor are dropped, as are out-of-range tuple indices.
// The input union is unchanged; a new union is returned.
func UnionReplaceAt(u Union, o Occurrence, repl Union) Union {
	if len(o) == 0 {
		return repl
	}
	var out Union
	for _, t := range u {
		if nt, ok := replaceAtType(t, o, repl); ok {
			out = append(out, nt)
		}
	}
	return out
}

// replaceAtType is only ever called with a non-empty occurrence: both
// UnionReplaceAt and replaceAtUnion substitute repl directly once the
// path is exhausted, before recursing into a type's constructor.
func replaceAtType(t Type, o Occurrence, repl Union) (Type, bool) {
	head, rest := o[0], o[1:]
	switch v := t.(type) {
	case *Tuple:
		if head.Kind != AccessIndex || head.Index < 0 || head.Index >= len(v.Elements) {
			return nil, false
		}
		newElems := make([]Union, len(v.Elements))
		copy(newElems, v.Elements)
		sub := replaceAtUnion(v.Elements[head.Index], rest, repl)
		newElems[head.Index] = sub
		return &Tuple{Elements: newElems}, true

	case *Array:
		if head.Kind != AccessArrayElement {
			return nil, false
		}
		return &Array{Element: replaceAtUnion(v.Element, rest, repl)}, true

	case *Object:
		if head.Kind != AccessProperty {
			return nil, false
		}
		f, ok := v.Field(head.Name)
		if !ok {
			return nil, false
		}
		newFields := make([]Field, len(v.Fields))
		copy(newFields, v.Fields)
		for i := range newFields {
			if newFields[i].Name == head.Name {
				newFields[i].Value = replaceAtUnion(f.Value, rest, repl)
			}
		}
		return &Object{Fields: newFields}, true

	case *Record:
		if head.Kind != AccessRecordValues {
			return nil, false
		}
		return &Record{Value: replaceAtUnion(v.Value, rest, repl)}, true

	default:
		return nil, false
	}
}

// replaceAtUnion replaces the sub-union at path o inside u with repl,
// applying UnionReplaceAt's per-constituent-drop semantics recursively,
// and substituting repl directly once o is exhausted.
func replaceAtUnion(u Union, o Occurrence, repl Union) Union {
	if len(o) == 0 {
		return repl
	}
	return UnionReplaceAt(u, o, repl)
}
