package mtype

import "fmt"

// AccessorKind tags the step an Accessor takes into a value.
type AccessorKind int

const (
	AccessProperty AccessorKind = iota
	AccessIndex
	AccessArrayElement
	AccessRecordValues
)

// Accessor is a single step into a value: property(name), index(i),
// array-element (pseudo-step for "some array element"), or record-values
// (pseudo-step for "some record value").
type Accessor struct {
	Kind  AccessorKind
	Name  string // for AccessProperty
	Index int    // for AccessIndex
}

// Property builds a property(name) accessor.
func Property(name string) Accessor { return Accessor{Kind: AccessProperty, Name: name} }

// Index builds an index(i) accessor.
func Index(i int) Accessor { return Accessor{Kind: AccessIndex, Index: i} }

// ArrayElement is the pseudo-accessor for "some array element".
func ArrayElement() Accessor { return Accessor{Kind: AccessArrayElement} }

// RecordValues is the pseudo-accessor for "some record value".
func RecordValues() Accessor { return Accessor{Kind: AccessRecordValues} }

// Equal reports whether two accessors name the same step.
func (a Accessor) Equal(o Accessor) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case AccessProperty:
		return a.Name == o.Name
	case AccessIndex:
		return a.Index == o.Index
	default:
		return true
	}
}

func (a Accessor) String() string {
	switch a.Kind {
	case AccessProperty:
		return fmt.Sprintf(".%s", a.Name)
	case AccessIndex:
		return fmt.Sprintf("[%d]", a.Index)
	case AccessArrayElement:
		return "[*]"
	case AccessRecordValues:
		return "{*}"
	default:
		return "<?accessor>"
	}
}

// Occurrence is an ordered path of accessors naming a position inside the
// scrutinee. The empty occurrence denotes the scrutinee itself.
type Occurrence []Accessor

// Extend returns a new occurrence with a appended; the receiver is
// unchanged (occurrences are immutable after construction).
func (o Occurrence) Extend(a Accessor) Occurrence {
	out := make(Occurrence, len(o), len(o)+1)
	copy(out, o)
	return append(out, a)
}

// Equal reports whether two occurrences name the same path.
func (o Occurrence) Equal(p Occurrence) bool {
	if len(o) != len(p) {
		return false
	}
	for i := range o {
		if !o[i].Equal(p[i]) {
			return false
		}
	}
	return true
}

func (o Occurrence) String() string {
	if len(o) == 0 {
		return "$"
	}
	s := "$"
	for _, a := range o {
		s += a.String()
	}
	return s
}
