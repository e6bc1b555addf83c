package decl

import "strings"

// TypeName is a hierarchical identifier addressing a declared or built-in
// type. Two TypeNames are equal iff their fully qualified paths match.
//
// Nested and inline schemas are named by appending a component to their
// parent's name, so two inline schemas under different properties of the same
// parent can never collide: they are qualified by their property names.
type TypeName struct {
	components []string
}

// NewTypeName returns a TypeName rooted at the given components.
func NewTypeName(components ...string) TypeName {
	cs := make([]string, len(components))
	copy(cs, components)
	return TypeName{components: cs}
}

// Appending returns a new TypeName with one more component. The receiver is
// not modified.
func (n TypeName) Appending(component string) TypeName {
	cs := make([]string, 0, len(n.components)+1)
	cs = append(cs, n.components...)
	cs = append(cs, component)
	return TypeName{components: cs}
}

// ShortName returns the last path component, or "" for the zero TypeName.
func (n TypeName) ShortName() string {
	if len(n.components) == 0 {
		return ""
	}
	return n.components[len(n.components)-1]
}

// FullyQualified returns the dot-joined path, e.g. "Components.Schemas.Pet".
func (n TypeName) FullyQualified() string {
	return strings.Join(n.components, ".")
}

// Parent returns the TypeName with the last component removed.
func (n TypeName) Parent() TypeName {
	if len(n.components) == 0 {
		return TypeName{}
	}
	cs := make([]string, len(n.components)-1)
	copy(cs, n.components[:len(n.components)-1])
	return TypeName{components: cs}
}

// Equal reports whether two TypeNames address the same type.
func (n TypeName) Equal(other TypeName) bool {
	if len(n.components) != len(other.components) {
		return false
	}
	for i := range n.components {
		if n.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// IsZero returns true for the zero TypeName.
func (n TypeName) IsZero() bool {
	return len(n.components) == 0
}

// AsUsage returns a non-optional, unwrapped usage of this type.
func (n TypeName) AsUsage() TypeUsage {
	return TypeUsage{name: n}
}

// Wrapper is a container applied around a type usage.
type Wrapper int

const (
	// WrapArray wraps the usage in an ordered sequence ([T]).
	WrapArray Wrapper = iota

	// WrapDictionaryValue wraps the usage as the value of a string-keyed
	// dictionary ([String: T]).
	WrapDictionaryValue

	// WrapOptional makes the usage at its current nesting level nullable
	// (T?). Its position in the wrapper sequence matters: an optional
	// wrapped in an array is [T?], an array made optional is [T]?.
	WrapOptional
)

// TypeUsage is a reference to a type at a use site: the TypeName plus
// optionality and container wrapping, recorded in application order.
// TypeUsage is an immutable value; the With/As methods return transformed
// copies and never mutate the receiver.
type TypeUsage struct {
	name     TypeName
	wrappers []Wrapper
}

// TypeName returns the referenced type's name.
func (u TypeUsage) TypeName() TypeName { return u.name }

// Optional reports whether the outermost position of the usage is nullable.
func (u TypeUsage) Optional() bool {
	return len(u.wrappers) > 0 && u.wrappers[len(u.wrappers)-1] == WrapOptional
}

// Wrappers returns the wrappers in application order (innermost first). The
// returned slice is a copy.
func (u TypeUsage) Wrappers() []Wrapper {
	ws := make([]Wrapper, len(u.wrappers))
	copy(ws, u.wrappers)
	return ws
}

// WithOptional returns a copy whose outermost position is nullable (true) or
// non-nullable (false). Wrapping that was applied before stays inside the
// optional; an inner optional is never touched.
func (u TypeUsage) WithOptional(optional bool) TypeUsage {
	if u.Optional() == optional {
		return u.clone()
	}
	out := u.clone()
	if optional {
		out.wrappers = append(out.wrappers, WrapOptional)
	} else {
		out.wrappers = out.wrappers[:len(out.wrappers)-1]
	}
	return out
}

// AsArray returns a copy wrapped in an array container.
func (u TypeUsage) AsArray() TypeUsage {
	out := u.clone()
	out.wrappers = append(out.wrappers, WrapArray)
	return out
}

// AsDictionaryValue returns a copy wrapped as a string-keyed dictionary value.
func (u TypeUsage) AsDictionaryValue() TypeUsage {
	out := u.clone()
	out.wrappers = append(out.wrappers, WrapDictionaryValue)
	return out
}

func (u TypeUsage) clone() TypeUsage {
	ws := make([]Wrapper, len(u.wrappers))
	copy(ws, u.wrappers)
	return TypeUsage{name: u.name, wrappers: ws}
}
