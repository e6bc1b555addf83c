// Package schema models the input document's type-description graph as a
// closed tagged union over schema kinds. Nodes are built once from a parsed
// OpenAPI document and read-only afterwards.
package schema

import "sort"

// Kind identifies the shape of a schema node.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindAllOf
	KindAnyOf
	KindOneOf
	KindReference
	KindFragment // No type information at all: any JSON value.
)

// String returns the string representation of the schema kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindAllOf:
		return "AllOf"
	case KindAnyOf:
		return "AnyOf"
	case KindOneOf:
		return "OneOf"
	case KindReference:
		return "Reference"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Core holds the context shared by every schema kind.
type Core struct {
	// Nullable marks the schema as accepting null.
	Nullable bool

	// Description is the schema's documentation text.
	Description string

	// Deprecated marks the schema as deprecated.
	Deprecated bool

	// Default is the documented default value, or nil.
	Default any

	// Enum lists the allowed literal values in document order; empty means
	// unconstrained.
	Enum []any
}

// Node is one recursive unit of the schema graph. Exactly one of the
// kind-specific context fields is populated, matching Kind.
type Node struct {
	Kind Kind
	Core Core

	// Format is the OpenAPI format refinement ("binary", "date-time",
	// "int32", ...), where given.
	Format string

	// Object is set for KindObject.
	Object *ObjectContext

	// Array is set for KindArray.
	Array *ArrayContext

	// Composite is set for KindAllOf, KindAnyOf, and KindOneOf.
	Composite *CompositeContext

	// Ref is the referenced component name for KindReference.
	Ref string
}

// Property is a named object property.
type Property struct {
	Name   string
	Schema *Node
}

// AdditionalMode describes the additionalProperties variant of an object.
type AdditionalMode int

const (
	// AdditionalAbsent means additionalProperties was not specified.
	AdditionalAbsent AdditionalMode = iota

	// AdditionalAllowed means additionalProperties: true (or an omitted
	// schema): arbitrary extra keys are kept in an untyped bag.
	AdditionalAllowed

	// AdditionalForbidden means additionalProperties: false: decoding must
	// reject unknown keys.
	AdditionalForbidden

	// AdditionalTyped means an explicit schema: extra keys are kept in a
	// typed dictionary.
	AdditionalTyped
)

// Additional pairs the additionalProperties mode with its schema, set only
// for AdditionalTyped.
type Additional struct {
	Mode   AdditionalMode
	Schema *Node
}

// ObjectContext is the kind-specific context of an object schema.
type ObjectContext struct {
	// Properties in stable declaration order.
	Properties []Property

	// Required lists property names the document marks as required, in
	// document order.
	Required []string

	// Additional describes the additionalProperties variant.
	Additional Additional
}

// IsRequired reports whether the named property is in the required set.
func (o *ObjectContext) IsRequired(name string) bool {
	for _, r := range o.Required {
		if r == name {
			return true
		}
	}
	return false
}

// HasProperty reports whether the object declares the named property.
func (o *ObjectContext) HasProperty(name string) bool {
	for _, p := range o.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ArrayContext is the kind-specific context of an array schema.
type ArrayContext struct {
	// Items is the element schema; nil means unconstrained elements.
	Items *Node
}

// Discriminator selects a oneOf branch by the string value of a named field.
type Discriminator struct {
	// PropertyName is the field holding the discriminating value.
	PropertyName string

	// Mapping maps raw discriminator values to component references. A
	// component may be the target of multiple raw values. Empty when the
	// document provides no explicit mapping.
	Mapping map[string]string
}

// CompositeContext is the kind-specific context of allOf/anyOf/oneOf.
type CompositeContext struct {
	// Children in document order.
	Children []*Node

	// Discriminator is set only for oneOf schemas that declare one.
	Discriminator *Discriminator
}

// Component is a named top-level schema.
type Component struct {
	Name   string
	Schema *Node
}

// Document is the translated-from input: the named components in stable
// order, plus a lookup table for resolving references.
type Document struct {
	// Components in sorted name order, for deterministic output.
	Components []Component

	byName map[string]*Node
}

// NewDocument builds a Document from already-constructed components,
// sorting them by name. Reference nodes resolve against the same set.
func NewDocument(components []Component) *Document {
	d := &Document{
		Components: append([]Component(nil), components...),
		byName:     make(map[string]*Node, len(components)),
	}
	sort.Slice(d.Components, func(i, j int) bool {
		return d.Components[i].Name < d.Components[j].Name
	})
	for _, c := range d.Components {
		d.byName[c.Name] = c.Schema
	}
	return d
}

// Lookup resolves a component name to its schema node, or nil.
func (d *Document) Lookup(name string) *Node {
	return d.byName[name]
}
