package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromDocument builds the schema graph from a parsed OpenAPI document. The
// document is expected to have been loaded (and its references resolved) by
// kin-openapi; structural validation is the loader's concern, not ours.
func FromDocument(doc *openapi3.T) (*Document, error) {
	out := &Document{byName: make(map[string]*Node)}
	if doc.Components == nil {
		return out, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := doc.Components.Schemas[name]
		resolved, err := fromSchema(ref.Value)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", name, err)
		}
		node := resolved
		// A component whose definition is itself a $ref to a sibling stays a
		// reference; the resolved form remains reachable via Lookup.
		if ref.Ref != "" {
			node = &Node{Kind: KindReference, Ref: componentName(ref.Ref)}
		}
		out.Components = append(out.Components, Component{Name: name, Schema: node})
		out.byName[name] = resolved
	}
	return out, nil
}

// FromSchemaRef converts a single schema reference into a node. A non-empty
// $ref produces a KindReference node so the translator can tell references
// from inline schemas; the referenced definition stays reachable through the
// Document lookup table.
func FromSchemaRef(ref *openapi3.SchemaRef) (*Node, error) {
	if ref == nil {
		return &Node{Kind: KindFragment}, nil
	}
	if ref.Ref != "" {
		return &Node{Kind: KindReference, Ref: componentName(ref.Ref)}, nil
	}
	return fromSchema(ref.Value)
}

func fromSchema(s *openapi3.Schema) (*Node, error) {
	if s == nil {
		return &Node{Kind: KindFragment}, nil
	}

	core := Core{
		Nullable:    s.Nullable,
		Description: s.Description,
		Deprecated:  s.Deprecated,
		Default:     s.Default,
		Enum:        s.Enum,
	}

	// Composition operators take precedence over any stray type keyword.
	switch {
	case len(s.AllOf) > 0:
		children, err := childNodes(s.AllOf)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindAllOf, Core: core, Composite: &CompositeContext{Children: children}}, nil
	case len(s.AnyOf) > 0:
		children, err := childNodes(s.AnyOf)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindAnyOf, Core: core, Composite: &CompositeContext{Children: children}}, nil
	case len(s.OneOf) > 0:
		children, err := childNodes(s.OneOf)
		if err != nil {
			return nil, err
		}
		ctx := &CompositeContext{Children: children}
		if s.Discriminator != nil {
			mapping := make(map[string]string, len(s.Discriminator.Mapping))
			for raw, target := range s.Discriminator.Mapping {
				mapping[raw] = componentName(target)
			}
			ctx.Discriminator = &Discriminator{
				PropertyName: s.Discriminator.PropertyName,
				Mapping:      mapping,
			}
		}
		return &Node{Kind: KindOneOf, Core: core, Composite: ctx}, nil
	}

	switch {
	case s.Type.Is(openapi3.TypeObject) || len(s.Properties) > 0:
		obj, err := objectContext(s)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindObject, Core: core, Object: obj}, nil

	case s.Type.Is(openapi3.TypeArray):
		items, err := FromSchemaRef(s.Items)
		if err != nil {
			return nil, err
		}
		if s.Items == nil {
			items = nil
		}
		return &Node{Kind: KindArray, Core: core, Array: &ArrayContext{Items: items}}, nil

	case s.Type.Is(openapi3.TypeString):
		return &Node{Kind: KindString, Core: core, Format: s.Format}, nil

	case s.Type.Is(openapi3.TypeInteger):
		return &Node{Kind: KindInteger, Core: core, Format: s.Format}, nil

	case s.Type.Is(openapi3.TypeNumber):
		return &Node{Kind: KindNumber, Core: core, Format: s.Format}, nil

	case s.Type.Is(openapi3.TypeBoolean):
		return &Node{Kind: KindBoolean, Core: core}, nil

	default:
		return &Node{Kind: KindFragment, Core: core}, nil
	}
}

func objectContext(s *openapi3.Schema) (*ObjectContext, error) {
	// kin-openapi stores properties in a map; sort names so the generated
	// declarations are deterministic run to run.
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	obj := &ObjectContext{Required: append([]string(nil), s.Required...)}
	for _, name := range names {
		child, err := FromSchemaRef(s.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		obj.Properties = append(obj.Properties, Property{Name: name, Schema: child})
	}

	switch {
	case s.AdditionalProperties.Schema != nil:
		child, err := FromSchemaRef(s.AdditionalProperties.Schema)
		if err != nil {
			return nil, fmt.Errorf("additionalProperties: %w", err)
		}
		obj.Additional = Additional{Mode: AdditionalTyped, Schema: child}
	case s.AdditionalProperties.Has != nil && *s.AdditionalProperties.Has:
		obj.Additional = Additional{Mode: AdditionalAllowed}
	case s.AdditionalProperties.Has != nil:
		obj.Additional = Additional{Mode: AdditionalForbidden}
	default:
		obj.Additional = Additional{Mode: AdditionalAbsent}
	}
	return obj, nil
}

func childNodes(refs openapi3.SchemaRefs) ([]*Node, error) {
	children := make([]*Node, 0, len(refs))
	for i, ref := range refs {
		child, err := FromSchemaRef(ref)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

func componentName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
