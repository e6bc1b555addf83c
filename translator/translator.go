// Package translator turns schema nodes into declaration trees. It is the
// core engine of the generator: a pure, synchronous transformation invoked
// once per named top-level schema, recursing into inline children.
//
// Unsupported schema shapes degrade to zero declarations plus a diagnostic so
// one bad schema never aborts generation of the rest of the document; only
// internally-contradictory input produces an error.
package translator

import (
	"fmt"
	"strings"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/diag"
	"github.com/oaswift/oaswift/schema"
	"github.com/oaswift/oaswift/swift"
)

// RuntimeSymbols are the well-known names the translator wires into generated
// declarations. They are configuration constants, never computed.
type RuntimeSymbols struct {
	// ObjectContainer is the type used for opaque JSON objects.
	ObjectContainer string

	// ValueContainer is the type used for opaque JSON values.
	ValueContainer string

	// DateType is the type used for date-time strings.
	DateType string

	// DataType is the type used for binary blobs.
	DataType string

	// Decoder/encoder helper method names provided by the runtime library.
	DecodeAdditionalProperties                   string
	EncodeAdditionalProperties                   string
	EnsureNoAdditionalProperties                 string
	DecodeFromSingleValueContainer               string
	EncodeToSingleValueContainer                 string
	EncodeFirstNonNilValueToSingleValueContainer string

	// VerifyAtLeastOneSchemaIsNotNil asserts that an anyOf decode produced at
	// least one value.
	VerifyAtLeastOneSchemaIsNotNil string

	// UnknownOneOfDiscriminator builds the error thrown for an unrecognized
	// discriminator value.
	UnknownOneOfDiscriminator string
}

// DefaultRuntimeSymbols returns the symbol table for the standard runtime
// library.
func DefaultRuntimeSymbols() RuntimeSymbols {
	return RuntimeSymbols{
		ObjectContainer:                              "OpenAPIRuntime.OpenAPIObjectContainer",
		ValueContainer:                               "OpenAPIRuntime.OpenAPIValueContainer",
		DateType:                                     "Foundation.Date",
		DataType:                                     "Foundation.Data",
		DecodeAdditionalProperties:                   "decodeAdditionalProperties",
		EncodeAdditionalProperties:                   "encodeAdditionalProperties",
		EnsureNoAdditionalProperties:                 "ensureNoAdditionalProperties",
		DecodeFromSingleValueContainer:               "decodeFromSingleValueContainer",
		EncodeToSingleValueContainer:                 "encodeToSingleValueContainer",
		EncodeFirstNonNilValueToSingleValueContainer: "encodeFirstNonNilValueToSingleValueContainer",
		VerifyAtLeastOneSchemaIsNotNil:               "Swift.DecodingError.verifyAtLeastOneSchemaIsNotNil",
		UnknownOneOfDiscriminator:                    "Swift.DecodingError.unknownOneOfDiscriminator",
	}
}

// NamingConfig selects the sanitization strategy plus per-name overrides.
// Overrides are exact raw-name matches consulted before the sanitizer runs;
// a hit short-circuits sanitization entirely for that one name.
type NamingConfig struct {
	Strategy  swift.Strategy
	Overrides map[string]string
}

// Options configures a Translator.
type Options struct {
	// Diagnostics receives warnings; required.
	Diagnostics *diag.Collector

	// Naming selects identifier sanitization behavior.
	Naming NamingConfig

	// Symbols are the runtime symbol names; zero value means defaults.
	Symbols *RuntimeSymbols

	// Document supplies the components lookup table for reference
	// resolution. May be nil for reference-free schemas.
	Document *schema.Document
}

// Translator converts schema nodes into declarations. It holds no mutable
// state of its own; the diagnostics collector is the only shared sink, so a
// single Translator may serve concurrent translations of unrelated schemas.
type Translator struct {
	diags   *diag.Collector
	naming  NamingConfig
	symbols RuntimeSymbols
	doc     *schema.Document
}

// New returns a Translator for the given options.
func New(opts Options) *Translator {
	diags := opts.Diagnostics
	if diags == nil {
		diags = diag.NewCollector()
	}
	symbols := DefaultRuntimeSymbols()
	if opts.Symbols != nil {
		symbols = *opts.Symbols
	}
	return &Translator{
		diags:   diags,
		naming:  opts.Naming,
		symbols: symbols,
		doc:     opts.Document,
	}
}

// Overrides carries caller-provided adjustments for a single translation.
type Overrides struct {
	// Description replaces the schema's own description when non-nil.
	Description *string

	// Optional forces the emitted typealias to be optional when non-nil.
	// Ignored for struct and enum outputs.
	Optional *bool
}

// Error is a fatal translation failure: no coherent declaration exists for
// the schema. It carries the offending type's fully-qualified name.
type Error struct {
	TypeName decl.TypeName
	Message  string
}

func (e *Error) Error() string {
	return e.TypeName.FullyQualified() + ": " + e.Message
}

// Conformances applied to generated struct and oneOf declarations.
var structConformances = []string{"Codable", "Hashable", "Sendable"}

// Conformances applied to generated raw-representable enums.
var enumConformances = []string{"Swift.RawRepresentable", "Codable", "Hashable", "Sendable"}

// ComponentsNamespace is the namespace under which named components are
// declared.
var ComponentsNamespace = decl.NewTypeName("Components", "Schemas")

// ComponentTypeName returns the declared TypeName for a named component.
func (t *Translator) ComponentTypeName(name string) decl.TypeName {
	return ComponentsNamespace.Appending(t.typeName(name))
}

// Translate converts one named schema into zero or more declarations. Nested
// inline schemas become nested declarations owned by their parent. A nil or
// unsupported schema yields zero declarations and a diagnostic; an error is
// returned only for internally-inconsistent input.
func (t *Translator) Translate(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	if node == nil {
		node = &schema.Node{Kind: schema.KindFragment}
	}

	// Builtin equivalents short-circuit all further dispatch: they become a
	// single typealias, never a full struct or enum.
	if usage, ok := t.builtinUsage(node, true); ok {
		return []decl.Decl{t.aliasDecl(name, usage, node, ov)}, nil
	}

	switch node.Kind {
	case schema.KindObject:
		return t.translateObject(name, node, ov)
	case schema.KindString:
		return t.translateStringEnum(name, node, ov)
	case schema.KindInteger:
		return t.translateIntEnum(name, node, ov)
	case schema.KindArray:
		return t.translateArray(name, node, ov)
	case schema.KindAllOf:
		return t.translateStructured(name, node, ov, true)
	case schema.KindAnyOf:
		return t.translateStructured(name, node, ov, false)
	case schema.KindOneOf:
		return t.translateOneOf(name, node, ov)
	default:
		t.diags.Warn("unsupported schema shape, skipping", map[string]string{
			"type": name.FullyQualified(),
			"kind": node.Kind.String(),
		})
		return nil, nil
	}
}

// typeName sanitizes a raw name for type position, honoring overrides.
func (t *Translator) typeName(raw string) string {
	if o, ok := t.naming.Overrides[raw]; ok {
		return o
	}
	return swift.Safe(raw, swift.RoleType, t.naming.Strategy)
}

// memberName sanitizes a raw name for member position, honoring overrides.
func (t *Translator) memberName(raw string) string {
	if o, ok := t.naming.Overrides[raw]; ok {
		return o
	}
	return swift.Safe(raw, swift.RoleMember, t.naming.Strategy)
}

// aliasDecl emits a typealias to an existing usage, applying nullability and
// the caller's overrides.
func (t *Translator) aliasDecl(name decl.TypeName, usage decl.TypeUsage, node *schema.Node, ov Overrides) decl.Decl {
	optional := node.Core.Nullable
	if ov.Optional != nil {
		optional = *ov.Optional
	}
	if optional {
		usage = usage.WithOptional(true)
	}
	desc := node.Core.Description
	if ov.Description != nil {
		desc = *ov.Description
	}
	alias := &decl.Typealias{Name: name, Existing: usage}
	return decl.WithComment(alias, desc, node.Core.Deprecated)
}

// usageFor resolves the type of a child schema at a use site. Builtins map
// straight to a usage; anything else synthesizes a child type named under
// parent and returns its nested declarations. ok is false when the child is
// unsupported and the use site should be skipped.
func (t *Translator) usageFor(parent decl.TypeName, component string, node *schema.Node) (usage decl.TypeUsage, nested []decl.Decl, ok bool, err error) {
	if node == nil {
		node = &schema.Node{Kind: schema.KindFragment}
	}
	if u, builtin := t.builtinUsage(node, false); builtin {
		return u, nil, true, nil
	}
	childName := parent.Appending(component)
	decls, err := t.Translate(childName, node, Overrides{})
	if err != nil {
		return decl.TypeUsage{}, nil, false, err
	}
	if len(decls) == 0 {
		// The child degraded; the diagnostic was already recorded.
		return decl.TypeUsage{}, nil, false, nil
	}
	return childName.AsUsage(), decls, true, nil
}

// isKeyValuePair reports whether the schema decodes from a keyed container
// (object-shaped) rather than a single-value container (scalar-shaped).
// References are resolved through the components table.
func (t *Translator) isKeyValuePair(node *schema.Node) bool {
	for i := 0; node != nil && i < 32; i++ {
		switch node.Kind {
		case schema.KindObject, schema.KindAllOf, schema.KindAnyOf, schema.KindOneOf:
			return true
		case schema.KindReference:
			if t.doc == nil {
				return false
			}
			node = t.doc.Lookup(node.Ref)
		default:
			return false
		}
	}
	return false
}

// qualifiedUsage builds a usage from a dot-separated qualified name.
func qualifiedUsage(qualified string) decl.TypeUsage {
	return decl.NewTypeName(strings.Split(qualified, ".")...).AsUsage()
}

func (t *Translator) warn(message string, name decl.TypeName, kv ...string) {
	ctx := map[string]string{"type": name.FullyQualified()}
	for i := 0; i+1 < len(kv); i += 2 {
		ctx[kv[i]] = kv[i+1]
	}
	t.diags.Warn(message, ctx)
}

func fatalf(name decl.TypeName, format string, args ...any) error {
	return &Error{TypeName: name, Message: fmt.Sprintf(format, args...)}
}
