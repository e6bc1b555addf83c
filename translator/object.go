package translator

import (
	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// codableStrategy selects how a generated struct serializes.
type codableStrategy int

const (
	// codableSynthesized leans on compiler-synthesized Codable.
	codableSynthesized codableStrategy = iota

	// codableEnforcingNoAdditional rejects unknown keys at decode time.
	codableEnforcingNoAdditional

	// codableAllowingAdditional round-trips unknown keys through an extra
	// stored property.
	codableAllowingAdditional

	// codableAllOf decodes every property from the whole payload.
	codableAllOf

	// codableAnyOf decodes best-effort, requiring at least one success.
	codableAnyOf
)

// propertyBlueprint is everything needed to emit one stored property and its
// serialization code.
type propertyBlueprint struct {
	// originalName is the document key; safeName the sanitized identifier.
	originalName string
	safeName     string

	usage decl.TypeUsage

	comment    string
	deprecated bool

	// defaultValue, when non-nil, becomes the memberwise-init default.
	defaultValue decl.Expr

	// inSerialization excludes bookkeeping properties (the additional
	// properties bag) from CodingKeys and per-key coding.
	inSerialization bool

	// isKeyValuePair marks properties whose type decodes from a keyed
	// container; relevant to the allOf/anyOf strategies only.
	isKeyValuePair bool

	// nested holds inline child type declarations owned by this property.
	nested []decl.Decl
}

// structBlueprint accumulates the parts of a generated struct before
// assembly.
type structBlueprint struct {
	name       decl.TypeName
	strategy   codableStrategy
	properties []propertyBlueprint
}

func (t *Translator) translateObject(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	obj := node.Object
	if obj == nil {
		obj = &schema.ObjectContext{}
	}

	for _, req := range obj.Required {
		if !obj.HasProperty(req) {
			t.warn("required property is not defined on the object, ignoring (likely a document typo)",
				name, "property", req)
		}
	}

	bp := structBlueprint{name: name, strategy: codableSynthesized}
	for _, prop := range obj.Properties {
		if prop.Schema != nil && prop.Schema.Kind == schema.KindString && prop.Schema.Format == "binary" {
			t.warn("binary string properties are only supported as top-level payloads, skipping",
				name, "property", prop.Name)
			continue
		}
		pb, ok, err := t.propertyBlueprint(name, prop, !obj.IsRequired(prop.Name))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		bp.properties = append(bp.properties, pb)
	}

	switch obj.Additional.Mode {
	case schema.AdditionalForbidden:
		bp.strategy = codableEnforcingNoAdditional
	case schema.AdditionalAllowed:
		bp.strategy = codableAllowingAdditional
		bp.properties = append(bp.properties, propertyBlueprint{
			originalName: "additionalProperties",
			safeName:     "additionalProperties",
			usage:        qualifiedUsage(t.symbols.ObjectContainer),
			comment:      "A container of undocumented properties.",
			defaultValue: decl.CallExpr(decl.Dot(nil, "init")),
		})
	case schema.AdditionalTyped:
		valueUsage, nested, ok, err := t.usageFor(name, "AdditionalPropertiesPayload", obj.Additional.Schema)
		if err != nil {
			return nil, err
		}
		if ok {
			bp.strategy = codableAllowingAdditional
			bp.properties = append(bp.properties, propertyBlueprint{
				originalName: "additionalProperties",
				safeName:     "additionalProperties",
				usage:        valueUsage.AsDictionaryValue(),
				comment:      "A container of undocumented properties.",
				defaultValue: decl.CallExpr(decl.Dot(nil, "init")),
				nested:       nested,
			})
		}
	}

	return t.structDecls(bp, node, ov)
}

// propertyBlueprint resolves one named property into a blueprint. ok is
// false when the property's schema is unsupported and the property is
// dropped.
func (t *Translator) propertyBlueprint(parent decl.TypeName, prop schema.Property, optional bool) (propertyBlueprint, bool, error) {
	child := prop.Schema
	usage, nested, ok, err := t.usageFor(parent, t.typeName(prop.Name)+"Payload", child)
	if err != nil || !ok {
		return propertyBlueprint{}, false, err
	}
	core := schema.Core{}
	if child != nil {
		core = child.Core
	}
	if optional || core.Nullable {
		usage = usage.WithOptional(true)
	}
	pb := propertyBlueprint{
		originalName:    prop.Name,
		safeName:        t.memberName(prop.Name),
		usage:           usage,
		comment:         core.Description,
		deprecated:      core.Deprecated,
		defaultValue:    t.defaultExpr(child),
		inSerialization: true,
		isKeyValuePair:  t.isKeyValuePair(child),
		nested:          nested,
	}
	if pb.defaultValue == nil && usage.Optional() {
		pb.defaultValue = decl.NilLit()
	}
	return pb, true, nil
}

// defaultExpr renders a document default into a literal or enum-case
// expression. Unrepresentable defaults are ignored.
func (t *Translator) defaultExpr(node *schema.Node) decl.Expr {
	if node == nil || node.Core.Default == nil {
		return nil
	}
	switch v := node.Core.Default.(type) {
	case string:
		if len(node.Core.Enum) > 0 {
			return decl.Dot(nil, t.memberName(v))
		}
		return decl.StringLit(v)
	case bool:
		return decl.BoolLit(v)
	case int:
		return intDefault(node, int64(v))
	case int64:
		return intDefault(node, v)
	case float64:
		if node.Kind == schema.KindInteger && v == float64(int64(v)) {
			return intDefault(node, int64(v))
		}
		return decl.DoubleLit(v)
	default:
		return nil
	}
}

func intDefault(node *schema.Node, v int64) decl.Expr {
	if len(node.Core.Enum) > 0 {
		return decl.Dot(nil, intCaseName(v))
	}
	return decl.IntLit(v)
}

// structDecls assembles a struct declaration from a blueprint: stored
// properties with their nested types, a memberwise initializer, coding keys
// when manual serialization needs them, and the strategy's decoder/encoder.
func (t *Translator) structDecls(bp structBlueprint, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	var members []decl.Decl
	for _, p := range bp.properties {
		members = append(members, p.nested...)
		v := &decl.Variable{
			Binding: decl.BindingVar,
			Name:    p.safeName,
			Type:    &p.usage,
		}
		members = append(members, decl.WithComment(v, p.comment, p.deprecated))
	}

	members = append(members, t.memberwiseInit(bp))

	if keys := t.codingKeys(bp); keys != nil {
		members = append(members, keys)
	}
	if dec := t.decoder(bp); dec != nil {
		members = append(members, dec)
	}
	if enc := t.encoder(bp); enc != nil {
		members = append(members, enc)
	}

	s := &decl.Struct{
		Name:         bp.name,
		Conformances: structConformances,
		Members:      members,
	}
	desc := node.Core.Description
	if ov.Description != nil {
		desc = *ov.Description
	}
	return []decl.Decl{decl.WithComment(s, desc, node.Core.Deprecated)}, nil
}

// memberwiseInit builds the public initializer covering every stored
// property, optionals defaulting to nil.
func (t *Translator) memberwiseInit(bp structBlueprint) decl.Decl {
	var params []decl.Parameter
	var body []decl.Stmt
	for _, p := range bp.properties {
		params = append(params, decl.Parameter{
			Label:   p.safeName,
			Type:    p.usage,
			Default: p.defaultValue,
		})
		body = append(body, decl.Assign(
			decl.Dot(decl.Identifier("self"), p.safeName),
			decl.Identifier(p.safeName),
		))
	}
	return &decl.Function{
		Keyword:    decl.FuncInitializer,
		Parameters: params,
		Body:       body,
	}
}

// codingKeys emits the CodingKeys enum when the strategy performs manual
// per-key coding, or when compiler synthesis would otherwise use a sanitized
// property name as the document key.
func (t *Translator) codingKeys(bp structBlueprint) decl.Decl {
	switch bp.strategy {
	case codableEnforcingNoAdditional, codableAllowingAdditional:
	case codableSynthesized:
		renamed := false
		for _, p := range bp.properties {
			if p.inSerialization && p.originalName != p.safeName {
				renamed = true
				break
			}
		}
		if !renamed {
			return nil
		}
	default:
		return nil
	}
	var cases []decl.Decl
	for _, p := range bp.properties {
		if !p.inSerialization {
			continue
		}
		c := &decl.EnumCase{Name: p.safeName}
		if p.originalName != p.safeName {
			c.Raw = decl.StringLit(p.originalName)
		}
		cases = append(cases, c)
	}
	if len(cases) == 0 {
		return nil
	}
	return &decl.Enum{
		Name:         bp.name.Appending("CodingKeys"),
		RawType:      "String",
		Conformances: []string{"CodingKey"},
		Members:      cases,
	}
}
