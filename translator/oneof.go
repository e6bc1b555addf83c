package translator

import (
	"fmt"
	"sort"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// oneOfCase is one alternative of a oneOf enum.
type oneOfCase struct {
	caseName string
	usage    decl.TypeUsage

	// rawNames are discriminator values routing to this case; empty for the
	// undiscriminated form.
	rawNames []string

	// keyed is true when the payload decodes from a keyed container.
	keyed bool
}

// translateOneOf emits a oneOf schema as an enum with one associated-value
// case per alternative. With a discriminator the document's tag property
// routes decoding and unknown tags throw; without one, decoding tries each
// case in order and falls through to a required undocumented case holding the
// raw payload.
func (t *Translator) translateOneOf(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	comp := node.Composite
	if comp == nil || len(comp.Children) == 0 {
		t.warn("oneOf schema declares no children, skipping", name)
		return nil, nil
	}
	if comp.Discriminator != nil {
		return t.translateDiscriminatedOneOf(name, node, ov)
	}

	var cases []oneOfCase
	var nestedDecls []decl.Decl
	for i, child := range comp.Children {
		usage, nested, ok, err := t.usageFor(name, fmt.Sprintf("Case%dPayload", i+1), child)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		nestedDecls = append(nestedDecls, nested...)
		cases = append(cases, oneOfCase{
			caseName: fmt.Sprintf("case%d", i+1),
			usage:    usage,
			keyed:    t.isKeyValuePair(child),
		})
	}
	if len(cases) == 0 {
		t.warn("no child schema of the oneOf could be translated, skipping", name)
		return nil, nil
	}

	// The undocumented case makes decoding total: payloads matching none of
	// the alternatives are preserved rather than rejected.
	undocumented := oneOfCase{
		caseName: "undocumented",
		usage:    qualifiedUsage(t.symbols.ValueContainer),
		keyed:    true,
	}

	var members []decl.Decl
	for _, c := range cases {
		members = append(members, t.oneOfCaseDecl(c))
	}
	members = append(members, decl.WithComment(
		t.oneOfCaseDecl(undocumented),
		"A payload matching none of the documented alternatives.",
		false,
	))
	members = append(members, nestedDecls...)
	members = append(members, t.oneOfSequentialDecoder(cases, undocumented))
	members = append(members, t.oneOfEncoder(append(cases, undocumented)))

	return t.finishOneOf(name, node, ov, members), nil
}

func (t *Translator) translateDiscriminatedOneOf(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	comp := node.Composite
	disc := comp.Discriminator

	var cases []oneOfCase
	for i, child := range comp.Children {
		if child == nil || child.Kind != schema.KindReference {
			// The discriminator value names a component, so only reference
			// children are addressable.
			t.warn("discriminated oneOf child is not a reference, dropping it",
				name, "child", fmt.Sprintf("%d", i+1))
			continue
		}
		cases = append(cases, oneOfCase{
			caseName: t.memberName(child.Ref),
			usage:    t.ComponentTypeName(child.Ref).AsUsage(),
			rawNames: discriminatorRawNames(child.Ref, disc.Mapping),
			keyed:    true,
		})
	}
	if len(cases) == 0 {
		t.warn("no child schema of the discriminated oneOf could be translated, skipping", name)
		return nil, nil
	}

	keyCase := t.memberName(disc.PropertyName)

	var members []decl.Decl
	for _, c := range cases {
		members = append(members, t.oneOfCaseDecl(c))
	}

	key := &decl.EnumCase{Name: keyCase}
	if keyCase != disc.PropertyName {
		key.Raw = decl.StringLit(disc.PropertyName)
	}
	members = append(members, &decl.Enum{
		Name:         name.Appending("CodingKeys"),
		RawType:      "String",
		Conformances: []string{"CodingKey"},
		Members:      []decl.Decl{key},
	})

	members = append(members, t.oneOfDiscriminatedDecoder(cases, keyCase))
	members = append(members, t.oneOfEncoder(cases))

	return t.finishOneOf(name, node, ov, members), nil
}

func (t *Translator) finishOneOf(name decl.TypeName, node *schema.Node, ov Overrides, members []decl.Decl) []decl.Decl {
	e := &decl.Enum{
		Name:         name,
		Frozen:       true,
		Conformances: structConformances,
		Members:      members,
	}
	desc := node.Core.Description
	if ov.Description != nil {
		desc = *ov.Description
	}
	return []decl.Decl{decl.WithComment(e, desc, node.Core.Deprecated)}
}

func (t *Translator) oneOfCaseDecl(c oneOfCase) decl.Decl {
	return &decl.EnumCase{Name: c.caseName, Associated: []decl.TypeUsage{c.usage}}
}

// oneOfSequentialDecoder tries each documented case in order, keeping the
// first success; every failure is recoverable because the undocumented case
// accepts any remaining payload.
func (t *Translator) oneOfSequentialDecoder(cases []oneOfCase, undocumented oneOfCase) decl.Decl {
	var body []decl.Stmt
	for _, c := range cases {
		body = append(body, &decl.DoCatchStmt{
			Body: []decl.Stmt{
				decl.Assign(decl.Identifier("self"),
					decl.CallExpr(decl.Dot(nil, c.caseName), decl.Arg{Value: t.caseDecodeExpr(c)})),
				&decl.ReturnStmt{},
			},
		})
	}
	body = append(body, decl.Assign(decl.Identifier("self"),
		decl.CallExpr(decl.Dot(nil, undocumented.caseName), decl.Arg{Value: t.caseDecodeExpr(undocumented)})))
	return decoderDecl(body)
}

// oneOfDiscriminatedDecoder reads the tag property, then routes to the case
// whose raw names include it. Unknown tags are a decoding error: with a
// discriminator present the document promises a closed set.
func (t *Translator) oneOfDiscriminatedDecoder(cases []oneOfCase, keyCase string) decl.Decl {
	body := []decl.Stmt{
		&decl.VarStmt{
			Binding: decl.BindingLet,
			Name:    "container",
			Value: decl.TryExpr(decl.CallExpr(
				decl.Dot(decl.Identifier("decoder"), "container"),
				decl.Arg{Label: "keyedBy", Value: decl.Dot(decl.Identifier("CodingKeys"), "self")},
			)),
		},
		&decl.VarStmt{
			Binding: decl.BindingLet,
			Name:    "discriminator",
			Value: decl.TryExpr(decl.CallExpr(
				decl.Dot(decl.Identifier("container"), "decode"),
				decl.Arg{Value: decl.Dot(decl.TypeRef(qualifiedUsage("Swift.String")), "self")},
				decl.Arg{Label: "forKey", Value: decl.Dot(nil, keyCase)},
			)),
		},
	}

	var switchCases []decl.SwitchCase
	for _, c := range cases {
		patterns := make([]decl.CasePattern, len(c.rawNames))
		for i, raw := range c.rawNames {
			patterns[i] = decl.CasePattern{Match: decl.StringLit(raw)}
		}
		switchCases = append(switchCases, decl.SwitchCase{
			Patterns: patterns,
			Body: []decl.Stmt{decl.Assign(decl.Identifier("self"),
				decl.CallExpr(decl.Dot(nil, c.caseName), decl.Arg{Value: t.caseDecodeExpr(c)}))},
		})
	}

	body = append(body, &decl.SwitchStmt{
		Subject: decl.Identifier("discriminator"),
		Cases:   switchCases,
		Default: []decl.Stmt{&decl.ThrowStmt{E: decl.CallExpr(
			decl.Identifier(t.symbols.UnknownOneOfDiscriminator),
			decl.Arg{Label: "discriminatorKey", Value: decl.Dot(decl.Identifier("CodingKeys"), keyCase)},
			decl.Arg{Label: "discriminatorValue", Value: decl.Identifier("discriminator")},
			decl.Arg{Label: "codingPath", Value: decl.Dot(decl.Identifier("decoder"), "codingPath")},
		)}},
	})
	return decoderDecl(body)
}

// oneOfEncoder switches over self and forwards the bound payload: keyed
// payloads encode themselves into the encoder, scalar payloads go through the
// single-value container.
func (t *Translator) oneOfEncoder(cases []oneOfCase) decl.Decl {
	var switchCases []decl.SwitchCase
	for _, c := range cases {
		var stmt decl.Stmt
		if c.keyed {
			stmt = decl.Eval(decl.TryExpr(decl.CallExpr(
				decl.Dot(decl.Identifier("value"), "encode"),
				decl.Arg{Label: "to", Value: decl.Identifier("encoder")},
			)))
		} else {
			stmt = decl.Eval(decl.TryExpr(decl.CallExpr(
				decl.Dot(decl.Identifier("encoder"), t.symbols.EncodeToSingleValueContainer),
				decl.Arg{Value: decl.Identifier("value")},
			)))
		}
		switchCases = append(switchCases, decl.SwitchCase{
			Patterns: []decl.CasePattern{{Match: decl.Dot(nil, c.caseName), Binding: "value"}},
			Body:     []decl.Stmt{stmt},
		})
	}
	return encoderDecl([]decl.Stmt{&decl.SwitchStmt{
		Subject: decl.Identifier("self"),
		Cases:   switchCases,
	}})
}

// caseDecodeExpr decodes one case payload: keyed payloads from the whole
// decoder via their own Decodable conformance, scalars from a single-value
// container.
func (t *Translator) caseDecodeExpr(c oneOfCase) decl.Expr {
	if c.keyed {
		return decl.TryExpr(decl.CallExpr(
			decl.Dot(nil, "init"),
			decl.Arg{Label: "from", Value: decl.Identifier("decoder")},
		))
	}
	return decl.TryExpr(decl.CallExpr(
		decl.Dot(decl.Identifier("decoder"), t.symbols.DecodeFromSingleValueContainer),
	))
}

// discriminatorRawNames collects the mapping entries routing to a component,
// sorted for deterministic output. A component no mapping entry names is
// routed by its own name.
func discriminatorRawNames(component string, mapping map[string]string) []string {
	var raws []string
	for raw, target := range mapping {
		if referencedComponent(target) == component {
			raws = append(raws, raw)
		}
	}
	if len(raws) == 0 {
		return []string{component}
	}
	sort.Strings(raws)
	return raws
}

// referencedComponent extracts the component name from a mapping target,
// which may be a bare name or a full reference path.
func referencedComponent(target string) string {
	for i := len(target) - 1; i >= 0; i-- {
		if target[i] == '/' {
			return target[i+1:]
		}
	}
	return target
}
