package translator

import (
	"github.com/oaswift/oaswift/decl"
)

// decoderDecl wraps a body in init(from decoder: any Decoder) throws.
func decoderDecl(body []decl.Stmt) decl.Decl {
	return &decl.Function{
		Keyword: decl.FuncInitializer,
		Parameters: []decl.Parameter{{
			Label: "from",
			Name:  "decoder",
			Type:  decl.NewTypeName("any Decoder").AsUsage(),
		}},
		Throws: true,
		Body:   body,
	}
}

// encoderDecl wraps a body in func encode(to encoder: any Encoder) throws.
func encoderDecl(body []decl.Stmt) decl.Decl {
	return &decl.Function{
		Keyword: decl.FuncPlain,
		Name:    "encode",
		Parameters: []decl.Parameter{{
			Label: "to",
			Name:  "encoder",
			Type:  decl.NewTypeName("any Encoder").AsUsage(),
		}},
		Throws: true,
		Body:   body,
	}
}

// decoder returns the strategy's init(from:), or nil when compiler synthesis
// suffices.
func (t *Translator) decoder(bp structBlueprint) decl.Decl {
	switch bp.strategy {
	case codableEnforcingNoAdditional:
		return decoderDecl(t.enforcingDecoderBody(bp))
	case codableAllowingAdditional:
		return decoderDecl(t.allowingDecoderBody(bp))
	case codableAllOf:
		return decoderDecl(t.allOfDecoderBody(bp))
	case codableAnyOf:
		return decoderDecl(t.anyOfDecoderBody(bp))
	default:
		return nil
	}
}

// encoder returns the strategy's encode(to:), or nil. The enforcing strategy
// keeps the synthesized encoder: extra keys can only appear on decode.
func (t *Translator) encoder(bp structBlueprint) decl.Decl {
	switch bp.strategy {
	case codableAllowingAdditional:
		return encoderDecl(t.allowingEncoderBody(bp))
	case codableAllOf:
		return encoderDecl(t.allOfEncoderBody(bp))
	case codableAnyOf:
		return encoderDecl(t.anyOfEncoderBody(bp))
	default:
		return nil
	}
}

// serialized filters the blueprint's properties to those carried by keys.
func serialized(bp structBlueprint) []propertyBlueprint {
	var out []propertyBlueprint
	for _, p := range bp.properties {
		if p.inSerialization {
			out = append(out, p)
		}
	}
	return out
}

// knownKeysLit builds the array literal of document key names handed to the
// runtime's additional-properties helpers.
func knownKeysLit(props []propertyBlueprint) decl.Expr {
	elems := make([]decl.Expr, len(props))
	for i, p := range props {
		elems[i] = decl.StringLit(p.originalName)
	}
	return decl.ArrayLit(elems...)
}

func keyedContainerStmt() decl.Stmt {
	return &decl.VarStmt{
		Binding: decl.BindingLet,
		Name:    "container",
		Value: decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Identifier("decoder"), "container"),
			decl.Arg{Label: "keyedBy", Value: decl.Dot(decl.Identifier("CodingKeys"), "self")},
		)),
	}
}

func encodingContainerStmt() decl.Stmt {
	return &decl.VarStmt{
		Binding: decl.BindingVar,
		Name:    "container",
		Value: decl.CallExpr(
			decl.Dot(decl.Identifier("encoder"), "container"),
			decl.Arg{Label: "keyedBy", Value: decl.Dot(decl.Identifier("CodingKeys"), "self")},
		),
	}
}

// containerDecodeStmt decodes one keyed property into self, using
// decodeIfPresent when the property is optional.
func containerDecodeStmt(p propertyBlueprint) decl.Stmt {
	method := "decode"
	if p.usage.Optional() {
		method = "decodeIfPresent"
	}
	return decl.Assign(
		decl.Dot(decl.Identifier("self"), p.safeName),
		decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Identifier("container"), method),
			decl.Arg{Value: decl.Dot(decl.TypeRef(p.usage.WithOptional(false)), "self")},
			decl.Arg{Label: "forKey", Value: decl.Dot(nil, p.safeName)},
		)),
	)
}

// containerEncodeStmt encodes one keyed property from self, skipping nil
// optionals via encodeIfPresent.
func containerEncodeStmt(p propertyBlueprint) decl.Stmt {
	method := "encode"
	if p.usage.Optional() {
		method = "encodeIfPresent"
	}
	return decl.Eval(decl.TryExpr(decl.CallExpr(
		decl.Dot(decl.Identifier("container"), method),
		decl.Arg{Value: decl.Dot(decl.Identifier("self"), p.safeName)},
		decl.Arg{Label: "forKey", Value: decl.Dot(nil, p.safeName)},
	)))
}

// enforcingDecoderBody decodes every documented key then asks the runtime to
// verify no undocumented key was present.
func (t *Translator) enforcingDecoderBody(bp structBlueprint) []decl.Stmt {
	props := serialized(bp)
	var body []decl.Stmt
	if len(props) > 0 {
		body = append(body, keyedContainerStmt())
		for _, p := range props {
			body = append(body, containerDecodeStmt(p))
		}
	}
	body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
		decl.Dot(decl.Identifier("decoder"), t.symbols.EnsureNoAdditionalProperties),
		decl.Arg{Label: "knownKeys", Value: knownKeysLit(props)},
	))))
	return body
}

// allowingDecoderBody decodes documented keys, then sweeps everything else
// into the additional-properties bag.
func (t *Translator) allowingDecoderBody(bp structBlueprint) []decl.Stmt {
	props := serialized(bp)
	var body []decl.Stmt
	if len(props) > 0 {
		body = append(body, keyedContainerStmt())
		for _, p := range props {
			body = append(body, containerDecodeStmt(p))
		}
	}
	body = append(body, decl.Assign(
		decl.Dot(decl.Identifier("self"), "additionalProperties"),
		decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Identifier("decoder"), t.symbols.DecodeAdditionalProperties),
			decl.Arg{Label: "knownKeys", Value: knownKeysLit(props)},
		)),
	))
	return body
}

func (t *Translator) allowingEncoderBody(bp structBlueprint) []decl.Stmt {
	props := serialized(bp)
	var body []decl.Stmt
	if len(props) > 0 {
		body = append(body, encodingContainerStmt())
		for _, p := range props {
			body = append(body, containerEncodeStmt(p))
		}
	}
	body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
		decl.Dot(decl.Identifier("encoder"), t.symbols.EncodeAdditionalProperties),
		decl.Arg{Value: decl.Dot(decl.Identifier("self"), "additionalProperties")},
	))))
	return body
}

// allOfDecoderBody decodes every value property from the same payload: keyed
// payloads re-read the whole decoder, scalar payloads read the single-value
// container. All must succeed.
func (t *Translator) allOfDecoderBody(bp structBlueprint) []decl.Stmt {
	var body []decl.Stmt
	for _, p := range bp.properties {
		body = append(body, decl.Assign(
			decl.Dot(decl.Identifier("self"), p.safeName),
			structuredDecodeExpr(p, t.symbols),
		))
	}
	return body
}

// allOfEncoderBody encodes every keyed value property into the encoder; of
// the scalar-shaped properties only the first is written, since they all
// mirror the same single payload value.
func (t *Translator) allOfEncoderBody(bp structBlueprint) []decl.Stmt {
	var body []decl.Stmt
	scalarDone := false
	for _, p := range bp.properties {
		if p.isKeyValuePair {
			body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
				decl.Dot(decl.Dot(decl.Identifier("self"), p.safeName), "encode"),
				decl.Arg{Label: "to", Value: decl.Identifier("encoder")},
			))))
			continue
		}
		if scalarDone {
			continue
		}
		scalarDone = true
		body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Identifier("encoder"), t.symbols.EncodeToSingleValueContainer),
			decl.Arg{Value: decl.Dot(decl.Identifier("self"), p.safeName)},
		))))
	}
	return body
}

// anyOfDecoderBody decodes each value property best-effort, collecting the
// per-property errors, then has the runtime verify at least one succeeded.
func (t *Translator) anyOfDecoderBody(bp structBlueprint) []decl.Stmt {
	errorsType := decl.NewTypeName("any Swift.Error").AsUsage().AsArray()
	body := []decl.Stmt{&decl.VarStmt{
		Binding: decl.BindingVar,
		Name:    "errors",
		Type:    &errorsType,
		Value:   decl.ArrayLit(),
	}}
	var values []decl.Expr
	for _, p := range bp.properties {
		body = append(body, &decl.DoCatchStmt{
			Body: []decl.Stmt{decl.Assign(
				decl.Dot(decl.Identifier("self"), p.safeName),
				structuredDecodeExpr(p, t.symbols),
			)},
			Catch: []decl.Stmt{decl.Eval(decl.CallExpr(
				decl.Dot(decl.Identifier("errors"), "append"),
				decl.Arg{Value: decl.Identifier("error")},
			))},
		})
		values = append(values, decl.Dot(decl.Identifier("self"), p.safeName))
	}
	body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
		decl.Identifier(t.symbols.VerifyAtLeastOneSchemaIsNotNil),
		decl.Arg{Label: "ofCodableValues", Value: decl.ArrayLit(values...)},
		decl.Arg{Label: "type", Value: decl.Dot(decl.Identifier("Self"), "self")},
		decl.Arg{Label: "codingPath", Value: decl.Dot(decl.Identifier("decoder"), "codingPath")},
		decl.Arg{Label: "errors", Value: decl.Identifier("errors")},
	))))
	return body
}

// anyOfEncoderBody encodes each keyed value property that is non-nil via
// optional chaining; the scalar-shaped properties collapse into a single
// first-non-nil write.
func (t *Translator) anyOfEncoderBody(bp structBlueprint) []decl.Stmt {
	var body []decl.Stmt
	var scalars []decl.Expr
	for _, p := range bp.properties {
		if !p.isKeyValuePair {
			scalars = append(scalars, decl.Dot(decl.Identifier("self"), p.safeName))
			continue
		}
		body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Chained(decl.Dot(decl.Identifier("self"), p.safeName)), "encode"),
			decl.Arg{Label: "to", Value: decl.Identifier("encoder")},
		))))
	}
	if len(scalars) > 0 {
		body = append(body, decl.Eval(decl.TryExpr(decl.CallExpr(
			decl.Dot(decl.Identifier("encoder"), t.symbols.EncodeFirstNonNilValueToSingleValueContainer),
			decl.Arg{Value: decl.ArrayLit(scalars...)},
		))))
	}
	return body
}

// structuredDecodeExpr decodes one composite value property: keyed payloads
// from the whole decoder, scalars from the single-value container.
func structuredDecodeExpr(p propertyBlueprint, symbols RuntimeSymbols) decl.Expr {
	if p.isKeyValuePair {
		return decl.TryExpr(decl.CallExpr(
			decl.Dot(nil, "init"),
			decl.Arg{Label: "from", Value: decl.Identifier("decoder")},
		))
	}
	return decl.TryExpr(decl.CallExpr(
		decl.Dot(decl.Identifier("decoder"), symbols.DecodeFromSingleValueContainer),
	))
}
