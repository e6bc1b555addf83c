package translator

import (
	"fmt"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// translateStructured emits allOf and anyOf schemas as structs with one
// positional property per child schema: value1, value2, ... allOf properties
// are required; anyOf properties are all optional, since any subset of the
// children may match.
func (t *Translator) translateStructured(name decl.TypeName, node *schema.Node, ov Overrides, required bool) ([]decl.Decl, error) {
	comp := node.Composite
	if comp == nil || len(comp.Children) == 0 {
		t.warn("composite schema declares no children, skipping", name)
		return nil, nil
	}

	bp := structBlueprint{name: name, strategy: codableAllOf}
	if !required {
		bp.strategy = codableAnyOf
	}

	for i, child := range comp.Children {
		usage, nested, ok, err := t.usageFor(name, fmt.Sprintf("Value%dPayload", i+1), child)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !required {
			usage = usage.WithOptional(true)
		}
		propName := fmt.Sprintf("value%d", i+1)
		var comment string
		if child != nil {
			comment = child.Core.Description
		}
		pb := propertyBlueprint{
			originalName:    propName,
			safeName:        propName,
			usage:           usage,
			comment:         comment,
			inSerialization: true,
			isKeyValuePair:  t.isKeyValuePair(child),
			nested:          nested,
		}
		if !required {
			pb.defaultValue = decl.NilLit()
		}
		bp.properties = append(bp.properties, pb)
	}

	if len(bp.properties) == 0 {
		t.warn("no child schema of the composite could be translated, skipping", name)
		return nil, nil
	}
	return t.structDecls(bp, node, ov)
}
