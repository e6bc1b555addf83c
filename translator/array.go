package translator

import (
	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// translateArray emits an array schema as a typealias to [Element]. When the
// element schema is inline it is synthesized as a sibling-nested type first;
// the typealias itself always comes last so the element type it mentions is
// already declared.
func (t *Translator) translateArray(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	var items *schema.Node
	if node.Array != nil {
		items = node.Array.Items
	}
	// A typealias cannot nest declarations, so a synthesized element type is
	// emitted as a sibling in the alias's enclosing scope.
	usage, nested, ok, err := t.usageFor(name.Parent(), name.ShortName()+"Element", items)
	if err != nil {
		return nil, err
	}
	if !ok {
		t.warn("array element schema is unsupported, skipping the array", name)
		return nil, nil
	}
	decls := nested
	decls = append(decls, t.aliasDecl(name, usage.AsArray(), node, ov))
	return decls, nil
}
