package translator

import (
	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// builtinUsage maps a schema to a target builtin type when one exists.
// Schemas carrying an enum never match: they need a generated type. root
// distinguishes top-level request/response position, the only place binary
// payloads are representable.
func (t *Translator) builtinUsage(node *schema.Node, root bool) (decl.TypeUsage, bool) {
	if len(node.Core.Enum) > 0 {
		return decl.TypeUsage{}, false
	}
	switch node.Kind {
	case schema.KindReference:
		return t.ComponentTypeName(node.Ref).AsUsage(), true
	case schema.KindString:
		switch node.Format {
		case "binary":
			if !root {
				return decl.TypeUsage{}, false
			}
			return qualifiedUsage(t.symbols.DataType), true
		case "date-time":
			return qualifiedUsage(t.symbols.DateType), true
		default:
			return qualifiedUsage("Swift.String"), true
		}
	case schema.KindInteger:
		switch node.Format {
		case "int32":
			return qualifiedUsage("Swift.Int32"), true
		case "int64":
			return qualifiedUsage("Swift.Int64"), true
		default:
			return qualifiedUsage("Swift.Int"), true
		}
	case schema.KindNumber:
		switch node.Format {
		case "float":
			return qualifiedUsage("Swift.Float"), true
		default:
			return qualifiedUsage("Swift.Double"), true
		}
	case schema.KindBoolean:
		return qualifiedUsage("Swift.Bool"), true
	case schema.KindArray:
		// An array of a builtin-representable element is itself builtin: the
		// use site carries the wrapper directly instead of minting an alias.
		items := &schema.Node{Kind: schema.KindFragment}
		if node.Array != nil && node.Array.Items != nil {
			items = node.Array.Items
		}
		u, ok := t.builtinUsage(items, false)
		if !ok {
			return decl.TypeUsage{}, false
		}
		if items.Core.Nullable {
			u = u.WithOptional(true)
		}
		return u.AsArray(), true
	case schema.KindFragment:
		return qualifiedUsage(t.symbols.ValueContainer), true
	case schema.KindObject:
		// An object declaring neither properties nor an additionalProperties
		// constraint carries no structure worth a generated type.
		if node.Object != nil &&
			len(node.Object.Properties) == 0 &&
			node.Object.Additional.Mode == schema.AdditionalAbsent {
			return qualifiedUsage(t.symbols.ObjectContainer), true
		}
		return decl.TypeUsage{}, false
	default:
		return decl.TypeUsage{}, false
	}
}
