package translator

import (
	"strings"
	"testing"

	"github.com/oaswift/oaswift/schema"
)

func TestTranslateArrayOfBuiltin(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind:  schema.KindArray,
		Array: &schema.ArrayContext{Items: &schema.Node{Kind: schema.KindString}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Tags"), node))
	wantContains(t, got, "typealias Tags = [Swift.String]")
}

func TestTranslateArrayOfReference(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind:  schema.KindArray,
		Array: &schema.ArrayContext{Items: &schema.Node{Kind: schema.KindReference, Ref: "Pet"}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Pets"), node))
	wantContains(t, got, "typealias Pets = [Components.Schemas.Pet]")
}

func TestTranslateArrayUnconstrained(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{Kind: schema.KindArray, Array: &schema.ArrayContext{}}
	got := render(t, mustTranslate(t, tr, schemasName("Anything"), node))
	wantContains(t, got, "typealias Anything = [OpenAPIRuntime.OpenAPIValueContainer]")
}

func TestTranslateArrayInlineElement(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindArray,
		Array: &schema.ArrayContext{Items: &schema.Node{
			Kind: schema.KindObject,
			Object: &schema.ObjectContext{
				Properties: []schema.Property{
					{Name: "id", Schema: &schema.Node{Kind: schema.KindInteger}},
				},
			},
		}},
	}
	decls := mustTranslate(t, tr, schemasName("Items"), node)
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want element struct plus alias", len(decls))
	}
	got := render(t, decls)
	wantContains(t, got,
		"struct ItemsElement: Codable, Hashable, Sendable {",
		"typealias Items = [Components.Schemas.ItemsElement]",
	)
	// The alias mentions the element type, so the element is declared first.
	if strings.Index(got, "struct ItemsElement") > strings.Index(got, "typealias Items") {
		t.Errorf("element type must precede the alias\n%s", got)
	}
}

func TestTranslateArrayOfNullableItems(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindArray,
		Array: &schema.ArrayContext{Items: &schema.Node{
			Kind: schema.KindString,
			Core: schema.Core{Nullable: true},
		}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Tags"), node))
	wantContains(t, got, "typealias Tags = [Swift.String?]")
	if strings.Contains(got, "[Swift.String]?") {
		t.Errorf("item nullability leaked to the array itself\n%s", got)
	}
}

func TestTranslateNullableArray(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind:  schema.KindArray,
		Core:  schema.Core{Nullable: true},
		Array: &schema.ArrayContext{Items: &schema.Node{Kind: schema.KindInteger}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Maybe"), node))
	wantContains(t, got, "typealias Maybe = [Swift.Int]?")
}
