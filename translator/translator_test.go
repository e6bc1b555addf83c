package translator

import (
	"strings"
	"testing"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/diag"
	"github.com/oaswift/oaswift/schema"
	"github.com/oaswift/oaswift/swift"
)

func newTestTranslator(t *testing.T, doc *schema.Document) (*Translator, *diag.Collector) {
	t.Helper()
	diags := diag.NewCollector()
	return New(Options{
		Diagnostics: diags,
		Naming:      NamingConfig{Strategy: swift.StrategyDefensive},
		Document:    doc,
	}), diags
}

func schemasName(short string) decl.TypeName {
	return ComponentsNamespace.Appending(short)
}

// render prints the declarations so tests can assert on the emitted source.
func render(t *testing.T, decls []decl.Decl) string {
	t.Helper()
	out, err := swift.NewPrinter(swift.DefaultConfig()).File(decls)
	if err != nil {
		t.Fatalf("rendering declarations: %v", err)
	}
	return string(out)
}

func mustTranslate(t *testing.T, tr *Translator, name decl.TypeName, node *schema.Node) []decl.Decl {
	t.Helper()
	decls, err := tr.Translate(name, node, Overrides{})
	if err != nil {
		t.Fatalf("Translate(%s) returned error: %v", name.FullyQualified(), err)
	}
	return decls
}

func wantContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q\noutput:\n%s", w, got)
		}
	}
}

func TestTranslateBuiltinAliases(t *testing.T) {
	tests := []struct {
		name string
		node *schema.Node
		want string
	}{
		{"plain string", &schema.Node{Kind: schema.KindString}, "typealias T = Swift.String"},
		{"date-time", &schema.Node{Kind: schema.KindString, Format: "date-time"}, "typealias T = Foundation.Date"},
		{"binary at root", &schema.Node{Kind: schema.KindString, Format: "binary"}, "typealias T = Foundation.Data"},
		{"int", &schema.Node{Kind: schema.KindInteger}, "typealias T = Swift.Int"},
		{"int32", &schema.Node{Kind: schema.KindInteger, Format: "int32"}, "typealias T = Swift.Int32"},
		{"int64", &schema.Node{Kind: schema.KindInteger, Format: "int64"}, "typealias T = Swift.Int64"},
		{"number", &schema.Node{Kind: schema.KindNumber}, "typealias T = Swift.Double"},
		{"float", &schema.Node{Kind: schema.KindNumber, Format: "float"}, "typealias T = Swift.Float"},
		{"bool", &schema.Node{Kind: schema.KindBoolean}, "typealias T = Swift.Bool"},
		{"fragment", &schema.Node{Kind: schema.KindFragment}, "typealias T = OpenAPIRuntime.OpenAPIValueContainer"},
		{
			"empty object",
			&schema.Node{Kind: schema.KindObject, Object: &schema.ObjectContext{}},
			"typealias T = OpenAPIRuntime.OpenAPIObjectContainer",
		},
		{
			"reference",
			&schema.Node{Kind: schema.KindReference, Ref: "Pet"},
			"typealias T = Components.Schemas.Pet",
		},
		{
			"nullable string",
			&schema.Node{Kind: schema.KindString, Core: schema.Core{Nullable: true}},
			"typealias T = Swift.String?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := newTestTranslator(t, nil)
			decls := mustTranslate(t, tr, schemasName("T"), tt.node)
			if len(decls) != 1 {
				t.Fatalf("got %d declarations, want 1", len(decls))
			}
			wantContains(t, render(t, decls), tt.want)
		})
	}
}

func TestTranslateNilSchemaIsFragment(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	decls := mustTranslate(t, tr, schemasName("Anything"), nil)
	wantContains(t, render(t, decls), "typealias Anything = OpenAPIRuntime.OpenAPIValueContainer")
}

func TestTranslateDescriptionAndDeprecation(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindString,
		Core: schema.Core{Description: "An opaque token.", Deprecated: true},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Token"), node))
	wantContains(t, got,
		"/// An opaque token.",
		"@available(*, deprecated)",
		"typealias Token = Swift.String",
	)
}

func TestTranslateDescriptionOverrideWins(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	desc := "Overridden."
	node := &schema.Node{Kind: schema.KindString, Core: schema.Core{Description: "Original."}}
	decls, err := tr.Translate(schemasName("Token"), node, Overrides{Description: &desc})
	if err != nil {
		t.Fatal(err)
	}
	got := render(t, decls)
	wantContains(t, got, "/// Overridden.")
	if strings.Contains(got, "Original.") {
		t.Errorf("original description should be replaced:\n%s", got)
	}
}

func TestTranslateOptionalOverride(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	optional := true
	node := &schema.Node{Kind: schema.KindString}
	decls, err := tr.Translate(schemasName("Token"), node, Overrides{Optional: &optional})
	if err != nil {
		t.Fatal(err)
	}
	wantContains(t, render(t, decls), "typealias Token = Swift.String?")
}

func TestTranslateUnsupportedKindDegrades(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	// A number carrying an enum has no generated representation.
	node := &schema.Node{
		Kind: schema.KindNumber,
		Core: schema.Core{Enum: []any{1.5, 2.5}},
	}
	decls, err := tr.Translate(schemasName("Weird"), node, Overrides{})
	if err != nil {
		t.Fatalf("degradation must not error: %v", err)
	}
	if len(decls) != 0 {
		t.Fatalf("got %d declarations, want 0", len(decls))
	}
	if diags.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", diags.Len())
	}
	if got := diags.All()[0].Context["type"]; got != "Components.Schemas.Weird" {
		t.Errorf("diagnostic type = %q", got)
	}
}

func TestNamingOverridesBypassSanitizer(t *testing.T) {
	diags := diag.NewCollector()
	tr := New(Options{
		Diagnostics: diags,
		Naming: NamingConfig{
			Strategy:  swift.StrategyDefensive,
			Overrides: map[string]string{"+1": "plusOne"},
		},
	})
	if got := tr.memberName("+1"); got != "plusOne" {
		t.Errorf("memberName(+1) = %q, want plusOne", got)
	}
	// Names without an override still go through the sanitizer.
	if got := tr.memberName("+2"); got != "_plus_2" {
		t.Errorf("memberName(+2) = %q, want _plus_2", got)
	}
}

func TestIsKeyValuePairResolvesReferences(t *testing.T) {
	doc := schema.NewDocument([]schema.Component{
		{Name: "Pet", Schema: &schema.Node{Kind: schema.KindObject, Object: &schema.ObjectContext{
			Properties: []schema.Property{{Name: "name", Schema: &schema.Node{Kind: schema.KindString}}},
		}}},
		{Name: "Name", Schema: &schema.Node{Kind: schema.KindString}},
		{Name: "PetAlias", Schema: &schema.Node{Kind: schema.KindReference, Ref: "Pet"}},
	})
	tr, _ := newTestTranslator(t, doc)

	tests := []struct {
		name string
		node *schema.Node
		want bool
	}{
		{"object", &schema.Node{Kind: schema.KindObject}, true},
		{"string", &schema.Node{Kind: schema.KindString}, false},
		{"ref to object", &schema.Node{Kind: schema.KindReference, Ref: "Pet"}, true},
		{"ref to string", &schema.Node{Kind: schema.KindReference, Ref: "Name"}, false},
		{"ref to ref to object", &schema.Node{Kind: schema.KindReference, Ref: "PetAlias"}, true},
		{"dangling ref", &schema.Node{Kind: schema.KindReference, Ref: "Nope"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.isKeyValuePair(tt.node); got != tt.want {
				t.Errorf("isKeyValuePair = %v, want %v", got, tt.want)
			}
		})
	}
}
