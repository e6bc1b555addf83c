package translator

import (
	"strings"
	"testing"

	"github.com/oaswift/oaswift/schema"
)

func petNode() *schema.Node {
	return &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "id", Schema: &schema.Node{Kind: schema.KindInteger, Format: "int64"}},
				{Name: "name", Schema: &schema.Node{Kind: schema.KindString}},
				{Name: "tag", Schema: &schema.Node{Kind: schema.KindString}},
			},
			Required: []string{"id", "name"},
		},
	}
}

func TestTranslateObjectSynthesized(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	got := render(t, mustTranslate(t, tr, schemasName("Pet"), petNode()))

	wantContains(t, got,
		"struct Pet: Codable, Hashable, Sendable {",
		"var id: Swift.Int64",
		"var name: Swift.String",
		"var tag: Swift.String?",
		"init(id: Swift.Int64, name: Swift.String, tag: Swift.String? = nil) {",
		"self.id = id",
		"self.tag = tag",
	)
	// Synthesis needs no hand-written serialization members.
	for _, absent := range []string{"CodingKeys", "init(from", "func encode"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should not contain %q\n%s", absent, got)
		}
	}
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diags.All())
	}
}

func TestTranslateObjectSanitizedNamesGetCodingKeys(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "default", Schema: &schema.Node{Kind: schema.KindBoolean}},
				{Name: "name", Schema: &schema.Node{Kind: schema.KindString}},
			},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Config"), node))

	wantContains(t, got,
		"var _default: Swift.Bool?",
		"enum CodingKeys: String, CodingKey {",
		"case _default = \"default\"",
		"case name",
	)
}

func TestTranslateObjectForbiddenAdditional(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := petNode()
	node.Object.Additional = schema.Additional{Mode: schema.AdditionalForbidden}
	got := render(t, mustTranslate(t, tr, schemasName("Pet"), node))

	wantContains(t, got,
		"enum CodingKeys: String, CodingKey {",
		"init(from decoder: any Decoder) throws {",
		"let container = try decoder.container(keyedBy: CodingKeys.self)",
		"self.id = try container.decode(Swift.Int64.self, forKey: .id)",
		"self.tag = try container.decodeIfPresent(Swift.String.self, forKey: .tag)",
		"try decoder.ensureNoAdditionalProperties(knownKeys: [\"id\", \"name\", \"tag\"])",
	)
	// Encoding cannot see extra keys, so the synthesized encoder stays.
	if strings.Contains(got, "func encode") {
		t.Errorf("forbidden-additional struct should keep the synthesized encoder\n%s", got)
	}
}

func TestTranslateObjectAllowedAdditional(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := petNode()
	node.Object.Additional = schema.Additional{Mode: schema.AdditionalAllowed}
	got := render(t, mustTranslate(t, tr, schemasName("Pet"), node))

	wantContains(t, got,
		"var additionalProperties: OpenAPIRuntime.OpenAPIObjectContainer",
		"additionalProperties: OpenAPIRuntime.OpenAPIObjectContainer = .init()",
		"self.additionalProperties = try decoder.decodeAdditionalProperties(knownKeys: [\"id\", \"name\", \"tag\"])",
		"func encode(to encoder: any Encoder) throws {",
		"var container = encoder.container(keyedBy: CodingKeys.self)",
		"try container.encode(self.id, forKey: .id)",
		"try container.encodeIfPresent(self.tag, forKey: .tag)",
		"try encoder.encodeAdditionalProperties(self.additionalProperties)",
	)
	// The bag itself is not a document key.
	if strings.Contains(got, "case additionalProperties") {
		t.Errorf("additionalProperties must not appear in CodingKeys\n%s", got)
	}
}

func TestTranslateObjectTypedAdditional(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "name", Schema: &schema.Node{Kind: schema.KindString}},
			},
			Additional: schema.Additional{
				Mode:   schema.AdditionalTyped,
				Schema: &schema.Node{Kind: schema.KindInteger},
			},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Scores"), node))

	wantContains(t, got,
		"var additionalProperties: [Swift.String: Swift.Int]",
		"self.additionalProperties = try decoder.decodeAdditionalProperties(knownKeys: [\"name\"])",
		"try encoder.encodeAdditionalProperties(self.additionalProperties)",
	)
}

func TestTranslateObjectRequiredButUndefined(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	node := petNode()
	node.Object.Required = append(node.Object.Required, "missing")
	got := render(t, mustTranslate(t, tr, schemasName("Pet"), node))

	if strings.Contains(got, "missing") {
		t.Errorf("undefined required property must not surface in output\n%s", got)
	}
	if diags.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", diags.Len())
	}
	if got := diags.All()[0].Context["property"]; got != "missing" {
		t.Errorf("diagnostic property = %q", got)
	}
}

func TestTranslateObjectSkipsBinaryProperties(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "avatar", Schema: &schema.Node{Kind: schema.KindString, Format: "binary"}},
				{Name: "name", Schema: &schema.Node{Kind: schema.KindString}},
			},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Profile"), node))

	if strings.Contains(got, "avatar") {
		t.Errorf("binary property should be skipped\n%s", got)
	}
	wantContains(t, got, "var name: Swift.String?")
	if diags.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", diags.Len())
	}
}

func TestTranslateObjectArrayOfNullableItemsProperty(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "tags", Schema: &schema.Node{
					Kind: schema.KindArray,
					Array: &schema.ArrayContext{Items: &schema.Node{
						Kind: schema.KindString,
						Core: schema.Core{Nullable: true},
					}},
				}},
			},
			Required: []string{"tags"},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Post"), node))

	// Item nullability stays inside the array; the required property itself
	// must not become optional.
	wantContains(t, got, "var tags: [Swift.String?]\n")
	if strings.Contains(got, "[Swift.String]?") {
		t.Errorf("nullable items rendered as an optional array\n%s", got)
	}
}

func TestTranslateObjectInlineEnumProperty(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "status", Schema: &schema.Node{
					Kind: schema.KindString,
					Core: schema.Core{Enum: []any{"open", "closed"}},
				}},
			},
			Required: []string{"status"},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Ticket"), node))

	// "open" is in the reserved-word table (a declaration keyword, like the
	// escaped "public" elsewhere), so the case is prefixed and keeps its raw
	// wire value.
	wantContains(t, got,
		"enum statusPayload: Swift.RawRepresentable, Codable, Hashable, Sendable {",
		"case _open",
		"case closed",
		"var status: Components.Schemas.Ticket.statusPayload",
		"init(status: Components.Schemas.Ticket.statusPayload) {",
	)
}

func TestTranslateObjectInlineObjectProperty(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "owner", Schema: &schema.Node{
					Kind: schema.KindObject,
					Object: &schema.ObjectContext{
						Properties: []schema.Property{
							{Name: "name", Schema: &schema.Node{Kind: schema.KindString}},
						},
					},
				}},
			},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Repo"), node))

	wantContains(t, got,
		"struct ownerPayload: Codable, Hashable, Sendable {",
		"var owner: Components.Schemas.Repo.ownerPayload?",
	)
}

func TestTranslateObjectPropertyDefaults(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindObject,
		Object: &schema.ObjectContext{
			Properties: []schema.Property{
				{Name: "retries", Schema: &schema.Node{
					Kind: schema.KindInteger,
					Core: schema.Core{Default: 3},
				}},
				{Name: "mode", Schema: &schema.Node{
					Kind: schema.KindString,
					Core: schema.Core{Default: "fast", Enum: []any{"fast", "safe"}},
				}},
				{Name: "verbose", Schema: &schema.Node{
					Kind: schema.KindBoolean,
					Core: schema.Core{Default: false},
				}},
			},
			Required: []string{"retries", "mode", "verbose"},
		},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Options"), node))

	wantContains(t, got,
		"retries: Swift.Int = 3",
		"mode: Components.Schemas.Options.modePayload = .fast",
		"verbose: Swift.Bool = false",
	)
}
