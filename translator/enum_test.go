package translator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/oaswift/oaswift/schema"
)

func TestTranslateStringEnum(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindString,
		Core: schema.Core{Enum: []any{"prod", "staging", "dev"}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Environment"), node))

	wantContains(t, got,
		"@frozen",
		"enum Environment: Swift.RawRepresentable, Codable, Hashable, Sendable {",
		"case prod",
		"case staging",
		"case dev",
		"typealias RawValue = Swift.String",
		"init?(rawValue: Swift.String) {",
		"switch rawValue {",
		"case \"prod\":",
		"self = .prod",
		"return nil",
		"var rawValue: Swift.String {",
		"case .staging:",
		"return \"staging\"",
	)
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diags.All())
	}
}

func TestTranslateStringEnumSanitizesCases(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindString,
		Core: schema.Core{Enum: []any{"public", "+1", ""}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Visibility"), node))

	wantContains(t, got,
		"case _public",
		"case _plus_1",
		"case _empty_",
		// The raw mapping preserves the document values verbatim.
		"case \"public\":",
		"self = ._public",
		"case ._plus_1:",
		"return \"+1\"",
		"case ._empty_:",
		"return \"\"",
	)
}

func TestTranslateStringEnumDeduplicates(t *testing.T) {
	tr, diags := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindString,
		Core: schema.Core{Enum: []any{"a", "b", "a", "a"}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Letters"), node))

	if n := strings.Count(got, "case a\n"); n != 1 {
		t.Errorf("case a emitted %d times, want 1\n%s", n, got)
	}
	if diags.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2 (one per repeat)", diags.Len())
	}
	for _, d := range diags.All() {
		if d.Context["value"] != "a" {
			t.Errorf("diagnostic value = %q, want a", d.Context["value"])
		}
	}
}

func TestTranslateStringEnumNullableNull(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindString,
		Core: schema.Core{Nullable: true, Enum: []any{"on", nil}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Toggle"), node))
	wantContains(t, got, "case on", "case _empty_")
}

func TestTranslateStringEnumRejectsNonStrings(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	tests := []struct {
		name string
		enum []any
	}{
		{"integer value", []any{"ok", 3}},
		{"null without nullable", []any{"ok", nil}},
		{"bool value", []any{true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &schema.Node{Kind: schema.KindString, Core: schema.Core{Enum: tt.enum}}
			_, err := tr.Translate(schemasName("Bad"), node, Overrides{})
			if err == nil {
				t.Fatal("want error, got nil")
			}
			var terr *Error
			if !errors.As(err, &terr) {
				t.Fatalf("error type = %T", err)
			}
			if terr.TypeName.FullyQualified() != "Components.Schemas.Bad" {
				t.Errorf("error type name = %q", terr.TypeName.FullyQualified())
			}
		})
	}
}

func TestTranslateIntEnum(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Enum: []any{0, 1, -3}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Priority"), node))

	wantContains(t, got,
		"enum Priority: Swift.RawRepresentable, Codable, Hashable, Sendable {",
		"case _0",
		"case _1",
		"case _n3",
		"typealias RawValue = Swift.Int",
		"init?(rawValue: Swift.Int) {",
		"case -3:",
		"self = ._n3",
		"case ._n3:",
		"return -3",
	)
}

func TestTranslateIntEnumAcceptsJSONNumbers(t *testing.T) {
	// JSON-parsed documents surface integers as float64.
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Enum: []any{float64(2), float64(7)}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Level"), node))
	wantContains(t, got, "case _2", "case _7")
}

func TestTranslateIntEnumRejectsFractions(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Enum: []any{1.5}},
	}
	if _, err := tr.Translate(schemasName("Bad"), node, Overrides{}); err == nil {
		t.Fatal("want error for fractional enum value")
	}
}

func TestTranslateIntEnumRejectsUint64Overflow(t *testing.T) {
	// A uint64 above MaxInt64 has no Swift.Int representation and must not
	// wrap negative.
	tr, _ := newTestTranslator(t, nil)
	node := &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Enum: []any{uint64(math.MaxInt64) + 1}},
	}
	if _, err := tr.Translate(schemasName("Big"), node, Overrides{}); err == nil {
		t.Fatal("want error for out-of-range enum value")
	}

	// The boundary value itself is fine.
	node = &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Enum: []any{uint64(math.MaxInt64)}},
	}
	got := render(t, mustTranslate(t, tr, schemasName("Max"), node))
	wantContains(t, got, "case _9223372036854775807")
}

func TestTranslateEnumAllValuesDropped(t *testing.T) {
	tr, _ := newTestTranslator(t, nil)
	// Nullable null entries are skipped for integers; nothing remains.
	node := &schema.Node{
		Kind: schema.KindInteger,
		Core: schema.Core{Nullable: true, Enum: []any{nil}},
	}
	if _, err := tr.Translate(schemasName("Empty"), node, Overrides{}); err == nil {
		t.Fatal("want error for enum with no usable values")
	}
}
