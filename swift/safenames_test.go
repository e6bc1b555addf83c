package swift

import (
	"testing"
	"unicode"
)

func TestSafeDefensive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "_empty_"},
		{"_", "_underscore_"},
		{"pet", "pet"},
		{"Pet", "Pet"},
		{"+1", "_plus_1"},
		{"-1", "_hyphen_1"},
		{"2fast", "_2fast"},
		{"my name", "my_space_name"},
		{"my-name", "my_hyphen_name"},
		{"my.name", "my_period_name"},
		{"a/b", "a_slash_b"},
		{"100%", "_100_percent_"},
		{"__dunder", "__dunder"},
		{"enum", "_enum"},
		{"Self", "_Self"},
		{"already_safe_123", "already_safe_123"},
		{"café", "café"},
		{"---", "_hyphen__hyphen__hyphen_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Safe(tt.input, RoleMember, StrategyDefensive); got != tt.want {
				t.Errorf("Safe(%q, member, defensive) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSafeDefensiveHexFallback(t *testing.T) {
	// No mnemonic for emoji; the code point is hex-escaped.
	got := Safe("a\U0001F600b", RoleMember, StrategyDefensive)
	want := "a_x1F600_b"
	if got != want {
		t.Errorf("Safe = %q, want %q", got, want)
	}
}

func TestSafeDefensiveIdempotent(t *testing.T) {
	inputs := []string{
		"", "_", "+1", "2fast", "my name", "enum", "HELLO_WORLD",
		"---", "a\U0001F600b", "normal", "__x", "100%",
	}
	for _, role := range []Role{RoleType, RoleMember} {
		for _, in := range inputs {
			once := Safe(in, role, StrategyDefensive)
			twice := Safe(once, role, StrategyDefensive)
			if once != twice {
				t.Errorf("defensive not idempotent for %q: first %q, second %q", in, once, twice)
			}
		}
	}
}

func TestSafeIdiomatic(t *testing.T) {
	tests := []struct {
		input string
		role  Role
		want  string
	}{
		{"my-name", RoleMember, "myName"},
		{"my-name", RoleType, "MyName"},
		{"my_name space", RoleMember, "myNameSpace"},
		{"HELLO_WORLD", RoleMember, "helloWorld"},
		{"HELLO_WORLD", RoleType, "HelloWorld"},
		{"HTTPProxy", RoleMember, "httpProxy"},
		{"HTTPProxy", RoleType, "HttpProxy"},
		{"HTTP2Proxy", RoleMember, "http2Proxy"},
		{"{petId}", RoleMember, "petId"},
		{"version2.0", RoleMember, "version20"},
		{"_internal", RoleMember, "_internal"},
		{"order-id", RoleType, "OrderId"},
		{"a", RoleType, "A"},
		{"a", RoleMember, "a"},
		{"self", RoleMember, "_self"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Safe(tt.input, tt.role, StrategyIdiomatic); got != tt.want {
				t.Errorf("Safe(%q, %v, idiomatic) = %q, want %q", tt.input, tt.role, got, tt.want)
			}
		})
	}
}

func TestSafeIdiomaticFallsBackToDefensive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+1", "_plus_1"},                   // '+' outside the allow-list
		{"", "_empty_"},                     // empty input
		{"_", "_underscore_"},               // never left the pre-first-word state
		{"---", "_hyphen__hyphen__hyphen_"}, // only separators
		{"2fast", "_2fast"},                 // leading digit
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Safe(tt.input, RoleMember, StrategyIdiomatic); got != tt.want {
				t.Errorf("Safe(%q, member, idiomatic) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Totality: for a sweep of adversarial inputs the result must be a non-empty
// valid identifier and never a reserved word, under every role and strategy.
func TestSafeTotality(t *testing.T) {
	inputs := []string{
		"", "_", "__", "-", " ", "...", "123", "0", "+1", "a b c",
		"HELLO", "HELLO_WORLD", "enum", "class", "self", "Any", "nil",
		"\U0001F600", "a\tb", "foo{bar}", "über", "_9lives",
	}
	for _, strategy := range []Strategy{StrategyDefensive, StrategyIdiomatic} {
		for _, role := range []Role{RoleType, RoleMember} {
			for _, in := range inputs {
				got := Safe(in, role, strategy)
				if got == "" {
					t.Errorf("Safe(%q) returned empty", in)
					continue
				}
				if IsReservedWord(got) {
					t.Errorf("Safe(%q) = %q collides with a keyword", in, got)
				}
				for i, r := range got {
					valid := unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))
					if !valid {
						t.Errorf("Safe(%q) = %q contains invalid character %q at %d", in, got, r, i)
						break
					}
				}
			}
		}
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != StrategyDefensive {
		t.Errorf("ParseStrategy(\"\") = %v, %v", s, err)
	}
	if s, err := ParseStrategy("idiomatic"); err != nil || s != StrategyIdiomatic {
		t.Errorf("ParseStrategy(\"idiomatic\") = %v, %v", s, err)
	}
	if _, err := ParseStrategy("fancy"); err == nil {
		t.Error("ParseStrategy(\"fancy\") should fail")
	}
}
