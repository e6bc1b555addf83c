package translator

import (
	"math"
	"strconv"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/schema"
)

// enumEntry is one surviving case of a generated enum.
type enumEntry struct {
	caseName string
	raw      decl.Expr
}

func (t *Translator) translateStringEnum(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	var entries []enumEntry
	seen := map[string]bool{}
	for _, v := range node.Core.Enum {
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case nil:
			// A null entry in a nullable enum is representable: it becomes
			// the empty-string case, with absence handled by optionality at
			// the use site.
			if !node.Core.Nullable {
				return nil, fatalf(name, "enum value is not a string: null")
			}
			s = ""
		default:
			return nil, fatalf(name, "enum value is not a string: %v", v)
		}
		if seen[s] {
			t.warn("duplicate enum value, skipping repeat", name, "value", s)
			continue
		}
		seen[s] = true
		entries = append(entries, enumEntry{
			caseName: t.memberName(s),
			raw:      decl.StringLit(s),
		})
	}
	return t.enumDecls(name, node, ov, "Swift.String", entries)
}

func (t *Translator) translateIntEnum(name decl.TypeName, node *schema.Node, ov Overrides) ([]decl.Decl, error) {
	var entries []enumEntry
	seen := map[int64]bool{}
	for _, v := range node.Core.Enum {
		n, ok := asInt64(v)
		if !ok {
			if v == nil && node.Core.Nullable {
				continue
			}
			return nil, fatalf(name, "enum value is not an integer: %v", v)
		}
		if seen[n] {
			t.warn("duplicate enum value, skipping repeat", name, "value", strconv.FormatInt(n, 10))
			continue
		}
		seen[n] = true
		entries = append(entries, enumEntry{
			caseName: intCaseName(n),
			raw:      decl.IntLit(n),
		})
	}
	return t.enumDecls(name, node, ov, "Swift.Int", entries)
}

// intCaseName names an integer case: _1 for 1, _n3 for -3. A leading
// underscore keeps the identifier legal regardless of the value.
func intCaseName(n int64) string {
	if n < 0 {
		return "_n" + strconv.FormatInt(-n, 10)
	}
	return "_" + strconv.FormatInt(n, 10)
}

// enumDecls assembles a frozen raw-representable enum: plain cases plus a
// hand-written rawValue accessor and failable initializer built by exhaustive
// switch, so the mapping between case and document value stays explicit even
// when case names were sanitized.
func (t *Translator) enumDecls(name decl.TypeName, node *schema.Node, ov Overrides, rawType string, entries []enumEntry) ([]decl.Decl, error) {
	if len(entries) == 0 {
		return nil, fatalf(name, "enum declares no usable values")
	}

	var members []decl.Decl
	for _, e := range entries {
		members = append(members, &decl.EnumCase{Name: e.caseName})
	}

	members = append(members, &decl.Typealias{
		Name:     name.Appending("RawValue"),
		Existing: qualifiedUsage(rawType),
	})

	initCases := make([]decl.SwitchCase, 0, len(entries))
	valueCases := make([]decl.SwitchCase, 0, len(entries))
	for _, e := range entries {
		initCases = append(initCases, decl.SwitchCase{
			Patterns: []decl.CasePattern{{Match: e.raw}},
			Body: []decl.Stmt{
				decl.Assign(decl.Identifier("self"), decl.Dot(nil, e.caseName)),
			},
		})
		valueCases = append(valueCases, decl.SwitchCase{
			Patterns: []decl.CasePattern{{Match: decl.Dot(nil, e.caseName)}},
			Body:     []decl.Stmt{&decl.ReturnStmt{E: e.raw}},
		})
	}

	members = append(members, &decl.Function{
		Keyword: decl.FuncFailableInitializer,
		Parameters: []decl.Parameter{{
			Label: "rawValue",
			Type:  qualifiedUsage(rawType),
		}},
		Body: []decl.Stmt{&decl.SwitchStmt{
			Subject: decl.Identifier("rawValue"),
			Cases:   initCases,
			Default: []decl.Stmt{&decl.ReturnStmt{E: decl.NilLit()}},
		}},
	})

	rawUsage := qualifiedUsage(rawType)
	members = append(members, &decl.Variable{
		Name: "rawValue",
		Type: &rawUsage,
		Getter: []decl.Stmt{&decl.SwitchStmt{
			Subject: decl.Identifier("self"),
			Cases:   valueCases,
		}},
	})

	e := &decl.Enum{
		Name:         name,
		Frozen:       true,
		Conformances: enumConformances,
		Members:      members,
	}
	desc := node.Core.Description
	if ov.Description != nil {
		desc = *ov.Description
	}
	return []decl.Decl{decl.WithComment(e, desc, node.Core.Deprecated)}, nil
}

// asInt64 normalizes document enum values parsed from JSON or YAML.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
