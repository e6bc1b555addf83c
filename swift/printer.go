package swift

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/oaswift/oaswift/decl"
)

// Config provides printer formatting options.
type Config struct {
	// Formatting
	IndentStyle     string // "space" or "tab"
	IndentSize      int    // Spaces per indent level (when IndentStyle is "space")
	LineEnding      string // "lf" or "crlf"
	TrailingNewline bool   // Ensure files end with a newline

	// EmitComments includes documentation comments in the output.
	EmitComments bool

	// AccessModifier is prepended to every declaration ("public", "package",
	// or "" for internal).
	AccessModifier string

	// Frontmatter is content added to the top of each generated file,
	// e.g. an import block.
	Frontmatter string
}

// DefaultConfig returns the printer defaults: four-space indent, LF line
// endings, comments on.
func DefaultConfig() Config {
	return Config{
		IndentStyle:     "space",
		IndentSize:      4,
		LineEnding:      "lf",
		TrailingNewline: true,
		EmitComments:    true,
	}
}

// Printer renders declaration trees into Swift source text.
type Printer struct {
	cfg    Config
	indent string
	eol    string
}

// NewPrinter returns a Printer for the given config, applying defaults for
// zero-valued formatting fields.
func NewPrinter(cfg Config) *Printer {
	indent := "    "
	if cfg.IndentStyle == "tab" {
		indent = "\t"
	} else if cfg.IndentSize > 0 {
		indent = strings.Repeat(" ", cfg.IndentSize)
	}
	eol := "\n"
	if cfg.LineEnding == "crlf" {
		eol = "\r\n"
	}
	return &Printer{cfg: cfg, indent: indent, eol: eol}
}

// File renders a whole file: frontmatter followed by each declaration,
// separated by blank lines.
func (p *Printer) File(decls []decl.Decl) ([]byte, error) {
	var buf bytes.Buffer
	if p.cfg.Frontmatter != "" {
		for _, line := range strings.Split(p.cfg.Frontmatter, "\n") {
			buf.WriteString(line)
			buf.WriteString(p.eol)
		}
		buf.WriteString(p.eol)
	}
	for i, d := range decls {
		if i > 0 {
			buf.WriteString(p.eol)
		}
		if err := p.printDecl(&buf, d, 0); err != nil {
			return nil, err
		}
	}
	if p.cfg.TrailingNewline && !bytes.HasSuffix(buf.Bytes(), []byte(p.eol)) {
		buf.WriteString(p.eol)
	}
	return buf.Bytes(), nil
}

// Render renders a single declaration to a string.
func (p *Printer) Render(d decl.Decl) (string, error) {
	var buf bytes.Buffer
	if err := p.printDecl(&buf, d, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *Printer) line(buf *bytes.Buffer, depth int, s string) {
	for i := 0; i < depth; i++ {
		buf.WriteString(p.indent)
	}
	buf.WriteString(s)
	buf.WriteString(p.eol)
}

func (p *Printer) access() string {
	if p.cfg.AccessModifier == "" {
		return ""
	}
	return p.cfg.AccessModifier + " "
}

func (p *Printer) printDecl(buf *bytes.Buffer, d decl.Decl, depth int) error {
	switch t := d.(type) {
	case *decl.Commented:
		p.printComment(buf, t.Comment, depth)
		return p.printDecl(buf, t.Wrapped, depth)
	case *decl.Struct:
		return p.printStruct(buf, t, depth)
	case *decl.Enum:
		return p.printEnum(buf, t, depth)
	case *decl.EnumCase:
		return p.printEnumCase(buf, t, depth)
	case *decl.Typealias:
		p.line(buf, depth, p.access()+"typealias "+t.Name.ShortName()+" = "+TypeSyntax(t.Existing))
		return nil
	case *decl.Variable:
		return p.printVariable(buf, t, depth)
	case *decl.Function:
		return p.printFunction(buf, t, depth)
	default:
		return fmt.Errorf("unsupported declaration kind: %s", d.Kind())
	}
}

func (p *Printer) printComment(buf *bytes.Buffer, c decl.Comment, depth int) {
	if p.cfg.EmitComments && c.Doc != "" {
		for _, line := range strings.Split(strings.TrimRight(c.Doc, "\n"), "\n") {
			if line == "" {
				p.line(buf, depth, "///")
			} else {
				p.line(buf, depth, "/// "+line)
			}
		}
	}
	if c.Deprecated {
		p.line(buf, depth, "@available(*, deprecated)")
	}
}

func (p *Printer) printStruct(buf *bytes.Buffer, s *decl.Struct, depth int) error {
	header := p.access() + "struct " + s.Name.ShortName()
	if len(s.Conformances) > 0 {
		header += ": " + strings.Join(s.Conformances, ", ")
	}
	p.line(buf, depth, header+" {")
	for i, m := range s.Members {
		if i > 0 {
			if _, ok := decl.Unwrap(m).(*decl.Variable); !ok {
				buf.WriteString(p.eol)
			}
		}
		if err := p.printDecl(buf, m, depth+1); err != nil {
			return err
		}
	}
	p.line(buf, depth, "}")
	return nil
}

func (p *Printer) printEnum(buf *bytes.Buffer, e *decl.Enum, depth int) error {
	if e.Frozen {
		p.line(buf, depth, "@frozen")
	}
	header := p.access() + "enum " + e.Name.ShortName()
	var inherit []string
	if e.RawType != "" {
		inherit = append(inherit, e.RawType)
	}
	inherit = append(inherit, e.Conformances...)
	if len(inherit) > 0 {
		header += ": " + strings.Join(inherit, ", ")
	}
	if len(e.Members) == 0 {
		p.line(buf, depth, header+" {}")
		return nil
	}
	p.line(buf, depth, header+" {")
	for i, m := range e.Members {
		if i > 0 {
			if _, ok := decl.Unwrap(m).(*decl.EnumCase); !ok {
				buf.WriteString(p.eol)
			}
		}
		if err := p.printDecl(buf, m, depth+1); err != nil {
			return err
		}
	}
	p.line(buf, depth, "}")
	return nil
}

func (p *Printer) printEnumCase(buf *bytes.Buffer, c *decl.EnumCase, depth int) error {
	s := "case " + c.Name
	if len(c.Associated) > 0 {
		parts := make([]string, len(c.Associated))
		for i, u := range c.Associated {
			parts[i] = TypeSyntax(u)
		}
		s += "(" + strings.Join(parts, ", ") + ")"
	}
	if c.Raw != nil {
		raw, err := RenderExpr(c.Raw)
		if err != nil {
			return err
		}
		s += " = " + raw
	}
	p.line(buf, depth, s)
	return nil
}

func (p *Printer) printVariable(buf *bytes.Buffer, v *decl.Variable, depth int) error {
	var s string
	s = p.access()
	if v.Static {
		s += "static "
	}
	if v.Binding == decl.BindingLet && len(v.Getter) == 0 {
		s += "let "
	} else {
		s += "var "
	}
	s += v.Name
	if v.Type != nil {
		s += ": " + TypeSyntax(*v.Type)
	}
	if len(v.Getter) > 0 {
		p.line(buf, depth, s+" {")
		if err := p.printStmts(buf, v.Getter, depth+1); err != nil {
			return err
		}
		p.line(buf, depth, "}")
		return nil
	}
	if v.Value != nil {
		val, err := RenderExpr(v.Value)
		if err != nil {
			return err
		}
		s += " = " + val
	}
	p.line(buf, depth, s)
	return nil
}

func (p *Printer) printFunction(buf *bytes.Buffer, f *decl.Function, depth int) error {
	var s string
	s = p.access()
	switch f.Keyword {
	case decl.FuncInitializer:
		s += "init"
	case decl.FuncFailableInitializer:
		s += "init?"
	default:
		s += "func " + f.Name
	}
	params := make([]string, len(f.Parameters))
	for i, param := range f.Parameters {
		var ps string
		switch {
		case param.Name == "" || param.Name == param.Label:
			ps = param.Label
		default:
			ps = param.Label + " " + param.Name
		}
		ps += ": " + TypeSyntax(param.Type)
		if param.Default != nil {
			dv, err := RenderExpr(param.Default)
			if err != nil {
				return err
			}
			ps += " = " + dv
		}
		params[i] = ps
	}
	s += "(" + strings.Join(params, ", ") + ")"
	if f.Throws {
		s += " throws"
	}
	if f.Returns != nil {
		s += " -> " + TypeSyntax(*f.Returns)
	}
	if len(f.Body) == 0 {
		p.line(buf, depth, s+" {}")
		return nil
	}
	p.line(buf, depth, s+" {")
	if err := p.printStmts(buf, f.Body, depth+1); err != nil {
		return err
	}
	p.line(buf, depth, "}")
	return nil
}

func (p *Printer) printStmts(buf *bytes.Buffer, stmts []decl.Stmt, depth int) error {
	for _, s := range stmts {
		if err := p.printStmt(buf, s, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printStmt(buf *bytes.Buffer, s decl.Stmt, depth int) error {
	switch t := s.(type) {
	case *decl.ExprStmt:
		e, err := RenderExpr(t.E)
		if err != nil {
			return err
		}
		p.line(buf, depth, e)
	case *decl.VarStmt:
		kw := "var"
		if t.Binding == decl.BindingLet {
			kw = "let"
		}
		out := kw + " " + t.Name
		if t.Type != nil {
			out += ": " + TypeSyntax(*t.Type)
		}
		if t.Value != nil {
			v, err := RenderExpr(t.Value)
			if err != nil {
				return err
			}
			out += " = " + v
		}
		p.line(buf, depth, out)
	case *decl.AssignStmt:
		lhs, err := RenderExpr(t.Target)
		if err != nil {
			return err
		}
		rhs, err := RenderExpr(t.Value)
		if err != nil {
			return err
		}
		p.line(buf, depth, lhs+" = "+rhs)
	case *decl.IfStmt:
		cond, err := RenderExpr(t.Cond)
		if err != nil {
			return err
		}
		p.line(buf, depth, "if "+cond+" {")
		if err := p.printStmts(buf, t.Then, depth+1); err != nil {
			return err
		}
		if len(t.Else) > 0 {
			p.line(buf, depth, "} else {")
			if err := p.printStmts(buf, t.Else, depth+1); err != nil {
				return err
			}
		}
		p.line(buf, depth, "}")
	case *decl.IfLetStmt:
		v, err := RenderExpr(t.Value)
		if err != nil {
			return err
		}
		p.line(buf, depth, "if let "+t.Name+" = "+v+" {")
		if err := p.printStmts(buf, t.Then, depth+1); err != nil {
			return err
		}
		p.line(buf, depth, "}")
	case *decl.SwitchStmt:
		subj, err := RenderExpr(t.Subject)
		if err != nil {
			return err
		}
		p.line(buf, depth, "switch "+subj+" {")
		for _, c := range t.Cases {
			pats := make([]string, len(c.Patterns))
			for i, pat := range c.Patterns {
				rendered, err := RenderExpr(pat.Match)
				if err != nil {
					return err
				}
				if pat.Binding != "" {
					rendered += "(let " + pat.Binding + ")"
				}
				pats[i] = rendered
			}
			p.line(buf, depth, "case "+strings.Join(pats, ", ")+":")
			if err := p.printStmts(buf, c.Body, depth+1); err != nil {
				return err
			}
		}
		if t.Default != nil {
			p.line(buf, depth, "default:")
			if err := p.printStmts(buf, t.Default, depth+1); err != nil {
				return err
			}
		}
		p.line(buf, depth, "}")
	case *decl.ForInStmt:
		seq, err := RenderExpr(t.Sequence)
		if err != nil {
			return err
		}
		p.line(buf, depth, "for "+t.Pattern+" in "+seq+" {")
		if err := p.printStmts(buf, t.Body, depth+1); err != nil {
			return err
		}
		p.line(buf, depth, "}")
	case *decl.DoCatchStmt:
		p.line(buf, depth, "do {")
		if err := p.printStmts(buf, t.Body, depth+1); err != nil {
			return err
		}
		p.line(buf, depth, "} catch {")
		if err := p.printStmts(buf, t.Catch, depth+1); err != nil {
			return err
		}
		p.line(buf, depth, "}")
	case *decl.ThrowStmt:
		e, err := RenderExpr(t.E)
		if err != nil {
			return err
		}
		p.line(buf, depth, "throw "+e)
	case *decl.ReturnStmt:
		if t.E == nil {
			p.line(buf, depth, "return")
			return nil
		}
		e, err := RenderExpr(t.E)
		if err != nil {
			return err
		}
		p.line(buf, depth, "return "+e)
	default:
		return fmt.Errorf("unsupported statement type %T", s)
	}
	return nil
}

// TypeSyntax renders a TypeUsage in Swift type syntax: the fully qualified
// name with wrappers applied in order, so an optional inside an array reads
// [T?] while an optional array reads [T]?.
func TypeSyntax(u decl.TypeUsage) string {
	s := u.TypeName().FullyQualified()
	for _, w := range u.Wrappers() {
		switch w {
		case decl.WrapArray:
			s = "[" + s + "]"
		case decl.WrapDictionaryValue:
			s = "[Swift.String: " + s + "]"
		case decl.WrapOptional:
			s += "?"
		}
	}
	return s
}

// RenderExpr renders an expression to Swift source text.
func RenderExpr(e decl.Expr) (string, error) {
	switch t := e.(type) {
	case *decl.Literal:
		return renderLiteral(t)
	case *decl.Ident:
		return t.Name, nil
	case *decl.Member:
		if t.Base == nil {
			return "." + t.Name, nil
		}
		base, err := RenderExpr(t.Base)
		if err != nil {
			return "", err
		}
		return base + "." + t.Name, nil
	case *decl.Call:
		fn, err := RenderExpr(t.Fn)
		if err != nil {
			return "", err
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			v, err := RenderExpr(a.Value)
			if err != nil {
				return "", err
			}
			if a.Label != "" {
				args[i] = a.Label + ": " + v
			} else {
				args[i] = v
			}
		}
		return fn + "(" + strings.Join(args, ", ") + ")", nil
	case *decl.Try:
		inner, err := RenderExpr(t.Wrapped)
		if err != nil {
			return "", err
		}
		if t.Optional {
			return "try? " + inner, nil
		}
		return "try " + inner, nil
	case *decl.Binary:
		lhs, err := RenderExpr(t.LHS)
		if err != nil {
			return "", err
		}
		rhs, err := RenderExpr(t.RHS)
		if err != nil {
			return "", err
		}
		return lhs + " " + t.Op + " " + rhs, nil
	case *decl.OptionalChain:
		base, err := RenderExpr(t.Base)
		if err != nil {
			return "", err
		}
		return base + "?", nil
	case *decl.TypeExpr:
		return TypeSyntax(t.Usage), nil
	default:
		return "", fmt.Errorf("unsupported expression type %T", e)
	}
}

func renderLiteral(l *decl.Literal) (string, error) {
	switch l.LitKind {
	case decl.LiteralString:
		return strconv.Quote(l.StringValue), nil
	case decl.LiteralInt:
		return strconv.FormatInt(l.IntValue, 10), nil
	case decl.LiteralDouble:
		return strconv.FormatFloat(l.DoubleValue, 'g', -1, 64), nil
	case decl.LiteralBool:
		return strconv.FormatBool(l.BoolValue), nil
	case decl.LiteralNil:
		return "nil", nil
	case decl.LiteralArray:
		parts := make([]string, len(l.Elements))
		for i, el := range l.Elements {
			v, err := RenderExpr(el)
			if err != nil {
				return "", err
			}
			parts[i] = v
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("unsupported literal kind %d", l.LitKind)
	}
}
