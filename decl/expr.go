package decl

// Expr is the base interface for expressions appearing inside generated
// function bodies and default values. The set is deliberately small: just
// enough to express decoder and encoder logic.
type Expr interface {
	exprSealed()
}

// LiteralKind identifies the category of a literal expression.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralDouble
	LiteralBool
	LiteralNil
	LiteralArray
)

// Literal is a literal expression.
type Literal struct {
	LitKind LiteralKind

	// StringValue is set for LiteralString.
	StringValue string

	// IntValue is set for LiteralInt.
	IntValue int64

	// DoubleValue is set for LiteralDouble.
	DoubleValue float64

	// BoolValue is set for LiteralBool.
	BoolValue bool

	// Elements is set for LiteralArray.
	Elements []Expr
}

func (*Literal) exprSealed() {}

// StringLit returns a string literal expression.
func StringLit(v string) *Literal { return &Literal{LitKind: LiteralString, StringValue: v} }

// IntLit returns an integer literal expression.
func IntLit(v int64) *Literal { return &Literal{LitKind: LiteralInt, IntValue: v} }

// DoubleLit returns a floating-point literal expression.
func DoubleLit(v float64) *Literal { return &Literal{LitKind: LiteralDouble, DoubleValue: v} }

// BoolLit returns a boolean literal expression.
func BoolLit(v bool) *Literal { return &Literal{LitKind: LiteralBool, BoolValue: v} }

// NilLit returns a nil literal expression.
func NilLit() *Literal { return &Literal{LitKind: LiteralNil} }

// ArrayLit returns an array literal expression.
func ArrayLit(elements ...Expr) *Literal {
	return &Literal{LitKind: LiteralArray, Elements: elements}
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

func (*Ident) exprSealed() {}

// Identifier returns an identifier expression.
func Identifier(name string) *Ident { return &Ident{Name: name} }

// Member is a dot-access expression. A nil Base renders as a leading dot,
// used for enum case references (.prod) and implicit member lookups.
type Member struct {
	Base Expr
	Name string
}

func (*Member) exprSealed() {}

// Dot returns a member access on base; pass nil for a leading-dot reference.
func Dot(base Expr, name string) *Member { return &Member{Base: base, Name: name} }

// Arg is one labeled argument of a call.
type Arg struct {
	// Label is the argument label; empty for unlabeled arguments.
	Label string

	Value Expr
}

// Call is a function or initializer call.
type Call struct {
	Fn   Expr
	Args []Arg
}

func (*Call) exprSealed() {}

// CallExpr returns a call expression.
func CallExpr(fn Expr, args ...Arg) *Call { return &Call{Fn: fn, Args: args} }

// Try marks a throwing expression. Optional renders as try? (converting
// failure to nil) instead of propagating.
type Try struct {
	Wrapped  Expr
	Optional bool
}

func (*Try) exprSealed() {}

// TryExpr wraps an expression in a propagating try.
func TryExpr(wrapped Expr) *Try { return &Try{Wrapped: wrapped} }

// OptionalTryExpr wraps an expression in try?, yielding nil on failure.
func OptionalTryExpr(wrapped Expr) *Try { return &Try{Wrapped: wrapped, Optional: true} }

// Binary is an infix operator expression.
type Binary struct {
	Op  string // e.g. "==", "??"
	LHS Expr
	RHS Expr
}

func (*Binary) exprSealed() {}

// BinaryExpr returns an infix operator expression.
func BinaryExpr(op string, lhs, rhs Expr) *Binary { return &Binary{Op: op, LHS: lhs, RHS: rhs} }

// OptionalChain marks its base as optionally chained (base?).
type OptionalChain struct {
	Base Expr
}

func (*OptionalChain) exprSealed() {}

// Chained returns an optional-chaining expression.
func Chained(base Expr) *OptionalChain { return &OptionalChain{Base: base} }

// TypeExpr references a type in expression position (e.g. as a metatype
// argument to decode calls).
type TypeExpr struct {
	Usage TypeUsage
}

func (*TypeExpr) exprSealed() {}

// TypeRef returns a type-reference expression for the given usage.
func TypeRef(u TypeUsage) *TypeExpr { return &TypeExpr{Usage: u} }

// Stmt is the base interface for statements in generated function bodies.
type Stmt interface {
	stmtSealed()
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	E Expr
}

func (*ExprStmt) stmtSealed() {}

// Eval returns an expression statement.
func Eval(e Expr) *ExprStmt { return &ExprStmt{E: e} }

// VarStmt introduces a local binding.
type VarStmt struct {
	// Binding selects var vs let.
	Binding BindingKind

	Name string

	// Type is the declared type, or nil when inferred.
	Type *TypeUsage

	// Value is the initializing expression, or nil.
	Value Expr
}

func (*VarStmt) stmtSealed() {}

// AssignStmt assigns Value to Target.
type AssignStmt struct {
	Target Expr
	Value  Expr
}

func (*AssignStmt) stmtSealed() {}

// Assign returns an assignment statement.
func Assign(target, value Expr) *AssignStmt { return &AssignStmt{Target: target, Value: value} }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (*IfStmt) stmtSealed() {}

// IfLetStmt unwraps an optional into a new binding for the body.
type IfLetStmt struct {
	Name  string
	Value Expr
	Then  []Stmt
}

func (*IfLetStmt) stmtSealed() {}

// CasePattern is one pattern of a switch case: a matched expression plus an
// optional value binding (.name(let binding)).
type CasePattern struct {
	Match Expr

	// Binding, when non-empty, binds the case's associated value.
	Binding string
}

// SwitchCase is one case of a switch statement. Multiple patterns share the
// body, which is how a discriminator case matches several raw names.
type SwitchCase struct {
	Patterns []CasePattern
	Body     []Stmt
}

// SwitchStmt is an exhaustive or defaulted switch.
type SwitchStmt struct {
	Subject Expr
	Cases   []SwitchCase

	// Default is the default branch; nil means the switch is exhaustive.
	Default []Stmt
}

func (*SwitchStmt) stmtSealed() {}

// ForInStmt iterates a sequence.
type ForInStmt struct {
	// Pattern is the loop binding, e.g. "key" or "(key, value)".
	Pattern  string
	Sequence Expr
	Body     []Stmt
}

func (*ForInStmt) stmtSealed() {}

// DoCatchStmt runs Body and routes thrown errors to Catch with the implicit
// "error" binding.
type DoCatchStmt struct {
	Body  []Stmt
	Catch []Stmt
}

func (*DoCatchStmt) stmtSealed() {}

// ThrowStmt throws an error expression.
type ThrowStmt struct {
	E Expr
}

func (*ThrowStmt) stmtSealed() {}

// ReturnStmt returns from the enclosing function; E may be nil.
type ReturnStmt struct {
	E Expr
}

func (*ReturnStmt) stmtSealed() {}
