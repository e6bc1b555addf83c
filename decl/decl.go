// Package decl defines a target-language-agnostic model of declarations:
// enough structure to represent generated types and their serialization logic
// before printing, without committing to concrete syntax.
//
// Declarations own their children outright. A recursive schema (a Pet with an
// optional Pet parent) is represented as a reference by TypeName, never by
// embedding one declaration inside another, so the tree has no cycles and no
// back-references.
package decl

// Kind identifies the category of a declaration.
type Kind int

const (
	KindStruct    Kind = iota // Object type with stored properties
	KindEnum                  // Enumeration, optionally raw-representable
	KindEnumCase              // Single case within an enum
	KindTypealias             // Name bound to an existing type usage
	KindVariable              // Stored or computed property
	KindFunction              // Function, method, or initializer
	KindCommented             // Declaration wrapped with a comment
)

// String returns the string representation of the declaration kind.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindEnumCase:
		return "EnumCase"
	case KindTypealias:
		return "Typealias"
	case KindVariable:
		return "Variable"
	case KindFunction:
		return "Function"
	case KindCommented:
		return "Commented"
	default:
		return "Unknown"
	}
}

// Decl is the base interface for all declarations.
type Decl interface {
	// Kind returns the declaration kind for type switching.
	Kind() Kind

	// Ensure only types in this package can implement Decl.
	sealed()
}

// Struct is an object type with stored properties and member declarations.
type Struct struct {
	// Name is the declared type's hierarchical name.
	Name TypeName

	// Conformances lists protocol conformances in declaration order.
	Conformances []string

	// Members contains nested declarations: stored properties, nested types,
	// the memberwise initializer, and codable declarations.
	Members []Decl
}

// Kind returns KindStruct.
func (d *Struct) Kind() Kind { return KindStruct }

func (*Struct) sealed() {}

// Enum is an enumeration. When RawType is empty the enum carries associated
// values instead of raw values (the oneOf case).
type Enum struct {
	// Name is the declared type's hierarchical name.
	Name TypeName

	// Frozen marks the enum as closed: no cases will ever be added.
	Frozen bool

	// RawType is the raw storage type's fully-qualified name ("Swift.String",
	// "Swift.Int"), or empty for enums with associated values.
	RawType string

	// Conformances lists protocol conformances in declaration order.
	Conformances []string

	// Members contains the cases followed by any member functions.
	Members []Decl
}

// Kind returns KindEnum.
func (d *Enum) Kind() Kind { return KindEnum }

func (*Enum) sealed() {}

// EnumCase is a single case of an enum.
type EnumCase struct {
	// Name is the case identifier, already sanitized for the target language.
	Name string

	// Raw is the explicit raw value literal, or nil when the case name itself
	// is the raw value (or the enum has no raw type).
	Raw Expr

	// Associated lists associated value types, empty for plain cases.
	Associated []TypeUsage
}

// Kind returns KindEnumCase.
func (d *EnumCase) Kind() Kind { return KindEnumCase }

func (*EnumCase) sealed() {}

// Typealias binds a name to an existing type usage.
type Typealias struct {
	// Name is the declared alias name.
	Name TypeName

	// Existing is the aliased type usage.
	Existing TypeUsage
}

// Kind returns KindTypealias.
func (d *Typealias) Kind() Kind { return KindTypealias }

func (*Typealias) sealed() {}

// BindingKind selects how a variable is bound.
type BindingKind int

const (
	BindingVar BindingKind = iota // Mutable stored property
	BindingLet                    // Immutable stored property
)

// Variable is a stored or computed property.
type Variable struct {
	// Binding selects var vs let. Ignored when Getter is non-empty.
	Binding BindingKind

	// Name is the property identifier, already sanitized.
	Name string

	// Type is the property's type, or nil when inferred from Value.
	Type *TypeUsage

	// Value is the initializing expression, or nil.
	Value Expr

	// Getter, when non-empty, makes this a computed property with the given
	// body.
	Getter []Stmt

	// Static marks a type-level property.
	Static bool
}

// Kind returns KindVariable.
func (d *Variable) Kind() Kind { return KindVariable }

func (*Variable) sealed() {}

// FunctionKeyword selects the kind of callable being declared.
type FunctionKeyword int

const (
	FuncPlain               FunctionKeyword = iota // func name(...)
	FuncInitializer                                // init(...)
	FuncFailableInitializer                        // init?(...)
)

// Parameter is one parameter of a function or initializer.
type Parameter struct {
	// Label is the external argument label; "_" suppresses it.
	Label string

	// Name is the internal parameter name. Empty means same as Label.
	Name string

	// Type is the parameter type.
	Type TypeUsage

	// Default is the default value expression, or nil.
	Default Expr
}

// Function is a function, method, or initializer declaration.
type Function struct {
	// Keyword selects between func and the initializer forms.
	Keyword FunctionKeyword

	// Name is the function name. Ignored for initializers.
	Name string

	// Parameters in declaration order.
	Parameters []Parameter

	// Throws marks the function as a potentially-failing operation.
	Throws bool

	// Returns is the return type, or nil for none.
	Returns *TypeUsage

	// Body is the statement list forming the function body.
	Body []Stmt
}

// Kind returns KindFunction.
func (d *Function) Kind() Kind { return KindFunction }

func (*Function) sealed() {}

// Comment attaches documentation to a declaration.
type Comment struct {
	// Doc is the documentation text; lines are rendered as doc comments.
	Doc string

	// Deprecated marks the declaration as deprecated.
	Deprecated bool
}

// Commented wraps a declaration with a comment.
type Commented struct {
	Comment Comment
	Wrapped Decl
}

// Kind returns KindCommented.
func (d *Commented) Kind() Kind { return KindCommented }

func (*Commented) sealed() {}

// WithComment wraps d in a Commented declaration when doc is non-empty or the
// declaration is deprecated; otherwise it returns d unchanged.
func WithComment(d Decl, doc string, deprecated bool) Decl {
	if doc == "" && !deprecated {
		return d
	}
	return &Commented{Comment: Comment{Doc: doc, Deprecated: deprecated}, Wrapped: d}
}

// Unwrap returns the declaration inside any Commented wrappers.
func Unwrap(d Decl) Decl {
	for {
		c, ok := d.(*Commented)
		if !ok {
			return d
		}
		d = c.Wrapped
	}
}
