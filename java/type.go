package java

import (
	"strings"

	"github.com/pkg/errors"
)

type typeKind int

const (
	kindPrimitive typeKind = iota
	kindClass
	kindParameterized
	kindArray
	kindTypeVariable
	kindWildcard
)

// TypeName identifies a Java type independent of rendering: a primitive,
// void, a (possibly nested) class or interface, a generic instantiation,
// an array, a type variable or a wildcard. Values are immutable and safe
// to share between renders. Two TypeNames denote the same type iff their
// canonical forms (String) are equal.
type TypeName struct {
	kind    typeKind
	keyword string // primitive or void keyword

	pkg   string   // class: package name, empty for the default package
	names []string // class: simple name chain, outermost first

	raw      *TypeName  // parameterized: the raw class type
	typeArgs []TypeName // parameterized: at least one argument

	component *TypeName // array: component type

	name   string     // type variable
	bounds []TypeName // type variable and "? extends" wildcard bounds

	lowerBounds []TypeName // "? super" wildcard bound
}

// Primitive types and void.
var (
	Void    = TypeName{kind: kindPrimitive, keyword: "void"}
	Boolean = TypeName{kind: kindPrimitive, keyword: "boolean"}
	Byte    = TypeName{kind: kindPrimitive, keyword: "byte"}
	Short   = TypeName{kind: kindPrimitive, keyword: "short"}
	Int     = TypeName{kind: kindPrimitive, keyword: "int"}
	Long    = TypeName{kind: kindPrimitive, keyword: "long"}
	Char    = TypeName{kind: kindPrimitive, keyword: "char"}
	Float   = TypeName{kind: kindPrimitive, keyword: "float"}
	Double  = TypeName{kind: kindPrimitive, keyword: "double"}
)

// Common java.lang types.
var (
	ObjectType = ClassType("java.lang", "Object")
	StringType = ClassType("java.lang", "String")
)

// ClassType returns the symbol for a class or interface. The name chain
// lists the top-level simple name first, then each nested name in turn.
func ClassType(pkg string, name string, nested ...string) TypeName {
	names := append([]string{name}, nested...)
	return TypeName{kind: kindClass, pkg: pkg, names: names}
}

// ArrayOf returns the array type with the given component type.
func ArrayOf(component TypeName) TypeName {
	c := component
	return TypeName{kind: kindArray, component: &c}
}

// ParameterizedType instantiates a raw class type with type arguments.
func ParameterizedType(raw TypeName, args ...TypeName) (TypeName, error) {
	if raw.kind != kindClass {
		return TypeName{}, errors.Errorf("cannot parameterize %s", raw.String())
	}
	if len(args) == 0 {
		return TypeName{}, errors.Errorf("no type arguments for %s", raw.String())
	}
	r := raw
	return TypeName{kind: kindParameterized, raw: &r, typeArgs: args}, nil
}

// TypeVariable returns the type variable with the given name. Bounds are
// only printed where the variable is declared, not where it is used.
func TypeVariable(name string, bounds ...TypeName) TypeName {
	return TypeName{kind: kindTypeVariable, name: name, bounds: bounds}
}

// WildcardExtends returns "? extends bound". The unbounded wildcard is
// WildcardExtends(ObjectType), which renders as a plain "?".
func WildcardExtends(bound TypeName) TypeName {
	return TypeName{kind: kindWildcard, bounds: []TypeName{bound}}
}

// WildcardSuper returns "? super bound".
func WildcardSuper(bound TypeName) TypeName {
	return TypeName{
		kind:        kindWildcard,
		bounds:      []TypeName{ObjectType},
		lowerBounds: []TypeName{bound},
	}
}

// BestGuess derives a class symbol from a fully qualified or simple name,
// assuming packages are lower case and classes start with an upper-case
// letter: "com.example.util.Map.Entry" splits into package
// "com.example.util" and name chain ["Map", "Entry"].
func BestGuess(qualified string) (TypeName, error) {
	parts := strings.Split(qualified, ".")
	p := 0
	for p < len(parts) && isLowerStart(parts[p]) {
		p++
	}
	if p == len(parts) {
		return TypeName{}, errors.Errorf("no class name in %q", qualified)
	}
	for _, part := range parts[p:] {
		if !isUpperStart(part) {
			return TypeName{}, errors.Errorf("couldn't make a guess for %q", qualified)
		}
	}
	return TypeName{kind: kindClass, pkg: strings.Join(parts[:p], "."), names: parts[p:]}, nil
}

func isLowerStart(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

func isUpperStart(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// IsPrimitive reports whether t is one of the eight primitive types.
// Void is not a primitive.
func (t TypeName) IsPrimitive() bool {
	return t.kind == kindPrimitive && t.keyword != "void" && t.keyword != ""
}

// IsVoid reports whether t is the void pseudo-type.
func (t TypeName) IsVoid() bool {
	return t.kind == kindPrimitive && t.keyword == "void"
}

// IsArray reports whether t is an array type.
func (t TypeName) IsArray() bool {
	return t.kind == kindArray
}

func (t TypeName) isClass() bool {
	return t.kind == kindClass
}

// IsZero reports whether t is the zero TypeName, which identifies no type.
func (t TypeName) IsZero() bool {
	return t.kind == kindPrimitive && t.keyword == ""
}

// PackageName returns the package of a class or parameterized type, and
// the empty string for every other kind.
func (t TypeName) PackageName() string {
	switch t.kind {
	case kindClass:
		return t.pkg
	case kindParameterized:
		return t.raw.pkg
	}
	return ""
}

// SimpleName returns the innermost simple name of a class type, the
// variable name of a type variable, and the empty string otherwise.
func (t TypeName) SimpleName() string {
	switch t.kind {
	case kindClass:
		return t.names[len(t.names)-1]
	case kindParameterized:
		return t.raw.SimpleName()
	case kindTypeVariable:
		return t.name
	}
	return ""
}

// simpleNames returns the nesting chain of a class type, outermost first.
func (t TypeName) simpleNames() []string {
	return t.names
}

// topLevel returns the outermost class enclosing t.
func (t TypeName) topLevel() TypeName {
	return TypeName{kind: kindClass, pkg: t.pkg, names: t.names[:1]}
}

// enclosing returns the class that directly encloses t, if any.
func (t TypeName) enclosing() (TypeName, bool) {
	if t.kind != kindClass || len(t.names) == 1 {
		return TypeName{}, false
	}
	return TypeName{kind: kindClass, pkg: t.pkg, names: t.names[:len(t.names)-1]}, true
}

// Nested returns the class nested inside t with the given simple name.
func (t TypeName) Nested(name string) (TypeName, error) {
	if t.kind != kindClass {
		return TypeName{}, errors.Errorf("%s cannot enclose a class", t.String())
	}
	names := append(append([]string{}, t.names...), name)
	return TypeName{kind: kindClass, pkg: t.pkg, names: names}, nil
}

// Component returns the component type of an array.
func (t TypeName) Component() (TypeName, bool) {
	if t.kind != kindArray {
		return TypeName{}, false
	}
	return *t.component, true
}

// Equal reports whether t and other identify the same type.
func (t TypeName) Equal(other TypeName) bool {
	return t.String() == other.String()
}

// String returns the canonical form of t, with every class reference
// fully qualified.
func (t TypeName) String() string {
	var sb strings.Builder
	t.writeCanonical(&sb)
	return sb.String()
}

func (t TypeName) writeCanonical(sb *strings.Builder) {
	switch t.kind {
	case kindPrimitive:
		sb.WriteString(t.keyword)
	case kindClass:
		if t.pkg != "" {
			sb.WriteString(t.pkg)
			sb.WriteString(".")
		}
		sb.WriteString(strings.Join(t.names, "."))
	case kindParameterized:
		t.raw.writeCanonical(sb)
		sb.WriteString("<")
		for i, arg := range t.typeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			arg.writeCanonical(sb)
		}
		sb.WriteString(">")
	case kindArray:
		t.component.writeCanonical(sb)
		sb.WriteString("[]")
	case kindTypeVariable:
		sb.WriteString(t.name)
	case kindWildcard:
		sb.WriteString("?")
		switch {
		case len(t.lowerBounds) == 1:
			sb.WriteString(" super ")
			t.lowerBounds[0].writeCanonical(sb)
		case len(t.bounds) == 1 && !t.bounds[0].Equal(ObjectType):
			sb.WriteString(" extends ")
			t.bounds[0].writeCanonical(sb)
		}
	}
}
