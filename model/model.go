// Package model holds a declarative description of a Java source file
// that can be decoded from YAML or JSON and turned into a rendered
// compilation unit. It trades the full expressiveness of the builder
// API for something that fits in a config file: bodies are lists of
// statements, annotation values are literal Java expressions.
package model

// Visibility names the access level of a declaration. The zero value
// means package-private, which prints no keyword.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

// ClassKind selects the declaration keyword. The zero value means class.
type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// FileModel describes one compilation unit.
type FileModel struct {
	Package        string              `json:"package" yaml:"package"`
	Comment        string              `json:"comment,omitempty" yaml:"comment,omitempty"`
	StaticImports  []StaticImportModel `json:"staticImports,omitempty" yaml:"staticImports,omitempty"`
	Indent         string              `json:"indent,omitempty" yaml:"indent,omitempty"`
	ImportJavaLang bool                `json:"importJavaLang,omitempty" yaml:"importJavaLang,omitempty"`
	Type           ClassModel          `json:"type" yaml:"type"`
}

type StaticImportModel struct {
	Class   string   `json:"class" yaml:"class"`
	Members []string `json:"members" yaml:"members"`
}

// ClassModel describes a type declaration. Types are written the way
// they appear in source ("Map<String, List<Integer>>", "int[]"); simple
// names that match nothing in scope are treated as java.lang types when
// the standard library knows them, and as same-file references
// otherwise.
type ClassModel struct {
	Name           string               `json:"name" yaml:"name"`
	Kind           ClassKind            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic       bool                 `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal        bool                 `json:"final,omitempty" yaml:"final,omitempty"`
	IsAbstract     bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Javadoc        string               `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations    []AnnotationModel    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	SuperClass     string               `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	Interfaces     []string             `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	EnumConstants  []EnumConstantModel  `json:"enumConstants,omitempty" yaml:"enumConstants,omitempty"`
	Fields         []FieldModel         `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods        []MethodModel        `json:"methods,omitempty" yaml:"methods,omitempty"`
	Initializers   []InitializerModel   `json:"initializers,omitempty" yaml:"initializers,omitempty"`
	Classes        []ClassModel         `json:"classes,omitempty" yaml:"classes,omitempty"`
}

type EnumConstantModel struct {
	Name      string        `json:"name" yaml:"name"`
	Arguments []string      `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Methods   []MethodModel `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type FieldModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        string            `json:"type" yaml:"type"`
	Visibility  Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic    bool              `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal     bool              `json:"final,omitempty" yaml:"final,omitempty"`
	IsVolatile  bool              `json:"volatile,omitempty" yaml:"volatile,omitempty"`
	IsTransient bool              `json:"transient,omitempty" yaml:"transient,omitempty"`
	Javadoc     string            `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Value       string            `json:"value,omitempty" yaml:"value,omitempty"`
}

// MethodModel describes a method. A constructor sets Constructor and
// leaves Name and ReturnType empty. Body entries are single statements
// without the trailing semicolon.
type MethodModel struct {
	Name           string               `json:"name,omitempty" yaml:"name,omitempty"`
	Constructor    bool                 `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	ReturnType     string               `json:"returns,omitempty" yaml:"returns,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic       bool                 `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal        bool                 `json:"final,omitempty" yaml:"final,omitempty"`
	IsAbstract     bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsSynchronized bool                 `json:"synchronized,omitempty" yaml:"synchronized,omitempty"`
	IsNative       bool                 `json:"native,omitempty" yaml:"native,omitempty"`
	IsDefault      bool                 `json:"default,omitempty" yaml:"default,omitempty"`
	IsVarargs      bool                 `json:"varargs,omitempty" yaml:"varargs,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	Parameters     []ParameterModel     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Exceptions     []string             `json:"throws,omitempty" yaml:"throws,omitempty"`
	Javadoc        string               `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
	Annotations    []AnnotationModel    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Body           []string             `json:"body,omitempty" yaml:"body,omitempty"`
}

type ParameterModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        string            `json:"type" yaml:"type"`
	IsFinal     bool              `json:"final,omitempty" yaml:"final,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type TypeParameterModel struct {
	Name   string   `json:"name" yaml:"name"`
	Bounds []string `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// AnnotationModel describes one annotation use. Values are Java
// expressions written verbatim, so string members need their quotes.
type AnnotationModel struct {
	Type   string                 `json:"type" yaml:"type"`
	Values []AnnotationValueModel `json:"values,omitempty" yaml:"values,omitempty"`
}

type AnnotationValueModel struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// InitializerModel describes a static or instance initializer block.
type InitializerModel struct {
	IsStatic bool     `json:"static,omitempty" yaml:"static,omitempty"`
	Body     []string `json:"body" yaml:"body"`
}
