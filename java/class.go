package java

import "github.com/pkg/errors"

// TypeSpecKind distinguishes the declaration keyword of a TypeSpec.
type TypeSpecKind string

const (
	ClassKind          TypeSpecKind = "class"
	InterfaceKind      TypeSpecKind = "interface"
	EnumKind           TypeSpecKind = "enum"
	AnnotationTypeKind TypeSpecKind = "@interface"
)

// Members of interfaces and annotation types carry implicit modifiers
// that are not printed; enums and interfaces are implicitly static as
// nested members.
func (k TypeSpecKind) implicitFieldModifiers() []Modifier {
	switch k {
	case InterfaceKind, AnnotationTypeKind:
		return []Modifier{Public, Static, Final}
	}
	return nil
}

func (k TypeSpecKind) implicitMethodModifiers() []Modifier {
	switch k {
	case InterfaceKind, AnnotationTypeKind:
		return []Modifier{Public, Abstract}
	}
	return nil
}

func (k TypeSpecKind) implicitTypeModifiers() []Modifier {
	switch k {
	case InterfaceKind, AnnotationTypeKind:
		return []Modifier{Public, Static}
	}
	return nil
}

func (k TypeSpecKind) asMemberModifiers() []Modifier {
	switch k {
	case InterfaceKind, EnumKind, AnnotationTypeKind:
		return []Modifier{Static}
	}
	return nil
}

// TypeSpec describes one type declaration: a class, interface, enum or
// annotation type, or an anonymous class when the name is empty. The
// tree it roots is immutable; builders validate on Build so a spec that
// exists is structurally sound.
type TypeSpec struct {
	kind          TypeSpecKind
	name          string // empty for anonymous classes
	anonymousArgs CodeBlock
	anonymous     bool
	javadoc       CodeBlock
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []TypeName
	superclass    TypeName
	interfaces    []TypeName
	enumConstants []enumConstant
	fields        []*FieldSpec
	staticBlock   CodeBlock
	initializer   CodeBlock
	methods       []*MethodSpec
	types         []*TypeSpec
}

type enumConstant struct {
	name string
	body *TypeSpec // anonymous class carrying arguments and members
}

// Name returns the declared type name, empty for anonymous classes.
func (t *TypeSpec) Name() string { return t.name }

// Kind returns the declaration kind.
func (t *TypeSpec) Kind() TypeSpecKind { return t.kind }

// HasModifier reports whether the type carries the given modifier.
func (t *TypeSpec) HasModifier(m Modifier) bool { return hasModifier(t.modifiers, m) }

// nestedSimpleNames reports the simple names of directly nested types,
// used during symbol shortening to resolve scope-local references.
func (t *TypeSpec) nestedSimpleNames() map[string]bool {
	names := make(map[string]bool, len(t.types))
	for _, nested := range t.types {
		names[nested.name] = true
	}
	return names
}

// headerOnly copies the spec without members, pushed on the scope stack
// while the declaration line itself renders: the type's own name is
// already resolvable there but its nested types are not yet in scope.
func (t *TypeSpec) headerOnly() *TypeSpec {
	return &TypeSpec{kind: t.kind, name: t.name}
}

type TypeSpecBuilder struct {
	spec TypeSpec
	err  error
}

func NewClass(name string) *TypeSpecBuilder {
	return &TypeSpecBuilder{spec: TypeSpec{kind: ClassKind, name: name, superclass: ObjectType}}
}

func NewInterface(name string) *TypeSpecBuilder {
	return &TypeSpecBuilder{spec: TypeSpec{kind: InterfaceKind, name: name}}
}

func NewEnum(name string) *TypeSpecBuilder {
	return &TypeSpecBuilder{spec: TypeSpec{kind: EnumKind, name: name}}
}

func NewAnnotationType(name string) *TypeSpecBuilder {
	return &TypeSpecBuilder{spec: TypeSpec{kind: AnnotationTypeKind, name: name}}
}

// NewAnonymousClass starts an anonymous class; the format string renders
// as the constructor arguments, e.g. NewAnonymousClass("$S", "name").
func NewAnonymousClass(format string, args ...any) *TypeSpecBuilder {
	b := &TypeSpecBuilder{spec: TypeSpec{
		kind:       ClassKind,
		anonymous:  true,
		superclass: ObjectType,
	}}
	code, err := Code(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.spec.anonymousArgs = code
	return b
}

func (b *TypeSpecBuilder) AddJavadoc(format string, args ...any) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	doc, err := NewCodeBlock().AddCode(b.spec.javadoc).Add(format, args...).Build()
	if err != nil {
		b.err = err
		return b
	}
	b.spec.javadoc = doc
	return b
}

func (b *TypeSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *TypeSpecBuilder {
	b.spec.annotations = append(b.spec.annotations, annotation)
	return b
}

func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	b.spec.modifiers = append(b.spec.modifiers, modifiers...)
	return b
}

func (b *TypeSpecBuilder) AddTypeVariable(typeVariable TypeName) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if typeVariable.kind != kindTypeVariable {
		b.err = errors.Errorf("not a type variable: %s", typeVariable.String())
		return b
	}
	b.spec.typeVariables = append(b.spec.typeVariables, typeVariable)
	return b
}

// Superclass sets the extends clause. Only classes can have one, and
// only one.
func (b *TypeSpecBuilder) Superclass(superclass TypeName) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.kind != ClassKind {
		b.err = errors.Errorf("only classes have a superclass, not a %s", b.spec.kind)
		return b
	}
	if !b.spec.superclass.Equal(ObjectType) {
		b.err = errors.Errorf("superclass already set to %s", b.spec.superclass.String())
		return b
	}
	if superclass.IsPrimitive() || superclass.IsVoid() {
		b.err = errors.Errorf("superclass may not be %s", superclass.String())
		return b
	}
	b.spec.superclass = superclass
	return b
}

func (b *TypeSpecBuilder) AddSuperinterface(iface TypeName) *TypeSpecBuilder {
	b.spec.interfaces = append(b.spec.interfaces, iface)
	return b
}

// AddEnumConstant adds a plain enum constant.
func (b *TypeSpecBuilder) AddEnumConstant(name string) *TypeSpecBuilder {
	return b.AddEnumConstantWithBody(name, NewAnonymousClass(""))
}

// AddEnumConstantWithBody adds an enum constant whose constructor
// arguments and class body come from an anonymous class builder.
func (b *TypeSpecBuilder) AddEnumConstantWithBody(name string, body *TypeSpecBuilder) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.kind != EnumKind {
		b.err = errors.Errorf("%s %s cannot have enum constants", b.spec.kind, b.spec.name)
		return b
	}
	if !isValidIdentifier(name) {
		b.err = errors.Errorf("not a valid enum constant: %q", name)
		return b
	}
	spec, err := body.Build()
	if err != nil {
		b.err = errors.WithMessagef(err, "enum constant %s", name)
		return b
	}
	if !spec.anonymous {
		b.err = errors.Errorf("enum constant %s requires an anonymous class body", name)
		return b
	}
	for _, constant := range b.spec.enumConstants {
		if constant.name == name {
			b.err = errors.Errorf("duplicate enum constant %s", name)
			return b
		}
	}
	b.spec.enumConstants = append(b.spec.enumConstants, enumConstant{name: name, body: spec})
	return b
}

func (b *TypeSpecBuilder) AddField(field *FieldSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if implicit := b.spec.kind.implicitFieldModifiers(); implicit != nil {
		// Interface fields may state public, static and final but nothing else.
		if err := checkModifiers(field.modifiers, implicit...); err != nil {
			b.err = errors.WithMessagef(err, "%s %s field %s", b.spec.kind, b.spec.name, field.name)
			return b
		}
	}
	b.spec.fields = append(b.spec.fields, field)
	return b
}

// AddStaticBlock appends code to the type's static initializer.
func (b *TypeSpecBuilder) AddStaticBlock(code CodeBlock) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	block, err := NewCodeBlock().
		AddCode(b.spec.staticBlock).
		BeginControlFlow("static").AddCode(code).EndControlFlow().
		Build()
	if err != nil {
		b.err = err
		return b
	}
	b.spec.staticBlock = block
	return b
}

// AddInitializerBlock appends code to the type's instance initializer.
func (b *TypeSpecBuilder) AddInitializerBlock(code CodeBlock) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.kind != ClassKind && b.spec.kind != EnumKind {
		b.err = errors.Errorf("%s %s cannot have an initializer block", b.spec.kind, b.spec.name)
		return b
	}
	block, err := NewCodeBlock().
		AddCode(b.spec.initializer).
		Add("{\n").Indent().AddCode(code).Unindent().Add("}\n").
		Build()
	if err != nil {
		b.err = err
		return b
	}
	b.spec.initializer = block
	return b
}

func (b *TypeSpecBuilder) AddMethod(method *MethodSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	switch b.spec.kind {
	case ClassKind:
		if method.HasModifier(Abstract) && !hasModifier(b.spec.modifiers, Abstract) && !b.spec.anonymous {
			b.err = errors.Errorf("non-abstract class %s cannot declare abstract method %s",
				b.spec.name, method.name)
			return b
		}
	case AnnotationTypeKind:
		if len(method.parameters) > 0 {
			b.err = errors.Errorf("annotation type method %s cannot have parameters", method.name)
			return b
		}
	}
	if !method.defaultValue.IsEmpty() && b.spec.kind != AnnotationTypeKind {
		b.err = errors.Errorf("only annotation type methods have default values, not %s", method.name)
		return b
	}
	b.spec.methods = append(b.spec.methods, method)
	return b
}

func (b *TypeSpecBuilder) AddType(nested *TypeSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if nested.anonymous {
		b.err = errors.New("anonymous classes cannot be nested type members")
		return b
	}
	b.spec.types = append(b.spec.types, nested)
	return b
}

func (b *TypeSpecBuilder) Build() (*TypeSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	spec := b.spec
	if spec.anonymous {
		if len(spec.typeVariables) > 0 || len(spec.modifiers) > 0 {
			return nil, errors.New("anonymous classes have no modifiers or type variables")
		}
	} else if !isValidIdentifier(spec.name) {
		return nil, errors.Errorf("not a valid type name: %q", spec.name)
	}
	if err := checkModifiers(spec.modifiers,
		Public, Protected, Private, Static, Final, Abstract, Strictfp); err != nil {
		return nil, errors.WithMessagef(err, "%s %s", spec.kind, spec.name)
	}
	if spec.kind == EnumKind && len(spec.enumConstants) == 0 {
		return nil, errors.Errorf("at least one enum constant is required for %s", spec.name)
	}
	spec.fields = append([]*FieldSpec{}, b.spec.fields...)
	spec.methods = append([]*MethodSpec{}, b.spec.methods...)
	spec.types = append([]*TypeSpec{}, b.spec.types...)
	return &spec, nil
}
