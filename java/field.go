package java

import "github.com/pkg/errors"

// FieldSpec describes one field declaration, optionally initialized.
type FieldSpec struct {
	name        string
	fieldType   TypeName
	javadoc     CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
	initializer CodeBlock
}

// Name returns the field name.
func (f *FieldSpec) Name() string { return f.name }

// Type returns the declared field type.
func (f *FieldSpec) Type() TypeName { return f.fieldType }

// HasModifier reports whether the field carries the given modifier.
func (f *FieldSpec) HasModifier(m Modifier) bool { return hasModifier(f.modifiers, m) }

type FieldSpecBuilder struct {
	spec           FieldSpec
	hasInitializer bool
	err            error
}

func NewField(fieldType TypeName, name string, modifiers ...Modifier) *FieldSpecBuilder {
	return &FieldSpecBuilder{
		spec: FieldSpec{name: name, fieldType: fieldType, modifiers: modifiers},
	}
}

func (b *FieldSpecBuilder) AddJavadoc(format string, args ...any) *FieldSpecBuilder {
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

func (b *FieldSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *FieldSpecBuilder {
	b.spec.annotations = append(b.spec.annotations, annotation)
	return b
}

// Initializer sets the field initializer expression. Setting it twice is
// an error.
func (b *FieldSpecBuilder) Initializer(format string, args ...any) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	code, err := Code(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	return b.InitializerCode(code)
}

func (b *FieldSpecBuilder) InitializerCode(code CodeBlock) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.hasInitializer {
		b.err = errors.Errorf("initializer was already set for field %s", b.spec.name)
		return b
	}
	b.hasInitializer = true
	b.spec.initializer = code
	return b
}

func (b *FieldSpecBuilder) Build() (*FieldSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !isValidIdentifier(b.spec.name) {
		return nil, errors.Errorf("not a valid field name: %q", b.spec.name)
	}
	if b.spec.fieldType.IsZero() || b.spec.fieldType.IsVoid() {
		return nil, errors.Errorf("invalid type for field %s", b.spec.name)
	}
	if err := checkModifiers(b.spec.modifiers,
		Public, Protected, Private, Static, Final, Transient, Volatile); err != nil {
		return nil, errors.WithMessagef(err, "field %s", b.spec.name)
	}
	spec := b.spec
	return &spec, nil
}
