package java

import "github.com/pkg/errors"

// ParameterSpec describes one method or constructor parameter.
type ParameterSpec struct {
	name        string
	paramType   TypeName
	annotations []*AnnotationSpec
	modifiers   []Modifier
	javadoc     CodeBlock
}

// Name returns the parameter name.
func (p *ParameterSpec) Name() string { return p.name }

// Type returns the declared parameter type.
func (p *ParameterSpec) Type() TypeName { return p.paramType }

// ParameterSpecBuilder accumulates a parameter declaration; Build
// validates it.
type ParameterSpecBuilder struct {
	spec ParameterSpec
	err  error
}

func NewParameter(paramType TypeName, name string, modifiers ...Modifier) *ParameterSpecBuilder {
	b := &ParameterSpecBuilder{
		spec: ParameterSpec{name: name, paramType: paramType, modifiers: modifiers},
	}
	return b
}

func (b *ParameterSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *ParameterSpecBuilder {
	b.spec.annotations = append(b.spec.annotations, annotation)
	return b
}

func (b *ParameterSpecBuilder) AddJavadoc(format string, args ...any) *ParameterSpecBuilder {
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

func (b *ParameterSpecBuilder) Build() (*ParameterSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !isValidIdentifier(b.spec.name) {
		return nil, errors.Errorf("not a valid parameter name: %q", b.spec.name)
	}
	if b.spec.paramType.IsZero() || b.spec.paramType.IsVoid() {
		return nil, errors.Errorf("invalid type for parameter %s", b.spec.name)
	}
	// Only final may modify a parameter.
	if err := checkModifiers(b.spec.modifiers, Final); err != nil {
		return nil, errors.WithMessagef(err, "parameter %s", b.spec.name)
	}
	spec := b.spec
	return &spec, nil
}
