package java

import "github.com/pkg/errors"

// ConstructorName is the reserved method name identifying a constructor.
const ConstructorName = "<init>"

// MethodSpec describes one method or constructor declaration.
type MethodSpec struct {
	name          string
	javadoc       CodeBlock
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []TypeName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          CodeBlock
	defaultValue  CodeBlock
}

// Name returns the method name, or ConstructorName for a constructor.
func (m *MethodSpec) Name() string { return m.name }

// IsConstructor reports whether the spec describes a constructor.
func (m *MethodSpec) IsConstructor() bool { return m.name == ConstructorName }

// HasModifier reports whether the method carries the given modifier.
func (m *MethodSpec) HasModifier(mod Modifier) bool { return hasModifier(m.modifiers, mod) }

type MethodSpecBuilder struct {
	spec MethodSpec
	err  error
}

// NewMethod starts a method returning void; change the return type with
// Returns.
func NewMethod(name string) *MethodSpecBuilder {
	return &MethodSpecBuilder{spec: MethodSpec{name: name, returnType: Void}}
}

// NewConstructor starts a constructor. The enclosing type's name is
// substituted at render time.
func NewConstructor() *MethodSpecBuilder {
	return &MethodSpecBuilder{spec: MethodSpec{name: ConstructorName}}
}

func (b *MethodSpecBuilder) AddJavadoc(format string, args ...any) *MethodSpecBuilder {
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

func (b *MethodSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *MethodSpecBuilder {
	b.spec.annotations = append(b.spec.annotations, annotation)
	return b
}

func (b *MethodSpecBuilder) AddModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	b.spec.modifiers = append(b.spec.modifiers, modifiers...)
	return b
}

// AddTypeVariable declares a type variable on the method. Bounds render
// in the declaration only.
func (b *MethodSpecBuilder) AddTypeVariable(typeVariable TypeName) *MethodSpecBuilder {
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

func (b *MethodSpecBuilder) Returns(returnType TypeName) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.name == ConstructorName {
		b.err = errors.New("constructor cannot have a return type")
		return b
	}
	b.spec.returnType = returnType
	return b
}

func (b *MethodSpecBuilder) AddParameter(paramType TypeName, name string, modifiers ...Modifier) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	param, err := NewParameter(paramType, name, modifiers...).Build()
	if err != nil {
		b.err = err
		return b
	}
	return b.AddParameterSpec(param)
}

func (b *MethodSpecBuilder) AddParameterSpec(param *ParameterSpec) *MethodSpecBuilder {
	b.spec.parameters = append(b.spec.parameters, param)
	return b
}

// Varargs marks the last parameter, which must be an array, as variadic.
func (b *MethodSpecBuilder) Varargs() *MethodSpecBuilder {
	b.spec.varargs = true
	return b
}

func (b *MethodSpecBuilder) AddException(exception TypeName) *MethodSpecBuilder {
	b.spec.exceptions = append(b.spec.exceptions, exception)
	return b
}

func (b *MethodSpecBuilder) AddCode(format string, args ...any) *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.Add(format, args...) })
}

func (b *MethodSpecBuilder) AddCodeBlock(code CodeBlock) *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.AddCode(code) })
}

func (b *MethodSpecBuilder) AddStatement(format string, args ...any) *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.AddStatement(format, args...) })
}

func (b *MethodSpecBuilder) BeginControlFlow(format string, args ...any) *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.BeginControlFlow(format, args...) })
}

func (b *MethodSpecBuilder) NextControlFlow(format string, args ...any) *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.NextControlFlow(format, args...) })
}

func (b *MethodSpecBuilder) EndControlFlow() *MethodSpecBuilder {
	return b.addToBody(func(body *CodeBlockBuilder) { body.EndControlFlow() })
}

func (b *MethodSpecBuilder) addToBody(add func(*CodeBlockBuilder)) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	body := NewCodeBlock().AddCode(b.spec.code)
	add(body)
	code, err := body.Build()
	if err != nil {
		b.err = err
		return b
	}
	b.spec.code = code
	return b
}

// DefaultValue sets the default of an annotation type member method.
func (b *MethodSpecBuilder) DefaultValue(format string, args ...any) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	if !b.spec.defaultValue.IsEmpty() {
		b.err = errors.Errorf("default value was already set for %s", b.spec.name)
		return b
	}
	code, err := Code(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.spec.defaultValue = code
	return b
}

func (b *MethodSpecBuilder) Build() (*MethodSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.spec.name != ConstructorName && !isValidIdentifier(b.spec.name) {
		return nil, errors.Errorf("not a valid method name: %q", b.spec.name)
	}
	if err := checkModifiers(b.spec.modifiers,
		Public, Protected, Private, Static, Final, Abstract, Default,
		Synchronized, Native, Strictfp); err != nil {
		return nil, errors.WithMessagef(err, "method %s", b.spec.name)
	}
	if hasModifier(b.spec.modifiers, Abstract) && !b.spec.code.IsEmpty() {
		return nil, errors.Errorf("abstract method %s cannot have code", b.spec.name)
	}
	if b.spec.varargs {
		if len(b.spec.parameters) == 0 {
			return nil, errors.Errorf("varargs method %s has no parameters", b.spec.name)
		}
		if !b.spec.parameters[len(b.spec.parameters)-1].paramType.IsArray() {
			return nil, errors.Errorf("last parameter of varargs method %s must be an array", b.spec.name)
		}
	}
	spec := b.spec
	spec.parameters = append([]*ParameterSpec{}, b.spec.parameters...)
	return &spec, nil
}
