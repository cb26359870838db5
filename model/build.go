package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dhamidi/javagen/java"
)

// Build turns a file description into a renderable compilation unit.
func Build(f *FileModel) (*java.JavaFile, error) {
	ctx := &typeContext{packageName: f.Package}

	spec, err := buildClass(ctx, f.Type)
	if err != nil {
		return nil, err
	}

	b := java.NewFile(f.Package, spec)
	if f.Comment != "" {
		b.AddFileComment("$L", strings.TrimSuffix(f.Comment, "\n"))
	}
	if f.Indent != "" {
		b.Indent(f.Indent)
	}
	b.SkipJavaLangImports(!f.ImportJavaLang)
	for _, imp := range f.StaticImports {
		class, err := ctx.parseType(imp.Class)
		if err != nil {
			return nil, errors.WithMessage(err, "static import")
		}
		b.AddStaticImport(class, imp.Members...)
	}
	return b.Build()
}

func buildClass(ctx *typeContext, m ClassModel) (*java.TypeSpec, error) {
	var b *java.TypeSpecBuilder
	switch m.Kind {
	case ClassKindClass, "":
		b = java.NewClass(m.Name)
	case ClassKindInterface:
		b = java.NewInterface(m.Name)
	case ClassKindEnum:
		b = java.NewEnum(m.Name)
	case ClassKindAnnotation:
		b = java.NewAnnotationType(m.Name)
	default:
		return nil, errors.Errorf("unknown kind %q for type %s", m.Kind, m.Name)
	}

	modifiers, err := m.Visibility.modifiers()
	if err != nil {
		return nil, errors.WithMessagef(err, "type %s", m.Name)
	}
	modifiers = appendIf(modifiers, m.IsStatic, java.Static)
	modifiers = appendIf(modifiers, m.IsFinal, java.Final)
	modifiers = appendIf(modifiers, m.IsAbstract, java.Abstract)
	b.AddModifiers(modifiers...)

	if m.Javadoc != "" {
		b.AddJavadoc("$L\n", strings.TrimSuffix(m.Javadoc, "\n"))
	}
	if err := addAnnotations(ctx, m.Annotations, b.AddAnnotation); err != nil {
		return nil, errors.WithMessagef(err, "type %s", m.Name)
	}

	ctx = ctx.withTypeVariables(m.TypeParameters)
	for _, param := range m.TypeParameters {
		tv, err := buildTypeParameter(ctx, param)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s", m.Name)
		}
		b.AddTypeVariable(tv)
	}

	if m.SuperClass != "" {
		superclass, err := ctx.parseType(m.SuperClass)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s superclass", m.Name)
		}
		b.Superclass(superclass)
	}
	for _, iface := range m.Interfaces {
		t, err := ctx.parseType(iface)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s interface", m.Name)
		}
		b.AddSuperinterface(t)
	}

	for _, constant := range m.EnumConstants {
		body := java.NewAnonymousClass("")
		if len(constant.Arguments) > 0 {
			body = java.NewAnonymousClass("$L", constantArguments(constant.Arguments))
		}
		for _, method := range constant.Methods {
			spec, err := buildMethod(ctx, method)
			if err != nil {
				return nil, errors.WithMessagef(err, "enum constant %s", constant.Name)
			}
			body.AddMethod(spec)
		}
		b.AddEnumConstantWithBody(constant.Name, body)
	}

	for _, field := range m.Fields {
		spec, err := buildField(ctx, field)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s", m.Name)
		}
		b.AddField(spec)
	}

	for _, initializer := range m.Initializers {
		block, err := statementBlock(initializer.Body)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s initializer", m.Name)
		}
		if initializer.IsStatic {
			b.AddStaticBlock(block)
		} else {
			b.AddInitializerBlock(block)
		}
	}

	for _, method := range m.Methods {
		// Bodyless interface and annotation type members are abstract
		// without saying so.
		if (m.Kind == ClassKindInterface || m.Kind == ClassKindAnnotation) &&
			len(method.Body) == 0 && !method.IsStatic && !method.IsDefault {
			method.IsAbstract = true
		}
		spec, err := buildMethod(ctx, method)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %s", m.Name)
		}
		b.AddMethod(spec)
	}

	for _, nested := range m.Classes {
		spec, err := buildClass(ctx, nested)
		if err != nil {
			return nil, err
		}
		b.AddType(spec)
	}

	return b.Build()
}

// constantArguments renders enum constructor arguments as one literal
// fragment; they are Java expressions written verbatim.
func constantArguments(arguments []string) string {
	return strings.Join(arguments, ", ")
}

func buildField(ctx *typeContext, m FieldModel) (*java.FieldSpec, error) {
	fieldType, err := ctx.parseType(m.Type)
	if err != nil {
		return nil, errors.WithMessagef(err, "field %s", m.Name)
	}

	modifiers, err := m.Visibility.modifiers()
	if err != nil {
		return nil, errors.WithMessagef(err, "field %s", m.Name)
	}
	modifiers = appendIf(modifiers, m.IsStatic, java.Static)
	modifiers = appendIf(modifiers, m.IsFinal, java.Final)
	modifiers = appendIf(modifiers, m.IsVolatile, java.Volatile)
	modifiers = appendIf(modifiers, m.IsTransient, java.Transient)

	b := java.NewField(fieldType, m.Name, modifiers...)
	if m.Javadoc != "" {
		b.AddJavadoc("$L\n", strings.TrimSuffix(m.Javadoc, "\n"))
	}
	if err := addAnnotations(ctx, m.Annotations, b.AddAnnotation); err != nil {
		return nil, errors.WithMessagef(err, "field %s", m.Name)
	}
	if m.Value != "" {
		b.Initializer("$L", m.Value)
	}
	return b.Build()
}

func buildMethod(ctx *typeContext, m MethodModel) (*java.MethodSpec, error) {
	name := m.Name
	var b *java.MethodSpecBuilder
	if m.Constructor {
		if m.Name != "" {
			return nil, errors.Errorf("constructor cannot be named (%s)", m.Name)
		}
		name = "constructor"
		b = java.NewConstructor()
	} else {
		b = java.NewMethod(m.Name)
	}

	modifiers, err := m.Visibility.modifiers()
	if err != nil {
		return nil, errors.WithMessagef(err, "method %s", name)
	}
	modifiers = appendIf(modifiers, m.IsStatic, java.Static)
	modifiers = appendIf(modifiers, m.IsFinal, java.Final)
	modifiers = appendIf(modifiers, m.IsAbstract, java.Abstract)
	modifiers = appendIf(modifiers, m.IsSynchronized, java.Synchronized)
	modifiers = appendIf(modifiers, m.IsNative, java.Native)
	modifiers = appendIf(modifiers, m.IsDefault, java.Default)
	b.AddModifiers(modifiers...)

	if m.Javadoc != "" {
		b.AddJavadoc("$L\n", strings.TrimSuffix(m.Javadoc, "\n"))
	}
	if err := addAnnotations(ctx, m.Annotations, b.AddAnnotation); err != nil {
		return nil, errors.WithMessagef(err, "method %s", name)
	}

	ctx = ctx.withTypeVariables(m.TypeParameters)
	for _, param := range m.TypeParameters {
		tv, err := buildTypeParameter(ctx, param)
		if err != nil {
			return nil, errors.WithMessagef(err, "method %s", name)
		}
		b.AddTypeVariable(tv)
	}

	if m.ReturnType != "" {
		returnType, err := ctx.parseType(m.ReturnType)
		if err != nil {
			return nil, errors.WithMessagef(err, "method %s", name)
		}
		b.Returns(returnType)
	}

	for _, param := range m.Parameters {
		paramType, err := ctx.parseType(param.Type)
		if err != nil {
			return nil, errors.WithMessagef(err, "method %s parameter %s", name, param.Name)
		}
		pb := java.NewParameter(paramType, param.Name, appendIf(nil, param.IsFinal, java.Final)...)
		if err := addAnnotations(ctx, param.Annotations, pb.AddAnnotation); err != nil {
			return nil, errors.WithMessagef(err, "method %s parameter %s", name, param.Name)
		}
		spec, err := pb.Build()
		if err != nil {
			return nil, errors.WithMessagef(err, "method %s", name)
		}
		b.AddParameterSpec(spec)
	}
	if m.IsVarargs {
		b.Varargs()
	}

	for _, exception := range m.Exceptions {
		t, err := ctx.parseType(exception)
		if err != nil {
			return nil, errors.WithMessagef(err, "method %s throws", name)
		}
		b.AddException(t)
	}

	for _, statement := range m.Body {
		b.AddStatement("$L", statement)
	}

	return b.Build()
}

func buildTypeParameter(ctx *typeContext, m TypeParameterModel) (java.TypeName, error) {
	bounds := make([]java.TypeName, 0, len(m.Bounds))
	for _, bound := range m.Bounds {
		t, err := ctx.parseType(bound)
		if err != nil {
			return java.TypeName{}, errors.WithMessagef(err, "type parameter %s", m.Name)
		}
		bounds = append(bounds, t)
	}
	return java.TypeVariable(m.Name, bounds...), nil
}

// addAnnotations builds each annotation model and feeds it to add, which
// is one of the spec builders' AddAnnotation methods.
func addAnnotations[T any](ctx *typeContext, annotations []AnnotationModel, add func(*java.AnnotationSpec) T) error {
	for _, annotation := range annotations {
		annotationType, err := ctx.parseType(annotation.Type)
		if err != nil {
			return errors.WithMessage(err, "annotation")
		}
		b := java.NewAnnotation(annotationType)
		for _, value := range annotation.Values {
			b.AddMember(value.Name, "$L", value.Value)
		}
		spec, err := b.Build()
		if err != nil {
			return err
		}
		add(spec)
	}
	return nil
}

func statementBlock(statements []string) (java.CodeBlock, error) {
	b := java.NewCodeBlock()
	for _, statement := range statements {
		b.AddStatement("$L", statement)
	}
	return b.Build()
}

func appendIf(mods []java.Modifier, condition bool, m java.Modifier) []java.Modifier {
	if condition {
		return append(mods, m)
	}
	return mods
}

func (v Visibility) modifiers() ([]java.Modifier, error) {
	switch v {
	case VisibilityPublic:
		return []java.Modifier{java.Public}, nil
	case VisibilityProtected:
		return []java.Modifier{java.Protected}, nil
	case VisibilityPrivate:
		return []java.Modifier{java.Private}, nil
	case VisibilityPackage, "":
		return nil, nil
	}
	return nil, errors.Errorf("unknown visibility %q", string(v))
}
