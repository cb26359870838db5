package java

import "github.com/pkg/errors"

// This file holds the declaration walk: one emit function per spec kind,
// driven by codeWriter state. The tree never renders itself; all output
// decisions live here.

// emitTypeSpec renders a type declaration. enumName is non-empty when the
// spec is the body of an enum constant; implicit lists the modifiers the
// enclosing declaration already implies.
func (cw *codeWriter) emitTypeSpec(spec *TypeSpec, enumName string, implicit []Modifier) error {
	// A nested declaration interrupts wrapped-statement indentation.
	// Stash it and restore when the declaration is done.
	previousStatementLine := cw.statementLine
	cw.statementLine = -1
	defer func() { cw.statementLine = previousStatementLine }()

	switch {
	case enumName != "":
		if err := cw.emitJavadoc(spec.javadoc); err != nil {
			return err
		}
		if err := cw.emitAnnotations(spec.annotations, false); err != nil {
			return err
		}
		if err := cw.emitText(enumName); err != nil {
			return err
		}
		if !spec.anonymousArgs.IsEmpty() {
			if err := cw.emitText("("); err != nil {
				return err
			}
			if err := cw.emitCode(spec.anonymousArgs, false); err != nil {
				return err
			}
			if err := cw.emitText(")"); err != nil {
				return err
			}
		}
		if len(spec.fields) == 0 && len(spec.methods) == 0 && len(spec.types) == 0 {
			return nil // avoid unnecessary braces "{}"
		}
		if err := cw.emitText(" {\n"); err != nil {
			return err
		}

	case spec.anonymous:
		supertype := spec.superclass
		if len(spec.interfaces) > 0 {
			supertype = spec.interfaces[0]
		}
		if err := cw.emitf("new $T(", supertype); err != nil {
			return err
		}
		if err := cw.emitCode(spec.anonymousArgs, false); err != nil {
			return err
		}
		if err := cw.emitText(") {\n"); err != nil {
			return err
		}

	default:
		// Push a memberless copy so the declaration line can resolve the
		// type's own name without seeing nested types that aren't in
		// scope yet.
		header := spec.headerOnly()
		cw.pushType(header)

		if err := cw.emitJavadoc(spec.javadoc); err != nil {
			return err
		}
		if err := cw.emitAnnotations(spec.annotations, false); err != nil {
			return err
		}
		if err := cw.emitModifiers(spec.modifiers, append(implicit, spec.kind.asMemberModifiers()...)); err != nil {
			return err
		}
		if err := cw.emitf("$L $L", string(spec.kind), spec.name); err != nil {
			return err
		}
		if err := cw.emitTypeVariables(spec.typeVariables); err != nil {
			return err
		}
		defer cw.popTypeVariables(spec.typeVariables)

		var extendsTypes, implementsTypes []TypeName
		if spec.kind == InterfaceKind {
			extendsTypes = spec.interfaces
		} else {
			if !spec.superclass.IsZero() && !spec.superclass.Equal(ObjectType) {
				extendsTypes = []TypeName{spec.superclass}
			}
			implementsTypes = spec.interfaces
		}
		if err := cw.emitSupertypes(" extends", extendsTypes); err != nil {
			return err
		}
		if err := cw.emitSupertypes(" implements", implementsTypes); err != nil {
			return err
		}

		if err := cw.popType(header); err != nil {
			return err
		}
		if err := cw.emitText(" {\n"); err != nil {
			return err
		}
	}

	cw.pushType(spec)
	cw.pushIndent(1)
	firstMember := true

	for i, constant := range spec.enumConstants {
		if !firstMember {
			if err := cw.emitText("\n"); err != nil {
				return err
			}
		}
		if err := cw.emitTypeSpec(constant.body, constant.name, nil); err != nil {
			return err
		}
		firstMember = false
		separator := "\n"
		switch {
		case i < len(spec.enumConstants)-1:
			separator = ",\n"
		case len(spec.fields) > 0 || len(spec.methods) > 0 || len(spec.types) > 0:
			separator = ";\n"
		}
		if err := cw.emitText(separator); err != nil {
			return err
		}
	}

	// Static fields, then the static initializer, then instance fields.
	for _, field := range spec.fields {
		if !field.HasModifier(Static) {
			continue
		}
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitField(field, spec.kind.implicitFieldModifiers())
		}); err != nil {
			return err
		}
	}
	if !spec.staticBlock.IsEmpty() {
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitCode(spec.staticBlock, false)
		}); err != nil {
			return err
		}
	}
	for _, field := range spec.fields {
		if field.HasModifier(Static) {
			continue
		}
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitField(field, spec.kind.implicitFieldModifiers())
		}); err != nil {
			return err
		}
	}
	if !spec.initializer.IsEmpty() {
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitCode(spec.initializer, false)
		}); err != nil {
			return err
		}
	}

	// Constructors before methods.
	for _, method := range spec.methods {
		if !method.IsConstructor() {
			continue
		}
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitMethod(method, spec.name, spec.kind.implicitMethodModifiers())
		}); err != nil {
			return err
		}
	}
	for _, method := range spec.methods {
		if method.IsConstructor() {
			continue
		}
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitMethod(method, spec.name, spec.kind.implicitMethodModifiers())
		}); err != nil {
			return err
		}
	}

	for _, nested := range spec.types {
		if err := cw.emitMember(&firstMember, func() error {
			return cw.emitTypeSpec(nested, "", spec.kind.implicitTypeModifiers())
		}); err != nil {
			return err
		}
	}

	if err := cw.popIndent(1); err != nil {
		return err
	}
	if err := cw.popType(spec); err != nil {
		return err
	}

	if err := cw.emitText("}"); err != nil {
		return err
	}
	if enumName == "" && !spec.anonymous {
		// A declaration that isn't also a value ends its own line.
		return cw.emitText("\n")
	}
	return nil
}

// emitMember separates members with one blank line.
func (cw *codeWriter) emitMember(firstMember *bool, emit func() error) error {
	if !*firstMember {
		if err := cw.emitText("\n"); err != nil {
			return err
		}
	}
	*firstMember = false
	return emit()
}

func (cw *codeWriter) emitSupertypes(keyword string, types []TypeName) error {
	if len(types) == 0 {
		return nil
	}
	if err := cw.emitText(keyword); err != nil {
		return err
	}
	for i, t := range types {
		if i > 0 {
			if err := cw.emitText(","); err != nil {
				return err
			}
		}
		if err := cw.emitText(" "); err != nil {
			return err
		}
		if err := cw.emitType(t); err != nil {
			return err
		}
	}
	return nil
}

func (cw *codeWriter) emitField(field *FieldSpec, implicit []Modifier) error {
	if err := cw.emitJavadoc(field.javadoc); err != nil {
		return err
	}
	if err := cw.emitAnnotations(field.annotations, false); err != nil {
		return err
	}
	if err := cw.emitModifiers(field.modifiers, implicit); err != nil {
		return err
	}
	if err := cw.emitf("$T $L", field.fieldType, field.name); err != nil {
		return err
	}
	if !field.initializer.IsEmpty() {
		if err := cw.emitText(" = "); err != nil {
			return err
		}
		if err := cw.emitCode(field.initializer, false); err != nil {
			return err
		}
	}
	return cw.emitText(";\n")
}

func (cw *codeWriter) emitMethod(method *MethodSpec, enclosingName string, implicit []Modifier) error {
	if err := cw.emitJavadoc(method.javadoc); err != nil {
		return err
	}
	if err := cw.emitAnnotations(method.annotations, false); err != nil {
		return err
	}
	if err := cw.emitModifiers(method.modifiers, implicit); err != nil {
		return err
	}

	if len(method.typeVariables) > 0 {
		if err := cw.emitTypeVariables(method.typeVariables); err != nil {
			return err
		}
		if err := cw.emitText(" "); err != nil {
			return err
		}
		defer cw.popTypeVariables(method.typeVariables)
	}

	if method.IsConstructor() {
		if err := cw.emitf("$L($Z", enclosingName); err != nil {
			return err
		}
	} else {
		if err := cw.emitf("$T $L($Z", method.returnType, method.name); err != nil {
			return err
		}
	}

	for i, param := range method.parameters {
		if i > 0 {
			if err := cw.emitText(","); err != nil {
				return err
			}
			if err := cw.emitWrappingSpace(); err != nil {
				return err
			}
		}
		varargs := method.varargs && i == len(method.parameters)-1
		if err := cw.emitParameter(param, varargs); err != nil {
			return err
		}
	}

	if err := cw.emitText(")"); err != nil {
		return err
	}

	if !method.defaultValue.IsEmpty() {
		if err := cw.emitText(" default "); err != nil {
			return err
		}
		if err := cw.emitCode(method.defaultValue, false); err != nil {
			return err
		}
	}

	if len(method.exceptions) > 0 {
		if err := cw.emitWrappingSpace(); err != nil {
			return err
		}
		if err := cw.emitText("throws"); err != nil {
			return err
		}
		for i, exception := range method.exceptions {
			if i > 0 {
				if err := cw.emitText(","); err != nil {
					return err
				}
			}
			if err := cw.emitWrappingSpace(); err != nil {
				return err
			}
			if err := cw.emitType(exception); err != nil {
				return err
			}
		}
	}

	switch {
	case method.HasModifier(Abstract):
		return cw.emitText(";\n")
	case method.HasModifier(Native):
		// Native methods may still carry code, e.g. GWT JSNI bodies.
		if err := cw.emitCode(method.code, false); err != nil {
			return err
		}
		return cw.emitText(";\n")
	default:
		if err := cw.emitText(" {\n"); err != nil {
			return err
		}
		cw.pushIndent(1)
		if err := cw.emitCode(method.code, true); err != nil {
			return err
		}
		if err := cw.popIndent(1); err != nil {
			return err
		}
		return cw.emitText("}\n")
	}
}

func (cw *codeWriter) emitParameter(param *ParameterSpec, varargs bool) error {
	if err := cw.emitAnnotations(param.annotations, true); err != nil {
		return err
	}
	if err := cw.emitModifiers(param.modifiers, nil); err != nil {
		return err
	}
	if varargs {
		component, ok := param.paramType.Component()
		if !ok {
			return errors.Errorf("varargs parameter %s is not an array", param.name)
		}
		if err := cw.emitType(component); err != nil {
			return err
		}
		if err := cw.emitText("..."); err != nil {
			return err
		}
	} else {
		if err := cw.emitType(param.paramType); err != nil {
			return err
		}
	}
	return cw.emitText(" " + param.name)
}
