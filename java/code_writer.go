package java

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultIndent = "  "
	columnLimit   = 100
)

// codeWriter is the rendering engine: it walks spec trees and converts
// them to text, tracking the state a single emission pass needs. It
// shortens type references against the import table it was created with,
// while collecting candidates for the imports a future pass could use.
//
// A writer serves exactly one pass over one tree. State violations
// (unbalanced indentation, re-entrant statements, mismatched scope pops)
// mean the tree or a hand-built code block is inconsistent; they abort
// the render with no partial-output recovery beyond what was written.
type codeWriter struct {
	out    *lineWrapper
	indent string

	indentLevel int
	javadoc     bool
	comment     bool

	packageName string
	packageSet  bool

	// Enclosing type declarations, outermost first.
	typeSpecStack []*TypeSpec

	// Type variable names currently in scope; they mask same-named classes.
	currentTypeVariables map[string]int

	staticImports          map[string]bool
	staticImportClassNames map[string]bool

	// importedTypes is the precomputed shortening table for this pass;
	// importableTypes accumulates candidates for the next pass.
	importedTypes   map[string]TypeName
	importableTypes map[string]TypeName
	referencedNames map[string]bool

	trailingNewline bool

	// Physical line within the current statement, or -1 outside one. The
	// first continuation line of a statement adds two indent levels.
	statementLine int
}

func newCodeWriter(out io.Writer, indent string, importedTypes map[string]TypeName, staticImports map[string]bool) *codeWriter {
	if importedTypes == nil {
		importedTypes = make(map[string]TypeName)
	}
	if staticImports == nil {
		staticImports = make(map[string]bool)
	}
	staticImportClassNames := make(map[string]bool, len(staticImports))
	for signature := range staticImports {
		if dot := strings.LastIndexByte(signature, '.'); dot != -1 {
			staticImportClassNames[signature[:dot]] = true
		}
	}
	return &codeWriter{
		out:                    newLineWrapper(out, indent, columnLimit),
		indent:                 indent,
		currentTypeVariables:   make(map[string]int),
		staticImports:          staticImports,
		staticImportClassNames: staticImportClassNames,
		importedTypes:          importedTypes,
		importableTypes:        make(map[string]TypeName),
		referencedNames:        make(map[string]bool),
		trailingNewline:        true,
		statementLine:          -1,
	}
}

func (cw *codeWriter) pushIndent(levels int) {
	cw.indentLevel += levels
}

func (cw *codeWriter) popIndent(levels int) error {
	if cw.indentLevel-levels < 0 {
		return errors.Errorf("cannot unindent %d from %d", levels, cw.indentLevel)
	}
	cw.indentLevel -= levels
	return nil
}

func (cw *codeWriter) pushPackage(packageName string) error {
	if cw.packageSet {
		return errors.New("package already set")
	}
	cw.packageName = packageName
	cw.packageSet = true
	return nil
}

func (cw *codeWriter) popPackage() error {
	if !cw.packageSet {
		return errors.New("package not set")
	}
	cw.packageName = ""
	cw.packageSet = false
	return nil
}

func (cw *codeWriter) pushType(spec *TypeSpec) {
	cw.typeSpecStack = append(cw.typeSpecStack, spec)
}

func (cw *codeWriter) popType(spec *TypeSpec) error {
	if len(cw.typeSpecStack) == 0 {
		return errors.New("type stack is empty")
	}
	top := cw.typeSpecStack[len(cw.typeSpecStack)-1]
	if top.name != spec.name {
		return errors.Errorf("expected to pop %s but found %s", spec.name, top.name)
	}
	cw.typeSpecStack = cw.typeSpecStack[:len(cw.typeSpecStack)-1]
	return nil
}

func (cw *codeWriter) pushTypeVariables(typeVariables []TypeName) {
	for _, tv := range typeVariables {
		cw.currentTypeVariables[tv.name]++
	}
}

func (cw *codeWriter) popTypeVariables(typeVariables []TypeName) {
	for _, tv := range typeVariables {
		cw.currentTypeVariables[tv.name]--
		if cw.currentTypeVariables[tv.name] <= 0 {
			delete(cw.currentTypeVariables, tv.name)
		}
	}
}

// emitComment renders a block as line comments.
func (cw *codeWriter) emitComment(code CodeBlock) error {
	cw.trailingNewline = true // force the comment prefix
	cw.comment = true
	defer func() { cw.comment = false }()
	if err := cw.emitCode(code, false); err != nil {
		return err
	}
	return cw.emitText("\n")
}

// emitJavadoc renders a block inside a javadoc comment, re-prefixing each
// embedded newline with the continuation marker.
func (cw *codeWriter) emitJavadoc(code CodeBlock) error {
	if code.IsEmpty() {
		return nil
	}
	if err := cw.emitText("/**\n"); err != nil {
		return err
	}
	cw.javadoc = true
	err := cw.emitCode(code, true)
	cw.javadoc = false
	if err != nil {
		return err
	}
	return cw.emitText(" */\n")
}

func (cw *codeWriter) emitAnnotations(annotations []*AnnotationSpec, inline bool) error {
	separator := "\n"
	if inline {
		separator = " "
	}
	for _, annotation := range annotations {
		if err := cw.emitAnnotation(annotation, inline); err != nil {
			return err
		}
		if err := cw.emitText(separator); err != nil {
			return err
		}
	}
	return nil
}

func (cw *codeWriter) emitAnnotation(annotation *AnnotationSpec, inline bool) error {
	whitespace := "\n"
	memberSeparator := ",\n"
	if inline {
		whitespace = ""
		memberSeparator = ", "
	}
	switch {
	case len(annotation.members) == 0:
		return cw.emitf("@$T", annotation.annotationType)
	case len(annotation.members) == 1 && annotation.members[0].name == "value":
		if err := cw.emitf("@$T(", annotation.annotationType); err != nil {
			return err
		}
		if err := cw.emitAnnotationValues(whitespace, memberSeparator, annotation.members[0].values); err != nil {
			return err
		}
		return cw.emitText(")")
	default:
		if err := cw.emitf("@$T("+whitespace, annotation.annotationType); err != nil {
			return err
		}
		return cw.emitAnnotationMembers(annotation, whitespace, memberSeparator)
	}
}

func (cw *codeWriter) emitAnnotationMembers(annotation *AnnotationSpec, whitespace, memberSeparator string) error {
	cw.pushIndent(2)
	for i, member := range annotation.members {
		if i > 0 {
			if err := cw.emitText(memberSeparator); err != nil {
				return err
			}
		}
		if err := cw.emitf("$L = ", member.name); err != nil {
			return err
		}
		if err := cw.emitAnnotationValues(whitespace, memberSeparator, member.values); err != nil {
			return err
		}
	}
	if err := cw.popIndent(2); err != nil {
		return err
	}
	return cw.emitText(whitespace + ")")
}

func (cw *codeWriter) emitAnnotationValues(whitespace, memberSeparator string, values []CodeBlock) error {
	if len(values) == 1 {
		cw.pushIndent(2)
		err := cw.emitCode(values[0], false)
		if unindentErr := cw.popIndent(2); err == nil {
			err = unindentErr
		}
		return err
	}
	if err := cw.emitText("{" + whitespace); err != nil {
		return err
	}
	cw.pushIndent(2)
	for i, value := range values {
		if i > 0 {
			if err := cw.emitText(memberSeparator); err != nil {
				return err
			}
		}
		if err := cw.emitCode(value, false); err != nil {
			return err
		}
	}
	if err := cw.popIndent(2); err != nil {
		return err
	}
	return cw.emitText(whitespace + "}")
}

// emitModifiers prints modifiers in canonical order, skipping the ones
// the enclosing declaration makes implicit.
func (cw *codeWriter) emitModifiers(modifiers, implicit []Modifier) error {
	for _, m := range canonicalModifiers(modifiers) {
		if hasModifier(implicit, m) {
			continue
		}
		if err := cw.emitText(string(m) + " "); err != nil {
			return err
		}
	}
	return nil
}

// emitTypeVariables declares type variables with their bounds and brings
// their names into scope. Callers pair this with popTypeVariables.
func (cw *codeWriter) emitTypeVariables(typeVariables []TypeName) error {
	if len(typeVariables) == 0 {
		return nil
	}
	cw.pushTypeVariables(typeVariables)
	if err := cw.emitText("<"); err != nil {
		return err
	}
	for i, tv := range typeVariables {
		if i > 0 {
			if err := cw.emitText(", "); err != nil {
				return err
			}
		}
		if err := cw.emitText(tv.name); err != nil {
			return err
		}
		for j, bound := range tv.bounds {
			keyword := " extends "
			if j > 0 {
				keyword = " & "
			}
			if err := cw.emitText(keyword); err != nil {
				return err
			}
			if err := cw.emitType(bound); err != nil {
				return err
			}
		}
	}
	return cw.emitText(">")
}

// emitf formats and emits in one step.
func (cw *codeWriter) emitf(format string, args ...any) error {
	code, err := Code(format, args...)
	if err != nil {
		return err
	}
	return cw.emitCode(code, false)
}

// emitCode walks a fragment, interpreting placeholders against the
// current rendering state.
func (cw *codeWriter) emitCode(code CodeBlock, ensureTrailingNewline bool) error {
	a := 0
	var deferredType *TypeName // postponed to check for a static import match

	for i := 0; i < len(code.formatParts); i++ {
		part := code.formatParts[i]
		switch part {
		case "$L":
			if err := cw.emitLiteral(code.args[a]); err != nil {
				return err
			}
			a++

		case "$N":
			name, ok := code.args[a].(string)
			if !ok {
				return errors.Errorf("$N argument is not a name: %v", code.args[a])
			}
			a++
			if err := cw.emitText(name); err != nil {
				return err
			}

		case "$S":
			arg := code.args[a]
			a++
			if arg == nil {
				if err := cw.emitText("null"); err != nil {
					return err
				}
				break
			}
			s, ok := arg.(string)
			if !ok {
				return errors.Errorf("$S argument is not a string: %v", arg)
			}
			if err := cw.emitText(stringLiteral(s, cw.indent)); err != nil {
				return err
			}

		case "$T":
			typeName, ok := code.args[a].(TypeName)
			if !ok {
				return errors.Errorf("$T argument is not a type: %v", code.args[a])
			}
			a++
			// Defer the class so a following ".member" literal can
			// collapse to the bare member under a static import.
			if typeName.isClass() && i+1 < len(code.formatParts) &&
				!strings.HasPrefix(code.formatParts[i+1], "$") &&
				cw.staticImportClassNames[typeName.String()] {
				if deferredType != nil {
					return errors.New("pending type for static import")
				}
				t := typeName
				deferredType = &t
				break
			}
			if err := cw.emitType(typeName); err != nil {
				return err
			}

		case "$$":
			if err := cw.emitText("$"); err != nil {
				return err
			}

		case "$>":
			cw.pushIndent(1)

		case "$<":
			if err := cw.popIndent(1); err != nil {
				return err
			}

		case "$[":
			if cw.statementLine != -1 {
				return errors.New("statement enter $[ followed by statement enter $[")
			}
			cw.statementLine = 0

		case "$]":
			if cw.statementLine == -1 {
				return errors.New("statement exit $] has no matching statement enter $[")
			}
			if cw.statementLine > 0 {
				// Retract the continuation indent added after the first newline.
				if err := cw.popIndent(2); err != nil {
					return err
				}
			}
			cw.statementLine = -1

		case "$W":
			if err := cw.out.WrappingSpace(cw.indentLevel + 2); err != nil {
				return err
			}

		case "$Z":
			if err := cw.out.ZeroWidthSpace(cw.indentLevel + 2); err != nil {
				return err
			}

		default:
			if deferredType != nil {
				emitted := false
				if strings.HasPrefix(part, ".") {
					ok, err := cw.emitStaticImportMember(deferredType.String(), part)
					if err != nil {
						return err
					}
					emitted = ok
				}
				if !emitted {
					if err := cw.emitType(*deferredType); err != nil {
						return err
					}
					if err := cw.emitText(part); err != nil {
						return err
					}
				}
				deferredType = nil
				break
			}
			if err := cw.emitText(part); err != nil {
				return err
			}
		}
	}
	if deferredType != nil {
		if err := cw.emitType(*deferredType); err != nil {
			return err
		}
	}
	if ensureTrailingNewline && !cw.trailingNewline {
		return cw.emitText("\n")
	}
	return nil
}

func (cw *codeWriter) emitWrappingSpace() error {
	return cw.out.WrappingSpace(cw.indentLevel + 2)
}

// emitStaticImportMember prints part without its class qualifier when the
// member it starts with is covered by a static import.
func (cw *codeWriter) emitStaticImportMember(canonical, part string) (bool, error) {
	member := part[1:]
	if member == "" {
		return false, nil
	}
	first := rune(member[0])
	if !isJavaIdentifierStart(first) {
		return false, nil
	}
	explicit := canonical + "." + identifierPrefix(member)
	wildcard := canonical + ".*"
	if cw.staticImports[explicit] || cw.staticImports[wildcard] {
		return true, cw.emitText(member)
	}
	return false, nil
}

func identifierPrefix(s string) string {
	for i, r := range s {
		if !isJavaIdentifierPart(r) {
			return s[:i]
		}
	}
	return s
}

// emitLiteral emits a $L argument, recursing into nested declarations
// and fragments.
func (cw *codeWriter) emitLiteral(arg any) error {
	switch a := arg.(type) {
	case nil:
		return cw.emitText("null")
	case *TypeSpec:
		return cw.emitTypeSpec(a, "", nil)
	case *AnnotationSpec:
		return cw.emitAnnotation(a, true)
	case CodeBlock:
		return cw.emitCode(a, false)
	default:
		return cw.emitText(fmt.Sprintf("%v", a))
	}
}

// emitType emits a type reference, shortening class names where imports
// allow.
func (cw *codeWriter) emitType(t TypeName) error {
	switch t.kind {
	case kindPrimitive:
		return cw.emitText(t.keyword)
	case kindClass:
		return cw.emitText(cw.lookupName(t))
	case kindParameterized:
		if err := cw.emitType(*t.raw); err != nil {
			return err
		}
		if err := cw.emitText("<"); err != nil {
			return err
		}
		for i, arg := range t.typeArgs {
			if i > 0 {
				if err := cw.emitText(", "); err != nil {
					return err
				}
			}
			if err := cw.emitType(arg); err != nil {
				return err
			}
		}
		return cw.emitText(">")
	case kindArray:
		if err := cw.emitType(*t.component); err != nil {
			return err
		}
		return cw.emitText("[]")
	case kindTypeVariable:
		return cw.emitText(t.name)
	case kindWildcard:
		if err := cw.emitText("?"); err != nil {
			return err
		}
		switch {
		case len(t.lowerBounds) == 1:
			if err := cw.emitText(" super "); err != nil {
				return err
			}
			return cw.emitType(t.lowerBounds[0])
		case len(t.bounds) == 1 && !t.bounds[0].Equal(ObjectType):
			if err := cw.emitText(" extends "); err != nil {
				return err
			}
			return cw.emitType(t.bounds[0])
		}
		return nil
	}
	return errors.Errorf("unknown type kind for %s", t.String())
}

// lookupName returns the shortest name for className that resolves to it
// in the current scope: a scope-local suffix, an imported simple name, a
// package-local nested chain, or the fully qualified form. Unimportable
// references are recorded as candidates for a later pass.
func (cw *codeWriter) lookupName(className TypeName) string {
	// A type variable with the top-level simple name masks the class.
	topLevelSimpleName := className.topLevel().SimpleName()
	if cw.currentTypeVariables[topLevelSimpleName] > 0 {
		return className.String()
	}

	// Find the shortest suffix of className that resolves to it, using
	// both enclosing scope names (so Entry in Map means Map.Entry) and
	// the import table.
	nameResolved := false
	for c, ok := className, true; ok; c, ok = c.enclosing() {
		resolved, found := cw.resolve(c.SimpleName())
		nameResolved = found
		if found && resolved.String() == c.String() {
			suffixOffset := len(c.simpleNames()) - 1
			return strings.Join(className.simpleNames()[suffixOffset:], ".")
		}
	}

	// The simple name resolved to something else; the short form would
	// refer to the wrong type.
	if nameResolved {
		return className.String()
	}

	// Same package: the nested name chain suffices.
	if cw.packageName == className.PackageName() {
		cw.referencedNames[topLevelSimpleName] = true
		return strings.Join(className.simpleNames(), ".")
	}

	// Fully qualified, but importable on a future pass. References inside
	// javadoc don't count as uses.
	if !cw.javadoc {
		cw.importableType(className)
	}
	return className.String()
}

func (cw *codeWriter) importableType(className TypeName) {
	if className.PackageName() == "" {
		return
	}
	topLevel := className.topLevel()
	// On simple-name collision the first candidate wins; the rest stay
	// fully qualified.
	if _, taken := cw.importableTypes[topLevel.SimpleName()]; !taken {
		cw.importableTypes[topLevel.SimpleName()] = topLevel
	}
}

// resolve maps a simple name to the class it denotes in the current
// scope, preferring nested types of enclosing declarations, then the
// file's own top-level type, then imports.
func (cw *codeWriter) resolve(simpleName string) (TypeName, bool) {
	for i := len(cw.typeSpecStack) - 1; i >= 0; i-- {
		if cw.typeSpecStack[i].nestedSimpleNames()[simpleName] {
			return cw.stackClassName(i, simpleName), true
		}
	}
	if len(cw.typeSpecStack) > 0 && cw.typeSpecStack[0].name == simpleName {
		return ClassType(cw.packageName, simpleName), true
	}
	if imported, ok := cw.importedTypes[simpleName]; ok {
		return imported, true
	}
	return TypeName{}, false
}

// stackClassName names the class simpleName declared inside the type at
// stackDepth on the scope stack.
func (cw *codeWriter) stackClassName(stackDepth int, simpleName string) TypeName {
	names := make([]string, 0, stackDepth+2)
	for i := 0; i <= stackDepth; i++ {
		names = append(names, cw.typeSpecStack[i].name)
	}
	names = append(names, simpleName)
	return TypeName{kind: kindClass, pkg: cw.packageName, names: names}
}

// suggestedImports returns the import table collected by this pass: one
// top-level class per simple name, first encountered wins. Simple names
// already claimed by same-package references are withheld, so those keep
// the short form and the foreign type stays fully qualified.
func (cw *codeWriter) suggestedImports() map[string]TypeName {
	for name := range cw.referencedNames {
		delete(cw.importableTypes, name)
	}
	return cw.importableTypes
}

// emitText is the lowest-level emission step: it splits its input on
// newlines so every fresh line gets indentation and, inside comments,
// the continuation prefix, and it advances statement continuation state.
func (cw *codeWriter) emitText(s string) error {
	first := true
	for _, line := range strings.Split(s, "\n") {
		// A newline precedes every element but the first.
		if !first {
			if (cw.javadoc || cw.comment) && cw.trailingNewline {
				if err := cw.emitIndentation(); err != nil {
					return err
				}
				prefix := "//"
				if cw.javadoc {
					prefix = " *"
				}
				if err := cw.out.Append(prefix); err != nil {
					return err
				}
			}
			if err := cw.out.Append("\n"); err != nil {
				return err
			}
			cw.trailingNewline = true
			if cw.statementLine != -1 {
				if cw.statementLine == 0 {
					cw.pushIndent(2) // continuation lines of a wrapped statement
				}
				cw.statementLine++
			}
		}
		first = false
		if line == "" {
			continue // don't indent empty lines
		}
		if cw.trailingNewline {
			if err := cw.emitIndentation(); err != nil {
				return err
			}
			switch {
			case cw.javadoc:
				if err := cw.out.Append(" * "); err != nil {
					return err
				}
			case cw.comment:
				if err := cw.out.Append("// "); err != nil {
					return err
				}
			}
		}
		if err := cw.out.Append(line); err != nil {
			return err
		}
		cw.trailingNewline = false
	}
	return nil
}

func (cw *codeWriter) emitIndentation() error {
	for i := 0; i < cw.indentLevel; i++ {
		if err := cw.out.Append(cw.indent); err != nil {
			return err
		}
	}
	return nil
}

// stringLiteral escapes value as a Java string literal. Embedded
// newlines split the literal into adjacent quoted strings concatenated
// across continuation lines.
func stringLiteral(value, indent string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	runes := []rune(value)
	for i, r := range runes {
		switch r {
		case '\'':
			sb.WriteRune(r) // single quotes need no escape inside a string
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteString(escapeCharacter(r))
		}
		if r == '\n' && i+1 < len(runes) {
			sb.WriteString("\"\n" + indent + indent + "+ \"")
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// escapeCharacter renders one rune the way it appears inside a Java
// character or string literal, without surrounding quotes.
func escapeCharacter(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '\'':
		return `\'`
	case '"':
		return `"`
	case '\\':
		return `\\`
	}
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}

// sortedQualifiedNames orders class names by canonical form for the
// import block.
func sortedQualifiedNames(types map[string]TypeName) []TypeName {
	result := make([]TypeName, 0, len(types))
	for _, t := range types {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}
