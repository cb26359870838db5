package java

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// JavaFile is one complete compilation unit: a package declaration,
// imports and a single top-level type. Rendering runs twice over the
// same tree; the first pass writes to a discarding sink and only
// collects which types could be imported, the second pass renders for
// real against that import table. Both passes walk identical state, so
// the text they agree on is stable.
type JavaFile struct {
	packageName   string
	typeSpec      *TypeSpec
	fileComment   CodeBlock
	skipJavaLang  bool
	staticImports map[string]bool
	indent        string
}

// PackageName returns the package the file declares, empty for the
// default package.
func (f *JavaFile) PackageName() string { return f.packageName }

// Type returns the file's top-level type.
func (f *JavaFile) Type() *TypeSpec { return f.typeSpec }

type JavaFileBuilder struct {
	file JavaFile
	err  error
}

// NewFile starts a compilation unit for typeSpec in packageName. An
// empty packageName means the default package.
func NewFile(packageName string, typeSpec *TypeSpec) *JavaFileBuilder {
	return &JavaFileBuilder{file: JavaFile{
		packageName:   packageName,
		typeSpec:      typeSpec,
		skipJavaLang:  true,
		staticImports: make(map[string]bool),
		indent:        defaultIndent,
	}}
}

// AddFileComment prepends a comment above the package declaration. The
// format string supports the full placeholder language.
func (b *JavaFileBuilder) AddFileComment(format string, args ...any) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	comment, err := NewCodeBlock().AddCode(b.file.fileComment).Add(format, args...).Build()
	if err != nil {
		b.err = err
		return b
	}
	b.file.fileComment = comment
	return b
}

// AddStaticImport imports the named members of className statically;
// "*" imports them all. Statically imported members render without
// their class qualifier.
func (b *JavaFileBuilder) AddStaticImport(className TypeName, names ...string) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	if !className.isClass() {
		b.err = errors.Errorf("cannot static-import members of %s", className.String())
		return b
	}
	if len(names) == 0 {
		b.err = errors.Errorf("static import of %s names no members", className.String())
		return b
	}
	for _, name := range names {
		if name != "*" && !isValidIdentifier(name) {
			b.err = errors.Errorf("not a valid member name for static import: %q", name)
			return b
		}
		b.file.staticImports[className.String()+"."+name] = true
	}
	return b
}

// SkipJavaLangImports controls whether java.lang types are imported
// explicitly. They resolve either way; the default is to leave them out.
func (b *JavaFileBuilder) SkipJavaLangImports(skip bool) *JavaFileBuilder {
	b.file.skipJavaLang = skip
	return b
}

// Indent sets the indentation unit, two spaces unless changed.
func (b *JavaFileBuilder) Indent(indent string) *JavaFileBuilder {
	b.file.indent = indent
	return b
}

func (b *JavaFileBuilder) Build() (*JavaFile, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.file.typeSpec == nil {
		return nil, errors.New("file has no type")
	}
	if b.file.typeSpec.anonymous {
		return nil, errors.New("file type cannot be an anonymous class")
	}
	if b.file.packageName != "" {
		for _, segment := range strings.Split(b.file.packageName, ".") {
			if !isValidIdentifier(segment) {
				return nil, errors.Errorf("not a valid package name: %q", b.file.packageName)
			}
		}
	}
	file := b.file
	file.staticImports = make(map[string]bool, len(b.file.staticImports))
	for signature := range b.file.staticImports {
		file.staticImports[signature] = true
	}
	return &file, nil
}

// WriteTo renders the file to out.
func (f *JavaFile) WriteTo(out io.Writer) error {
	// First pass: discard the text, keep the candidate imports.
	collector := newCodeWriter(io.Discard, f.indent, nil, f.staticImports)
	if err := f.emit(collector); err != nil {
		return err
	}
	suggested := collector.suggestedImports()

	writer := newCodeWriter(out, f.indent, suggested, f.staticImports)
	return f.emit(writer)
}

func (f *JavaFile) emit(cw *codeWriter) error {
	if err := cw.pushPackage(f.packageName); err != nil {
		return err
	}

	if !f.fileComment.IsEmpty() {
		if err := cw.emitComment(f.fileComment); err != nil {
			return err
		}
	}

	if f.packageName != "" {
		if err := cw.emitText("package " + f.packageName + ";\n\n"); err != nil {
			return err
		}
	}

	if len(f.staticImports) > 0 {
		signatures := make([]string, 0, len(f.staticImports))
		for signature := range f.staticImports {
			signatures = append(signatures, signature)
		}
		sort.Strings(signatures)
		for _, signature := range signatures {
			if err := cw.emitText("import static " + signature + ";\n"); err != nil {
				return err
			}
		}
		if err := cw.emitText("\n"); err != nil {
			return err
		}
	}

	imported := 0
	for _, className := range sortedQualifiedNames(cw.importedTypes) {
		if f.skipJavaLang && className.PackageName() == "java.lang" {
			continue
		}
		if err := cw.emitText("import " + className.String() + ";\n"); err != nil {
			return err
		}
		imported++
	}
	if imported > 0 {
		if err := cw.emitText("\n"); err != nil {
			return err
		}
	}

	if err := cw.emitTypeSpec(f.typeSpec, "", nil); err != nil {
		return err
	}

	if err := cw.popPackage(); err != nil {
		return err
	}
	return cw.out.Close()
}

// String renders the file, substituting an error marker if rendering
// fails. Use MarshalText to observe the error.
func (f *JavaFile) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return "/* " + err.Error() + " */\n"
	}
	return string(text)
}

// MarshalText implements encoding.TextMarshaler.
func (f *JavaFile) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if err := f.WriteTo(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// WriteFile writes the rendered source below dir, creating one
// directory per package segment, and returns the file's path.
func (f *JavaFile) WriteFile(dir string) (string, error) {
	outputDir := dir
	if f.packageName != "" {
		outputDir = filepath.Join(dir, filepath.Join(strings.Split(f.packageName, ".")...))
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.WithMessagef(err, "create package directory for %s", f.packageName)
	}
	text, err := f.MarshalText()
	if err != nil {
		return "", err
	}
	outputPath := filepath.Join(outputDir, f.typeSpec.name+".java")
	if err := os.WriteFile(outputPath, text, 0o644); err != nil {
		return "", errors.WithMessagef(err, "write %s", outputPath)
	}
	return outputPath, nil
}
