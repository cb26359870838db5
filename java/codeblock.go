package java

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CodeBlock is a frozen fragment of Java source: literal text interleaved
// with typed placeholders and their already-validated arguments. Blocks
// compose, so a block may carry other blocks as literal arguments.
//
// The placeholder syntax understood by Add:
//
//	$L  literal, emitted as-is (code blocks and specs emit recursively)
//	$N  name, extracted from a string or any named spec
//	$S  string literal, escaped and double-quoted
//	$T  type reference, shortened against the file's imports
//	$$  a literal dollar sign
//	$>  indent one level        $<  unindent one level
//	$[  begin statement         $]  end statement
//	$W  wrapping space          $Z  zero-width wrapping point
//
// A placeholder consumes the next argument unless it carries an explicit
// 1-based index ("$2L"); indexed and relative placeholders cannot be
// mixed within one call.
type CodeBlock struct {
	formatParts []string
	args        []any
}

// Code builds a fragment from a single format string.
func Code(format string, args ...any) (CodeBlock, error) {
	return NewCodeBlock().Add(format, args...).Build()
}

// Statement builds a fragment containing one terminated statement.
func Statement(format string, args ...any) (CodeBlock, error) {
	return NewCodeBlock().AddStatement(format, args...).Build()
}

// IsEmpty reports whether the block contains no text and no placeholders.
func (c CodeBlock) IsEmpty() bool {
	return len(c.formatParts) == 0
}

// String renders the block without any package context, so every type
// reference appears fully qualified. Rendering errors surface as an
// inline comment, mirroring how a broken block fails at file render time.
func (c CodeBlock) String() string {
	var sb strings.Builder
	cw := newCodeWriter(&sb, defaultIndent, nil, nil)
	if err := cw.emitCode(c, false); err != nil {
		return fmt.Sprintf("/* %v */", err)
	}
	if err := cw.out.Close(); err != nil {
		return fmt.Sprintf("/* %v */", err)
	}
	return sb.String()
}

// CodeBlockBuilder accumulates format parts and arguments. Errors are
// recorded on first failure and reported by Build, so calls chain without
// per-call error handling.
type CodeBlockBuilder struct {
	formatParts []string
	args        []any
	err         error
}

func NewCodeBlock() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

func (b *CodeBlockBuilder) isEmpty() bool {
	return len(b.formatParts) == 0
}

func (b *CodeBlockBuilder) fail(format string, args ...any) *CodeBlockBuilder {
	if b.err == nil {
		b.err = errors.Errorf(format, args...)
	}
	return b
}

// Add parses format and appends its text and placeholders to the block.
func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}

	hasRelative := false
	hasIndexed := false
	relativeCount := 0
	indexedCount := make([]int, len(args))

	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p+1:], '$')
			if next == -1 {
				b.formatParts = append(b.formatParts, format[p:])
				break
			}
			b.formatParts = append(b.formatParts, format[p:p+1+next])
			p += 1 + next
			continue
		}

		p++ // consume '$'

		// Consume leading digits so "$2L" addresses the second argument.
		indexStart := p
		for p < len(format) && format[p] >= '0' && format[p] <= '9' {
			p++
		}
		if p >= len(format) {
			return b.fail("dangling format characters in %q", format)
		}
		c := format[p]
		p++

		if isNoArgPlaceholder(c) {
			if indexStart != p-1 {
				return b.fail("$$, $>, $<, $[, $], $W and $Z may not have an index")
			}
			b.formatParts = append(b.formatParts, "$"+string(c))
			continue
		}

		var index int
		if indexStart < p-1 {
			parsed, err := strconv.Atoi(format[indexStart : p-1])
			if err != nil {
				return b.fail("invalid index in %q", format)
			}
			index = parsed - 1
			hasIndexed = true
			if len(args) > 0 {
				indexedCount[index%len(args)]++
			}
		} else {
			index = relativeCount
			hasRelative = true
			relativeCount++
		}

		if index < 0 || index >= len(args) {
			return b.fail("index %d for %q not in range (received %d arguments)",
				index+1, format[indexStart-1:p], len(args))
		}
		if hasIndexed && hasRelative {
			return b.fail("cannot mix indexed and positional parameters")
		}

		if err := b.addArgument(c, args[index]); err != nil {
			return b.fail("%v", err)
		}
		b.formatParts = append(b.formatParts, "$"+string(c))
	}

	if hasRelative && relativeCount < len(args) {
		return b.fail("unused arguments: expected %d, received %d", relativeCount, len(args))
	}
	if hasIndexed {
		var unused []string
		for i := 0; i < len(args); i++ {
			if indexedCount[i] == 0 {
				unused = append(unused, "$"+strconv.Itoa(i+1))
			}
		}
		if len(unused) > 0 {
			return b.fail("unused argument(s): %s", strings.Join(unused, ", "))
		}
	}
	return b
}

var namedArgument = regexp.MustCompile(`^\$([a-z][a-zA-Z0-9_]*):([NLST])`)

// AddNamed parses format with "$name:T"-style placeholders drawing from
// the given map. Structural markers keep their usual meaning.
func (b *CodeBlockBuilder) AddNamed(format string, args map[string]any) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	for p := 0; p < len(format); {
		next := strings.IndexByte(format[p:], '$')
		if next == -1 {
			b.formatParts = append(b.formatParts, format[p:])
			break
		}
		if next > 0 {
			b.formatParts = append(b.formatParts, format[p:p+next])
			p += next
		}
		if m := namedArgument.FindStringSubmatch(format[p:]); m != nil {
			name, placeholder := m[1], m[2][0]
			arg, ok := args[name]
			if !ok {
				return b.fail("missing named argument for $%s", name)
			}
			if err := b.addArgument(placeholder, arg); err != nil {
				return b.fail("%v", err)
			}
			b.formatParts = append(b.formatParts, "$"+string(placeholder))
			p += len(m[0])
			continue
		}
		if p == len(format)-1 {
			return b.fail("dangling $ at end of format string %q", format)
		}
		if !isNoArgPlaceholder(format[p+1]) {
			return b.fail("unknown format $%c at position %d in %q", format[p+1], p+1, format)
		}
		b.formatParts = append(b.formatParts, format[p:p+2])
		p += 2
	}
	return b
}

func isNoArgPlaceholder(c byte) bool {
	switch c {
	case '$', '>', '<', '[', ']', 'W', 'Z':
		return true
	}
	return false
}

// addArgument coerces arg for the given placeholder and stores it.
func (b *CodeBlockBuilder) addArgument(placeholder byte, arg any) error {
	switch placeholder {
	case 'N':
		name, err := argToName(arg)
		if err != nil {
			return err
		}
		b.args = append(b.args, name)
	case 'L':
		b.args = append(b.args, arg)
	case 'S':
		s, err := argToString(arg)
		if err != nil {
			return err
		}
		b.args = append(b.args, s)
	case 'T':
		t, err := argToType(arg)
		if err != nil {
			return err
		}
		b.args = append(b.args, t)
	default:
		return errors.Errorf("invalid format string placeholder $%c", placeholder)
	}
	return nil
}

func argToName(arg any) (string, error) {
	switch a := arg.(type) {
	case string:
		return a, nil
	case *ParameterSpec:
		return a.name, nil
	case *FieldSpec:
		return a.name, nil
	case *MethodSpec:
		return a.name, nil
	case *TypeSpec:
		return a.name, nil
	}
	return "", errors.Errorf("expected name but was %v", arg)
}

// argToString keeps a nil argument, which later renders as the null
// literal instead of a quoted string.
func argToString(arg any) (any, error) {
	switch a := arg.(type) {
	case nil:
		return nil, nil
	case string:
		return a, nil
	case fmt.Stringer:
		return a.String(), nil
	}
	return nil, errors.Errorf("expected string but was %v", arg)
}

func argToType(arg any) (TypeName, error) {
	switch a := arg.(type) {
	case TypeName:
		return a, nil
	case string:
		return BestGuess(a)
	}
	return TypeName{}, errors.Errorf("expected type but was %v", arg)
}

// AddCode appends another block verbatim.
func (b *CodeBlockBuilder) AddCode(code CodeBlock) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	b.formatParts = append(b.formatParts, code.formatParts...)
	b.args = append(b.args, code.args...)
	return b
}

// AddStatement appends format wrapped in statement markers and terminated
// with a semicolon, so embedded newlines render as continuation lines.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	return b.Add("$[").Add(format, args...).Add(";\n$]")
}

// AddStatementCode appends an already-built fragment as one statement.
func (b *CodeBlockBuilder) AddStatementCode(code CodeBlock) *CodeBlockBuilder {
	return b.Add("$[").AddCode(code).Add(";\n$]")
}

// BeginControlFlow opens a brace-delimited block, e.g. "if (foo)".
func (b *CodeBlockBuilder) BeginControlFlow(format string, args ...any) *CodeBlockBuilder {
	return b.Add(format+" {\n", args...).Indent()
}

// NextControlFlow continues a control flow block, e.g. "else if (bar)".
func (b *CodeBlockBuilder) NextControlFlow(format string, args ...any) *CodeBlockBuilder {
	return b.Unindent().Add("} "+format+" {\n", args...).Indent()
}

// EndControlFlow closes a control flow block.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	return b.Unindent().Add("}\n")
}

// EndControlFlowWith closes a do/while-style block with a trailing clause.
func (b *CodeBlockBuilder) EndControlFlowWith(format string, args ...any) *CodeBlockBuilder {
	return b.Unindent().Add("} "+format+";\n", args...)
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	b.formatParts = append(b.formatParts, "$>")
	return b
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	b.formatParts = append(b.formatParts, "$<")
	return b
}

// Build freezes the accumulated fragment, reporting the first error any
// builder call recorded.
func (b *CodeBlockBuilder) Build() (CodeBlock, error) {
	if b.err != nil {
		return CodeBlock{}, b.err
	}
	return CodeBlock{
		formatParts: append([]string{}, b.formatParts...),
		args:        append([]any{}, b.args...),
	}, nil
}
