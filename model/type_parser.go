package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dhamidi/javagen/java"
)

var primitiveTypes = map[string]java.TypeName{
	"void":    java.Void,
	"boolean": java.Boolean,
	"byte":    java.Byte,
	"short":   java.Short,
	"int":     java.Int,
	"long":    java.Long,
	"char":    java.Char,
	"float":   java.Float,
	"double":  java.Double,
}

// javaLangTypes lists the java.lang simple names a description may use
// without qualification.
var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "Class": true, "CharSequence": true,
	"StringBuilder": true, "Number": true, "Boolean": true, "Byte": true,
	"Character": true, "Short": true, "Integer": true, "Long": true,
	"Float": true, "Double": true, "Void": true, "Math": true,
	"System": true, "Thread": true, "Runnable": true, "Iterable": true,
	"Comparable": true, "Throwable": true, "Exception": true, "Error": true,
	"RuntimeException": true, "IllegalArgumentException": true,
	"IllegalStateException": true, "UnsupportedOperationException": true,
	"NullPointerException": true, "Override": true, "Deprecated": true,
	"SuppressWarnings": true, "FunctionalInterface": true, "SafeVarargs": true,
}

// typeContext resolves bare simple names while parsing: declared type
// variables win, then java.lang, then the file's own package.
type typeContext struct {
	packageName   string
	typeVariables map[string]bool
}

func (c *typeContext) withTypeVariables(params []TypeParameterModel) *typeContext {
	if len(params) == 0 {
		return c
	}
	merged := make(map[string]bool, len(c.typeVariables)+len(params))
	for name := range c.typeVariables {
		merged[name] = true
	}
	for _, p := range params {
		merged[p.Name] = true
	}
	return &typeContext{packageName: c.packageName, typeVariables: merged}
}

// parseType turns a source-level type string into a symbol:
// "Map<String, List<Integer>>", "int[]", "? extends Number", "T".
func (c *typeContext) parseType(s string) (java.TypeName, error) {
	p := &typeParser{input: strings.TrimSpace(s), ctx: c}
	t, err := p.parse()
	if err != nil {
		return java.TypeName{}, errors.WithMessagef(err, "parse type %q", s)
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return java.TypeName{}, errors.Errorf("parse type %q: trailing input at %d", s, p.pos)
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
	ctx   *typeContext
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) parse() (java.TypeName, error) {
	p.skipSpaces()
	if strings.HasPrefix(p.input[p.pos:], "?") {
		return p.parseWildcard()
	}
	return p.parseNonWildcard()
}

func (p *typeParser) parseWildcard() (java.TypeName, error) {
	p.pos++ // consume '?'
	p.skipSpaces()
	switch {
	case p.takeWord("extends"):
		bound, err := p.parseNonWildcard()
		if err != nil {
			return java.TypeName{}, err
		}
		return java.WildcardExtends(bound), nil
	case p.takeWord("super"):
		bound, err := p.parseNonWildcard()
		if err != nil {
			return java.TypeName{}, err
		}
		return java.WildcardSuper(bound), nil
	}
	return java.WildcardExtends(java.ObjectType), nil
}

func (p *typeParser) parseNonWildcard() (java.TypeName, error) {
	name, err := p.readName()
	if err != nil {
		return java.TypeName{}, err
	}

	t, err := p.ctx.resolveName(name)
	if err != nil {
		return java.TypeName{}, err
	}

	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '<' {
		p.pos++
		var args []java.TypeName
		for {
			arg, err := p.parse()
			if err != nil {
				return java.TypeName{}, err
			}
			args = append(args, arg)
			p.skipSpaces()
			if p.pos >= len(p.input) {
				return java.TypeName{}, errors.New("unterminated type arguments")
			}
			if p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.input[p.pos] == '>' {
				p.pos++
				break
			}
			return java.TypeName{}, errors.Errorf("unexpected %q in type arguments", p.input[p.pos])
		}
		t, err = java.ParameterizedType(t, args...)
		if err != nil {
			return java.TypeName{}, err
		}
	}

	for {
		p.skipSpaces()
		if strings.HasPrefix(p.input[p.pos:], "[]") {
			p.pos += 2
			t = java.ArrayOf(t)
			continue
		}
		return t, nil
	}
}

// takeWord consumes word if it appears at the cursor as a whole word.
func (p *typeParser) takeWord(word string) bool {
	rest := p.input[p.pos:]
	if !strings.HasPrefix(rest, word) {
		return false
	}
	after := rest[len(word):]
	if after != "" && after[0] != ' ' {
		return false
	}
	p.pos += len(word)
	p.skipSpaces()
	return true
}

func (p *typeParser) readName() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '<' || c == '>' || c == ',' || c == '[' || c == ']' || c == ' ' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return "", errors.New("expected a type name")
	}
	return p.input[start:p.pos], nil
}

func (c *typeContext) resolveName(name string) (java.TypeName, error) {
	if t, ok := primitiveTypes[name]; ok {
		return t, nil
	}
	if c.typeVariables[name] {
		return java.TypeVariable(name), nil
	}
	if !strings.Contains(name, ".") {
		if javaLangTypes[name] {
			return java.ClassType("java.lang", name), nil
		}
		// A bare simple name refers to a type in the file's own package.
		return java.ClassType(c.packageName, name), nil
	}
	return java.BestGuess(name)
}
