package java

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Keywords reserved by the Java language, plus the literals that cannot
// be used as identifiers.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true,
	"goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true,
	"native": true, "new": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "short": true,
	"static": true, "strictfp": true, "super": true, "switch": true,
	"synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true,
	"while": true,

	"true": true, "false": true, "null": true,
}

// NameAllocator hands out identifiers that are valid Java and unique
// within one lexical scope. Suggested names are sanitized, keywords and
// duplicates get trailing underscores, and every allocation can be looked
// up again later through its tag.
//
// An allocator is not safe for concurrent use; derive per-scope copies
// with Clone instead.
type NameAllocator struct {
	allocated map[string]bool
	tagToName map[any]string
}

func NewNameAllocator() *NameAllocator {
	return &NameAllocator{
		allocated: make(map[string]bool),
		tagToName: make(map[any]string),
	}
}

// NewName allocates a unique, valid identifier based on suggestion and
// registers it under tag. A nil tag allocates without registering. Using
// one tag for two allocations is an error.
func (a *NameAllocator) NewName(suggestion string, tag any) (string, error) {
	name := toJavaIdentifier(suggestion)
	for javaKeywords[name] || a.allocated[name] {
		name += "_"
	}
	a.allocated[name] = true
	if tag != nil {
		if previous, ok := a.tagToName[tag]; ok {
			return "", errors.Errorf("tag %v cannot be used for both %q and %q", tag, previous, suggestion)
		}
		a.tagToName[tag] = name
	}
	return name, nil
}

// Get returns the name registered under tag by an earlier NewName call.
func (a *NameAllocator) Get(tag any) (string, error) {
	name, ok := a.tagToName[tag]
	if !ok {
		return "", errors.Errorf("unknown tag: %v", tag)
	}
	return name, nil
}

// Clone returns an allocator pre-seeded with all current allocations.
// Names taken in the clone cannot collide with names the parent held at
// clone time, and the parent never sees the clone's allocations.
func (a *NameAllocator) Clone() *NameAllocator {
	clone := NewNameAllocator()
	for name := range a.allocated {
		clone.allocated[name] = true
	}
	for tag, name := range a.tagToName {
		clone.tagToName[tag] = name
	}
	return clone
}

// toJavaIdentifier replaces characters that cannot appear in a Java
// identifier with underscores, prefixing one if the first character could
// appear in an identifier but not start one.
func toJavaIdentifier(suggestion string) string {
	var sb strings.Builder
	first := true
	for _, r := range suggestion {
		if first && !isJavaIdentifierStart(r) && isJavaIdentifierPart(r) {
			sb.WriteRune('_')
		}
		if isJavaIdentifierPart(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
		first = false
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

func isJavaIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || r == '_' || r == '$'
}

func isJavaIdentifierPart(r rune) bool {
	return isJavaIdentifierStart(r) || unicode.IsDigit(r)
}

func isValidIdentifier(s string) bool {
	if s == "" || javaKeywords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 && !isJavaIdentifierStart(r) {
			return false
		}
		if !isJavaIdentifierPart(r) {
			return false
		}
	}
	return true
}
