// Package java builds Java source files programmatically.
//
// Callers describe a compilation unit as a tree of immutable specs
// (TypeSpec, MethodSpec, FieldSpec, ParameterSpec, AnnotationSpec) whose
// bodies are CodeBlock fragments, then render the tree through a JavaFile.
// Rendering shortens type references to simple names where an import can
// be emitted, indents nested declarations, wraps long lines and prefixes
// javadoc continuation lines.
//
// Types are identified by TypeName values that are independent of how a
// reference is ultimately printed; whether java.util.List renders as
// "List" or "java.util.List" is decided per file, by rendering the tree
// twice (see JavaFile.WriteTo).
package java
