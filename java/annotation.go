package java

import "github.com/pkg/errors"

// AnnotationSpec describes one annotation use, e.g. @Override or
// @SuppressWarnings("unchecked"). Members keep insertion order; a member
// with several values renders as an array initializer.
type AnnotationSpec struct {
	annotationType TypeName
	members        []annotationMember
}

type annotationMember struct {
	name   string
	values []CodeBlock
}

// Type returns the annotation's type.
func (a *AnnotationSpec) Type() TypeName { return a.annotationType }

// Annotation builds a marker annotation without members.
func Annotation(annotationType TypeName) (*AnnotationSpec, error) {
	return NewAnnotation(annotationType).Build()
}

type AnnotationSpecBuilder struct {
	spec AnnotationSpec
	err  error
}

func NewAnnotation(annotationType TypeName) *AnnotationSpecBuilder {
	return &AnnotationSpecBuilder{
		spec: AnnotationSpec{annotationType: annotationType},
	}
}

// AddMember adds one value for the named member. Adding the same member
// again appends another array element.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...any) *AnnotationSpecBuilder {
	if b.err != nil {
		return b
	}
	code, err := Code(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddMemberCode(name, code)
}

func (b *AnnotationSpecBuilder) AddMemberCode(name string, code CodeBlock) *AnnotationSpecBuilder {
	if b.err != nil {
		return b
	}
	if !isValidIdentifier(name) {
		b.err = errors.Errorf("not a valid annotation member name: %q", name)
		return b
	}
	for i := range b.spec.members {
		if b.spec.members[i].name == name {
			b.spec.members[i].values = append(b.spec.members[i].values, code)
			return b
		}
	}
	b.spec.members = append(b.spec.members, annotationMember{name: name, values: []CodeBlock{code}})
	return b
}

func (b *AnnotationSpecBuilder) Build() (*AnnotationSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.spec.annotationType.isClass() {
		return nil, errors.Errorf("not an annotation type: %s", b.spec.annotationType.String())
	}
	spec := b.spec
	spec.members = append([]annotationMember{}, b.spec.members...)
	return &spec, nil
}
