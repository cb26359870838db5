package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func renderModel(t *testing.T, f *FileModel) string {
	t.Helper()
	file, err := Build(f)
	require.NoError(t, err)
	text, err := file.MarshalText()
	require.NoError(t, err)
	return string(text)
}

func TestBuildClassFromYAML(t *testing.T) {
	description := `
package: com.example.greet
comment: Generated, do not edit!
type:
  name: Greeter
  visibility: public
  final: true
  fields:
    - name: name
      type: String
      visibility: private
      final: true
  methods:
    - constructor: true
      visibility: public
      parameters:
        - name: name
          type: String
      body:
        - this.name = name
    - name: greet
      visibility: public
      returns: String
      body:
        - return "Hello, " + name
`
	f, err := Decode([]byte(description))
	require.NoError(t, err)

	require.Equal(t, ""+
		"// Generated, do not edit!\n"+
		"package com.example.greet;\n"+
		"\n"+
		"public final class Greeter {\n"+
		"  private final String name;\n"+
		"\n"+
		"  public Greeter(String name) {\n"+
		"    this.name = name;\n"+
		"  }\n"+
		"\n"+
		"  public String greet() {\n"+
		"    return \"Hello, \" + name;\n"+
		"  }\n"+
		"}\n", renderModel(t, f))
}

func TestBuildEnum(t *testing.T) {
	f := &FileModel{
		Package: "com.example",
		Type: ClassModel{
			Name:       "Direction",
			Kind:       ClassKindEnum,
			Visibility: VisibilityPublic,
			EnumConstants: []EnumConstantModel{
				{Name: "NORTH"},
				{Name: "SOUTH", Arguments: []string{"180"}},
			},
		},
	}
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"public enum Direction {\n"+
		"  NORTH,\n"+
		"\n"+
		"  SOUTH(180)\n"+
		"}\n", renderModel(t, f))
}

func TestBuildInterface(t *testing.T) {
	f := &FileModel{
		Package: "com.example",
		Type: ClassModel{
			Name:           "Repository",
			Kind:           ClassKindInterface,
			Visibility:     VisibilityPublic,
			TypeParameters: []TypeParameterModel{{Name: "T"}},
			Methods: []MethodModel{
				{Name: "findAll", ReturnType: "java.util.List<T>"},
				{Name: "save", Parameters: []ParameterModel{{Name: "entity", Type: "T"}}},
			},
		},
	}
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"import java.util.List;\n"+
		"\n"+
		"public interface Repository<T> {\n"+
		"  List<T> findAll();\n"+
		"\n"+
		"  void save(T entity);\n"+
		"}\n", renderModel(t, f))
}

func TestBuildAnnotationsAndImports(t *testing.T) {
	f := &FileModel{
		Package: "com.example",
		Type: ClassModel{
			Name: "Endpoint",
			Annotations: []AnnotationModel{{
				Type: "com.example.http.Route",
				Values: []AnnotationValueModel{
					{Name: "path", Value: `"/health"`},
				},
			}},
		},
	}
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"import com.example.http.Route;\n"+
		"\n"+
		"@Route(\n"+
		"    path = \"/health\"\n"+
		")\n"+
		"class Endpoint {\n"+
		"}\n", renderModel(t, f))
}

func TestBuildInitializers(t *testing.T) {
	f := &FileModel{
		Package: "com.example",
		Type: ClassModel{
			Name: "Registry",
			Fields: []FieldModel{
				{Name: "count", Type: "int", IsStatic: true},
			},
			Initializers: []InitializerModel{
				{IsStatic: true, Body: []string{"count = 0"}},
			},
		},
	}
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"class Registry {\n"+
		"  static int count;\n"+
		"\n"+
		"  static {\n"+
		"    count = 0;\n"+
		"  }\n"+
		"}\n", renderModel(t, f))
}

func TestBuildStaticImports(t *testing.T) {
	f := &FileModel{
		Package: "com.example",
		StaticImports: []StaticImportModel{
			{Class: "java.util.Objects", Members: []string{"requireNonNull"}},
		},
		Type: ClassModel{
			Name: "Checks",
			Methods: []MethodModel{{
				Name:       "check",
				Parameters: []ParameterModel{{Name: "value", Type: "Object"}},
				Body:       []string{"requireNonNull(value)"},
			}},
		},
	}
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"import static java.util.Objects.requireNonNull;\n"+
		"\n"+
		"class Checks {\n"+
		"  void check(Object value) {\n"+
		"    requireNonNull(value);\n"+
		"  }\n"+
		"}\n", renderModel(t, f))
}

func TestBuildErrors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, err := Build(&FileModel{Type: ClassModel{Name: "X", Kind: "struct"}})
		require.ErrorContains(t, err, "unknown kind")
	})

	t.Run("unknown visibility", func(t *testing.T) {
		_, err := Build(&FileModel{Type: ClassModel{Name: "X", Visibility: "internal"}})
		require.ErrorContains(t, err, "unknown visibility")
	})

	t.Run("named constructor", func(t *testing.T) {
		_, err := Build(&FileModel{Type: ClassModel{
			Name:    "X",
			Methods: []MethodModel{{Constructor: true, Name: "X"}},
		}})
		require.ErrorContains(t, err, "constructor cannot be named")
	})

	t.Run("bad type string", func(t *testing.T) {
		_, err := Build(&FileModel{Type: ClassModel{
			Name:   "X",
			Fields: []FieldModel{{Name: "f", Type: "List<"}},
		}})
		require.ErrorContains(t, err, "parse type")
	})

	t.Run("json decodes too", func(t *testing.T) {
		f, err := Decode([]byte(`{"package": "com.example", "type": {"name": "FromJson"}}`))
		require.NoError(t, err)
		require.Equal(t, "com.example", f.Package)
		require.Equal(t, "FromJson", f.Type.Name)
	})
}
