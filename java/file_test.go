package java

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBuildFile(t *testing.T, b *JavaFileBuilder) *JavaFile {
	t.Helper()
	file, err := b.Build()
	require.NoError(t, err)
	return file
}

func render(t *testing.T, file *JavaFile) string {
	t.Helper()
	text, err := file.MarshalText()
	require.NoError(t, err)
	return string(text)
}

func TestJavaFileHelloWorld(t *testing.T) {
	main, err := NewMethod("main").
		AddModifiers(Public, Static).
		AddParameter(ArrayOf(StringType), "args").
		AddStatement("$T.out.println($S)", ClassType("java.lang", "System"), "Hello, World!").
		Build()
	require.NoError(t, err)

	hello, err := NewClass("HelloWorld").
		AddModifiers(Public, Final).
		AddMethod(main).
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", hello))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"public final class HelloWorld {\n"+
		"  public static void main(String[] args) {\n"+
		"    System.out.println(\"Hello, World!\");\n"+
		"  }\n"+
		"}\n", render(t, file))
}

func TestJavaFileImports(t *testing.T) {
	t.Run("imports are sorted and deduplicated", func(t *testing.T) {
		fieldOf := func(pkg, name, fieldName string) *FieldSpec {
			field, err := NewField(ClassType(pkg, name), fieldName).Build()
			require.NoError(t, err)
			return field
		}
		spec, err := NewClass("Collisions").
			AddField(fieldOf("com.a", "Foo", "first")).
			AddField(fieldOf("com.b", "Foo", "second")).
			AddField(fieldOf("com.b", "Bar", "third")).
			Build()
		require.NoError(t, err)

		file := mustBuildFile(t, NewFile("com.example", spec))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"import com.a.Foo;\n"+
			"import com.b.Bar;\n"+
			"\n"+
			"class Collisions {\n"+
			"  Foo first;\n"+
			"\n"+
			"  com.b.Foo second;\n"+
			"\n"+
			"  Bar third;\n"+
			"}\n", render(t, file))
	})

	t.Run("same package names win simple name collisions", func(t *testing.T) {
		mine, err := NewField(ClassType("com.example", "Foo"), "mine").Build()
		require.NoError(t, err)
		theirs, err := NewField(ClassType("com.other", "Foo"), "theirs").Build()
		require.NoError(t, err)
		spec, err := NewClass("Collides").
			AddField(theirs).
			AddField(mine).
			Build()
		require.NoError(t, err)

		file := mustBuildFile(t, NewFile("com.example", spec))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"class Collides {\n"+
			"  com.other.Foo theirs;\n"+
			"\n"+
			"  Foo mine;\n"+
			"}\n", render(t, file))
	})

	t.Run("java.lang imports are emitted on request", func(t *testing.T) {
		field, err := NewField(StringType, "greeting").Build()
		require.NoError(t, err)
		spec, err := NewClass("Thing").AddField(field).Build()
		require.NoError(t, err)

		file := mustBuildFile(t, NewFile("com.example", spec).SkipJavaLangImports(false))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"import java.lang.String;\n"+
			"\n"+
			"class Thing {\n"+
			"  String greeting;\n"+
			"}\n", render(t, file))
	})

	t.Run("same package types need no import", func(t *testing.T) {
		field, err := NewField(ClassType("com.example", "Helper"), "helper").Build()
		require.NoError(t, err)
		spec, err := NewClass("Thing").AddField(field).Build()
		require.NoError(t, err)

		file := mustBuildFile(t, NewFile("com.example", spec))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"class Thing {\n"+
			"  Helper helper;\n"+
			"}\n", render(t, file))
	})

	t.Run("the default package renders without a package line", func(t *testing.T) {
		spec, err := NewClass("Thing").Build()
		require.NoError(t, err)
		file := mustBuildFile(t, NewFile("", spec))
		require.Equal(t, "class Thing {\n}\n", render(t, file))
	})
}

func TestJavaFileNestedTypes(t *testing.T) {
	inner, err := NewClass("Inner").Build()
	require.NoError(t, err)
	innerType := ClassType("com.example", "Outer", "Inner")

	newInner, err := NewMethod("newInner").
		Returns(innerType).
		AddStatement("return new $T()", innerType).
		Build()
	require.NoError(t, err)

	outer, err := NewClass("Outer").
		AddMethod(newInner).
		AddType(inner).
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", outer))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"class Outer {\n"+
		"  Inner newInner() {\n"+
		"    return new Inner();\n"+
		"  }\n"+
		"\n"+
		"  class Inner {\n"+
		"  }\n"+
		"}\n", render(t, file))
}

func TestJavaFileStaticImports(t *testing.T) {
	collections := ClassType("java.util", "Collections")

	mix, err := NewMethod("mix").
		AddStatement("$T.sort(list)", collections).
		AddStatement("$T.shuffle(list)", collections).
		Build()
	require.NoError(t, err)

	spec, err := NewClass("Util").AddMethod(mix).Build()
	require.NoError(t, err)

	t.Run("imported members drop their qualifier", func(t *testing.T) {
		file := mustBuildFile(t, NewFile("com.example", spec).
			AddStaticImport(collections, "sort"))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"import static java.util.Collections.sort;\n"+
			"\n"+
			"import java.util.Collections;\n"+
			"\n"+
			"class Util {\n"+
			"  void mix() {\n"+
			"    sort(list);\n"+
			"    Collections.shuffle(list);\n"+
			"  }\n"+
			"}\n", render(t, file))
	})

	t.Run("wildcard imports cover every member", func(t *testing.T) {
		file := mustBuildFile(t, NewFile("com.example", spec).
			AddStaticImport(collections, "*"))
		require.Equal(t, ""+
			"package com.example;\n"+
			"\n"+
			"import static java.util.Collections.*;\n"+
			"\n"+
			"class Util {\n"+
			"  void mix() {\n"+
			"    sort(list);\n"+
			"    shuffle(list);\n"+
			"  }\n"+
			"}\n", render(t, file))
	})
}

func TestJavaFileEnum(t *testing.T) {
	override, err := Annotation(ClassType("java.lang", "Override"))
	require.NoError(t, err)

	toString, err := NewMethod("toString").
		AddAnnotation(override).
		AddModifiers(Public).
		Returns(StringType).
		AddStatement("return $S", "avalanche!").
		Build()
	require.NoError(t, err)

	spec, err := NewEnum("Roshambo").
		AddModifiers(Public).
		AddEnumConstantWithBody("ROCK", NewAnonymousClass("$S", "fist").AddMethod(toString)).
		AddEnumConstantWithBody("SCISSORS", NewAnonymousClass("$S", "peace")).
		AddEnumConstant("PAPER").
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"public enum Roshambo {\n"+
		"  ROCK(\"fist\") {\n"+
		"    @Override\n"+
		"    public String toString() {\n"+
		"      return \"avalanche!\";\n"+
		"    }\n"+
		"  },\n"+
		"\n"+
		"  SCISSORS(\"peace\"),\n"+
		"\n"+
		"  PAPER\n"+
		"}\n", render(t, file))
}

func TestJavaFileInterface(t *testing.T) {
	shellCount, err := NewField(Int, "SHELL_COUNT", Public, Static, Final).
		Initializer("$L", 2).
		Build()
	require.NoError(t, err)

	crunch, err := NewMethod("crunch").AddModifiers(Public, Abstract).Build()
	require.NoError(t, err)

	spec, err := NewInterface("Taco").
		AddModifiers(Public).
		AddField(shellCount).
		AddMethod(crunch).
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"public interface Taco {\n"+
		"  int SHELL_COUNT = 2;\n"+
		"\n"+
		"  void crunch();\n"+
		"}\n", render(t, file))
}

func TestJavaFileAnonymousClass(t *testing.T) {
	comparator, err := ParameterizedType(ClassType("java.util", "Comparator"), StringType)
	require.NoError(t, err)
	override, err := Annotation(ClassType("java.lang", "Override"))
	require.NoError(t, err)

	compare, err := NewMethod("compare").
		AddAnnotation(override).
		AddModifiers(Public).
		Returns(Int).
		AddParameter(StringType, "a").
		AddParameter(StringType, "b").
		AddStatement("return a.length() - b.length()").
		Build()
	require.NoError(t, err)

	anon, err := NewAnonymousClass("").
		AddSuperinterface(comparator).
		AddMethod(compare).
		Build()
	require.NoError(t, err)

	byLength, err := NewField(comparator, "BY_LENGTH", Private, Static, Final).
		Initializer("$L", anon).
		Build()
	require.NoError(t, err)

	spec, err := NewClass("Strings").AddField(byLength).Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"import java.util.Comparator;\n"+
		"\n"+
		"class Strings {\n"+
		"  private static final Comparator<String> BY_LENGTH = new Comparator<String>() {\n"+
		"    @Override\n"+
		"    public int compare(String a, String b) {\n"+
		"      return a.length() - b.length();\n"+
		"    }\n"+
		"  };\n"+
		"}\n", render(t, file))
}

func TestJavaFileConstructorsAndInitializers(t *testing.T) {
	name, err := NewField(StringType, "name", Private, Final).Build()
	require.NoError(t, err)

	constructor, err := NewConstructor().
		AddModifiers(Public).
		AddParameter(StringType, "name").
		AddStatement("this.name = name").
		Build()
	require.NoError(t, err)

	count, err := NewField(Int, "count", Private, Static).Build()
	require.NoError(t, err)

	staticBlock, err := Statement("count = 0")
	require.NoError(t, err)

	spec, err := NewClass("Greeter").
		AddField(name).
		AddField(count).
		AddStaticBlock(staticBlock).
		AddMethod(constructor).
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"class Greeter {\n"+
		"  private static int count;\n"+
		"\n"+
		"  static {\n"+
		"    count = 0;\n"+
		"  }\n"+
		"\n"+
		"  private final String name;\n"+
		"\n"+
		"  public Greeter(String name) {\n"+
		"    this.name = name;\n"+
		"  }\n"+
		"}\n", render(t, file))
}

func TestJavaFileJavadocAndAnnotations(t *testing.T) {
	header, err := NewAnnotation(ClassType("com.example.http", "Header")).
		AddMember("name", "$S", "Accept").
		AddMember("value", "$S", "application/json").
		Build()
	require.NoError(t, err)

	greet, err := NewMethod("greet").
		AddJavadoc("Returns the greeting.\n").
		Returns(StringType).
		AddStatement("return $S", "hi").
		Build()
	require.NoError(t, err)

	spec, err := NewClass("Greetings").
		AddAnnotation(header).
		AddMethod(greet).
		Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	require.Equal(t, ""+
		"package com.example;\n"+
		"\n"+
		"import com.example.http.Header;\n"+
		"\n"+
		"@Header(\n"+
		"    name = \"Accept\",\n"+
		"    value = \"application/json\"\n"+
		")\n"+
		"class Greetings {\n"+
		"  /**\n"+
		"   * Returns the greeting.\n"+
		"   */\n"+
		"  String greet() {\n"+
		"    return \"hi\";\n"+
		"  }\n"+
		"}\n", render(t, file))
}

func TestJavaFileComment(t *testing.T) {
	spec, err := NewClass("Generated").Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec).
		AddFileComment("Generated, do not edit!"))
	require.Equal(t, ""+
		"// Generated, do not edit!\n"+
		"package com.example;\n"+
		"\n"+
		"class Generated {\n"+
		"}\n", render(t, file))
}

func TestJavaFileRenderStability(t *testing.T) {
	field, err := NewField(ClassType("com.a", "Foo"), "foo").Build()
	require.NoError(t, err)
	spec, err := NewClass("Stable").AddField(field).Build()
	require.NoError(t, err)

	file := mustBuildFile(t, NewFile("com.example", spec))
	first := render(t, file)
	second := render(t, file)
	require.Equal(t, first, second)
}

func TestJavaFileWriteFile(t *testing.T) {
	spec, err := NewClass("Thing").Build()
	require.NoError(t, err)
	file := mustBuildFile(t, NewFile("com.example.things", spec))

	dir := t.TempDir()
	path, err := file.WriteFile(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "com", "example", "things", "Thing.java"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, render(t, file), string(content))
}

func TestJavaFileValidation(t *testing.T) {
	spec, err := NewClass("Thing").Build()
	require.NoError(t, err)

	t.Run("requires a type", func(t *testing.T) {
		_, err := NewFile("com.example", nil).Build()
		require.Error(t, err)
	})

	t.Run("rejects anonymous top-level types", func(t *testing.T) {
		anon, err := NewAnonymousClass("").Build()
		require.NoError(t, err)
		_, err = NewFile("com.example", anon).Build()
		require.Error(t, err)
	})

	t.Run("rejects malformed package names", func(t *testing.T) {
		_, err := NewFile("com.1bad", spec).Build()
		require.Error(t, err)
	})

	t.Run("static imports need a class type", func(t *testing.T) {
		_, err := NewFile("com.example", spec).AddStaticImport(Int, "MAX").Build()
		require.Error(t, err)
	})

	t.Run("static imports need members", func(t *testing.T) {
		_, err := NewFile("com.example", spec).
			AddStaticImport(ClassType("java.lang", "Math")).
			Build()
		require.Error(t, err)
	})
}
