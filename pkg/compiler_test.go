package arrowc

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompileString(t *testing.T) {
	cases := []struct {
		source string
		expect string
	}{
		{
			"(x, y) => x + y",
			"function (x, y) {\n\treturn x + y\n}",
		},
		{
			"(n) => n",
			"function (n) {\n\treturn n\n}",
		},
		{
			"(a, b, c) => a + b * c / 2",
			"function (a, b, c) {\n\treturn a + b * c / 2\n}",
		},
		{
			"(a) => a - 1 (b) => b * b",
			"function (a) {\n\treturn a - 1\n}\nfunction (b) {\n\treturn b * b\n}",
		},
		{
			"() => 1 + 2",
			"function () {\n\treturn 1 + 2\n}",
		},
		{
			// An arrow-less parameter list keeps its empty return bare
			"(x)",
			"function (x) {\n\treturn\n}",
		},
	}

	c := NewCompiler()
	for _, tc := range cases {
		got, err := c.CompileString(tc.source)

		assert.NoError(t, err)
		assert.Equal(t, tc.expect, got)
	}
}

func TestCompileStringErrors(t *testing.T) {
	cases := []struct {
		source string
		expect error
	}{
		{"(x)=x", &SyntaxError{}},
		{"(x) => x % 2", &SyntaxError{}},
		{"(x => x", &ParseError{}},
		{"(x, y", &ParseError{}},
		{") => x", &ParseError{}},
		{"=> x", &ParseError{}},
	}

	c := NewCompiler()
	for _, tc := range cases {
		got, err := c.CompileString(tc.source)

		assert.Error(t, err, tc.source)
		assert.IsType(t, tc.expect, err, tc.source)
		assert.Empty(t, got, tc.source)
	}
}

func TestCompileFromReader(t *testing.T) {
	got, err := NewCompiler().CompileFromReader(strings.NewReader("(n) => n"))

	assert.NoError(t, err)
	assert.Equal(t, "function (n) {\n\treturn n\n}", got)
}

func TestFailedCompileReleasesLexer(t *testing.T) {
	c := NewCompiler()

	before := runtime.NumGoroutine()
	for i := 0; i < 100; i++ {
		_, err := c.CompileString(") => x + y + z")
		assert.Error(t, err)

		_, err = c.CompileString("(x)=x")
		assert.Error(t, err)
	}

	// Give the drained lexers a moment to exit
	var after int
	for i := 0; i < 100; i++ {
		after = runtime.NumGoroutine()
		if after <= before+2 {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	assert.LessOrEqual(t, after, before+2)
}

func TestCompileIsDeterministic(t *testing.T) {
	c := NewCompiler()

	first, err := c.CompileString("(x, y) => x + y")
	assert.NoError(t, err)
	assert.Contains(t, first, "function (")

	for i := 0; i < 10; i++ {
		got, err := c.CompileString("(x, y) => x + y")

		assert.NoError(t, err)
		assert.Equal(t, first, got)
	}
}
