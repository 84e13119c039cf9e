package parser_test

import (
	"testing"

	"bennypowers.dev/shadycss/parser"
)

// FuzzParse asserts totality and range integrity for arbitrary input: every
// byte sequence must parse without panicking into a stylesheet whose ranges
// are in bounds, ordered, and faithful to the source text.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		" \t\n",
		"a: b;",
		"a:b",
		"a:;",
		".a .b { color: red; }",
		"--foo: { color: red; };",
		"@media (min-width: 1px) { .a {} }",
		"@import \"foo.css\";",
		"@",
		"@;",
		"} weird ; .a{}",
		".a { color: red;",
		"/* unterminated",
		"\"unterminated",
		"a: calc((1px + 2px) * 3);",
		"x {;}",
		":host > *, .x:hover { a: b; }",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, css string) {
		sheet := parser.Parse(css)
		checkInvariants(t, css, sheet)
	})
}
