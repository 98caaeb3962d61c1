package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/go-hocon/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`42`,
		`3.14`,
		`""`,
		`"hello"`,
		`hello`,

		// Arrays
		`[]`,
		`[1, 2, 3]`,
		`[1 2 3]`,
		`[[nested], [arrays]]`,

		// Objects
		`{}`,
		`{foo: bar}`,
		`a = 1, b = 2`,
		`a.b.c: 1`,
		`x { y: 1 }`,
		`"a.b": 1`,

		// Substitutions
		`a: ${b}, b: 1`,
		`a: ${"x.y".z}`,

		// Strings
		`"with\nnewline"`,
		`'it\'s'`,
		"a: \"\"\"multi\nline\"\"\"",

		// Comments
		"# comment\na: 1",
		`a: 1 // trailing`,
		`a: "http://x#y"`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			return
		}

		var buf bytes.Buffer
		err = encode.Encode(node, &buf)
		if err != nil {
			return
		}

		Parse(buf.Bytes())
	})
}
