package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hocon/eval"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/token"
)

type obj = map[string]any
type arr = []any

type parseTest struct {
	in  string
	out any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``, out: obj{}},
		{in: "# only a comment\n\n", out: obj{}},
		{in: `x : 5`, out: obj{"x": 5.0}},
		{in: `{ x : 5 }`, out: obj{"x": 5.0}},
		{in: `{ x : 5, y : 6 }`, out: obj{"x": 5.0, "y": 6.0}},
		{in: "{ x : 5\r\n y : 6 }", out: obj{"x": 5.0, "y": 6.0}},
		{in: `{ x { y : 6 }}`, out: obj{"x": obj{"y": 6.0}}},
		{in: `x = 2.1`, out: obj{"x": 2.1}},
		{in: `x : a2.1`, out: obj{"x": "a2.1"}},
		{in: `x : -3`, out: obj{"x": -3.0}},
		{in: `x : 1.2.3`, out: obj{"x": "1.2.3"}},
		{
			in: "{    a: true,\n    b: false,\n    c: [1, true, false, hello]\n  }",
			out: obj{
				"a": true,
				"b": false,
				"c": arr{1.0, true, false, "hello"},
			},
		},
		{in: `a: null, b: 1`, out: obj{"a": nil, "b": 1.0}},
		{in: `x.y.z : 300`, out: obj{"x": obj{"y": obj{"z": 300.0}}}},
		{
			in:  `x.y.z { a: 'hello' , b: 'it\'s me' }`,
			out: obj{"x": obj{"y": obj{"z": obj{"a": "hello", "b": "it's me"}}}},
		},
		{in: `[2,5]`, out: arr{2.0, 5.0}},
		{in: `[]`, out: arr{}},
		{in: `x: [2,5]`, out: obj{"x": arr{2.0, 5.0}}},
		{in: `{x:['a','b',{c:3},5]}`, out: obj{"x": arr{"a", "b", obj{"c": 3.0}, 5.0}}},
		{in: "{x : [\n  {\n    c:3\n  }\n]}", out: obj{"x": arr{obj{"c": 3.0}}}},
		{in: "{x : [1,2,3,], y: 2}", out: obj{"x": arr{1.0, 2.0, 3.0}, "y": 2.0}},
		{in: "{\n    a: [1\n    2\n    3]\n  }", out: obj{"a": arr{1.0, 2.0, 3.0}}},
		{in: "{\n    a: [ 1 2 3 4 ]\n  }", out: obj{"a": arr{"1 2 3 4"}}},
		{in: "{ a: [1, 2, 3, 4] }", out: obj{"a": arr{1.0, 2.0, 3.0, 4.0}}},
		{
			in:  "{\n    a: [[1,2], [9,8,7,6]],\n    b: { x:1, y:[1, { c: [12, 34] }] }\n  }",
			out: obj{"a": arr{arr{1.0, 2.0}, arr{9.0, 8.0, 7.0, 6.0}}, "b": obj{"x": 1.0, "y": arr{1.0, obj{"c": arr{12.0, 34.0}}}}},
		},
		{in: `{ x: 5, y: ${x}}`, out: obj{"x": 5.0, "y": "${x}"}},
		{in: `a: ${"b.c".d}`, out: obj{"a": `${"b.c".d}`}},
		{in: `a: ${?b}`, out: obj{"a": "${b}"}},
		{
			in:  "{\n      # this isn't a field\n      x : 10  // This also isn't a field\n    }",
			out: obj{"x": 10.0},
		},
		{
			in:  "{\n      x : 10# this isn't a field\n      y : 10 # this isn't a field\n      // This is just another comment\n    }",
			out: obj{"x": 10.0, "y": 10.0},
		},
		{
			in:  "{\n    a: 'This is a string', // here is \"great\" comment with 'quotes',\n    b: 'and another str' # And 'yet' another comment\n  }",
			out: obj{"a": "This is a string", "b": "and another str"},
		},
		{
			in:  "{\n      x.fudge { fudginess: 10, tastiness: 90 }\n      x.fudge { fudginess: 100, softness: 40 }\n    }",
			out: obj{"x": obj{"fudge": obj{"fudginess": 100.0, "tastiness": 90.0, "softness": 40.0}}},
		},
		{
			in:  "myUrl = 'http://www.hoconjs.com/kiss/my?zenthia=please#ok' //some comment",
			out: obj{"myUrl": "http://www.hoconjs.com/kiss/my?zenthia=please#ok"},
		},
		{
			in:  "{\n    a: \"\"\"This is\na multiline string.\n...and it even has some \"quotes\" in it.\"\"\"\n  }",
			out: obj{"a": "This is\na multiline string.\n...and it even has some \"quotes\" in it."},
		},
		{in: "{\n    a: 42,\n    a b : 3\n  }", out: obj{"a": 42.0, "a b": 3.0}},
		{in: `{ a.  ab c : 42 }`, out: obj{"a": obj{"  ab c": 42.0}}},
		{in: `"N.M" : 2`, out: obj{"N.M": 2.0}},
		{in: `"" : 2`, out: obj{"": 2.0}},
		{in: `a: "hello" world`, out: obj{"a": "hello world"}},
		{in: `a: foo   bar`, out: obj{"a": "foo bar"}},
		{in: `a: "5"`, out: obj{"a": "5"}},
		{in: `a: "true"`, out: obj{"a": "true"}},
		{in: "a: 1\na: 2", out: obj{"a": 2.0}},
		{in: "a: {b: 1}\na: 2", out: obj{"a": 2.0}},
		{in: "a.b: 1\na.c: 2", out: obj{"a": obj{"b": 1.0, "c": 2.0}}},
		{in: `5`, out: 5.0},
		{in: `"x"`, out: "x"},
		{in: `true`, out: true},
		{in: "hello\n", out: "hello"},
		{in: "# head\n42 // tail", out: 42.0},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(pt.out, eval.ToJSONAny(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeyOrder(t *testing.T) {
	node, err := Parse([]byte("b: 1\na { y: 1 }\nc: 2\na { x: 2 }"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y", "x"}, node.Get("a").Keys()); diff != "" {
		t.Errorf("a keys (-want +got):\n%s", diff)
	}
}

func TestParseSubst(t *testing.T) {
	node, err := Parse([]byte(`a: ${ "x.y" .z }`))
	if err != nil {
		t.Fatal(err)
	}
	a := node.Get("a")
	if a.Type != ir.SubstType {
		t.Fatalf("got %s", a.Type)
	}
	if diff := cmp.Diff([]string{"x.y ", "z"}, a.Path); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
}

func TestScalarTyping(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want any
	}{
		{"5", 5.0},
		{"2.1", 2.1},
		{"-0.5", -0.5},
		{"a2.1", "a2.1"},
		{"2.", "2."},
		{".5", ".5"},
		{"1e3", "1e3"},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"True", "True"},
		{"NULL", "NULL"},
	} {
		got := eval.ToJSONAny(ClassifyScalar(tc.in))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
	}
	if n := ClassifyScalar("2.10"); n.Number != "2.10" {
		t.Errorf("number spelling %q", n.Number)
	}
}

type errTest struct {
	in   string
	line int
	col  int
}

func TestParseSyntaxErrors(t *testing.T) {
	ets := []errTest{
		{in: `{ a: 1`, line: 1, col: 7},
		{in: `[1, 2`, line: 1, col: 6},
		{in: `a: 1 }`, line: 1, col: 6},
		{in: "a: ]", line: 1, col: 4},
		{in: "a:\nb: 2", line: 1, col: 3},
		{in: "a b [1]", line: 1, col: 5},
		{in: "a.b. : 1", line: 1, col: 1},
		{in: "..a : 1", line: 1, col: 1},
		{in: "{a: 1} b", line: 1, col: 8},
		{in: "a: ${b} c", line: 1, col: 9},
		{in: "a: c ${b}", line: 1, col: 6},
		{in: "a: [1,,2]", line: 1, col: 7},
		{in: "a: {b: 1,,}", line: 1, col: 10},
		{in: "a: 1\n: 2", line: 2, col: 1},
		{in: "a ${b}: 2", line: 1, col: 3},
		{in: "a: ${x{}", line: 1, col: 4},
		{in: "port 8080", line: 1, col: 10},
		{in: "hello world", line: 1, col: 12},
		{in: "5\n6", line: 1, col: 2},
		{in: "${a} b", line: 1, col: 1},
	}
	for _, et := range ets {
		t.Run(et.in, func(t *testing.T) {
			_, err := Parse([]byte(et.in))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("got %v, want a parse error", err)
			}
			var se *SyntaxErr
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want a syntax error", err)
			}
			if l, c := se.Pos.LineCol(); l != et.line || c != et.col {
				t.Errorf("got %d:%d want %d:%d (%v)", l, c, et.line, et.col, err)
			}
		})
	}
}

func TestParseLexErrors(t *testing.T) {
	for _, in := range []string{
		`a: "abc`,
		`a: """abc`,
		`a: ${b`,
		`a: ${}`,
	} {
		_, err := Parse([]byte(in), ParseFilename("x.conf"))
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v, want a parse error", in, err)
			continue
		}
		var te *token.TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: got %v, want a tokenize error", in, err)
			continue
		}
		if te.Pos.D.Name() != "x.conf" {
			t.Errorf("%q: got name %q", in, te.Pos.D.Name())
		}
		if IsSyntaxErr(err) {
			t.Errorf("%q: lexical error reported as syntax error", in)
		}
	}
}

func TestParseMaxDepth(t *testing.T) {
	if _, err := Parse([]byte("a: [[[1]]]"), ParseMaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
	if _, err := Parse([]byte("a: [[[[1]]]]"), ParseMaxDepth(3)); !IsSyntaxErr(err) {
		t.Errorf("depth 4: got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte("a {\n  b: [1, x]\n}\n"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	b := node.GetPath([]string{"a", "b"})
	for _, tc := range []struct {
		node      *ir.Node
		line, col int
	}{
		{node.Get("a"), 1, 3},
		{b, 2, 6},
		{b.Values[1], 2, 10},
	} {
		p := pos[tc.node]
		if p == nil {
			t.Errorf("no position for %s", tc.node.KPath())
			continue
		}
		if l, c := p.LineCol(); l != tc.line || c != tc.col {
			t.Errorf("%s: got %d:%d want %d:%d", tc.node.KPath(), l, c, tc.line, tc.col)
		}
	}
}

func TestParseMergedPositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte("a { x: 1 }\na { y: 2 }"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	err = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			if _, ok := pos[y]; !ok {
				t.Errorf("no position for %q", y.KPath())
			}
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestParsePath(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{` "N.M".x `, []string{"N.M", "x"}},
		{"a b.c", []string{"a b", "c"}},
	} {
		got, err := ParsePath(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, in := range []string{"", "a..b", "a:b", "a.", `"x`} {
		if _, err := ParsePath(in); !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}
