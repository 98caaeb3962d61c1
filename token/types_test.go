package token

import (
	"testing"
)

type tsTest struct {
	in, out string
}

func TestTypesString(t *testing.T) {
	var tss = []tsTest{
		{in: `"abc"`, out: `abc`},
		{in: `"\"'"`, out: `"'`},
		{in: `'"'`, out: `"`},
		{in: `'it\'s me'`, out: `it's me`},
		{in: `"\t"`, out: "\t"},
		{in: `'∞'`, out: "∞"},
		{in: `"a\qb"`, out: `a\qb`},
		{in: `"http://x.org/#frag"`, out: `http://x.org/#frag`},
	}
	for _, ts := range tss {
		toks, err := Tokenize(nil, []byte(ts.in))
		if err != nil {
			t.Error(err)
			continue
		}
		if toks[0].Type != TString {
			t.Errorf("%s: got %s want TString", ts.in, toks[0].Type)
		}
		if ts.out != toks[0].String() {
			t.Errorf("got %q want %q", toks[0].String(), ts.out)
		}
	}
}

func TestTypesMString(t *testing.T) {
	var mlts = []tsTest{
		{in: `"""abc"""`, out: "abc"},
		{in: "\"\"\"\n  abc\n  def\n\"\"\"", out: "\n  abc\n  def\n"},
		{in: `"""say "hi" \n"""`, out: `say "hi" \n`},
		{in: `"""a # b // c"""`, out: `a # b // c`},
	}
	for _, mlt := range mlts {
		toks, err := Tokenize(nil, []byte(mlt.in))
		if err != nil {
			t.Error(err)
			continue
		}
		if toks[0].Type != TMString {
			t.Errorf("%q: got %s want TMString", mlt.in, toks[0].Type)
			continue
		}
		if mlt.out != toks[0].String() {
			t.Errorf("got %q want %q", toks[0].String(), mlt.out)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if TSubst.String() != "TSubst" {
		t.Errorf("got %s", TSubst)
	}
	if s := TokenType(99).String(); s != "TokenType(99)" {
		t.Errorf("got %s", s)
	}
}
