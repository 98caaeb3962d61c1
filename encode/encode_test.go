package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/go-hocon/format"
	"github.com/signadot/go-hocon/ir"
)

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		kv("name", ir.FromString("alice")),
		kv("port", ir.FromInt(8080)),
		kv("server", ir.FromKeyVals([]ir.KeyVal{
			kv("host", ir.FromString("example.com")),
			kv("tls", ir.FromBool(true)),
		})),
		kv("tags", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromFloat(1.5)})),
		kv("none", ir.Null()),
		kv("empty", ir.FromKeyVals(nil)),
	})
}

func encodeText(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeHOCON(t *testing.T) {
	want := `name = alice
port = 8080
server {
  host = "example.com"
  tls = true
}
tags = [
  a
  1.5
]
none = null
empty = {}
`
	got := encodeText(t, sample())
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeHOCONWire(t *testing.T) {
	want := `{name = alice, port = 8080, server {host = "example.com", tls = true}, tags = [a, 1.5], none = null, empty = {}}`
	got := encodeText(t, sample(), EncodeWire(true))
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	want := `{
    "name": "alice",
    "port": 8080,
    "server": {
        "host": "example.com",
        "tls": true
    },
    "tags": [
        "a",
        1.5
    ],
    "none": null,
    "empty": {}
}
`
	got := encodeText(t, sample(), EncodeFormat(format.JSONFormat), EncodeIndent(4))
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	wire := encodeText(t, sample(), EncodeFormat(format.JSONFormat), EncodeWire(true))
	wantWire := `{"name":"alice","port":8080,"server":{"host":"example.com","tls":true},"tags":["a",1.5],"none":null,"empty":{}}`
	if wire != wantWire {
		t.Errorf("got\n%s\nwant\n%s", wire, wantWire)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := encodeText(t, sample(), EncodeFormat(format.YAMLFormat))
	for _, want := range []string{"name: alice\n", "port: 8080\n", "server:\n  host: example.com\n  tls: true\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q not in\n%s", want, got)
		}
	}
	if strings.Index(got, "name:") > strings.Index(got, "server:") {
		t.Errorf("field order lost:\n%s", got)
	}
}

func TestEncodeRoot(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromKeyVals(nil), "{}\n"},
		{ir.FromSlice(nil), "[]\n"},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}), "[\n  1\n  2\n]\n"},
		{ir.FromString("x"), "x\n"},
		{ir.FromInt(-3), "-3\n"},
		{nil, "null\n"},
	}
	for _, tc := range tests {
		got := encodeText(t, tc.node)
		if got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"true", `"true"`},
		{"42", `"42"`},
		{"a b", `"a b"`},
		{"a.b", `"a.b"`},
		{"${x}", `"${x}"`},
		{"http://x", `"http://x"`},
		{"line1\nline2", "\"\"\"line1\nline2\"\"\""},
		{"ends\nwith\"", `"ends\nwith\""`},
		{"tab\there", `"tab\there"`},
	}
	for _, tc := range tests {
		got := encodeText(t, ir.FromKeyVals([]ir.KeyVal{kv("k", ir.FromString(tc.in))}))
		want := "k = " + tc.want + "\n"
		if got != want {
			t.Errorf("%q: got %q want %q", tc.in, got, want)
		}
	}
}

func TestEncodeKeys(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		kv("a.b", ir.FromInt(1)),
		kv("", ir.FromInt(2)),
		kv("0", ir.FromInt(3)),
		kv("with space", ir.FromInt(4)),
	})
	want := "\"a.b\" = 1\n\"\" = 2\n0 = 3\n\"with space\" = 4\n"
	got := encodeText(t, node)
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeNumbers(t *testing.T) {
	src := ir.FromFloat(10)
	src.Number = "010"
	tests := []struct {
		node *ir.Node
		f    format.Format
		want string
	}{
		{src, format.HOCONFormat, "010"},
		{src, format.JSONFormat, "10"},
		{ir.FromFloat(0.25), format.HOCONFormat, "0.25"},
		{ir.FromFloat(1e21), format.JSONFormat, "1000000000000000000000"},
	}
	for _, tc := range tests {
		got := encodeText(t, tc.node, EncodeFormat(tc.f), EncodeWire(true))
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.f, got, tc.want)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		node *ir.Node
		f    format.Format
	}{
		{ir.FromFloat(math.NaN()), format.HOCONFormat},
		{ir.FromFloat(math.Inf(1)), format.JSONFormat},
		{ir.FromFloat(math.Inf(-1)), format.YAMLFormat},
		{ir.FromSubst([]string{"a"}), format.JSONFormat},
		{ir.FromSlice([]*ir.Node{ir.FromSubst([]string{"a"})}), format.YAMLFormat},
	}
	for _, tc := range tests {
		err := Encode(tc.node, bytes.NewBuffer(nil), EncodeFormat(tc.f))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: got %v want %v", tc.f, err, ErrEncoding)
		}
	}
}

func TestEncodeSubst(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromSubst([]string{"x", "y.z"})),
	})
	want := "a = ${x.\"y.z\"}\n"
	got := encodeText(t, node)
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	got := encodeText(t, ir.FromKeyVals([]ir.KeyVal{kv("n", ir.FromInt(1))}), EncodeColors(c))
	if got != "n = <1>\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeWire(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
	if f := FormatFromOpts(); f != format.HOCONFormat {
		t.Errorf("got %s", f)
	}
}

func TestMustString(t *testing.T) {
	got := MustString(ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))}))
	if got != "a = 1" {
		t.Errorf("got %q", got)
	}
}
