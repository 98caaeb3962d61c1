package eval

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hocon/ir"
)

func TestMarshalJSON(t *testing.T) {
	node := kv("a", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null(), ir.FromBool(true)}), "b", kv("c", ir.FromString("x")))
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":[1,null,true],"b":{"c":"x"}}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestFromJSONAny(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`{"b":[1,"x",null],"a":{"c":false}}`), &v); err != nil {
		t.Fatal(err)
	}
	node, err := FromJSONAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v, ToJSONAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromJSONAny(struct{}{}); err == nil {
		t.Error("expected error")
	}
}
