package ir

import (
	"errors"
	"testing"
)

func TestNode_KPath(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "root node",
			node: FromMap(map[string]*Node{}),
			want: "",
		},
		{
			name: "simple object field",
			node: FromMap(map[string]*Node{
				"a": FromString("value"),
			}).Values[0],
			want: "a",
		},
		{
			name: "nested object field",
			node: FromMap(map[string]*Node{
				"a": FromMap(map[string]*Node{
					"b": FromString("value"),
				}),
			}).Values[0].Values[0],
			want: "a.b",
		},
		{
			name: "array element",
			node: FromSlice([]*Node{
				FromString("first"),
				FromString("second"),
			}).Values[1],
			want: "[1]",
		},
		{
			name: "nested array element",
			node: FromMap(map[string]*Node{
				"arr": FromSlice([]*Node{
					FromString("first"),
					FromString("second"),
				}),
			}).Values[0].Values[1],
			want: "arr[1]",
		},
		{
			name: "quoted field",
			node: FromMap(map[string]*Node{
				"x": FromMap(map[string]*Node{
					"N.M": FromInt(2),
				}),
			}).Values[0].Values[0],
			want: `x."N.M"`,
		},
		{
			name: "numeric field",
			node: FromMap(map[string]*Node{
				"10": FromInt(2),
			}).Values[0],
			want: `10`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.KPath(); got != tt.want {
				t.Errorf("KPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	root := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{
			"b": FromInt(1),
		}),
		"arr": FromSlice([]*Node{FromInt(1)}),
	})
	if n := root.GetPath([]string{"a", "b"}); n == nil || n.Float64 != 1 {
		t.Errorf("got %v", n)
	}
	if n := root.GetPath(nil); n != root {
		t.Error("empty path is not root")
	}
	if n := root.GetPath([]string{"a", "c"}); n != nil {
		t.Errorf("got %v", n)
	}
	if n := root.GetPath([]string{"arr", "0"}); n != nil {
		t.Errorf("array index resolved to %v", n)
	}
	if _, err := root.MustGetPath([]string{"a", "c"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if _, err := root.MustGetPath([]string{"arr", "0"}); !errors.Is(err, ErrNotObject) {
		t.Errorf("got %v", err)
	}
}
