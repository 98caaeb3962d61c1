// Package gomap decodes configuration into Go values.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/eval"
	"github.com/signadot/go-hocon/format"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/parse"
)

type fromOpts struct {
	filename string
	strict   bool
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if do.filename != "" {
		res = append(res, parse.ParseFilename(do.filename))
	}
	return res
}

type FromOption func(*fromOpts)

func LoadFilename(name string) FromOption { return func(o *fromOpts) { o.filename = name } }

// LoadStrict makes keys that match no struct field an error.
func LoadStrict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// IRFromer is implemented by values that decode themselves from a
// resolved tree.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// Load parses and resolves d and stores the result in p. Struct fields
// are matched with `json` tags.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return fromIR(eval.Resolve(node), p, do)
}

// FromIR stores the resolved tree node in p.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	return fromIR(node, p, do)
}

func fromIR(node *ir.Node, p any, do *fromOpts) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	b := bytes.NewBuffer(nil)
	if err := encode.Encode(node, b, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return err
	}
	dec := json.NewDecoder(b)
	dec.UseNumber()
	if do.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("could not decode into %T: %w", p, err)
	}
	return nil
}
