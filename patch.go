package hocon

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/format"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to cfg. cfg must be resolved.
// Objects in the result have their keys in sorted order.
func Patch(cfg *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := toJSON(cfg)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	return fromJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to cfg. cfg must be
// resolved.
func MergePatch(cfg *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := toJSON(cfg)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return fromJSON(out)
}

func toJSON(cfg *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(cfg, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSON(d []byte) (*ir.Node, error) {
	if debug.Merge() {
		debug.Logf("patched %s\n", d)
	}
	res, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("patch result: %w", err)
	}
	return res, nil
}
