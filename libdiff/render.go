package libdiff

import (
	"io"

	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/ir"
)

// Render writes d as HOCON. A nil diff renders as nothing.
func Render(d *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	if d == nil {
		return nil
	}
	return encode.Encode(d, w, opts...)
}
