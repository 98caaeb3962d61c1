// Package dirbuild loads a directory of configuration files as one
// layered configuration.
package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/format"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/merge"
	"github.com/signadot/go-hocon/parse"
)

// Suffixes are the file name suffixes a Dir picks up.
var Suffixes = []string{format.HOCONFormat.Suffix(), format.JSONFormat.Suffix()}

// Dir is a configuration directory. Its files are merged in lexical
// order, so 10-prod.conf refines 00-base.conf.
type Dir struct {
	Root  string
	Files []string
}

func OpenDir(path string) (*Dir, error) {
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	dir := &Dir{Root: path}
	for _, ent := range ents {
		if ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		if !slices.Contains(Suffixes, filepath.Ext(ent.Name())) {
			continue
		}
		dir.Files = append(dir.Files, ent.Name())
	}
	if len(dir.Files) == 0 {
		return nil, fmt.Errorf("could not find any of *{%s} in %q", strings.Join(Suffixes, ","), path)
	}
	slices.Sort(dir.Files)
	return dir, nil
}

// Load parses and merges the files of dir. Substitutions are left for
// the caller to resolve, so they may refer to keys from any file.
func (dir *Dir) Load() (*ir.Node, error) {
	var res *ir.Node
	for _, name := range dir.Files {
		p := filepath.Join(dir.Root, name)
		d, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", p, err)
		}
		node, err := parse.Parse(d, parse.ParseFilename(p))
		if err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", p, err)
		}
		if res == nil {
			res = node
			continue
		}
		res = merge.Merge(res, node)
	}
	if debug.LoadEnv() {
		debug.Logf("loaded %s: %s\n", dir.Root, encode.MustString(res))
	}
	return res, nil
}
