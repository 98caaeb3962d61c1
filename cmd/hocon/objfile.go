package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-hocon/dirbuild"
	"github.com/signadot/go-hocon/eval"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/merge"
	"github.com/signadot/go-hocon/parse"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func parseArg(cc *cli.Context, path string) (*ir.Node, error) {
	if path != "-" {
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			dir, err := dirbuild.OpenDir(path)
			if err != nil {
				return nil, err
			}
			return dir.Load()
		}
	}
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	name := path
	if path == "-" {
		name = "<stdin>"
	}
	node, err := parse.Parse(d, parse.ParseFilename(name))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return node, nil
}

// loadConfig parses files, merges them in order so later files refine
// earlier ones, applies $HOCON_ENV and resolves the result unless raw is
// set. A directory stands for its config files and no files means stdin.
func loadConfig(cc *cli.Context, files []string, raw bool) (*ir.Node, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res *ir.Node
	for _, file := range files {
		node, err := parseArg(cc, file)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = node
			continue
		}
		res = merge.Merge(res, node)
	}
	res, err := dirbuild.ApplyEnv(res)
	if err != nil {
		return nil, err
	}
	if raw {
		return res, nil
	}
	return eval.Resolve(res), nil
}
