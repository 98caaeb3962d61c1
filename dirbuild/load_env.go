package dirbuild

import (
	"fmt"
	"os"

	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/merge"
	"github.com/signadot/go-hocon/parse"
)

const (
	EnvEnv = "HOCON_ENV"
)

// LoadEnv parses the overrides in $HOCON_ENV, for example
// `server.port = 9090`. It returns nil when the variable is unset.
func LoadEnv() (*ir.Node, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	env, err := parse.Parse([]byte(envEnv), parse.ParseFilename("$"+EnvEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if env.Type != ir.ObjectType {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvEnv, env.Type)
	}
	if debug.LoadEnv() {
		debug.Logf("loaded env from env: %s\n", encode.MustString(env))
	}
	return env, nil
}

// ApplyEnv merges the overrides in $HOCON_ENV over node.
func ApplyEnv(node *ir.Node) (*ir.Node, error) {
	env, err := LoadEnv()
	if err != nil || env == nil {
		return node, err
	}
	return merge.Merge(node, env), nil
}
