package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Merge   bool
	Resolve bool
	LoadEnv bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("HOCON_DEBUG_TOKENS")
	d.Merge = boolEnv("HOCON_DEBUG_MERGE")
	d.Resolve = boolEnv("HOCON_DEBUG_RESOLVE")
	d.LoadEnv = boolEnv("HOCON_DEBUG_LOAD_ENV")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Merge() bool {
	return d.Merge
}
func Resolve() bool {
	return d.Resolve
}
func LoadEnv() bool {
	return d.LoadEnv
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
