// Package debug holds env-var gated trace switches for the editor
// pipeline.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Match  bool
	Edit   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("EC_DEBUG_TOKENS")
	d.Match = boolEnv("EC_DEBUG_MATCH")
	d.Edit = boolEnv("EC_DEBUG_EDIT")
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
func Match() bool {
	return d.Match
}
func Edit() bool {
	return d.Edit
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
