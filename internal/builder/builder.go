// Package builder implements the staged statement builders. Each builder is
// a two-phase draft: a constructor fixes the dialect and the structurally
// mandatory fields, fluent setters collect the rest, and Build validates the
// draft and renders it. Build is non-consuming and idempotent; rendering the
// same draft twice yields byte-identical SQL and an identical parameter
// sequence, because the parameter list is rebuilt on every call.
package builder

import (
	"github.com/hlop3z/sqlforge/internal/value"
)

// Statement is the boundary contract consumed by the execution layer:
// a single SQL statement and its parameters in exact positional binding
// order. The Nth placeholder in SQL always corresponds to Args[N-1].
type Statement struct {
	SQL  string
	Args []value.Value
}

// NativeArgs returns the parameters converted for driver binding.
func (s Statement) NativeArgs() []any {
	out := make([]any, len(s.Args))
	for i, v := range s.Args {
		out[i] = v.Native()
	}
	return out
}
