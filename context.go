package attrs

import (
	"strings"

	"github.com/wippyai/hhbc-attrs/errors"
)

// Context identifies the kind of declaration an attribute mask
// decorates. Attribute bits mean different things depending on
// context; nothing about a bit is self-describing until it is paired
// with one of these.
//
// Each value is a single bit so registry entries can be tagged as
// valid in several contexts at once. Combinations are bitwise unions.
type Context uint8

const (
	Class       Context = 0x1
	Func        Context = 0x2
	Prop        Context = 0x4
	TraitImport Context = 0x8
	Alias       Context = 0x10
	Parameter   Context = 0x20
	Constant    Context = 0x40
)

var contextNames = []struct {
	ctx  Context
	name string
}{
	{Class, "class"},
	{Func, "func"},
	{Prop, "prop"},
	{TraitImport, "trait_import"},
	{Alias, "alias"},
	{Parameter, "parameter"},
	{Constant, "constant"},
}

// String renders the context for diagnostics. Union values are joined
// with '|' in declaration order.
func (c Context) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, e := range contextNames {
		if c&e.ctx != 0 {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ParseContext resolves a single context name back to its value.
// It exists for tools that take a context on the command line; the
// codec itself never parses text.
func ParseContext(name string) (Context, error) {
	for _, e := range contextNames {
		if e.name == name {
			return e.ctx, nil
		}
	}
	return 0, errors.UnknownContext(name)
}
