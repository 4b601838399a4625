package attrs

import "strings"

// TypeFlags qualify a type constraint in emitted assembly. The
// vocabulary is context-free: a bit means the same thing wherever a
// type constraint appears.
type TypeFlags uint16

const (
	TypeNullable TypeFlags = 1 << 0
	// Bit 1 is retired and must stay unassigned.
	TypeExtendedHint    TypeFlags = 1 << 2
	TypeTypeVar         TypeFlags = 1 << 3
	TypeSoft            TypeFlags = 1 << 4
	TypeTypeConstant    TypeFlags = 1 << 5
	TypeResolved        TypeFlags = 1 << 6
	TypeDisplayNullable TypeFlags = 1 << 8
	TypeUpperBound      TypeFlags = 1 << 9
)

// Output order. Append only, same contract as attrRegistry.
var typeFlagNames = []struct {
	flag TypeFlags
	name string
}{
	{TypeNullable, "nullable"},
	{TypeExtendedHint, "extended_hint"},
	{TypeTypeVar, "type_var"},
	{TypeSoft, "soft"},
	{TypeTypeConstant, "type_constant"},
	{TypeResolved, "resolved"},
	{TypeDisplayNullable, "display_nullable"},
	{TypeUpperBound, "upper_bound"},
}

// Tokens returns the names of the set flags in fixed output order.
// Unassigned bits are ignored.
func (f TypeFlags) Tokens() []string {
	var out []string
	for _, e := range typeFlagNames {
		if f&e.flag != 0 {
			out = append(out, e.name)
		}
	}
	return out
}

// String renders the set flags space-separated; zero yields "".
func (f TypeFlags) String() string {
	return strings.Join(f.Tokens(), " ")
}
