package attrs

import "strings"

// CallFlags describe a single call site in emitted assembly. Like
// TypeFlags the vocabulary is context-free, but it lives in its own
// bit domain and evolves independently, so the two are never merged.
type CallFlags uint16

const (
	CallHasUnpack            CallFlags = 1 << 0
	CallHasGenerics          CallFlags = 1 << 1
	CallLockWhileUnwinding   CallFlags = 1 << 2
	CallSkipRepack           CallFlags = 1 << 3
	CallSkipCoeffectsCheck   CallFlags = 1 << 4
	CallEnforceMutableReturn CallFlags = 1 << 5
	CallEnforceReadonlyThis  CallFlags = 1 << 6
	CallExplicitContext      CallFlags = 1 << 7
	CallHasInOut             CallFlags = 1 << 8
	CallEnforceInOut         CallFlags = 1 << 9
	CallEnforceReadonly      CallFlags = 1 << 10
	CallHasAsyncEagerOffset  CallFlags = 1 << 11
)

// Output order. Append only, same contract as attrRegistry.
var callFlagNames = []struct {
	flag CallFlags
	name string
}{
	{CallHasUnpack, "has_unpack"},
	{CallHasGenerics, "has_generics"},
	{CallLockWhileUnwinding, "lock_while_unwinding"},
	{CallSkipRepack, "skip_repack"},
	{CallSkipCoeffectsCheck, "skip_coeffects_check"},
	{CallEnforceMutableReturn, "enforce_mutable_return"},
	{CallEnforceReadonlyThis, "enforce_readonly_this"},
	{CallExplicitContext, "explicit_context"},
	{CallHasInOut, "has_in_out"},
	{CallEnforceInOut, "enforce_in_out"},
	{CallEnforceReadonly, "enforce_readonly"},
	{CallHasAsyncEagerOffset, "has_async_eager_offset"},
}

// Tokens returns the names of the set flags in fixed output order.
// Unassigned bits are ignored.
func (f CallFlags) Tokens() []string {
	var out []string
	for _, e := range callFlagNames {
		if f&e.flag != 0 {
			out = append(out, e.name)
		}
	}
	return out
}

// String renders the set flags space-separated; zero yields "".
func (f CallFlags) String() string {
	return strings.Join(f.Tokens(), " ")
}
