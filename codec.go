package attrs

import "strings"

// Tokens returns the canonical names of the attributes set in a, in
// registry order, filtered to entries meaningful under ctx. Bits with
// no entry under ctx are omitted; an empty mask yields nil. Total for
// every input, never fails.
//
// ctx may be a union of contexts. Callers emitting a declaration pass
// the single context of that declaration; per-bit uniqueness is only
// guaranteed for single contexts.
func Tokens(ctx Context, a Attr) []string {
	var out []string
	for _, e := range attrRegistry {
		if e.Contexts&ctx != 0 && a&e.Bit != 0 {
			out = append(out, e.Name)
		}
	}
	return out
}

// String renders the attributes set in a as a single space-separated
// token string for ctx. An empty token sequence yields "".
func String(ctx Context, a Attr) string {
	return strings.Join(Tokens(ctx, a), " ")
}

// Residual returns the bits of a that no registry entry covers under
// ctx. The codec drops such bits silently; diagnostic callers can use
// the residual to warn about masks that will not survive a round trip
// through text.
func Residual(ctx Context, a Attr) Attr {
	for _, e := range attrRegistry {
		if e.Contexts&ctx != 0 {
			a &^= e.Bit
		}
	}
	return a
}
