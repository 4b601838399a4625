// Package attrs converts HHBC attribute bitmasks into the canonical
// token strings used by the bytecode assembly text format.
//
// The same physical attribute bit can mean different things depending
// on what kind of declaration carries it: the class bit for
// forbid_dynamic_props is the property bit for deep_init. Every lookup
// therefore pairs a bitmask with a Context value describing the
// declaration kind being emitted, and the registry resolves the pair
// to at most one canonical name per bit.
//
// The library is organized into a small set of packages:
//
//	attrs/           Root package: contexts, registry, and the codecs
//	├── errors/      Structured error types for parsing and audits
//	└── cmd/attrfmt/ CLI inspector with optional interactive TUI
//
// # Quick Start
//
// Decode a declaration attribute mask for a class:
//
//	s := attrs.String(attrs.Class, attrs.AttrAbstract|attrs.AttrFinal)
//	fmt.Println(s) // "abstract final"
//
// Context-free flag vocabularies have String methods directly:
//
//	f := attrs.TypeNullable | attrs.TypeExtendedHint
//	fmt.Println(f.String()) // "nullable extended_hint"
//
// # Output Stability
//
// Token order follows registry declaration order, never numeric bit
// order. The registry is append-only: new attributes are added at the
// position their name sorts to only when a vocabulary is first
// defined; once published, entries are appended so that existing
// output never changes. Golden files and round-trip assembly depend on
// this.
//
// # Thread Safety
//
// All registries are immutable after package initialization. Every
// function is pure and safe for unsynchronized concurrent use.
package attrs
