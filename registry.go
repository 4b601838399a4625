package attrs

import (
	"slices"
	"strings"

	"github.com/wippyai/hhbc-attrs/errors"
)

// Entry maps one attribute bit to its canonical token, qualified by
// the contexts in which the bit carries that meaning.
type Entry struct {
	Bit      Attr
	Contexts Context
	Name     string
}

// attrRegistry is the declaration-attribute vocabulary. Iteration
// order here IS the output order of the codec and is a compatibility
// contract: golden disassembly files and the assembler's parser both
// depend on it. Append new entries at the end; never reorder or rename
// existing ones.
//
// Note the order is alphabetical by token, not by bit value. That is
// historical and must stay: reordering would silently change every
// listing that mixes the affected attributes.
var attrRegistry = []Entry{
	{AttrAbstract, Class | Func | Constant, "abstract"},
	{AttrBuiltin, Class | Func, "builtin"},
	{AttrDeepInit, Prop, "deep_init"},
	{AttrDynamicallyCallable, Func, "dyn_callable"},
	{AttrDynamicallyConstructible, Class, "dyn_constructible"},
	{AttrEnum, Class, "enum"},
	{AttrEnumClass, Class, "enum_class"},
	{AttrFinal, Class | Func | TraitImport, "final"},
	{AttrIsFoldable, Func, "foldable"},
	{AttrForbidDynamicProps, Class, "forbid_dynamic_props"},
	{AttrInitialSatisfiesTC, Prop, "initial_satisfies_tc"},
	{AttrInterceptable, Func, "interceptable"},
	{AttrInterface, Class, "interface"},
	{AttrInternal, Class | Func | Prop, "internal"},
	{AttrIsConst, Class | Prop, "is_const"},
	{AttrIsMethCaller, Func, "is_meth_caller"},
	{AttrLateInit, Prop, "late_init"},
	{AttrLSB, Prop, "lsb"},
	{AttrNoBadRedeclare, Prop, "no_bad_redeclare"},
	{AttrNoExpandTrait, Class, "no_expand_trait"},
	{AttrNoImplicitNullable, Prop, "no_implicit_null"},
	{AttrNoInjection, Func, "no_injection"},
	{AttrNoOverride, Class | Func, "no_override"},
	{AttrPersistent, Class | Func | Alias, "persistent"},
	{AttrPrivate, Func | Prop | TraitImport, "private"},
	{AttrProtected, Func | Prop | TraitImport, "protected"},
	{AttrProvenanceSkipFrame, Func, "prov_skip_frame"},
	{AttrPublic, Func | Prop | TraitImport, "public"},
	{AttrIsReadonly, Prop | Parameter, "readonly"},
	{AttrReadonlyReturn, Func, "readonly_return"},
	{AttrSealed, Class, "sealed"},
	{AttrStatic, Func | Prop, "static"},
	{AttrSystemInitialValue, Prop, "sys_initial_val"},
	{AttrTrait, Class | Func, "trait"},
}

// Registry returns a copy of the declaration-attribute vocabulary in
// its fixed iteration order. Intended for tooling and audits; the
// codec walks the table directly.
func Registry() []Entry {
	return slices.Clone(attrRegistry)
}

// Audit checks the registry against the attribute enumeration and the
// per-context uniqueness rules. It returns nil on a well-formed
// registry and a structured error naming the first violation
// otherwise.
//
// It is meant to run in tests (and behind the CLI -audit flag) so that
// adding an attribute bit without a registry entry fails the build
// instead of silently vanishing from disassembly output.
func Audit() error {
	return auditRegistry(attrRegistry)
}

func auditRegistry(reg []Entry) error {
	// Every declared bit needs at least one entry somewhere.
	for _, d := range defined {
		found := false
		for _, e := range reg {
			if e.Bit == d.bit {
				found = true
				break
			}
		}
		if !found {
			return errors.MissingEntry(d.name, uint32(d.bit))
		}
	}

	// Tokens must survive space-joined emission and reparsing.
	for _, e := range reg {
		if e.Name == "" || strings.ContainsAny(e.Name, " \t\n") {
			return errors.BadToken(e.Name)
		}
		if e.Contexts == 0 {
			return errors.MissingContext(e.Name)
		}
	}

	// Within any single context, bit->name and name->bit must both be
	// unique or the assembler cannot invert the emitted text.
	for _, c := range contextNames {
		byBit := make(map[Attr]string)
		byName := make(map[string]Attr)
		for _, e := range reg {
			if e.Contexts&c.ctx == 0 {
				continue
			}
			if prev, ok := byBit[e.Bit]; ok {
				return errors.DuplicateEntry(c.name, uint32(e.Bit), prev, e.Name)
			}
			byBit[e.Bit] = e.Name
			if prev, ok := byName[e.Name]; ok {
				return errors.DuplicateEntry(c.name, uint32(prev), e.Name, e.Name)
			}
			byName[e.Name] = e.Bit
		}
	}

	return nil
}
