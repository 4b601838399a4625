package attrs

// Attr is a declaration attribute bitmask. Bits are context-dependent:
// the value docs below note which declaration kinds give a bit its
// meaning, and several bits are deliberately shared between disjoint
// contexts. The registry in registry.go is the single source of truth
// for how a (bit, context) pair prints.
type Attr uint32

const (
	AttrNone Attr = 0

	// Bit 0 is shared: classes use it to forbid dynamic properties,
	// properties use it to request deep initialization.
	AttrForbidDynamicProps Attr = 1 << 0 // class
	AttrDeepInit           Attr = 1 << 0 // prop

	AttrPublic    Attr = 1 << 1 // func, prop, trait import
	AttrProtected Attr = 1 << 2 // func, prop, trait import
	AttrPrivate   Attr = 1 << 3 // func, prop, trait import

	AttrEnum               Attr = 1 << 4 // class
	AttrSystemInitialValue Attr = 1 << 5 // prop
	AttrNoImplicitNullable Attr = 1 << 6 // prop
	AttrStatic             Attr = 1 << 7 // func, prop
	AttrAbstract           Attr = 1 << 8 // class, func, constant
	AttrFinal              Attr = 1 << 9 // class, func, trait import

	// Bit 10 is shared between interface classes and lexically scoped
	// static properties.
	AttrInterface Attr = 1 << 10 // class
	AttrLSB       Attr = 1 << 10 // prop

	AttrTrait Attr = 1 << 11 // class, func

	// Bit 12 is shared: functions opt out of fault injection,
	// properties record that the initial value satisfies the type
	// constraint.
	AttrNoInjection        Attr = 1 << 12 // func
	AttrInitialSatisfiesTC Attr = 1 << 12 // prop

	AttrNoBadRedeclare Attr = 1 << 13 // prop
	AttrIsConst        Attr = 1 << 14 // class, prop
	AttrBuiltin        Attr = 1 << 15 // class, func
	AttrIsFoldable     Attr = 1 << 16 // func
	AttrNoExpandTrait  Attr = 1 << 17 // class
	AttrNoOverride     Attr = 1 << 18 // class, func
	AttrIsReadonly     Attr = 1 << 19 // prop, parameter
	AttrReadonlyReturn Attr = 1 << 20 // func

	// Bit 21 is shared between interceptable functions and sealed
	// classes.
	AttrInterceptable Attr = 1 << 21 // func
	AttrSealed        Attr = 1 << 21 // class

	AttrPersistent Attr = 1 << 22 // class, func, alias

	// Bit 23 is shared between the dynamic call and dynamic
	// construction permissions.
	AttrDynamicallyCallable      Attr = 1 << 23 // func
	AttrDynamicallyConstructible Attr = 1 << 23 // class

	AttrLateInit            Attr = 1 << 24 // prop
	AttrEnumClass           Attr = 1 << 25 // class
	AttrIsMethCaller        Attr = 1 << 26 // func
	AttrProvenanceSkipFrame Attr = 1 << 27 // func
	AttrInternal            Attr = 1 << 28 // class, func, prop
)

// defined enumerates every attribute constant above, one row per
// constant even when constants alias the same bit. Audit walks this
// list to catch a newly added attribute that never got a registry
// entry.
var defined = []struct {
	name string
	bit  Attr
}{
	{"AttrForbidDynamicProps", AttrForbidDynamicProps},
	{"AttrDeepInit", AttrDeepInit},
	{"AttrPublic", AttrPublic},
	{"AttrProtected", AttrProtected},
	{"AttrPrivate", AttrPrivate},
	{"AttrEnum", AttrEnum},
	{"AttrSystemInitialValue", AttrSystemInitialValue},
	{"AttrNoImplicitNullable", AttrNoImplicitNullable},
	{"AttrStatic", AttrStatic},
	{"AttrAbstract", AttrAbstract},
	{"AttrFinal", AttrFinal},
	{"AttrInterface", AttrInterface},
	{"AttrLSB", AttrLSB},
	{"AttrTrait", AttrTrait},
	{"AttrNoInjection", AttrNoInjection},
	{"AttrInitialSatisfiesTC", AttrInitialSatisfiesTC},
	{"AttrNoBadRedeclare", AttrNoBadRedeclare},
	{"AttrIsConst", AttrIsConst},
	{"AttrBuiltin", AttrBuiltin},
	{"AttrIsFoldable", AttrIsFoldable},
	{"AttrNoExpandTrait", AttrNoExpandTrait},
	{"AttrNoOverride", AttrNoOverride},
	{"AttrIsReadonly", AttrIsReadonly},
	{"AttrReadonlyReturn", AttrReadonlyReturn},
	{"AttrInterceptable", AttrInterceptable},
	{"AttrSealed", AttrSealed},
	{"AttrPersistent", AttrPersistent},
	{"AttrDynamicallyCallable", AttrDynamicallyCallable},
	{"AttrDynamicallyConstructible", AttrDynamicallyConstructible},
	{"AttrLateInit", AttrLateInit},
	{"AttrEnumClass", AttrEnumClass},
	{"AttrIsMethCaller", AttrIsMethCaller},
	{"AttrProvenanceSkipFrame", AttrProvenanceSkipFrame},
	{"AttrInternal", AttrInternal},
}
