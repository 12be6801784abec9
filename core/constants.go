package core

// SANE identifier namespaces used when turning descriptor keywords into C tokens.
const (
	TypePrefix       = "SANE_TYPE_"
	UnitPrefix       = "SANE_UNIT_"
	CapPrefix        = "SANE_CAP_"
	InfoPrefix       = "SANE_INFO_"
	ConstraintPrefix = "SANE_CONSTRAINT_"
)

// Generator defaults. All of them can be overridden through Config.
const (
	DefaultBeginMarker      = "BEGIN SANE_Option_Descriptor"
	DefaultOptPrefix        = "opt_"
	DefaultConstraintPrefix = "constraint_"
	DefaultStateStruct      = "pixma_sane_t"
	DefaultContext          = "OPT_IN_CTX"
	DefaultOrigin           = "pixma.c"
)

// Descriptor block syntax.
const (
	// VerbatimMarker starts a value that is copied into the output as a C expression.
	VerbatimMarker = "@"
	// EndKeyword terminates a descriptor block.
	EndKeyword = "end"

	DefaultTitle = "NO TITLE"
	// DefaultDesc makes the description point at the title assigned right before it.
	DefaultDesc = VerbatimMarker + "sod->title"

	// DefaultMin and DefaultMax select the bounds of the option's range constraint.
	DefaultMin = "_MIN"
	DefaultMax = "_MAX"

	GroupNameFormat = "_group_%d"
	NumOptionsCName = "opt_num_opts"
	LastSuffix      = "last"
)
