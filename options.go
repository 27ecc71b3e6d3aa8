package sap

// Options configures a parse. The zero value is not valid; use
// DefaultOptions() and override individual fields, mirroring the way the
// teacher's Compiler exposes a handful of With* toggles over sensible
// defaults.
type Options struct {
	AllowMarkdownJSON      bool
	AllowFixes             bool
	AllowAsString          bool
	FindAllJSONObjects     bool
	NormalizeUnicodeQuotes bool
	MaxExtractDepth        int

	AllowPartials bool
	UseDefaults   bool

	// Strict disables the lossy scalar coercions of §4.3 (string<->number,
	// string<->boolean, boolean<->number, object<->string, float->int
	// truncation). Per §9's resolution of the open question, this port
	// honors Strict rather than preserving the source's no-op bug.
	Strict bool

	TrackCoercions       bool
	FilterChainOfThought bool
	ReturnAllCandidates  bool

	// MaxCoerceDepth bounds the coercer's schema-walk recursion (§3, §5);
	// it is not part of the distilled Options table but is required by
	// the depth invariant, so it gets the same sensible-default treatment.
	MaxCoerceDepth int
}

// DefaultOptions returns the option set described in §6's table.
func DefaultOptions() *Options {
	return &Options{
		AllowMarkdownJSON:      true,
		AllowFixes:             true,
		AllowAsString:          true,
		FindAllJSONObjects:     true,
		NormalizeUnicodeQuotes: true,
		MaxExtractDepth:        100,
		AllowPartials:          false,
		UseDefaults:            true,
		Strict:                 false,
		TrackCoercions:         false,
		FilterChainOfThought:   true,
		ReturnAllCandidates:    false,
		MaxCoerceDepth:         50,
	}
}

func (o *Options) allowMarkdownJSON() bool      { return o != nil && o.AllowMarkdownJSON }
func (o *Options) allowFixes() bool             { return o != nil && o.AllowFixes }
func (o *Options) allowAsString() bool          { return o == nil || o.AllowAsString }
func (o *Options) findAllJSONObjects() bool     { return o != nil && o.FindAllJSONObjects }
func (o *Options) normalizeUnicodeQuotes() bool { return o != nil && o.NormalizeUnicodeQuotes }

func (o *Options) maxExtractDepth() int {
	if o == nil || o.MaxExtractDepth <= 0 {
		return DefaultOptions().MaxExtractDepth
	}
	return o.MaxExtractDepth
}

func (o *Options) maxCoerceDepth() int {
	if o == nil || o.MaxCoerceDepth <= 0 {
		return DefaultOptions().MaxCoerceDepth
	}
	return o.MaxCoerceDepth
}

// clone returns a shallow copy, used by ParsePartial to force
// AllowPartials/AllowAsString on without mutating the caller's Options.
func (o *Options) clone() *Options {
	if o == nil {
		cp := *DefaultOptions()
		return &cp
	}
	cp := *o
	return &cp
}
