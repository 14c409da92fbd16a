package arena

// DefaultMarkerCapacity is the number of nested Mark calls an arena can
// track before Mark stops recording bookkeeping entries and reports the
// overflow through the error sink (rollback via Pop still works; only the
// live-allocation counter becomes approximate for markers beyond capacity).
const DefaultMarkerCapacity = 32

// config collects the options passed to New, Init, InitWithBuffer and
// ReinitWithBuffer.
type config struct {
	growCB    GrowthFunc
	label     string
	hook      Hook
	hookCtx   any
	errorFunc ErrorFunc
	errorCtx  any
	markerCap int
	canGrow   bool
}

func defaultConfig() config {
	return config{
		growCB:    DefaultGrowth,
		hook:      NoopHook,
		errorFunc: DefaultErrorFunc,
		markerCap: DefaultMarkerCapacity,
		canGrow:   true,
	}
}

// Option configures an Arena at construction time.
type Option func(*config)

// WithLabel sets the arena's debug label. If unset, a default of the form
// "arena-<id>" is assigned.
func WithLabel(label string) Option {
	return func(c *config) { c.label = label }
}

// WithHook installs a Hook and its opaque context, invoked for ALLOC, RESET
// and DESTROY events.
func WithHook(h Hook, ctx any) Option {
	return func(c *config) {
		if h == nil {
			h = NoopHook
		}
		c.hook = h
		c.hookCtx = ctx
	}
}

// WithErrorFunc installs the error-reporting sink and its opaque context.
func WithErrorFunc(f ErrorFunc, ctx any) Option {
	return func(c *config) {
		if f == nil {
			f = DefaultErrorFunc
		}
		c.errorFunc = f
		c.errorCtx = ctx
	}
}

// WithGrowthFunc overrides the default doubling growth policy.
func WithGrowthFunc(f GrowthFunc) Option {
	return func(c *config) {
		if f != nil {
			c.growCB = f
		}
	}
}

// WithMarkerCapacity overrides DefaultMarkerCapacity.
func WithMarkerCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.markerCap = n
		}
	}
}

// WithGrowth controls whether the arena is allowed to grow its buffer on
// exhaustion. Growth is always refused for sub-arenas and externally
// supplied buffers, regardless of this setting.
func WithGrowth(enabled bool) Option {
	return func(c *config) { c.canGrow = enabled }
}
