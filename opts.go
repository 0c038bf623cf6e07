package totoml

// DefaultMaxDepth bounds value nesting when MaxDepth is not given.
const DefaultMaxDepth = 512

type config struct {
	strict   bool
	maxDepth int
}

func newConfig(opts []Option) *config {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a conversion.
type Option func(*config)

// Strict makes values with no TOML representation (ranges, blocks,
// nothing, custom values) fail the conversion instead of turning into
// placeholder strings.
func Strict(on bool) Option {
	return func(cfg *config) {
		cfg.strict = on
	}
}

// MaxDepth sets the nesting limit for records and lists. Values of
// n <= 0 restore the default.
func MaxDepth(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		cfg.maxDepth = n
	}
}
