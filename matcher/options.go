package matcher

// DefaultMessage is the assertion message used when none is configured.
const DefaultMessage = "Candidate doesn't match spec."

// config holds the settings of a single match call.
type config struct {
	ordered    bool
	exhaustive bool
	logger     Logger
	message    string
}

// Option configures matching. Options given to Compile become the matcher's
// defaults; options given to a call override them for that call only.
type Option func(*config)

func defaultConfig() config {
	return config{
		ordered: true,
		logger:  NopLogger{},
		message: DefaultMessage,
	}
}

// apply returns a copy of c with opts applied.
func (c config) apply(opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.logger == nil {
		c.logger = NopLogger{}
	}
	if c.message == "" {
		c.message = DefaultMessage
	}
	return c
}

// WithOrdered sets whether sequences are compared position by position
// (the default) or as sorted copies.
func WithOrdered(ordered bool) Option {
	return func(c *config) {
		c.ordered = ordered
	}
}

// Unordered compares sequences as sorted copies, so that two sequences
// holding the same elements in a different order never differ.
func Unordered() Option {
	return WithOrdered(false)
}

// WithExhaustive keeps comparing the values of common keys after a key-set
// mismatch was found at the same mapping. By default a missing or extra key
// stops the comparison at that mapping.
func WithExhaustive(exhaustive bool) Option {
	return func(c *config) {
		c.exhaustive = exhaustive
	}
}

// WithLogger sets the logger that receives match diagnostics.
// A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMessage sets the message reported by AssertMatches, RequireMatches and Check.
func WithMessage(msg string) Option {
	return func(c *config) {
		c.message = msg
	}
}
