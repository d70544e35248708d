package crud

// Option configures Controls construction.
type Option func(*config)

type config struct {
	enabled map[Verb]bool
	rules   map[Verb][]string
}

func defaultConfig() *config {
	return &config{
		enabled: map[Verb]bool{VerbRead: true},
		rules:   make(map[Verb][]string),
	}
}

// WithVerb enables or disables operations classified under the given verb.
func WithVerb(v Verb, enabled bool) Option {
	return func(c *config) {
		c.enabled[v] = enabled
	}
}

// WithVerbRules sets the allow patterns for the given verb. Each argument
// may be a single pattern or a comma-separated list of patterns; regex
// patterns containing {m,n} commas are kept intact.
func WithVerbRules(v Verb, rules ...string) Option {
	return func(c *config) {
		c.rules[v] = append(c.rules[v], rules...)
	}
}

// WithCreate enables or disables create operations. Default is disabled.
func WithCreate(enabled bool) Option {
	return WithVerb(VerbCreate, enabled)
}

// WithCreateRules sets the allow patterns for create operations.
func WithCreateRules(rules ...string) Option {
	return WithVerbRules(VerbCreate, rules...)
}

// WithRead enables or disables read operations. Default is enabled.
func WithRead(enabled bool) Option {
	return WithVerb(VerbRead, enabled)
}

// WithReadRules sets the allow patterns for read operations.
func WithReadRules(rules ...string) Option {
	return WithVerbRules(VerbRead, rules...)
}

// WithUpdate enables or disables update operations. Default is disabled.
func WithUpdate(enabled bool) Option {
	return WithVerb(VerbUpdate, enabled)
}

// WithUpdateRules sets the allow patterns for update operations.
func WithUpdateRules(rules ...string) Option {
	return WithVerbRules(VerbUpdate, rules...)
}

// WithDelete enables or disables delete operations. Default is disabled.
func WithDelete(enabled bool) Option {
	return WithVerb(VerbDelete, enabled)
}

// WithDeleteRules sets the allow patterns for delete operations.
func WithDeleteRules(rules ...string) Option {
	return WithVerbRules(VerbDelete, rules...)
}
