package crud

// Controls is the CRUD access policy for discovered operations: one enable
// flag per verb plus an optional compiled rule set per verb. A Controls is
// immutable after New and safe to share across goroutines without locking.
type Controls struct {
	enabled map[Verb]bool
	rules   map[Verb]Rules
}

// New builds a Controls from options, compiling every rule exactly once.
// Defaults: reads enabled, all mutating verbs disabled, no rules. An
// invalid rule of either dialect aborts construction with an
// [ErrInvalidRule]; no partial policy is returned.
func New(opts ...Option) (*Controls, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Controls{
		enabled: make(map[Verb]bool, 4),
		rules:   make(map[Verb]Rules, 4),
	}
	for _, v := range Verbs() {
		c.enabled[v] = cfg.enabled[v]
		for _, raw := range normalizeList(cfg.rules[v]) {
			r, err := CompileRule(raw)
			if err != nil {
				return nil, &ErrInvalidRule{Verb: v, Rule: raw, Err: err}
			}
			c.rules[v] = append(c.rules[v], r)
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Useful for initialization code
// with static rule sets.
func MustNew(opts ...Option) *Controls {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Enabled reports whether the verb's enable flag is set.
func (c *Controls) Enabled(v Verb) bool {
	return c.enabled[v]
}

// Rules returns the compiled rule set for a verb. Empty means the prefix
// default applies when the verb is enabled.
func (c *Controls) Rules(v Verb) Rules {
	return c.rules[v]
}

// IsPermitted decides whether an operation name may become a tool:
//
//  1. Classify the name to a verb; unclassified names are rejected.
//  2. Reject when the verb's enable flag is false, regardless of rules.
//  3. With explicit rules, admit iff any rule matches.
//  4. With no rules, admit every name classified under the verb (the
//     verb's own recognized prefixes act as the default filter).
func (c *Controls) IsPermitted(name string) bool {
	verb, ok := Classify(name)
	if !ok {
		return false
	}
	if !c.enabled[verb] {
		return false
	}
	if rules := c.rules[verb]; len(rules) > 0 {
		return rules.Match(name)
	}
	return true
}

// Filter returns the names admitted by IsPermitted, preserving input order.
func (c *Controls) Filter(names []string) []string {
	var out []string
	for _, name := range names {
		if c.IsPermitted(name) {
			out = append(out, name)
		}
	}
	return out
}
