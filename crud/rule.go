package crud

import (
	"regexp"

	"github.com/gobwas/glob"
)

// Dialect identifies which pattern language a rule is written in.
type Dialect string

const (
	// DialectGlob matches the entire candidate name with shell wildcards.
	DialectGlob Dialect = "glob"
	// DialectRegex searches the candidate name with a regular expression.
	DialectRegex Dialect = "regex"
)

// MatchAll is a glob rule that admits every name. Add it to an enabled
// verb's rules to override the prefix default.
const MatchAll = "*"

// regexToken spots syntax that is meaningful in regular expressions but not
// in shell globs: anchors, alternation, grouping, backslash classes, + and
// {m,n} repetition. Glob wildcards (*, ?, [seq], [!seq]) stay out of the
// expression so they never force a rule into the regex dialect.
var regexToken = regexp.MustCompile(`[\^$|()+]|\\[dwsbDWSB]|\{\d+(,\d*)?\}`)

// DetectDialect classifies a rule string as glob or regex. Detection is a
// pure function of the string: re-detecting a compiled rule's source yields
// the same dialect.
func DetectDialect(rule string) Dialect {
	if regexToken.MatchString(rule) {
		return DialectRegex
	}
	return DialectGlob
}

// Rule is one compiled allow pattern. The zero value matches nothing.
type Rule struct {
	raw     string
	dialect Dialect
	re      *regexp.Regexp
	g       glob.Glob
}

// CompileRule detects the rule's dialect and compiles it. Glob rules match
// only if the entire candidate name matches; regex rules use search
// semantics unless the rule anchors itself with ^ or $.
func CompileRule(raw string) (Rule, error) {
	r := Rule{raw: raw, dialect: DetectDialect(raw)}
	switch r.dialect {
	case DialectRegex:
		re, err := regexp.Compile(raw)
		if err != nil {
			return Rule{}, err
		}
		r.re = re
	default:
		g, err := glob.Compile(raw)
		if err != nil {
			return Rule{}, err
		}
		r.g = g
	}
	return r, nil
}

// Raw returns the rule text as provided by the caller.
func (r Rule) Raw() string {
	return r.raw
}

// Dialect returns the detected pattern dialect.
func (r Rule) Dialect() Dialect {
	return r.dialect
}

// Match reports whether the rule matches the candidate name.
func (r Rule) Match(name string) bool {
	if r.re != nil {
		return r.re.MatchString(name)
	}
	if r.g != nil {
		return r.g.Match(name)
	}
	return false
}

// Rules is a compiled rule set, evaluated as a set: a name matches if any
// rule matches.
type Rules []Rule

// Match reports whether any rule in the set matches the candidate name.
func (rs Rules) Match(name string) bool {
	for _, r := range rs {
		if r.Match(name) {
			return true
		}
	}
	return false
}
