package crud

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	cases := []struct {
		rule    string
		dialect Dialect
	}{
		// Glob wildcards never force the regex dialect.
		{"get_*", DialectGlob},
		{"get_?", DialectGlob},
		{"get_[abc]", DialectGlob},
		{"get_[!abc]", DialectGlob},
		{"list_buckets", DialectGlob},
		{"get_thing*", DialectGlob},
		{"", DialectGlob},
		// A literal dot is glob; dot is not regex-only syntax.
		{"get_v1.2", DialectGlob},
		// Regex-only tokens.
		{"^get_thing$", DialectRegex},
		{"get|list", DialectRegex},
		{"(get|list)_thing", DialectRegex},
		{`^create_[^_]+$`, DialectRegex},
		{`get_\d+`, DialectRegex},
		{`\w+_bucket`, DialectRegex},
		{`\s`, DialectRegex},
		{"get_+", DialectRegex},
		{"get_thing{1,3}", DialectRegex},
		{"get_thing{2}", DialectRegex},
	}

	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			assert.Equal(t, tc.dialect, DetectDialect(tc.rule))
		})
	}
}

func TestDetectDialectIdempotent(t *testing.T) {
	for _, rule := range []string{"get_*", "^get_thing$", "get_[!abc]", `\d+`} {
		first := DetectDialect(rule)
		r, err := CompileRule(rule)
		require.NoError(t, err)
		assert.Equal(t, first, r.Dialect())
		assert.Equal(t, first, DetectDialect(r.Raw()))
	}
}

func TestCompileRule(t *testing.T) {
	t.Run("glob matches whole name only", func(t *testing.T) {
		r, err := CompileRule("get_thing*")
		require.NoError(t, err)
		assert.Equal(t, DialectGlob, r.Dialect())

		assert.True(t, r.Match("get_thing"))
		assert.True(t, r.Match("get_thing_by_id"))
		assert.False(t, r.Match("forget_thing"))
		assert.False(t, r.Match("a_get_thing"))
	})

	t.Run("bare glob does not match substrings", func(t *testing.T) {
		r, err := CompileRule("get_thing")
		require.NoError(t, err)

		assert.True(t, r.Match("get_thing"))
		assert.False(t, r.Match("get_thing_by_id"))
	})

	t.Run("unanchored regex uses search semantics", func(t *testing.T) {
		r, err := CompileRule(`thing\d`)
		require.NoError(t, err)
		assert.Equal(t, DialectRegex, r.Dialect())

		assert.True(t, r.Match("get_thing1"))
		assert.True(t, r.Match("get_thing2_by_id"))
		assert.False(t, r.Match("get_thing"))
	})

	t.Run("anchored regex matches whole name", func(t *testing.T) {
		r, err := CompileRule("^get_thing$")
		require.NoError(t, err)

		assert.True(t, r.Match("get_thing"))
		assert.False(t, r.Match("get_thing_by_id"))
	})

	t.Run("invalid regex fails", func(t *testing.T) {
		_, err := CompileRule("^update_(")
		assert.Error(t, err)
	})

	t.Run("invalid glob fails", func(t *testing.T) {
		_, err := CompileRule("get_[abc")
		assert.Error(t, err)
	})

	t.Run("zero value matches nothing", func(t *testing.T) {
		var r Rule
		assert.False(t, r.Match("get_thing"))
		assert.False(t, r.Match(""))
	})
}

func TestRulesMatch(t *testing.T) {
	compile := func(raw ...string) Rules {
		var rs Rules
		for _, s := range raw {
			r, err := CompileRule(s)
			require.NoError(t, err)
			rs = append(rs, r)
		}
		return rs
	}

	t.Run("any rule admits", func(t *testing.T) {
		rs := compile("list_buckets", "get_*")
		assert.True(t, rs.Match("list_buckets"))
		assert.True(t, rs.Match("get_object"))
		assert.False(t, rs.Match("delete_bucket"))
	})

	t.Run("mixed dialects in one set", func(t *testing.T) {
		rs := compile(`^create_[^_]+$`, "create_multi_*")
		assert.True(t, rs.Match("create_bucket"))
		assert.True(t, rs.Match("create_multi_part_upload"))
		assert.False(t, rs.Match("create_bucket_policy"))
	})

	t.Run("empty set matches nothing", func(t *testing.T) {
		var rs Rules
		assert.False(t, rs.Match("get_thing"))
	})
}

// globToRegex translates a glob into its anchored regex equivalent using the
// standard translation rules, for verifying the round-trip property below.
func globToRegex(t *testing.T, g string) *regexp.Regexp {
	t.Helper()
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(g); i++ {
		switch c := g[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(g) && g[j] == '!' {
				j++
			}
			for j < len(g) && g[j] != ']' {
				j++
			}
			require.Less(t, j, len(g), "unterminated class in %q", g)
			set := g[i+1 : j]
			if strings.HasPrefix(set, "!") {
				b.WriteString("[^" + set[1:] + "]")
			} else {
				b.WriteString("[" + set + "]")
			}
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func TestGlobRegexRoundTrip(t *testing.T) {
	globs := []string{"get_*", "get_?", "get_[abc]", "get_[!abc]", "list_buckets", "*_bucket", "get_thing*"}
	candidates := []string{
		"get_thing", "get_thing_by_id", "get_a", "get_b", "get_d",
		"list_buckets", "create_bucket", "delete_bucket", "forget_thing", "",
	}

	for _, g := range globs {
		t.Run(g, func(t *testing.T) {
			r, err := CompileRule(g)
			require.NoError(t, err)
			require.Equal(t, DialectGlob, r.Dialect())

			re := globToRegex(t, g)
			for _, c := range candidates {
				assert.Equal(t, re.MatchString(c), r.Match(c),
					"glob %q vs candidate %q", g, c)
			}
		})
	}
}
