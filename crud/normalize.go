package crud

import "strings"

// normalizeList flattens configuration input into an ordered list of rule
// strings. Each element may itself be a comma-separated list; entries are
// trimmed and empty entries dropped. An element that already reads as a
// regex is kept whole, since {m,n} repetition legitimately contains commas.
// A nil or all-empty input normalizes to nil, which selects the prefix
// default for an enabled verb.
func normalizeList(in []string) []string {
	var out []string
	for _, s := range in {
		if DetectDialect(s) == DialectRegex {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
			continue
		}
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
