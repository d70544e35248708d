package crud

import "strings"

// Verb classifies an operation by the kind of change it makes to the
// wrapped client's resources.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// Verbs returns every verb in a fixed order.
func Verbs() []Verb {
	return []Verb{VerbCreate, VerbRead, VerbUpdate, VerbDelete}
}

// prefixEntry associates one recognized name prefix with its verb.
type prefixEntry struct {
	prefix string
	verb   Verb
}

// prefixTable is the static classification table. Entries are ordered by
// descending prefix length so the first match is the longest match.
var prefixTable = []prefixEntry{
	{"describe_", VerbRead},
	{"create_", VerbCreate},
	{"update_", VerbUpdate},
	{"delete_", VerbDelete},
	{"remove_", VerbDelete},
	{"patch_", VerbUpdate},
	{"list_", VerbRead},
	{"get_", VerbRead},
	{"put_", VerbCreate},
}

// exactTable classifies names that are a bare verb synonym with no
// underscore, as produced by SDKs whose services carry the resource name
// (models.Get, buckets.List).
var exactTable = map[string]Verb{
	"create":   VerbCreate,
	"put":      VerbCreate,
	"get":      VerbRead,
	"list":     VerbRead,
	"describe": VerbRead,
	"update":   VerbUpdate,
	"patch":    VerbUpdate,
	"delete":   VerbDelete,
	"remove":   VerbDelete,
}

// Classify maps an operation name to its CRUD verb by prefix, longest
// prefix winning. A name that is exactly a bare verb synonym classifies
// under that verb. Names matching neither return ok=false; such names are
// never permitted by any Controls.
func Classify(name string) (Verb, bool) {
	if v, ok := exactTable[name]; ok {
		return v, true
	}
	for _, e := range prefixTable {
		if strings.HasPrefix(name, e.prefix) {
			return e.verb, true
		}
	}
	return "", false
}

// Prefixes returns the recognized name prefixes for a verb, longest first.
// These are the same prefixes Classify matches against, and the default
// filter for an enabled verb with no explicit rules.
func Prefixes(v Verb) []string {
	var out []string
	for _, e := range prefixTable {
		if e.verb == v {
			out = append(out, e.prefix)
		}
	}
	return out
}
