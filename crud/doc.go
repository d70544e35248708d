// Package crud implements the access policy that decides which discovered
// operations become tools.
//
// This package includes:
//   - Verb classification of operation names by a static prefix table
//   - Rule compilation with automatic glob/regex dialect detection
//   - Controls, the per-verb enable-flag plus allow-pattern policy
//
// # Basic Usage
//
// Build a policy and ask it about operation names:
//
//	controls, err := crud.New(
//	    crud.WithRead(true),
//	    crud.WithReadRules("get_*", "list_buckets"),
//	    crud.WithDelete(false),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	controls.IsPermitted("get_bucket")    // true
//	controls.IsPermitted("delete_bucket") // false
//
// # Pattern Dialects
//
// Each rule string is either a shell glob or a regular expression; the
// dialect is detected from the string itself. A rule containing regex-only
// syntax, meaning anchors (^ $), alternation (|), grouping, backslash
// classes (\d \w \s \b), + or {m,n} repetition, compiles as a regular
// expression.
// Everything else is a glob using *, ?, [seq] and [!seq].
//
// The two dialects match differently, and the difference is part of the
// contract: a glob must match the entire candidate name, while a regex
// matches anywhere in the name unless the rule anchors itself. "get_thing*"
// covers get_thing and get_thing_by_id; "^get_thing$" covers get_thing only.
//
// Rules are compiled once, when the policy is constructed. A rule that fails
// to compile aborts construction with an [ErrInvalidRule] naming the verb
// and the offending text; no partial policy is ever returned.
//
// # Defaults
//
// With no options, reads are enabled and creates, updates, and deletes are
// disabled. An enabled verb with no explicit rules admits exactly the names
// classified under that verb. Use [MatchAll] as a rule to make an enabled
// verb admit every name it classifies.
package crud
