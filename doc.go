// Package autotool turns an arbitrary SDK client into a filtered list of
// tools that can be handed to an LLM agent framework.
//
// The library discovers a client's callable operations, classifies each by
// CRUD verb from its name, applies user-supplied allow patterns, and builds
// tool definitions for the operations that survive. It never invokes the
// operations it wraps; execution belongs to the consuming agent framework.
//
// # Packages
//
//   - [github.com/spetersoncode/autotool/crud]: verb classification and the
//     CrudControls access policy (glob and regex rules, auto-detected)
//   - [github.com/spetersoncode/autotool/toolkit]: builds the admitted tool
//     list from an enumerator and a policy
//   - [github.com/spetersoncode/autotool/introspect]: reflection enumerator
//     over a wrapped Go client's exported methods
//   - [github.com/spetersoncode/autotool/mcp]: serve the admitted tools over
//     the Model Context Protocol
//
// # Basic Usage
//
// Wrap a client, allow reads only, and collect the tool list:
//
//	controls, err := crud.New(
//	    crud.WithRead(true),
//	    crud.WithReadRules("list_buckets", "get_*"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	candidates, err := introspect.Methods(storageClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w, err := toolkit.New(candidates, toolkit.WithControls(controls))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, t := range w.Tools() {
//	    fmt.Println(t.Name, "-", t.Description)
//	}
//
// Pattern rules accept two dialects. A rule containing regex-only syntax
// (anchors, alternation, grouping, backslash classes, + or {m,n} repetition)
// is compiled as a regular expression with search semantics; anything else is
// a shell glob matched against the entire candidate name. "get_thing*" admits
// get_thing and get_thing_by_id; the regex "^get_thing$" admits get_thing
// alone.
package autotool
