// Package toolkit assembles the admitted tool list for a wrapped client.
//
// A [Wrapper] takes the candidate operations an enumerator discovered and a
// [github.com/spetersoncode/autotool/crud.Controls] policy, keeps the
// candidates the policy admits, and builds a tool definition for each. The
// result can be consumed directly via [Wrapper.Tools] or through a
// verb-indexed [Registry].
//
// The toolkit never invokes the operations it wraps. Handlers supplied by
// the enumerator are carried on each [ToolPair] for the consuming agent
// framework to call.
//
//	w, err := toolkit.Wrap(introspect.NewEnumerator(client),
//	    toolkit.WithControls(controls),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry := w.Registry()
package toolkit
