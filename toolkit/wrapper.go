package toolkit

import (
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/autotool"
	"github.com/spetersoncode/autotool/crud"
)

// emptyObjectSchema is the parameters schema for operations whose enumerator
// supplied none.
var emptyObjectSchema = json.RawMessage(`{"type":"object","properties":{}}`)

// ToolPair couples an admitted tool definition with its invocation handler
// and CRUD classification.
type ToolPair struct {
	Tool    autotool.Tool
	Handler autotool.Handler
	Verb    crud.Verb
}

// Option configures Wrapper construction.
type Option func(*config)

type config struct {
	controls *crud.Controls
	describe func(name string) string
}

// WithControls sets the access policy deciding which candidates become
// tools. Without it the crud defaults apply (reads admitted by prefix,
// mutating verbs rejected).
func WithControls(c *crud.Controls) Option {
	return func(cfg *config) {
		cfg.controls = c
	}
}

// WithDescribeFunc sets the fallback description generator used when a
// candidate carries no description of its own.
func WithDescribeFunc(fn func(name string) string) Option {
	return func(cfg *config) {
		cfg.describe = fn
	}
}

func defaultDescribe(name string) string {
	return fmt.Sprintf("Call the %s operation on the wrapped client.", name)
}

// Wrapper holds the admitted operations of one wrapped client. It is
// immutable after construction and safe for concurrent readers.
type Wrapper struct {
	controls *crud.Controls
	pairs    []ToolPair
}

// New builds a Wrapper from a fixed candidate list, keeping candidates the
// policy admits in their input order. Candidates with an empty name are
// skipped; they can never be invoked.
func New(candidates []autotool.Candidate, opts ...Option) (*Wrapper, error) {
	cfg := &config{describe: defaultDescribe}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.controls == nil {
		controls, err := crud.New()
		if err != nil {
			return nil, err
		}
		cfg.controls = controls
	}

	w := &Wrapper{controls: cfg.controls}
	for _, cand := range candidates {
		if cand.Name == "" || !cfg.controls.IsPermitted(cand.Name) {
			continue
		}
		verb, _ := crud.Classify(cand.Name)

		desc := cand.Description
		if desc == "" {
			desc = cfg.describe(cand.Name)
		}
		params := cand.Parameters
		if params == nil {
			params = emptyObjectSchema
		}

		w.pairs = append(w.pairs, ToolPair{
			Tool: autotool.Tool{
				Name:        cand.Name,
				Description: desc,
				Parameters:  params,
			},
			Handler: cand.Invoke,
			Verb:    verb,
		})
	}
	return w, nil
}

// Wrap builds a Wrapper from an enumerator's candidates.
func Wrap(e autotool.Enumerator, opts ...Option) (*Wrapper, error) {
	candidates, err := e.Candidates()
	if err != nil {
		return nil, err
	}
	return New(candidates, opts...)
}

// Controls returns the access policy the wrapper was built with.
func (w *Wrapper) Controls() *crud.Controls {
	return w.controls
}

// Pairs returns the admitted tool pairs in discovery order.
func (w *Wrapper) Pairs() []ToolPair {
	return w.pairs
}

// Tools returns the admitted tool definitions in discovery order.
// This is the list to hand to the agent framework.
func (w *Wrapper) Tools() []autotool.Tool {
	tools := make([]autotool.Tool, len(w.pairs))
	for i, p := range w.pairs {
		tools[i] = p.Tool
	}
	return tools
}

// Names returns the admitted operation names in discovery order.
func (w *Wrapper) Names() []string {
	names := make([]string, len(w.pairs))
	for i, p := range w.pairs {
		names[i] = p.Tool.Name
	}
	return names
}

// Len returns the number of admitted tools.
func (w *Wrapper) Len() int {
	return len(w.pairs)
}

// Registry builds a verb-indexed registry over the admitted tools.
func (w *Wrapper) Registry() *Registry {
	r := NewRegistry()
	for _, p := range w.pairs {
		r.MustRegister(p)
	}
	return r
}
