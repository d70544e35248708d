package autotool

import "encoding/json"

// Candidate is one callable operation discovered on a wrapped client.
// The filtering core consumes only the Name; the remaining fields pass
// through to tool construction for operations that are admitted.
type Candidate struct {
	// Name is the exact identifier the agent will later invoke.
	Name string
	// Description documents the operation for the model. May be empty.
	Description string
	// Parameters is a JSON Schema object for the operation's arguments.
	// May be nil when the enumerator cannot derive one.
	Parameters json.RawMessage
	// Invoke dispatches a tool call to the underlying operation.
	// It is carried, never called, by this library.
	Invoke Handler
}

// Enumerator produces the candidate operations of a wrapped client.
// Implementations own whatever reflection or service discovery is needed;
// deterministic ordering is not required.
type Enumerator interface {
	Candidates() ([]Candidate, error)
}

// CandidateList is a fixed set of candidates satisfying [Enumerator].
type CandidateList []Candidate

// Candidates returns the list unchanged.
func (l CandidateList) Candidates() ([]Candidate, error) {
	return l, nil
}
