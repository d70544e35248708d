package crud

import "fmt"

// ErrInvalidRule reports a configuration rule that failed to compile.
// Construction fails fast: no Controls value is returned alongside one.
type ErrInvalidRule struct {
	Verb Verb
	Rule string
	Err  error
}

// Error returns a formatted message naming the verb and the offending rule.
func (e *ErrInvalidRule) Error() string {
	return fmt.Sprintf("crud: invalid %s rule %q: %v", e.Verb, e.Rule, e.Err)
}

// Unwrap returns the underlying compile error for errors.Is and errors.As.
func (e *ErrInvalidRule) Unwrap() error {
	return e.Err
}
