// Package introspect discovers the callable operations of a wrapped Go
// client by reflection.
//
// Methods enumerates a client's exported methods, converts each name to its
// snake_case operation name (ListBuckets becomes list_buckets), derives a
// JSON Schema from the method's argument struct, and wraps invocation in a
// JSON-in, JSON-out closure. The results are
// [github.com/spetersoncode/autotool.Candidate] values for the toolkit to
// filter; nothing here decides what is permitted, and nothing here calls
// the methods it discovers.
//
// A method is enumerable when it has one of these shapes:
//
//	func (c *Client) Op() (R, error)
//	func (c *Client) Op(ctx context.Context) (R, error)
//	func (c *Client) Op(args A) (R, error)
//	func (c *Client) Op(ctx context.Context, args A) (R, error)
//
// where A is a struct, pointer to struct, or map[string]any, R is any
// JSON-encodable value, and the error return is optional. Methods with
// other shapes are silently skipped, mirroring how attribute enumeration
// skips non-callable attributes.
//
// Argument structs use the same tags the schema generator recognizes:
//
//	json:"name"      - property name (required for inclusion)
//	desc:"text"      - description for the model
//	required:"true"  - mark the property as required
//	enum:"a,b,c"     - allowed values (comma-separated)
package introspect
