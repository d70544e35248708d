package introspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/spetersoncode/autotool"
)

// ErrNilClient is returned when the wrapped client is nil.
var ErrNilClient = errors.New("introspect: nil client")

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
	mapType = reflect.TypeOf(map[string]any{})
)

// Option configures enumeration.
type Option func(*config)

type config struct {
	descriptions map[string]string
}

// WithDescriptions supplies operation descriptions keyed by snake_case
// operation name. Go carries no runtime doc comments, so descriptions for
// the model must be provided out of band; operations without one get a
// generated fallback at tool construction.
func WithDescriptions(docs map[string]string) Option {
	return func(c *config) {
		c.descriptions = docs
	}
}

// Methods enumerates the exported methods of client that fit a tool shape
// and returns one candidate per method. Candidate order follows Go's method
// ordering (alphabetical by method name).
func Methods(client any, opts ...Option) ([]autotool.Candidate, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := reflect.ValueOf(client)
	if !v.IsValid() {
		return nil, ErrNilClient
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, ErrNilClient
	}

	t := v.Type()
	var candidates []autotool.Candidate
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		bound := v.Method(i)

		takesCtx, argType, ok := methodShape(bound.Type())
		if !ok {
			continue
		}

		name := snakeCase(method.Name)
		schema, err := schemaFor(argType)
		if err != nil {
			return nil, fmt.Errorf("introspect: %s: %w", name, err)
		}

		candidates = append(candidates, autotool.Candidate{
			Name:        name,
			Description: cfg.descriptions[name],
			Parameters:  schema,
			Invoke:      invoker(name, bound, takesCtx, argType),
		})
	}
	return candidates, nil
}

// methodShape reports whether a bound method type is enumerable: up to one
// leading context.Context, up to one argument (struct, *struct, or
// map[string]any), and one or two results with any error last.
func methodShape(ft reflect.Type) (takesCtx bool, argType reflect.Type, ok bool) {
	if ft.IsVariadic() || ft.NumIn() > 2 {
		return false, nil, false
	}

	in := 0
	if ft.NumIn() > 0 && ft.In(0) == ctxType {
		takesCtx = true
		in = 1
	}
	switch ft.NumIn() - in {
	case 0:
	case 1:
		argType = ft.In(in)
		if !schemaable(argType) {
			return false, nil, false
		}
	default:
		return false, nil, false
	}

	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errType {
			return false, nil, false
		}
	default:
		return false, nil, false
	}
	return takesCtx, argType, true
}

func schemaable(t reflect.Type) bool {
	if t == mapType {
		return true
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// invoker adapts a bound method into a tool call handler: JSON arguments
// in, JSON result out. The closure is carried on the candidate and invoked
// only by the consuming agent framework.
func invoker(name string, bound reflect.Value, takesCtx bool, argType reflect.Type) autotool.Handler {
	return func(ctx context.Context, call autotool.ToolCall) (string, error) {
		in := make([]reflect.Value, 0, 2)
		if takesCtx {
			in = append(in, reflect.ValueOf(ctx))
		}
		if argType != nil {
			arg, err := decodeArg(name, argType, call.Arguments)
			if err != nil {
				return "", err
			}
			in = append(in, arg)
		}

		out := bound.Call(in)
		result, err := splitResults(out)
		if err != nil {
			return "", err
		}
		return encodeResult(result), nil
	}
}

func decodeArg(name string, argType reflect.Type, raw string) (reflect.Value, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	base := argType
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	ptr := reflect.New(base)
	if err := json.Unmarshal([]byte(raw), ptr.Interface()); err != nil {
		return reflect.Value{}, fmt.Errorf("introspect: %s: decode arguments: %w", name, err)
	}
	if argType.Kind() == reflect.Ptr {
		return ptr, nil
	}
	return ptr.Elem(), nil
}

// splitResults separates a call's outputs into result value and error.
// A single result that is an error counts as the error.
func splitResults(out []reflect.Value) (any, error) {
	asErr := func(v reflect.Value) error {
		if v.IsNil() {
			return nil
		}
		return v.Interface().(error)
	}

	if len(out) == 2 {
		return out[0].Interface(), asErr(out[1])
	}
	if out[0].Type() == errType {
		return nil, asErr(out[0])
	}
	return out[0].Interface(), nil
}

// encodeResult renders a method result for the model: JSON when possible,
// fmt fallback otherwise.
func encodeResult(result any) string {
	if result == nil {
		return ""
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}

// snakeCase converts an exported Go method name to its snake_case operation
// name: ListBuckets -> list_buckets, GetHTTPStatus -> get_http_status.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OperationNames returns the snake_case names of every exported method on
// the client, regardless of shape. Use it to survey what a policy would
// admit before committing to full enumeration; names alone are all the
// filtering core consumes.
func OperationNames(client any) ([]string, error) {
	v := reflect.ValueOf(client)
	if !v.IsValid() {
		return nil, ErrNilClient
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, ErrNilClient
	}

	t := v.Type()
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, snakeCase(t.Method(i).Name))
	}
	return names, nil
}

// ClientEnumerator adapts a wrapped client to the
// [autotool.Enumerator] interface.
type ClientEnumerator struct {
	client any
	opts   []Option
}

// NewEnumerator creates an enumerator over the client's exported methods.
func NewEnumerator(client any, opts ...Option) *ClientEnumerator {
	return &ClientEnumerator{client: client, opts: opts}
}

// Candidates enumerates the client's methods.
func (e *ClientEnumerator) Candidates() ([]autotool.Candidate, error) {
	return Methods(e.client, e.opts...)
}
