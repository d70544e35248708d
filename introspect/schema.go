package introspect

import (
	"encoding/json"
	"reflect"
	"strings"
)

// property is a single JSON Schema property definition.
type property struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Items       *property           `json:"items,omitempty"`
	Properties  map[string]property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

// objectSchema is the top-level parameters schema for one operation.
type objectSchema struct {
	Type       string              `json:"type"`
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// schemaFor derives a JSON Schema object from a method's argument type.
// A nil argType (no-argument operation) yields an empty object schema, and
// map[string]any yields an open one.
func schemaFor(argType reflect.Type) (json.RawMessage, error) {
	schema := objectSchema{
		Type:       "object",
		Properties: map[string]property{},
	}

	if argType != nil && argType != mapType {
		t := argType
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		schema.Properties, schema.Required = structProperties(t)
	}

	return json.Marshal(schema)
}

func structProperties(t reflect.Type) (map[string]property, []string) {
	props := make(map[string]property)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop := propertyFor(field.Type)
		if desc := field.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			prop.Enum = strings.Split(enum, ",")
		}
		if field.Tag.Get("required") == "true" {
			required = append(required, name)
		}

		props[name] = prop
	}
	return props, required
}

func propertyFor(t reflect.Type) property {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return property{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return property{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return property{Type: "number"}

	case reflect.Bool:
		return property{Type: "boolean"}

	case reflect.Slice, reflect.Array:
		items := propertyFor(t.Elem())
		return property{Type: "array", Items: &items}

	case reflect.Struct:
		props, required := structProperties(t)
		return property{Type: "object", Properties: props, Required: required}

	case reflect.Map:
		return property{Type: "object"}

	default:
		return property{Type: "string"}
	}
}
