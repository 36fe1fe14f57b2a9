package dispatch

import "fmt"

// ArgType identifies the type of a declared tool parameter.
type ArgType string

// Recognized argument types.
const (
	TypeString  ArgType = "string"
	TypeNumber  ArgType = "number"
	TypeInteger ArgType = "integer"
	TypeBoolean ArgType = "boolean"
	TypeObject  ArgType = "object"
	TypeArray   ArgType = "array"
	TypeNull    ArgType = "null"

	// TypeEnum restricts a string argument to the schema's Enum values.
	TypeEnum ArgType = "enum"
)

// Schema declares the shape of a tool's arguments. The root schema of a
// tool is always object-typed; nested schemas describe its properties.
type Schema struct {
	// Type is the declared argument type.
	Type ArgType

	// Description documents the parameter for the calling agent.
	Description string

	// Enum, when non-empty, restricts a string argument to the listed
	// values.
	Enum []string

	// Properties declares the members of an object-typed schema, keyed
	// by property name.
	Properties map[string]Schema

	// Required lists the property names an object-typed argument must
	// supply.
	Required []string

	// Items describes the elements of an array-typed schema.
	Items *Schema
}

// Validate checks args against the schema. args is the decoded argument
// mapping of one invocation. Validation never calls into any handler.
func (s Schema) Validate(args map[string]any) error {
	if s.Type != TypeObject && s.Type != "" {
		return fmt.Errorf("root schema must be object-typed, got %q", s.Type)
	}
	return s.validateObject("", args)
}

func (s Schema) validateObject(path string, obj map[string]any) error {
	for _, name := range s.Required {
		if _, ok := obj[name]; !ok {
			return fmt.Errorf("missing required property %q", joinPath(path, name))
		}
	}
	for name, value := range obj {
		prop, ok := s.Properties[name]
		if !ok {
			return fmt.Errorf("unknown property %q", joinPath(path, name))
		}
		if err := prop.validateValue(joinPath(path, name), value); err != nil {
			return err
		}
	}
	return nil
}

func (s Schema) validateValue(path string, value any) error {
	if value == nil {
		if s.Type == TypeNull || s.Type == "" {
			return nil
		}
		return fmt.Errorf("property %q: null is not a %s", path, s.Type)
	}
	switch s.Type {
	case TypeString, TypeEnum:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("property %q: expected string, got %T", path, value)
		}
		if (s.Type == TypeEnum || len(s.Enum) > 0) && !containsString(s.Enum, str) {
			return fmt.Errorf("property %q: %q is not one of %v", path, str, s.Enum)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("property %q: expected boolean, got %T", path, value)
		}
	case TypeNumber:
		if !isNumeric(value) {
			return fmt.Errorf("property %q: expected number, got %T", path, value)
		}
	case TypeInteger:
		if !isIntegral(value) {
			return fmt.Errorf("property %q: expected integer, got %T", path, value)
		}
	case TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("property %q: expected object, got %T", path, value)
		}
		return s.validateObject(path, obj)
	case TypeArray:
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("property %q: expected array, got %T", path, value)
		}
		if s.Items != nil {
			for i, elem := range arr {
				if err := s.Items.validateValue(fmt.Sprintf("%s[%d]", path, i), elem); err != nil {
					return err
				}
			}
		}
	case TypeNull:
		return fmt.Errorf("property %q: expected null, got %T", path, value)
	case "":
		// Untyped property: accept anything.
	default:
		return fmt.Errorf("property %q: unrecognized declared type %q", path, s.Type)
	}
	return nil
}

// JSONSchema renders the schema as a JSON Schema fragment, the form
// protocol servers advertise to the calling agent.
func (s Schema) JSONSchema() map[string]any {
	out := make(map[string]any)
	switch s.Type {
	case "":
		out["type"] = string(TypeObject)
	case TypeEnum:
		// JSON Schema spells an enum as a constrained string.
		out["type"] = string(TypeString)
	default:
		out["type"] = string(s.Type)
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		values := make([]any, len(s.Enum))
		for i, v := range s.Enum {
			values[i] = v
		}
		out["enum"] = values
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		required := make([]any, len(s.Required))
		for i, name := range s.Required {
			required[i] = name
		}
		out["required"] = required
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	return out
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// isNumeric accepts the numeric forms JSON decoding and in-process
// callers produce.
func isNumeric(value any) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	}
	return false
}

// isIntegral accepts integer forms, including whole-valued float64 from
// JSON decoding.
func isIntegral(value any) bool {
	switch v := value.(type) {
	case int, int32, int64, uint, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return v == float32(int64(v))
	}
	return false
}
