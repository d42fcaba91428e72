// internal/client/object.go
package client

// Object is a loosely-typed view over a decoded JSON object. The remote
// API's shapes vary by endpoint and version, so accessors return a zero
// value (or a supplied default) when a key is missing or of the wrong
// type instead of failing.
type Object map[string]any

// AsObject converts a decoded JSON value to an Object, returning an
// empty Object when the value is not a JSON object.
func AsObject(v any) Object {
	if m, ok := v.(map[string]any); ok {
		return Object(m)
	}
	return Object{}
}

// AsList converts a decoded JSON value to a slice, returning nil when
// the value is not a JSON array.
func AsList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

func (o Object) Str(key string) string {
	return o.StrOr(key, "")
}

func (o Object) StrOr(key, fallback string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return fallback
}

func (o Object) Float(key string) float64 {
	if f, ok := o[key].(float64); ok {
		return f
	}
	return 0
}

func (o Object) Int(key string) int {
	if f, ok := o[key].(float64); ok {
		return int(f)
	}
	return 0
}

func (o Object) Bool(key string) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return false
}

func (o Object) List(key string) []any {
	return AsList(o[key])
}

func (o Object) Object(key string) Object {
	return AsObject(o[key])
}
