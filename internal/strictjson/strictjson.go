// Package strictjson decodes JSON with field-presence checking.
//
// The standard library's [encoding/json] silently leaves struct fields at
// their zero value when the corresponding key is missing from the input.
// This package instead treats every exported field of the output struct as
// required and fails when the input does not contain it. Keys present in
// the input but absent from the struct also cause a failure, unless the
// caller explicitly tolerates them.
//
// We scan the input with [gjson] to learn which keys are present, walk the
// output type with reflection to compare shapes, and then delegate the
// actual decoding to [encoding/json]. Key matching follows the same rules
// as [encoding/json]: an exact match wins, otherwise we fall back to a
// case-insensitive match.
package strictjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidSyntax indicates the input is not well-formed JSON.
var ErrInvalidSyntax = errors.New("strictjson: invalid JSON syntax")

// ErrNotPointer indicates the output is not a non-nil pointer.
var ErrNotPointer = errors.New("strictjson: output must be a non-nil pointer")

// Unmarshal parses data into the value pointed to by output.
//
// Arguments:
//
// - data is the raw JSON input;
//
// - output is a non-nil pointer to the value to fill;
//
// - allowUnknownFields indicates whether keys present in the input but
// absent from the output struct are tolerated rather than fatal.
//
// A field required by the output struct but missing from the input is
// always an error, regardless of allowUnknownFields.
func Unmarshal(data []byte, output any, allowUnknownFields bool) error {
	pointer := reflect.ValueOf(output)
	if pointer.Kind() != reflect.Pointer || pointer.IsNil() {
		return ErrNotPointer
	}
	if !gjson.ValidBytes(data) {
		return ErrInvalidSyntax
	}
	value := gjson.ParseBytes(data)
	if err := checkShape(value, pointer.Type().Elem(), allowUnknownFields); err != nil {
		return err
	}
	return json.Unmarshal(data, output)
}

// checkShape verifies field presence for typ against the given JSON value.
func checkShape(value gjson.Result, typ reflect.Type, allowUnknownFields bool) error {
	// a JSON null is acceptable wherever a pointer, map, or slice may be:
	// the caller decides separately whether to tolerate nil values
	for typ.Kind() == reflect.Pointer {
		if value.Type == gjson.Null {
			return nil
		}
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Struct:
		return checkStruct(value, typ, allowUnknownFields)

	case reflect.Slice, reflect.Array:
		if value.Type == gjson.Null || !value.IsArray() {
			// leave type mismatches to encoding/json
			return nil
		}
		var err error
		elem := typ.Elem()
		value.ForEach(func(_, item gjson.Result) bool {
			err = checkShape(item, elem, allowUnknownFields)
			return err == nil
		})
		return err

	case reflect.Map:
		if value.Type == gjson.Null || !value.IsObject() {
			return nil
		}
		var err error
		elem := typ.Elem()
		value.ForEach(func(_, item gjson.Result) bool {
			err = checkShape(item, elem, allowUnknownFields)
			return err == nil
		})
		return err

	default:
		// scalars and interfaces: encoding/json reports mismatches
		return nil
	}
}

// checkStruct verifies that every required field of typ appears in the
// given JSON object and, unless tolerated, that no extra keys appear.
func checkStruct(value gjson.Result, typ reflect.Type, allowUnknownFields bool) error {
	if !value.IsObject() {
		// leave type mismatches to encoding/json
		return nil
	}

	fields := make(map[string]reflect.Type)
	collectFields(typ, fields)

	present := make(map[string]gjson.Result)
	value.ForEach(func(key, item gjson.Result) bool {
		present[key.String()] = item
		return true
	})

	for name, ftyp := range fields {
		item, found := lookupKey(present, name)
		if !found {
			return fmt.Errorf("strictjson: missing required field %q", name)
		}
		if err := checkShape(item, ftyp, allowUnknownFields); err != nil {
			return err
		}
	}

	if !allowUnknownFields {
		for key := range present {
			if !knownKey(fields, key) {
				return fmt.Errorf("strictjson: unknown field %q", key)
			}
		}
	}

	return nil
}

// collectFields maps the JSON name of each exported field of typ to its
// type, flattening embedded structs like encoding/json does.
func collectFields(typ reflect.Type, fields map[string]reflect.Type) {
	for idx := 0; idx < typ.NumField(); idx++ {
		field := typ.Field(idx)
		if field.Anonymous && !hasExplicitName(field) {
			// embedded structs are flattened, including embedded
			// unexported struct types with exported fields
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, fields)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		name := fieldJSONName(field)
		if name == "-" {
			continue
		}
		if _, found := fields[name]; found {
			// a shallower field already claimed this name
			continue
		}
		fields[name] = field.Type
	}
}

// fieldJSONName returns the JSON key for the given struct field.
func fieldJSONName(field reflect.StructField) string {
	tag, found := field.Tag.Lookup("json")
	if !found {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// hasExplicitName indicates whether the field's json tag assigns a name.
func hasExplicitName(field reflect.StructField) bool {
	tag, found := field.Tag.Lookup("json")
	if !found {
		return false
	}
	name, _, _ := strings.Cut(tag, ",")
	return name != "" && name != "-"
}

// lookupKey finds name among the present keys using exact matching first
// and case-insensitive matching otherwise, like encoding/json does.
func lookupKey(present map[string]gjson.Result, name string) (gjson.Result, bool) {
	if item, found := present[name]; found {
		return item, true
	}
	for key, item := range present {
		if strings.EqualFold(key, name) {
			return item, true
		}
	}
	return gjson.Result{}, false
}

// knownKey indicates whether key names some field, matching like
// encoding/json does.
func knownKey(fields map[string]reflect.Type, key string) bool {
	if _, found := fields[key]; found {
		return true
	}
	for name := range fields {
		if strings.EqualFold(name, key) {
			return true
		}
	}
	return false
}
