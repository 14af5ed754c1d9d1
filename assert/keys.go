package assert

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

var (
	ErrKeySetShape = errors.New("unsupported key set")
)

// Keys normalizes a set of required keys or method names into an ordered slice.
//
// The accepted shapes are:
//   - A string, which is split on whitespace. So "a" is one key, and "a b c" is three.
//   - A slice of strings, or a slice of [any] where each element is a string. Order is preserved.
//   - A map with string keys, in which case the map's keys are required. These are sorted so the result is deterministic.
//
// Any other shape will return an error wrapping [ErrKeySetShape].
// Normalizing the result of Keys again returns the same keys.
func Keys(keys any) ([]string, error) {
	switch k := keys.(type) {
	case string:
		return strings.Fields(k), nil
	case []string:
		return slices.Clone(k), nil
	case []any:
		normalized := make([]string, len(k))
		for i, elem := range k {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is a %T, not a string", ErrKeySetShape, i, elem)
			}
			normalized[i] = s
		}
		return normalized, nil
	}

	rv := reflect.ValueOf(keys)
	switch rv.Kind() {
	case reflect.String:
		return strings.Fields(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() != reflect.String {
			break
		}
		normalized := make([]string, rv.Len())
		for i := range normalized {
			normalized[i] = rv.Index(i).String()
		}
		return normalized, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		normalized := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			normalized = append(normalized, iter.Key().String())
		}
		slices.Sort(normalized)
		return normalized, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrKeySetShape, keys)
}

// mustKeys panics with a plain error, because an unsupported shape is a mistake by the caller and not a failed assertion.
func mustKeys(keys any) []string {
	normalized, err := Keys(keys)
	if err != nil {
		panic(err)
	}
	return normalized
}

// Field returns the value stored under key in value, or [Undefined] if there isn't one.
//
// Maps with string keys are indexed directly.
// Structs, and pointers to structs, are searched for an exported field with that name, including fields promoted from embedded structs.
// The method set of value is also searched, which is how a method is found with [ContainsMethod].
func Field(value any, key string) any {
	found, ok := lookup(value, key)
	if !ok || !found.CanInterface() {
		return Undefined
	}
	return found.Interface()
}

func hasKey(value any, key string) bool {
	_, ok := lookup(value, key)
	return ok
}

func hasMethod(value any, name string) bool {
	found, ok := lookup(value, name)
	if !ok {
		return false
	}
	for found.Kind() == reflect.Interface {
		if found.IsNil() {
			return false
		}
		found = found.Elem()
	}
	return found.Kind() == reflect.Func && !found.IsNil()
}

func lookup(value any, key string) (reflect.Value, bool) {
	if value == nil || IsUndefined(value) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return reflect.Value{}, false
	}
	if method := rv.MethodByName(key); method.IsValid() {
		return method, true
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		found := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		return found, found.IsValid()
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(key)
		if !ok || !field.IsExported() {
			return reflect.Value{}, false
		}
		found, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return found, true
	}
	return reflect.Value{}, false
}
