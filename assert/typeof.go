package assert

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Type tags returned by [TypeOf], and accepted by [IsTypeof].
const (
	TypeUndefined = "undefined"
	TypeObject    = "object"
	TypeBoolean   = "boolean"
	TypeNumber    = "number"
	TypeBigInt    = "bigint"
	TypeString    = "string"
	TypeFunction  = "function"
)

type undefined struct{}

func (undefined) String() string {
	return TypeUndefined
}

// Undefined stands for a value that isn't there at all, which is different from nil.
var Undefined = undefined{}

// IsUndefined reports whether value is the [Undefined] sentinel.
func IsUndefined(value any) bool {
	_, ok := value.(undefined)
	return ok
}

// TypeOf returns the primitive type tag for value.
//
// All Go numeric kinds and [json.Number] are a "number", strings are a "string", and bools are a "boolean".
// A non-nil func is a "function", and a [big.Int] is a "bigint".
// Everything else, including nil, is an "object".
func TypeOf(value any) string {
	switch v := value.(type) {
	case undefined:
		return TypeUndefined
	case nil:
		return TypeObject
	case json.Number:
		return TypeNumber
	case *big.Int:
		if v == nil {
			return TypeObject
		}
		return TypeBigInt
	case big.Int:
		return TypeBigInt
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		if rv.IsNil() {
			return TypeObject
		}
		return TypeFunction
	default:
		return TypeObject
	}
}

// display renders value for failure messages.
// Sequences are comma joined and maps or structs are opaque, like a string conversion in a dynamic language would do.
func display(value any) string {
	// A nil pointer may still satisfy fmt.Stringer through a value receiver, which would panic.
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "null"
	}
	switch v := value.(type) {
	case undefined:
		return TypeUndefined
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case big.Int:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i).Interface()
			if elem == nil || IsUndefined(elem) {
				continue
			}
			parts[i] = display(elem)
		}
		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct:
		return "[object Object]"
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return display(rv.Elem().Interface())
	case reflect.Func:
		if rv.IsNil() {
			return "null"
		}
		return "function " + rv.Type().String()
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'e', -1, bitSize)
}
