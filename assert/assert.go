package assert

import (
	"fmt"
	"reflect"
)

const (
	defaultMessage    = "Assertion failed"
	defaultValueName  = "value"
	defaultObjectName = "object"
)

func nameOr(name string, fallback string) string {
	if len(name) == 0 {
		return fallback
	}
	return name
}

func optionalName(name []string, fallback string) string {
	if len(name) == 0 {
		return fallback
	}
	return nameOr(name[0], fallback)
}

// Assert panics with an [AssertionError] if expr is exactly the boolean false.
// Anything else, including zero values and nil, is treated as success.
// The message defaults to "Assertion failed" if none is given.
func Assert(expr any, message ...string) {
	if result, ok := expr.(bool); ok && !result {
		fail(optionalName(message, defaultMessage))
	}
}

// IsDefined asserts that value is not [Undefined].
// Note that nil is a defined value.
func IsDefined(value any, name ...string) {
	if IsUndefined(value) {
		fail(optionalName(name, defaultValueName) + " is undefined")
	}
}

// IsArray asserts that value is a slice or array of any element type.
// A nil slice is still an array, but nil itself is not.
func IsArray(value any, name ...string) {
	if !isArray(value) {
		fail(optionalName(name, defaultValueName) + " is not an Array")
	}
}

func isArray(value any) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// IsTypeof asserts that the [TypeOf] value matches expectedType.
func IsTypeof(value any, expectedType string) {
	IsTypeofNamed(value, defaultValueName, expectedType)
}

// IsTypeofNamed is the same as [IsTypeof], but uses name to refer to the value in the failure message.
func IsTypeofNamed(value any, name, expectedType string) {
	if TypeOf(value) != expectedType {
		fail(fmt.Sprintf("%s (%s) is not of type %s", nameOr(name, defaultValueName), display(value), expectedType))
	}
}

var (
	ContainsKey      = ContainsKeys      // ContainsKey is an alias of ContainsKeys.
	ContainsKeyNamed = ContainsKeysNamed // ContainsKeyNamed is an alias of ContainsKeysNamed.
)

// ContainsKeys asserts that value has every key in requiredKeys, which may be any shape accepted by [Keys].
// Keys are checked in order, and the first one missing fails the assertion.
//
// A key is present if it's in a map, is an exported field of a struct (including promoted fields), or is a method of value.
func ContainsKeys(value any, requiredKeys any) {
	ContainsKeysNamed(value, defaultObjectName, requiredKeys)
}

// ContainsKeysNamed is the same as [ContainsKeys], but uses name to refer to the value in the failure message.
func ContainsKeysNamed(value any, name string, requiredKeys any) {
	for _, key := range mustKeys(requiredKeys) {
		if !hasKey(value, key) {
			fail(nameOr(name, defaultObjectName) + " is missing required key " + key)
		}
	}
}

var (
	ContainsMethods      = ContainsMethod      // ContainsMethods is an alias of ContainsMethod.
	ContainsMethodsNamed = ContainsMethodNamed // ContainsMethodsNamed is an alias of ContainsMethodNamed.
)

// ContainsMethod asserts that obj has a callable under each of the requiredNames, which may be any shape accepted by [Keys].
// A method of obj, a non-nil func field, or a non-nil func stored in a map will satisfy a name.
func ContainsMethod(obj any, requiredNames any) {
	ContainsMethodNamed(obj, defaultObjectName, requiredNames)
}

// ContainsMethodNamed is the same as [ContainsMethod], but uses name to refer to obj in the failure message.
func ContainsMethodNamed(obj any, name string, requiredNames any) {
	for _, method := range mustKeys(requiredNames) {
		if !hasMethod(obj, method) {
			fail(nameOr(name, defaultObjectName) + " is missing required method " + method)
		}
	}
}
