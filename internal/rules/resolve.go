package rules

import (
	"github.com/saylorsolutions/assertx/assert"
	"reflect"
	"strconv"
	"strings"
)

// Resolve walks a dot separated path through subject.
// Numeric segments index into arrays, and other segments are looked up with [assert.Field].
// Anything that can't be found resolves to [assert.Undefined], so a [CheckDefined] rule can report it.
func Resolve(subject any, path string) any {
	if len(path) == 0 {
		return subject
	}
	current := subject
	for _, segment := range strings.Split(path, ".") {
		if assert.IsUndefined(current) {
			return assert.Undefined
		}
		if elem, ok := index(current, segment); ok {
			current = elem
			continue
		}
		current = assert.Field(current, segment)
	}
	return current
}

// index handles slices and arrays.
// The second return is true if current is a sequence, even when the segment doesn't select an element.
func index(current any, segment string) (any, bool) {
	if current == nil {
		return nil, false
	}
	rv := reflect.ValueOf(current)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= rv.Len() {
		return assert.Undefined, true
	}
	return rv.Index(i).Interface(), true
}
