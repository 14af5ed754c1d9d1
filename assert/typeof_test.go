package assert

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"math"
	"math/big"
	"net"
	"testing"
	"time"
)

func TestTypeOf(t *testing.T) {
	var (
		nilFunc func()
		nilBig  *big.Int
		nilPtr  *int
	)
	tests := map[string]struct {
		value    any
		expected string
	}{
		"Undefined":   {Undefined, TypeUndefined},
		"Nil":         {nil, TypeObject},
		"Bool":        {true, TypeBoolean},
		"Int":         {12, TypeNumber},
		"Uint8":       {uint8(1), TypeNumber},
		"Float32":     {float32(1.5), TypeNumber},
		"NaN":         {math.NaN(), TypeNumber},
		"JSON number": {json.Number("12"), TypeNumber},
		"Big int":     {big.NewInt(12), TypeBigInt},
		"Nil big int": {nilBig, TypeObject},
		"String":      {"12", TypeString},
		"Func":        {func() {}, TypeFunction},
		"Nil func":    {nilFunc, TypeObject},
		"Map":         {map[string]any{}, TypeObject},
		"Slice":       {[]any{}, TypeObject},
		"Struct":      {struct{}{}, TypeObject},
		"Nil pointer": {nilPtr, TypeObject},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TypeOf(tc.value))
		})
	}
}

func TestDisplay(t *testing.T) {
	answer := 42
	tests := map[string]struct {
		value    any
		expected string
	}{
		"Undefined":      {Undefined, "undefined"},
		"Nil":            {nil, "null"},
		"Int":            {12, "12"},
		"Whole float":    {12.0, "12"},
		"Fraction":       {0.5, "0.5"},
		"Float32":        {float32(0.1), "0.1"},
		"Large float":    {1e21, "1e+21"},
		"NaN":            {math.NaN(), "NaN"},
		"Infinity":       {math.Inf(-1), "-Infinity"},
		"String":         {"abc", "abc"},
		"Bool":           {false, "false"},
		"Slice":          {[]any{1, "a", nil, 2.5}, "1,a,,2.5"},
		"Nested slice":   {[]any{[]int{1, 2}, 3}, "1,2,3"},
		"Map":            {map[string]int{"a": 1}, "[object Object]"},
		"Struct":         {struct{ A int }{1}, "[object Object]"},
		"Pointer":        {&answer, "42"},
		"Big int":        {big.NewInt(7), "7"},
		"JSON number":    {json.Number("3.14"), "3.14"},
		"Nil big int":    {(*big.Int)(nil), "null"},
		"Nil duration":   {(*time.Duration)(nil), "null"},
		"Nil IP":         {(*net.IP)(nil), "null"},
		"Duration":       {time.Second, "1s"},
		"Empty slice":    {[]string{}, ""},
		"Undefined elem": {[]any{Undefined, 1}, ",1"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, display(tc.value))
		})
	}
}
