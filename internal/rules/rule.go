// Package rules applies assertions, described in a JSON or YAML rule document, to decoded data.
package rules

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/assertx/assert"
	"github.com/saylorsolutions/assertx/internal/set"
	"strings"
)

var (
	ErrInvalidRule = errors.New("invalid rule")

	knownTypes = set.New(
		assert.TypeUndefined,
		assert.TypeObject,
		assert.TypeBoolean,
		assert.TypeNumber,
		assert.TypeBigInt,
		assert.TypeString,
		assert.TypeFunction,
	)
)

// Check names the assertion a [Rule] runs.
type Check string

const (
	CheckDefined Check = "defined" // The value must not be undefined.
	CheckArray   Check = "array"   // The value must be an array.
	CheckTypeof  Check = "typeof"  // The value must have the type tag in Rule.Type.
	CheckKeys    Check = "keys"    // The value must have every key in Rule.Keys.
	CheckMethods Check = "methods" // The value must have a callable for every name in Rule.Keys.
	CheckAssert  Check = "assert"  // The value must not be false.
)

// Document is a set of rules, evaluated in order.
type Document struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Rule applies one [Check] to the value found at Path.
type Rule struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"` // Dot separated, with numeric segments indexing arrays. Empty means the whole subject.
	Check   Check  `json:"check" yaml:"check"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Keys    any    `json:"keys,omitempty" yaml:"keys,omitempty"` // A whitespace separated string or a list of strings.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Validate checks that the rule has everything its [Check] needs.
func (r Rule) Validate() error {
	if len(r.Name) == 0 {
		return fmt.Errorf("%w: missing name", ErrInvalidRule)
	}
	switch r.Check {
	case CheckDefined, CheckArray, CheckAssert:
		return nil
	case CheckTypeof:
		if !knownTypes.Has(r.Type) {
			return fmt.Errorf("%w: rule '%s' has unknown type '%s', expected one of %s", ErrInvalidRule, r.Name, r.Type, strings.Join(knownTypes.Sorted(), ", "))
		}
		return nil
	case CheckKeys, CheckMethods:
		keys, err := assert.Keys(r.Keys)
		if err != nil {
			return fmt.Errorf("%w: rule '%s': %w", ErrInvalidRule, r.Name, err)
		}
		if len(keys) == 0 {
			return fmt.Errorf("%w: rule '%s' requires at least one key", ErrInvalidRule, r.Name)
		}
		return nil
	case "":
		return fmt.Errorf("%w: rule '%s' is missing a check", ErrInvalidRule, r.Name)
	default:
		return fmt.Errorf("%w: rule '%s' has unknown check '%s'", ErrInvalidRule, r.Name, r.Check)
	}
}

// Validate checks every rule, and that rule names are unique.
// All problems are reported together.
func (d *Document) Validate() error {
	var (
		errs  = assert.CollectErrors()
		seen  = set.New[string]()
		dupes = set.New[string]()
	)
	for i, rule := range d.Rules {
		if err := rule.Validate(); err != nil {
			errs.Add(fmt.Errorf("rule %d: %w", i, err))
		}
		if len(rule.Name) > 0 && !seen.AddNew(rule.Name) {
			dupes.Add(rule.Name)
		}
	}
	if len(dupes) > 0 {
		errs.Addf("%w: duplicate rule names: %s", ErrInvalidRule, strings.Join(dupes.Sorted(), ", "))
	}
	return errs.Result()
}

// apply runs the rule's check against value, panicking with an [assert.AssertionError] if it fails.
// The path names the value in failure messages.
func (r Rule) apply(value any) {
	check := assert.That(value, r.Path)
	switch r.Check {
	case CheckDefined:
		check.IsDefined()
	case CheckArray:
		check.IsArray()
	case CheckTypeof:
		check.IsTypeof(r.Type)
	case CheckKeys:
		check.ContainsKeys(r.Keys)
	case CheckMethods:
		check.ContainsMethods(r.Keys)
	case CheckAssert:
		assert.Assert(value, r.Message)
	}
}
