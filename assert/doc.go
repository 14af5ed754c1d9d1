/*
Package assert provides runtime assertions for validating values at a dynamic boundary, such as data decoded from JSON or YAML into [any].

There are a few patterns that are supported:
  - A base predicate, [Assert], that fails only when given exactly false.
  - Named convenience checks for definedness, array-ness, primitive type, key presence, and method presence.
  - A fluent [Builder], created with [That], for running several checks against one named value.
  - Collecting many failures into one error with a [Collector].

Every check panics with an [*AssertionError] when it fails, and returns normally otherwise.
Use [Catch] or a deferred [Recover] to turn a failure back into an error.
Other panics pass through untouched.

	var err error
	defer assert.Recover(&err)
	assert.That(config, "config").IsDefined().ContainsKeys("host port")

Go has no "undefined", so [Undefined] is provided as a sentinel.
A nil value is considered defined.
Lookups with [Field] return [Undefined] when the key isn't present.
*/
package assert
