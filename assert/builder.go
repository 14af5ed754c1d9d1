package assert

// Builder runs assertions against a single value, and returns itself from each method so they can be chained.
// A failed assertion panics, so the rest of the chain won't run.
//
// A Builder is never modified after it's created, so it may be shared.
type Builder struct {
	value any
	name  string
}

// That creates a [Builder] for value.
// If a name is given, it's used to refer to the value in failure messages.
func That(value any, name ...string) *Builder {
	return &Builder{value: value, name: optionalName(name, "")}
}

func (b *Builder) Value() any {
	return b.value
}

func (b *Builder) Name() string {
	return b.name
}

func (b *Builder) IsDefined() *Builder {
	IsDefined(b.value, b.name)
	return b
}

func (b *Builder) IsArray() *Builder {
	IsArray(b.value, b.name)
	return b
}

func (b *Builder) IsTypeof(expectedType string) *Builder {
	IsTypeofNamed(b.value, b.name, expectedType)
	return b
}

// ContainsKeys is the chained form of [ContainsKeys].
func (b *Builder) ContainsKeys(keys any) *Builder {
	ContainsKeysNamed(b.value, b.name, keys)
	return b
}

// ContainsKey is an alias of [Builder.ContainsKeys].
func (b *Builder) ContainsKey(keys any) *Builder {
	return b.ContainsKeys(keys)
}

// ContainsMethods is the chained form of [ContainsMethod].
func (b *Builder) ContainsMethods(names any) *Builder {
	ContainsMethodNamed(b.value, b.name, names)
	return b
}

// ContainsMethod is an alias of [Builder.ContainsMethods].
func (b *Builder) ContainsMethod(names any) *Builder {
	return b.ContainsMethods(names)
}
