package graph

// TypeRegistry maps type names to the Type nodes owned by one schema.
// Insertion order follows declaration order in the source. One registry
// belongs to exactly one construction; independent constructions never share
// state.
type TypeRegistry struct {
	types   map[string]*Type
	names   []string
	builtin map[string]bool
}

func newTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make(map[string]*Type),
		builtin: make(map[string]bool),
	}
}

// insert registers a reduced top-level type definition. Redefining a name is
// rejected rather than silently replacing the earlier node, matching the
// strictness applied to operation names.
func (r *TypeRegistry) insert(t *Type) error {
	if _, ok := r.types[t.Name]; ok {
		return &DuplicateTypeDefinitionError{Name: t.Name}
	}
	r.types[t.Name] = t
	r.names = append(r.names, t.Name)
	return nil
}

// Lookup returns the type registered under name, or nil.
func (r *TypeRegistry) Lookup(name string) *Type {
	return r.types[name]
}

// Len returns the number of registered types.
func (r *TypeRegistry) Len() int { return len(r.names) }

// TypeNames returns every registered name in declaration order. Built-in
// scalars that were not declared in the source come last.
func (r *TypeRegistry) TypeNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// IsBuiltin reports whether name was supplied by the registry itself rather
// than declared in the source.
func (r *TypeRegistry) IsBuiltin(name string) bool { return r.builtin[name] }
