package graph

// The five scalars every schema carries implicitly. A source declaration of
// the same name takes precedence; ensureBuiltins only fills the gaps, so it
// must run after the reduction pass and before linking.
var builtinScalarNames = []string{"Int", "Float", "String", "Boolean", "ID"}

func (r *TypeRegistry) ensureBuiltins() {
	for _, name := range builtinScalarNames {
		if _, ok := r.types[name]; ok {
			continue
		}
		r.types[name] = &Type{Kind: KindScalar, Name: name}
		r.names = append(r.names, name)
		r.builtin[name] = true
	}
}
