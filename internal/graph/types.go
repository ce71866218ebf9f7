// Package graph builds linked, strongly-typed graphs from GraphQL parse
// trees: a Schema from SDL input, a Document from executable input. Types in
// SDL may reference each other by name in any order, so schema construction
// runs in two phases: a single bottom-up reduction pass that creates nodes
// and queues unresolved name references, followed by a linking pass that
// patches every queued reference once all named types are registered.
package graph

// TypeKind discriminates the Type variant.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// Type is one node of the linked type graph. Named kinds are owned by the
// schema's registry. List and NonNull wrappers are owned by the slot that
// references them and reach the rest of the graph through OfType. After a
// successful construction every Type and OfType reference points at a node
// reachable from the same schema; the graph is treated as immutable from
// then on.
type Type struct {
	Kind TypeKind
	Name string // empty for LIST and NON_NULL

	Fields        []*FieldDefinition // OBJECT, INTERFACE
	Interfaces    []*Type            // OBJECT, declared order
	PossibleTypes []*Type            // UNION, duplicates collapsed
	EnumValues    []string           // ENUM
	InputFields   []*InputValue      // INPUT_OBJECT
	OfType        *Type              // LIST, NON_NULL
}

// FieldDefinition is a field on an object or interface type. Type is nil
// between reduction and linking, never afterwards.
type FieldDefinition struct {
	Name string
	Type *Type
	Args []*InputValue
}

// InputValue is an argument definition or an input object field.
type InputValue struct {
	Name    string
	Type    *Type
	Default *Value
}

// Schema is the linked output of a schema construction. It owns every named
// type through its registry; all other type references point back into it.
type Schema struct {
	Types        *TypeRegistry
	Query        string
	Mutation     string
	Subscription string
}

// QueryType returns the root query type.
func (s *Schema) QueryType() *Type { return s.Types.Lookup(s.Query) }

// MutationType returns the root mutation type, or nil if none was declared.
func (s *Schema) MutationType() *Type { return s.Types.Lookup(s.Mutation) }

// SubscriptionType returns the root subscription type, or nil if none was
// declared.
func (s *Schema) SubscriptionType() *Type { return s.Types.Lookup(s.Subscription) }

// IsWrapper reports whether the type is a List or NonNull wrapper.
func (t *Type) IsWrapper() bool {
	return t.Kind == KindList || t.Kind == KindNonNull
}

// Unwrap removes one wrapper layer; for named types it returns the receiver.
func (t *Type) Unwrap() *Type {
	if t.IsWrapper() {
		return t.OfType
	}
	return t
}

// NamedType walks wrapper chains down to the innermost named type. It
// returns nil for a chain whose innermost reference has not been linked yet.
func (t *Type) NamedType() *Type {
	for t != nil && t.IsWrapper() {
		t = t.OfType
	}
	return t
}

// String prints the type in SDL notation, e.g. "[Episode!]!". The wrapper
// chain is walked with a loop so adversarially deep nesting cannot exhaust
// the stack.
func (t *Type) String() string {
	var wrappers []TypeKind
	for t != nil && t.IsWrapper() {
		wrappers = append(wrappers, t.Kind)
		t = t.OfType
	}
	s := ""
	if t != nil {
		s = t.Name
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		if wrappers[i] == KindList {
			s = "[" + s + "]"
		} else {
			s += "!"
		}
	}
	return s
}
