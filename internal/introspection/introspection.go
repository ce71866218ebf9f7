// Package introspection flattens a linked schema into the standard GraphQL
// introspection response shape. The linked type graph is cyclic, so types
// reference each other here through TypeRef nodes instead of pointers, which
// keeps the result JSON-serializable.
package introspection

import (
	"sort"

	"github.com/graphlink/graphlink/internal/graph"
)

// Response is the value of the __schema introspection field.
type Response struct {
	QueryType        *TypeRef `json:"queryType"`
	MutationType     *TypeRef `json:"mutationType"`
	SubscriptionType *TypeRef `json:"subscriptionType"`
	Types            []*Type  `json:"types"`
}

// Type describes one named type of the schema.
type Type struct {
	Kind          graph.TypeKind `json:"kind"`
	Name          string         `json:"name"`
	Fields        []*Field       `json:"fields,omitempty"`
	Interfaces    []*TypeRef     `json:"interfaces,omitempty"`
	PossibleTypes []*TypeRef     `json:"possibleTypes,omitempty"`
	EnumValues    []*EnumValue   `json:"enumValues,omitempty"`
	InputFields   []*InputValue  `json:"inputFields,omitempty"`
}

// Field describes a field of an object or interface type.
type Field struct {
	Name string        `json:"name"`
	Args []*InputValue `json:"args"`
	Type *TypeRef      `json:"type"`
}

// InputValue describes an argument or input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue describes one value of an enum type.
type EnumValue struct {
	Name string `json:"name"`
}

// TypeRef names a type by reference. Named types carry Name and a nil
// OfType; LIST and NON_NULL wrappers carry OfType and no name.
type TypeRef struct {
	Kind   graph.TypeKind `json:"kind"`
	Name   string         `json:"name,omitempty"`
	OfType *TypeRef       `json:"ofType,omitempty"`
}

// Describe flattens the schema. Types are ordered by name so the output is
// deterministic; implicit built-in scalars are included, matching what an
// introspection query against a running server would report.
func Describe(s *graph.Schema) *Response {
	resp := &Response{
		QueryType: namedRef(s.QueryType()),
	}
	if t := s.MutationType(); t != nil {
		resp.MutationType = namedRef(t)
	}
	if t := s.SubscriptionType(); t != nil {
		resp.SubscriptionType = namedRef(t)
	}

	names := s.Types.TypeNames()
	sort.Strings(names)
	for _, name := range names {
		resp.Types = append(resp.Types, describeType(s.Types.Lookup(name)))
	}
	return resp
}

func describeType(t *graph.Type) *Type {
	out := &Type{Kind: t.Kind, Name: t.Name}
	for _, f := range t.Fields {
		out.Fields = append(out.Fields, &Field{
			Name: f.Name,
			Args: describeInputValues(f.Args),
			Type: typeRef(f.Type),
		})
	}
	for _, iface := range t.Interfaces {
		out.Interfaces = append(out.Interfaces, namedRef(iface))
	}
	for _, member := range t.PossibleTypes {
		out.PossibleTypes = append(out.PossibleTypes, namedRef(member))
	}
	for _, value := range t.EnumValues {
		out.EnumValues = append(out.EnumValues, &EnumValue{Name: value})
	}
	out.InputFields = describeInputValues(t.InputFields)
	return out
}

func describeInputValues(values []*graph.InputValue) []*InputValue {
	if len(values) == 0 {
		return nil
	}
	out := make([]*InputValue, 0, len(values))
	for _, v := range values {
		iv := &InputValue{Name: v.Name, Type: typeRef(v.Type)}
		if v.Default != nil {
			s := v.Default.String()
			iv.DefaultValue = &s
		}
		out = append(out, iv)
	}
	return out
}

// typeRef converts a wrapper chain into nested refs. Iterative for the same
// reason Type.String is: nesting depth is caller-controlled.
func typeRef(t *graph.Type) *TypeRef {
	var head, tail *TypeRef
	for t.IsWrapper() {
		ref := &TypeRef{Kind: t.Kind}
		if tail == nil {
			head = ref
		} else {
			tail.OfType = ref
		}
		tail = ref
		t = t.OfType
	}
	ref := namedRef(t)
	if tail == nil {
		return ref
	}
	tail.OfType = ref
	return head
}

func namedRef(t *graph.Type) *TypeRef {
	return &TypeRef{Kind: t.Kind, Name: t.Name}
}
