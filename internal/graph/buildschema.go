package graph

import (
	language "github.com/graphlink/graphlink/internal/language"
)

// The schema half of the reduction pass. Each definition node is visited
// once, after its children, and produces one Type that is registered
// immediately. Bare type names inside definitions cannot be resolved during
// this pass — the referenced type may be declared later in the document — so
// they are queued on the builder's patch lists instead.

func (b *builder) reduceSchemaDocument(doc *language.SchemaDocument) error {
	for _, node := range doc.Definitions {
		t, err := b.reduceTypeDefinition(node)
		if err != nil {
			return err
		}
		if err := b.registry.insert(t); err != nil {
			return err
		}
	}
	for _, node := range doc.Schema {
		b.reduceSchemaDefinition(node)
	}
	return nil
}

func (b *builder) reduceTypeDefinition(node *language.Definition) (*Type, error) {
	switch node.Kind {
	case language.Object:
		t := &Type{Kind: KindObject, Name: node.Name}
		fields, err := b.reduceFieldDefinitions(node.Fields)
		if err != nil {
			return nil, err
		}
		t.Fields = fields
		if len(node.Interfaces) > 0 {
			b.pendingList = append(b.pendingList, listRef{
				kind:  slotInterfaces,
				names: node.Interfaces,
				owner: t,
			})
		}
		return t, nil

	case language.Interface:
		t := &Type{Kind: KindInterface, Name: node.Name}
		fields, err := b.reduceFieldDefinitions(node.Fields)
		if err != nil {
			return nil, err
		}
		t.Fields = fields
		return t, nil

	case language.Union:
		t := &Type{Kind: KindUnion, Name: node.Name}
		b.pendingList = append(b.pendingList, listRef{
			kind:  slotUnionMembers,
			names: node.Types,
			owner: t,
		})
		return t, nil

	case language.Enum:
		t := &Type{Kind: KindEnum, Name: node.Name}
		t.EnumValues = make([]string, 0, len(node.EnumValues))
		for _, value := range node.EnumValues {
			t.EnumValues = append(t.EnumValues, value.Name)
		}
		return t, nil

	case language.Scalar:
		return &Type{Kind: KindScalar, Name: node.Name}, nil

	case language.InputObject:
		t := &Type{Kind: KindInputObject, Name: node.Name}
		t.InputFields = make([]*InputValue, 0, len(node.Fields))
		for _, fieldNode := range node.Fields {
			iv, err := b.reduceInputValue(fieldNode.Name, fieldNode.Type, fieldNode.DefaultValue)
			if err != nil {
				return nil, err
			}
			t.InputFields = append(t.InputFields, iv)
		}
		return t, nil
	}
	panic("unreachable")
}

func (b *builder) reduceFieldDefinitions(nodes language.FieldList) ([]*FieldDefinition, error) {
	fields := make([]*FieldDefinition, 0, len(nodes))
	for _, node := range nodes {
		fd := &FieldDefinition{Name: node.Name}
		fd.Type = b.reduceTypeExpr(node.Type, singleRef{kind: slotFieldType, field: fd})
		for _, argNode := range node.Arguments {
			iv, err := b.reduceInputValue(argNode.Name, argNode.Type, argNode.DefaultValue)
			if err != nil {
				return nil, err
			}
			fd.Args = append(fd.Args, iv)
		}
		fields = append(fields, fd)
	}
	return fields, nil
}

func (b *builder) reduceInputValue(name string, typeNode *language.Type, defaultNode *language.Value) (*InputValue, error) {
	iv := &InputValue{Name: name}
	iv.Type = b.reduceTypeExpr(typeNode, singleRef{kind: slotInputType, input: iv})
	if defaultNode != nil {
		def, err := convertValue(defaultNode)
		if err != nil {
			return nil, err
		}
		iv.Default = def
	}
	return iv, nil
}

// reduceTypeExpr reduces a type expression into its wrapper chain and
// returns the outermost node, or nil for a bare name. A wrapper whose inner
// type already reduced structurally gets its OfType set on the spot; the
// innermost reference of any chain is always a bare name, which is queued on
// pendingSingle targeting either the innermost wrapper's OfType slot or, for
// an unwrapped name, the caller's own slot. The descent is a loop, so deeply
// nested list types cannot exhaust the stack.
func (b *builder) reduceTypeExpr(node *language.Type, slot singleRef) *Type {
	var outer, hole *Type
	attach := func(w *Type) {
		if hole == nil {
			outer = w
		} else {
			hole.OfType = w
		}
		hole = w
	}
	for {
		if node.NonNull {
			attach(&Type{Kind: KindNonNull})
		}
		if node.Elem == nil {
			break
		}
		attach(&Type{Kind: KindList})
		node = node.Elem
	}
	slot.name = node.NamedType
	if hole != nil {
		slot.kind = slotOfType
		slot.field = nil
		slot.input = nil
		slot.wrapper = hole
	}
	b.pendingSingle = append(b.pendingSingle, slot)
	return outer
}

func (b *builder) reduceSchemaDefinition(node *language.SchemaDefinition) {
	for _, opType := range node.OperationTypes {
		switch opType.Operation {
		case language.Query:
			b.queryType = opType.Type
		case language.Mutation:
			b.mutationType = opType.Type
		case language.Subscription:
			b.subscriptionType = opType.Type
		}
	}
}
