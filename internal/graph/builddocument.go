package graph

import (
	language "github.com/graphlink/graphlink/internal/language"
)

// The executable half of the reduction pass. Operations and fragments reduce
// in a single bottom-up walk with no deferral: every name they mention stays
// an opaque string at this layer.

func (b *builder) reduceQueryDocument(doc *language.QueryDocument) (*Document, error) {
	d := &Document{
		Operations: make(map[string]*Operation, len(doc.Operations)),
		Fragments:  make(map[string]*Fragment, len(doc.Fragments)),
	}

	for _, node := range doc.Operations {
		op, err := reduceOperation(node)
		if err != nil {
			return nil, err
		}
		if _, ok := d.Operations[op.Name]; ok {
			return nil, &DuplicateOperationNameError{Name: op.Name}
		}
		d.Operations[op.Name] = op
	}

	// The anonymous-operation rule is evaluated once, after the full
	// document has reduced.
	if _, ok := d.Operations[""]; ok && len(d.Operations) > 1 {
		return nil, &AnonymousOperationConflictError{}
	}

	for _, node := range doc.Fragments {
		frag, err := reduceFragment(node)
		if err != nil {
			return nil, err
		}
		if _, ok := d.Fragments[frag.Name]; ok {
			return nil, &DuplicateFragmentNameError{Name: frag.Name}
		}
		d.Fragments[frag.Name] = frag
	}

	return d, nil
}

func reduceOperation(node *language.OperationDefinition) (*Operation, error) {
	selections, err := reduceSelectionSet(node.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &Operation{
		Name:         node.Name,
		Operation:    node.Operation,
		SelectionSet: selections,
	}, nil
}

func reduceFragment(node *language.FragmentDefinition) (*Fragment, error) {
	directives, err := reduceDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	selections, err := reduceSelectionSet(node.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &Fragment{
		Name:         node.Name,
		OnType:       node.TypeCondition,
		Directives:   directives,
		SelectionSet: selections,
	}, nil
}

func reduceSelectionSet(nodes language.SelectionSet) ([]Selection, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	selections := make([]Selection, 0, len(nodes))
	for _, node := range nodes {
		switch node := node.(type) {
		case *language.Field:
			field, err := reduceField(node)
			if err != nil {
				return nil, err
			}
			selections = append(selections, field)

		case *language.FragmentSpread:
			directives, err := reduceDirectives(node.Directives)
			if err != nil {
				return nil, err
			}
			selections = append(selections, &FragmentSpread{
				Name:       node.Name,
				Directives: directives,
			})

		case *language.InlineFragment:
			directives, err := reduceDirectives(node.Directives)
			if err != nil {
				return nil, err
			}
			sub, err := reduceSelectionSet(node.SelectionSet)
			if err != nil {
				return nil, err
			}
			selections = append(selections, &InlineFragment{
				OnType:       node.TypeCondition,
				Directives:   directives,
				SelectionSet: sub,
			})
		}
	}
	return selections, nil
}

func reduceField(node *language.Field) (*Field, error) {
	arguments, err := reduceArguments(node.Arguments)
	if err != nil {
		return nil, err
	}
	directives, err := reduceDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	sub, err := reduceSelectionSet(node.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &Field{
		Alias:        node.Alias,
		Name:         node.Name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: sub,
	}, nil
}

func reduceArguments(nodes language.ArgumentList) ([]*Argument, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	arguments := make([]*Argument, 0, len(nodes))
	for _, node := range nodes {
		value, err := convertValue(node.Value)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, &Argument{Name: node.Name, Value: value})
	}
	return arguments, nil
}

func reduceDirectives(nodes language.DirectiveList) ([]*Directive, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	directives := make([]*Directive, 0, len(nodes))
	for _, node := range nodes {
		arguments, err := reduceArguments(node.Arguments)
		if err != nil {
			return nil, err
		}
		directives = append(directives, &Directive{Name: node.Name, Arguments: arguments})
	}
	return directives, nil
}
