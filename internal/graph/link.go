package graph

import (
	"context"
)

// The linking pass. It runs once the reduction pass has registered every
// named type: first the single-reference queue, then the list-reference
// queue, then root validation. Entries within a queue carry no
// cross-dependencies, so resolution order inside a pass does not matter.

func (b *builder) link(ctx context.Context) (*Schema, error) {
	_, span := b.tracer.Start(ctx, "graph.link")
	defer span.End()

	for _, ref := range b.pendingSingle {
		t := b.registry.Lookup(ref.name)
		if t == nil {
			return nil, &UndefinedTypeError{Name: ref.name}
		}
		switch ref.kind {
		case slotFieldType:
			ref.field.Type = t
		case slotInputType:
			ref.input.Type = t
		case slotOfType:
			ref.wrapper.OfType = t
		}
	}

	for _, ref := range b.pendingList {
		resolved := make([]*Type, 0, len(ref.names))
		for _, name := range ref.names {
			t := b.registry.Lookup(name)
			if t == nil {
				return nil, &UndefinedInterfaceOrMemberError{Name: name}
			}
			resolved = append(resolved, t)
		}
		switch ref.kind {
		case slotInterfaces:
			ref.owner.Interfaces = resolved
		case slotUnionMembers:
			ref.owner.PossibleTypes = collapseDuplicates(resolved)
		}
	}

	return b.validateRoots()
}

// collapseDuplicates drops repeated union members, keeping the first
// occurrence of each.
func collapseDuplicates(types []*Type) []*Type {
	seen := make(map[*Type]bool, len(types))
	out := types[:0]
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// validateRoots checks the root operation types and freezes the Schema. The
// query root is mandatory and must be an object; mutation and subscription
// roots are optional but face the same kind check when declared. Without a
// schema block the query root defaults to the conventional name.
func (b *builder) validateRoots() (*Schema, error) {
	queryType := b.queryType
	if queryType == "" {
		queryType = "Query"
	}
	if t := b.registry.Lookup(queryType); t == nil || t.Kind != KindObject {
		return nil, &MissingRootQueryTypeError{Name: queryType}
	}
	if name := b.mutationType; name != "" {
		if t := b.registry.Lookup(name); t == nil || t.Kind != KindObject {
			return nil, &InvalidRootOperationTypeError{Operation: "mutation", Name: name}
		}
	}
	if name := b.subscriptionType; name != "" {
		if t := b.registry.Lookup(name); t == nil || t.Kind != KindObject {
			return nil, &InvalidRootOperationTypeError{Operation: "subscription", Name: name}
		}
	}

	return &Schema{
		Types:        b.registry,
		Query:        queryType,
		Mutation:     b.mutationType,
		Subscription: b.subscriptionType,
	}, nil
}
