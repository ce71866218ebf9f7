package graph

import (
	language "github.com/graphlink/graphlink/internal/language"
)

// Document is the linked output of an executable-document construction. It
// exclusively owns its operations and fragments. The anonymous operation, if
// any, is keyed by the empty name and is guaranteed to be the sole entry.
type Document struct {
	Operations map[string]*Operation `json:"operations"`
	Fragments  map[string]*Fragment  `json:"fragments"`
}

// Operation is a single query, mutation, or subscription.
type Operation struct {
	Name         string             `json:"name,omitempty"`
	Operation    language.Operation `json:"operation"`
	SelectionSet []Selection        `json:"selectionSet"`
}

// Fragment is a named fragment definition. OnType stays an opaque name at
// this layer; matching it against the schema is the executor's concern.
type Fragment struct {
	Name         string       `json:"name"`
	OnType       string       `json:"onType"`
	Directives   []*Directive `json:"directives,omitempty"`
	SelectionSet []Selection  `json:"selectionSet"`
}

// Selection is one entry of a selection set: a Field, a FragmentSpread, or
// an InlineFragment.
type Selection interface {
	isSelection()
}

// Field is a field selection. Alias equals Name unless the source aliased
// the field explicitly.
type Field struct {
	Alias        string       `json:"alias,omitempty"`
	Name         string       `json:"name"`
	Arguments    []*Argument  `json:"arguments,omitempty"`
	Directives   []*Directive `json:"directives,omitempty"`
	SelectionSet []Selection  `json:"selectionSet,omitempty"`
}

// FragmentSpread references a named fragment from a selection set.
type FragmentSpread struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives,omitempty"`
}

// InlineFragment is an unnamed fragment applied in place.
type InlineFragment struct {
	OnType       string       `json:"onType,omitempty"`
	Directives   []*Directive `json:"directives,omitempty"`
	SelectionSet []Selection  `json:"selectionSet"`
}

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}

// Argument is a named literal argument on a field or directive.
type Argument struct {
	Name  string `json:"name"`
	Value *Value `json:"value"`
}

// Directive is a directive use, e.g. @include(if: true).
type Directive struct {
	Name      string      `json:"name"`
	Arguments []*Argument `json:"arguments,omitempty"`
}
