package graph

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	language "github.com/graphlink/graphlink/internal/language"
)

// builder carries all per-construction state: the registry being filled and
// the two patch queues drained by the linking pass. A builder serves exactly
// one construction, so independent constructions can run concurrently
// without synchronization.
type builder struct {
	registry *TypeRegistry

	queryType        string
	mutationType     string
	subscriptionType string

	pendingSingle []singleRef
	pendingList   []listRef

	tracer trace.Tracer
}

// slotKind enumerates every patchable single-reference slot. The set is
// closed; the link pass switches over it exhaustively.
type slotKind int

const (
	slotFieldType slotKind = iota // FieldDefinition.Type
	slotInputType                 // InputValue.Type
	slotOfType                    // wrapper Type.OfType
)

// singleRef is a deferred patch request: once the registry is complete, the
// type registered under name is written into the slot selected by kind.
type singleRef struct {
	kind    slotKind
	name    string
	field   *FieldDefinition
	input   *InputValue
	wrapper *Type
}

// listSlotKind enumerates the two by-name list slots of SDL.
type listSlotKind int

const (
	slotInterfaces   listSlotKind = iota // Object.Interfaces, order preserved
	slotUnionMembers                     // Union.PossibleTypes, set semantics
)

// listRef is a deferred patch request for an implements list or a union
// member list.
type listRef struct {
	kind  listSlotKind
	names []string
	owner *Type
}

func newBuilder() *builder {
	return &builder{
		registry: newTypeRegistry(),
		tracer:   otel.Tracer("graphlink/graph"),
	}
}

// BuildSchema reduces the given schema parse trees and links them into one
// Schema. Construction is fail-fast and all-or-nothing: the first error
// aborts the attempt and no partially linked Schema is returned.
func BuildSchema(ctx context.Context, docs ...*language.SchemaDocument) (*Schema, error) {
	b := newBuilder()
	ctx, span := b.tracer.Start(ctx, "graph.BuildSchema")
	defer span.End()

	for _, doc := range docs {
		if err := b.reduceSchemaDocument(doc); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	b.registry.ensureBuiltins()

	span.SetAttributes(
		attribute.Int("graph.types", b.registry.Len()),
		attribute.Int("graph.pending_single_refs", len(b.pendingSingle)),
		attribute.Int("graph.pending_list_refs", len(b.pendingList)),
	)

	schema, err := b.link(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return schema, nil
}

// BuildDocument reduces an executable parse tree into a Document. Referenced
// names (field names, type conditions) stay opaque strings here; no linking
// pass is needed.
func BuildDocument(ctx context.Context, doc *language.QueryDocument) (*Document, error) {
	b := newBuilder()
	_, span := b.tracer.Start(ctx, "graph.BuildDocument")
	defer span.End()

	d, err := b.reduceQueryDocument(doc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("graph.operations", len(d.Operations)),
		attribute.Int("graph.fragments", len(d.Fragments)),
	)
	return d, nil
}
