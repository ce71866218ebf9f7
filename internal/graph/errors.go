package graph

import "fmt"

// Every error below is fatal to the construction attempt that raised it: the
// first one encountered is surfaced and no partially built Schema or
// Document is returned. Each carries the offending name so callers can
// locate the defect without position tracking.

// DuplicateOperationNameError reports two operations sharing a name.
type DuplicateOperationNameError struct {
	Name string
}

func (e *DuplicateOperationNameError) Error() string {
	return fmt.Sprintf("duplicate operation name %q", e.Name)
}

// AnonymousOperationConflictError reports an anonymous operation appearing
// alongside any other operation.
type AnonymousOperationConflictError struct{}

func (e *AnonymousOperationConflictError) Error() string {
	return "anonymous operation must be the only operation in the document"
}

// DuplicateFragmentNameError reports two fragments sharing a name.
type DuplicateFragmentNameError struct {
	Name string
}

func (e *DuplicateFragmentNameError) Error() string {
	return fmt.Sprintf("duplicate fragment name %q", e.Name)
}

// DuplicateTypeDefinitionError reports two type definitions sharing a name.
type DuplicateTypeDefinitionError struct {
	Name string
}

func (e *DuplicateTypeDefinitionError) Error() string {
	return fmt.Sprintf("type %q is defined more than once", e.Name)
}

// UndefinedTypeError reports a field, argument, or wrapper referencing a
// type name with no matching definition.
type UndefinedTypeError struct {
	Name string
}

func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("undefined type %q", e.Name)
}

// UndefinedInterfaceOrMemberError reports an implements list or union member
// list naming a type with no matching definition.
type UndefinedInterfaceOrMemberError struct {
	Name string
}

func (e *UndefinedInterfaceOrMemberError) Error() string {
	return fmt.Sprintf("undefined interface or union member %q", e.Name)
}

// MissingRootQueryTypeError reports a root query type name that does not
// resolve to an object type.
type MissingRootQueryTypeError struct {
	Name string
}

func (e *MissingRootQueryTypeError) Error() string {
	return fmt.Sprintf("root query type %q is not defined as an object type", e.Name)
}

// InvalidRootOperationTypeError reports a declared mutation or subscription
// root that does not resolve to an object type.
type InvalidRootOperationTypeError struct {
	Operation string
	Name      string
}

func (e *InvalidRootOperationTypeError) Error() string {
	return fmt.Sprintf("root %s type %q is not defined as an object type", e.Operation, e.Name)
}
