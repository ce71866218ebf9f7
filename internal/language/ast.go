package language

import "github.com/vektah/gqlparser/v2/ast"

type (
	SchemaDocument      = ast.SchemaDocument
	SchemaDefinition    = ast.SchemaDefinition
	OperationTypeDef    = ast.OperationTypeDefinition
	Definition          = ast.Definition
	FieldDefinition     = ast.FieldDefinition
	FieldList           = ast.FieldList
	ArgumentDefinition  = ast.ArgumentDefinition
	EnumValueDefinition = ast.EnumValueDefinition
	Type                = ast.Type

	QueryDocument       = ast.QueryDocument
	OperationDefinition = ast.OperationDefinition
	FragmentDefinition  = ast.FragmentDefinition
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	FragmentSpread      = ast.FragmentSpread
	InlineFragment      = ast.InlineFragment
	Directive           = ast.Directive
	DirectiveList       = ast.DirectiveList
	Argument            = ast.Argument
	ArgumentList        = ast.ArgumentList
	Value               = ast.Value
	ChildValue          = ast.ChildValue
	ChildValueList      = ast.ChildValueList

	Position = ast.Position
)

type DefinitionKind = ast.DefinitionKind

type Operation = ast.Operation

type ValueKind = ast.ValueKind

const (
	Query        Operation = ast.Query
	Mutation     Operation = ast.Mutation
	Subscription Operation = ast.Subscription

	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject

	Variable     ValueKind = ast.Variable
	IntValue     ValueKind = ast.IntValue
	FloatValue   ValueKind = ast.FloatValue
	StringValue  ValueKind = ast.StringValue
	BlockValue   ValueKind = ast.BlockValue
	BooleanValue ValueKind = ast.BooleanValue
	NullValue    ValueKind = ast.NullValue
	EnumValue    ValueKind = ast.EnumValue
	ListValue    ValueKind = ast.ListValue
	ObjectValue  ValueKind = ast.ObjectValue
)
