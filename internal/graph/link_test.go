package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlink/graphlink/internal/graph"
	"github.com/graphlink/graphlink/internal/language"
)

func mustParseSchema(t *testing.T, sdl string) *language.SchemaDocument {
	t.Helper()
	doc, err := language.ParseSchema("test.graphql", sdl)
	require.NoError(t, err)
	return doc
}

func buildSchema(t *testing.T, sdl string) (*graph.Schema, error) {
	t.Helper()
	return graph.BuildSchema(t.Context(), mustParseSchema(t, sdl))
}

func TestForwardReference(t *testing.T) {
	// Query's field is typed by a name declared later in the document, and
	// Character references itself.
	s, err := buildSchema(t, `
schema { query: Query }

type Query {
  hero: Character
}

type Character {
  id: ID!
  friends: [Character!]!
}
`)
	require.NoError(t, err)

	query := s.Types.Lookup("Query")
	character := s.Types.Lookup("Character")
	require.NotNil(t, query)
	require.NotNil(t, character)

	require.Same(t, character, query.Fields[0].Type)

	friends := character.Fields[1].Type
	require.Equal(t, graph.KindNonNull, friends.Kind)
	require.Equal(t, graph.KindList, friends.OfType.Kind)
	require.Equal(t, graph.KindNonNull, friends.OfType.OfType.Kind)
	require.Same(t, character, friends.OfType.OfType.OfType)
	require.Same(t, character, friends.NamedType())
	require.Equal(t, "[Character!]!", friends.String())
}

func TestInterfaceOrderPreserved(t *testing.T) {
	// Both interfaces are declared after the object that implements them;
	// the resolved list keeps the declared order.
	s, err := buildSchema(t, `
schema { query: Query }

type Query implements Named & Aged {
  name: String
  age: Int
}

interface Named {
  name: String
}

interface Aged {
  age: Int
}
`)
	require.NoError(t, err)

	query := s.Types.Lookup("Query")
	require.Len(t, query.Interfaces, 2)
	require.Same(t, s.Types.Lookup("Named"), query.Interfaces[0])
	require.Same(t, s.Types.Lookup("Aged"), query.Interfaces[1])
}

func TestUnionMembersCollapse(t *testing.T) {
	s, err := buildSchema(t, `
schema { query: Query }

type Query {
  pet: Pet
}

union Pet = Dog | Cat | Dog

type Dog {
  name: String
}

type Cat {
  name: String
}
`)
	require.NoError(t, err)

	pet := s.Types.Lookup("Pet")
	require.Len(t, pet.PossibleTypes, 2)
	require.Same(t, s.Types.Lookup("Dog"), pet.PossibleTypes[0])
	require.Same(t, s.Types.Lookup("Cat"), pet.PossibleTypes[1])
}

func TestUndefinedType(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Query }

type Query {
  user: Missing
}
`)
	var undefErr *graph.UndefinedTypeError
	require.ErrorAs(t, err, &undefErr)
	require.Equal(t, "Missing", undefErr.Name)
}

func TestUndefinedInterface(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Query }

type Query implements Node {
  id: ID
}
`)
	var undefErr *graph.UndefinedInterfaceOrMemberError
	require.ErrorAs(t, err, &undefErr)
	require.Equal(t, "Node", undefErr.Name)
}

func TestUndefinedUnionMember(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Query }

type Query {
  pet: Pet
}

union Pet = Dog | Ghost

type Dog {
  name: String
}
`)
	var undefErr *graph.UndefinedInterfaceOrMemberError
	require.ErrorAs(t, err, &undefErr)
	require.Equal(t, "Ghost", undefErr.Name)
}

func TestMissingRootQueryType(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Query }

type Other {
  id: ID
}
`)
	var rootErr *graph.MissingRootQueryTypeError
	require.ErrorAs(t, err, &rootErr)
	require.Equal(t, "Query", rootErr.Name)
}

func TestScalarRootRejected(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Q }

scalar Q
`)
	var rootErr *graph.MissingRootQueryTypeError
	require.ErrorAs(t, err, &rootErr)
	require.Equal(t, "Q", rootErr.Name)
}

func TestMutationRootMustBeObject(t *testing.T) {
	_, err := buildSchema(t, `
schema { query: Query mutation: Mut }

type Query {
  ok: Boolean
}

scalar Mut
`)
	var rootErr *graph.InvalidRootOperationTypeError
	require.ErrorAs(t, err, &rootErr)
	require.Equal(t, "mutation", rootErr.Operation)
	require.Equal(t, "Mut", rootErr.Name)
}

func TestDefaultQueryRootName(t *testing.T) {
	s, err := buildSchema(t, `
type Query {
  ok: Boolean
}
`)
	require.NoError(t, err)
	require.Equal(t, "Query", s.Query)
	require.Same(t, s.Types.Lookup("Query"), s.QueryType())
}

func TestDuplicateTypeDefinition(t *testing.T) {
	_, err := buildSchema(t, `
type Foo {
  a: String
}

type Foo {
  b: String
}
`)
	var dupErr *graph.DuplicateTypeDefinitionError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, "Foo", dupErr.Name)
}

func TestEndToEnd(t *testing.T) {
	s, err := buildSchema(t, `
scalar ID

type Query {
  id: ID
}

schema { query: Query }
`)
	require.NoError(t, err)
	require.Equal(t, "Query", s.Query)

	query := s.Types.Lookup("Query")
	require.Equal(t, graph.KindObject, query.Kind)
	require.Len(t, query.Fields, 1)
	require.Equal(t, "id", query.Fields[0].Name)

	id := s.Types.Lookup("ID")
	require.Equal(t, graph.KindScalar, id.Kind)
	require.Same(t, id, query.Fields[0].Type)
	// The declared scalar wins over the implicit one.
	require.False(t, s.Types.IsBuiltin("ID"))
}

func TestBuiltinScalars(t *testing.T) {
	s, err := buildSchema(t, `
type Query {
  name: String!
  age: Int
}
`)
	require.NoError(t, err)

	name := s.Types.Lookup("Query").Fields[0].Type
	require.Equal(t, graph.KindNonNull, name.Kind)
	require.Same(t, s.Types.Lookup("String"), name.OfType)
	require.True(t, s.Types.IsBuiltin("String"))
}

func TestEnumValues(t *testing.T) {
	s, err := buildSchema(t, `
type Query {
  episode: Episode
}

enum Episode {
  NEWHOPE
  EMPIRE
  JEDI
}
`)
	require.NoError(t, err)

	episode := s.Types.Lookup("Episode")
	require.Equal(t, graph.KindEnum, episode.Kind)
	require.Equal(t, []string{"NEWHOPE", "EMPIRE", "JEDI"}, episode.EnumValues)
}

func TestInputObjectDefaults(t *testing.T) {
	s, err := buildSchema(t, `
schema { query: Query }

type Query {
  users(filter: Filter = {limit: 5}): String
}

input Filter {
  limit: Int = 10
  active: Boolean = true
}
`)
	require.NoError(t, err)

	filter := s.Types.Lookup("Filter")
	require.Equal(t, graph.KindInputObject, filter.Kind)
	require.Len(t, filter.InputFields, 2)

	limit := filter.InputFields[0]
	require.Same(t, s.Types.Lookup("Int"), limit.Type)
	require.Equal(t, graph.ValueInt, limit.Default.Kind)
	require.Equal(t, int64(10), limit.Default.Int)

	active := filter.InputFields[1]
	require.Equal(t, graph.ValueBool, active.Default.Kind)
	require.True(t, active.Default.Bool)

	arg := s.Types.Lookup("Query").Fields[0].Args[0]
	require.Same(t, filter, arg.Type)
	require.Equal(t, graph.ValueObject, arg.Default.Kind)
}

func TestMultiDocumentSchema(t *testing.T) {
	base := mustParseSchema(t, `
schema { query: Query }

type Query {
  user: User
}
`)
	users := mustParseSchema(t, `
type User {
  id: ID!
}
`)
	s, err := graph.BuildSchema(t.Context(), base, users)
	require.NoError(t, err)
	require.Same(t, s.Types.Lookup("User"), s.Types.Lookup("Query").Fields[0].Type.Unwrap())
}

func TestIdempotence(t *testing.T) {
	doc := mustParseSchema(t, `
schema { query: Query }

type Query {
  hero: Character
}

interface Character {
  id: ID!
}
`)
	s1, err := graph.BuildSchema(t.Context(), doc)
	require.NoError(t, err)
	s2, err := graph.BuildSchema(t.Context(), doc)
	require.NoError(t, err)

	require.Equal(t, graph.Render(s1), graph.Render(s2))
	// Constructions are independent: same structure, distinct nodes.
	require.NotSame(t, s1.Types.Lookup("Query"), s2.Types.Lookup("Query"))
}
