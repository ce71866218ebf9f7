package introspection_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlink/graphlink/internal/graph"
	"github.com/graphlink/graphlink/internal/introspection"
	"github.com/graphlink/graphlink/internal/language"
)

func buildSchema(t *testing.T, sdl string) *graph.Schema {
	t.Helper()
	doc, err := language.ParseSchema("test.graphql", sdl)
	require.NoError(t, err)
	s, err := graph.BuildSchema(t.Context(), doc)
	require.NoError(t, err)
	return s
}

func TestDescribe(t *testing.T) {
	s := buildSchema(t, `
schema { query: Query mutation: Mutation }

type Query {
  hero(episode: Episode = NEWHOPE): Character
}

type Mutation {
  rename(id: ID!, name: String!): Character
}

interface Character {
  id: ID!
  friends: [Character!]
}

enum Episode {
  NEWHOPE
  EMPIRE
}
`)
	resp := introspection.Describe(s)

	require.Equal(t, "Query", resp.QueryType.Name)
	require.Equal(t, graph.KindObject, resp.QueryType.Kind)
	require.Equal(t, "Mutation", resp.MutationType.Name)
	require.Nil(t, resp.SubscriptionType)

	byName := map[string]*introspection.Type{}
	for _, typ := range resp.Types {
		byName[typ.Name] = typ
	}
	// Implicit built-ins show up alongside declared types.
	require.Contains(t, byName, "Boolean")
	require.Equal(t, graph.KindScalar, byName["ID"].Kind)

	character := byName["Character"]
	require.Equal(t, graph.KindInterface, character.Kind)
	require.Len(t, character.Fields, 2)

	// id: ID!
	id := character.Fields[0].Type
	require.Equal(t, graph.KindNonNull, id.Kind)
	require.Equal(t, "ID", id.OfType.Name)

	// friends: [Character!]
	friends := character.Fields[1].Type
	require.Equal(t, graph.KindList, friends.Kind)
	require.Equal(t, graph.KindNonNull, friends.OfType.Kind)
	require.Equal(t, "Character", friends.OfType.OfType.Name)

	hero := byName["Query"].Fields[0]
	require.Len(t, hero.Args, 1)
	require.Equal(t, "episode", hero.Args[0].Name)
	require.NotNil(t, hero.Args[0].DefaultValue)
	require.Equal(t, "NEWHOPE", *hero.Args[0].DefaultValue)

	require.Equal(t, []*introspection.EnumValue{{Name: "NEWHOPE"}, {Name: "EMPIRE"}}, byName["Episode"].EnumValues)
}

func TestDescribeMarshals(t *testing.T) {
	s := buildSchema(t, `
type Query {
  self: Query
}
`)
	// Query references itself; the flattened form must still marshal.
	out, err := json.Marshal(introspection.Describe(s))
	require.NoError(t, err)
	require.Contains(t, string(out), `"queryType":{"kind":"OBJECT","name":"Query"}`)
}
