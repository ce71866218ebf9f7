package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileWritesSDL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.graphql")
	err := run([]string{"compile", "-root", "testdata/schema", "-out", out})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(content), "type Query {")
	require.Contains(t, string(content), "hero(id: ID!): Character")
}

func TestCheckWritesDocumentJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "doc.json")
	err := run([]string{"check", "-query", "testdata/hero.graphql", "-out", out, "-pretty"})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		Operations map[string]json.RawMessage `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(content, &doc))
	require.Contains(t, doc.Operations, "Hero")
}

func TestIntrospectWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "introspection.json")
	err := run([]string{"introspect", "-root", "testdata/schema", "-out", out})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp struct {
		QueryType struct {
			Name string `json:"name"`
		} `json:"queryType"`
	}
	require.NoError(t, json.Unmarshal(content, &resp))
	require.Equal(t, "Query", resp.QueryType.Name)
}

func TestCheckRequiresQueryFlag(t *testing.T) {
	err := run([]string{"check"})
	require.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	require.Error(t, err)
}

func TestHelp(t *testing.T) {
	require.NoError(t, run([]string{"help"}))
	require.NoError(t, run([]string{"help", "compile"}))
	require.NoError(t, run([]string{"help", "check"}))
	require.NoError(t, run([]string{"help", "introspect"}))
	require.Error(t, run([]string{"help", "frobnicate"}))
}
