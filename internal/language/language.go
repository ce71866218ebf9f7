// Package language wraps the gqlparser frontend. Tokenizing and grammar
// matching happen entirely inside gqlparser; the rest of the module only ever
// sees the parse trees returned from here.
package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseSchema parses a single SDL source into a schema parse tree.
func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseQuery parses an executable document (operations and fragments).
func ParseQuery(name, source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
