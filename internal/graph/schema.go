package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var Schema string

// NewSchema binds the resolver to the schema. Parsing fails when a schema
// field has no matching resolver method.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(
		Schema,
		r,
		graphql.MaxDepth(10),
	)
}
