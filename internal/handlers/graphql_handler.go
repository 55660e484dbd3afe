package handlers

import (
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

type GraphQLHandler struct {
	relay *relay.Handler
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{relay: &relay.Handler{Schema: schema}}
}

// Serve executes one GraphQL request. The caller identity has already been
// placed in the request context by the identity middleware.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	h.relay.ServeHTTP(c.Writer, c.Request)
}
