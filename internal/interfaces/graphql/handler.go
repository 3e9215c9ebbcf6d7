package graphql

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewGinHandler wraps the GraphQL HTTP handler for mounting on the gin
// engine. GraphiQL is only served in debug mode.
func NewGinHandler(schema graphql.Schema, graphiql bool) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
	return gin.WrapH(h)
}
