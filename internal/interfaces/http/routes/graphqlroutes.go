package routes

import (
	"github.com/gin-gonic/gin"
)

type GraphQLRouteConfig struct {
	Handler gin.HandlerFunc
}

// SetupGraphQLRoutes mounts the GraphQL endpoint. GET serves GraphiQL when
// enabled; POST carries queries and mutations.
func SetupGraphQLRoutes(engine *gin.Engine, config *GraphQLRouteConfig) {
	engine.GET("/graphql", config.Handler)
	engine.POST("/graphql", config.Handler)
}
