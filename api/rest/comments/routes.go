package comments

import (
	"github.com/gin-gonic/gin"
)

// registers comment generation routes behind the given middleware
func RegisterRoutes(router *gin.RouterGroup, commenter Commenter, middleware ...gin.HandlerFunc) {
	group := router.Group("/comments")
	group.Use(middleware...)

	group.POST("/ai-comment", Handler(commenter))
}
