package i

import "github.com/gin-gonic/gin"

// Controller mounts a group of routes on the versioned API group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
