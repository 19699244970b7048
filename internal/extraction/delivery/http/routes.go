package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Authentication happens upstream; the caller identity arrives as a header.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	extractions := rg.Group("/extractions")
	{
		extractions.POST("", h.Extract)
		extractions.GET("", h.List)
	}
}
