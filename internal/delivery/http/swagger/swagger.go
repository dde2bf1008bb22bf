package http_swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controller serves swagger UI. The spec itself is produced by `swag init`
// into the docs package, which registers with the swag runtime.
type Controller struct {
	docURL string
}

func New(docURL string) *Controller {
	if docURL == "" {
		docURL = "doc.json"
	}
	return &Controller{docURL: docURL}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(c.docURL),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
