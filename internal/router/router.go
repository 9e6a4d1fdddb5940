package router

import (
	"github.com/gin-gonic/gin"
	"github.com/signstudio/signage-backend/config"
	"github.com/signstudio/signage-backend/internal/app/controller"
	"github.com/signstudio/signage-backend/internal/middleware"
)

type Router struct {
	configurationController *controller.ConfigurationController
	catalogController       *controller.CatalogController
	renderController        *controller.RenderController
	uploadController        *controller.UploadController
	config                  *config.Config
}

func NewRouter(
	configurationController *controller.ConfigurationController,
	catalogController *controller.CatalogController,
	renderController *controller.RenderController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		configurationController: configurationController,
		catalogController:       catalogController,
		renderController:        renderController,
		uploadController:        uploadController,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Signage API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		configurations := v1.Group("/configurations")
		{
			configurations.POST("", r.configurationController.Create)
			configurations.PUT("", r.configurationController.Update)
			configurations.GET("", r.configurationController.List)
		}

		colors := v1.Group("/colors")
		{
			colors.POST("", r.catalogController.AddColor)
			colors.GET("", r.catalogController.ListColors)
		}

		images := v1.Group("/images")
		{
			images.POST("", r.catalogController.AddImage)
			images.GET("", r.catalogController.ListImages)
			images.DELETE("/:id", r.catalogController.DeleteImage)
		}

		shapes := v1.Group("/shapes")
		{
			shapes.POST("", r.catalogController.AddShape)
			shapes.GET("", r.catalogController.ListShapes)
			shapes.DELETE("/:id", r.catalogController.DeleteShape)
		}

		renderGroup := v1.Group("/render")
		{
			renderGroup.POST("", r.renderController.Render)
			renderGroup.GET("/sign", r.renderController.Sign)
		}

		upload := v1.Group("/upload")
		{
			upload.POST("/presign", r.uploadController.PresignUpload)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
