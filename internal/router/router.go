package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rosN100/lohono-fizzy-search/internal/middleware"
	"github.com/rosN100/lohono-fizzy-search/internal/search"
	"github.com/rosN100/lohono-fizzy-search/internal/webhook"
)

// New wires all routes around the search service.
func New(searchService *search.Service) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	// The webhook is called server-to-server by the voice platform, so
	// origins stay wide open.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	searchHandler := search.NewHandler(searchService)
	webhookHandler := webhook.NewHandler(searchService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Property Fuzzy Search API is running"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "property-search-api"})
	})

	r.GET("/debug/date", searchHandler.DebugDate)

	api := r.Group("/api/v1")
	{
		api.POST("/webhook/vapi", webhookHandler.HandleVapi)
		api.GET("/properties/search", searchHandler.SearchProperties)
	}

	return r
}
