package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ressKim-io/emotion-classifier/internal/adapter/http/handler"
	"github.com/ressKim-io/emotion-classifier/internal/adapter/http/middleware"
	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

// FunctionPath is the path the classifier was served from as a serverless function
const FunctionPath = "/.netlify/functions/classify-emotion"

// Setup creates and configures the Gin router
func Setup(emotionUC usecase.EmotionUsecase, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(emotionUC)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	emotionHandler := handler.NewEmotionHandler(emotionUC)

	router.POST(FunctionPath, emotionHandler.Classify)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		emotions := v1.Group("/emotions")
		{
			emotions.POST("/classify", emotionHandler.Classify)
			emotions.GET("/labels", emotionHandler.Labels)
		}
	}

	return router
}
