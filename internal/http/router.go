package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the Gin router with middlewares and routes.
func NewRouter(logger *zap.Logger, assessH *AssessmentHandler) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	attempts := r.Group("/attempts")
	attempts.POST("", assessH.SubmitAttempt)
	attempts.GET("/:id", assessH.GetAttempt)
	attempts.POST("/:id/review", assessH.ApplyReviewerRating)

	results := r.Group("/results")
	results.GET("/:username", assessH.GetResult)
	results.GET("/:username/gaps", assessH.GetGaps)
	results.GET("/:username/personality", assessH.GetClassification)

	r.GET("/tracks", assessH.ListTracks)
	r.GET("/questions", assessH.ListQuestions)

	return r
}

// zapLoggerMiddleware logs one line per request with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
