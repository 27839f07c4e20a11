package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adpc-engine/internal/repository"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	apiKey string,
	auditRepo repository.AuditRepository,
	userH *UserHandler,
	questionH *QuestionHandler,
	submissionH *SubmissionHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery())

	// Healthcheck sin API key.
	r.GET("/", healthHandler)

	api := r.Group("/api")
	api.Use(apiKeyMiddleware(apiKey), auditMiddleware(logger, auditRepo))

	api.POST("/users", userH.UpsertUser)
	api.GET("/questions", questionH.ListQuestions)
	api.POST("/submissions", submissionH.Submit)
	api.GET("/results/:submissionId", submissionH.GetResult)

	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "Sistema ADPC Online",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
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
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}
