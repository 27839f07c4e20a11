package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

const requestIDKey = "request_id"

// requestIDMiddleware asigna un id unico por request para rastreo.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestIDKey, uuid.NewString())
		c.Next()
	}
}

// apiKeyMiddleware valida el header x-api-key contra la clave configurada.
func apiKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("x-api-key")
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// auditMiddleware graba un registro de auditoria despues de responder.
// Una falla de auditoria se loguea y nunca afecta la respuesta.
func auditMiddleware(logger *zap.Logger, audits repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := domain.AuditLog{
			ID:         uuid.NewString(),
			RequestID:  c.GetString(requestIDKey),
			Action:     c.Request.Method + " " + c.Request.URL.Path,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			StatusCode: c.Writer.Status(),
			Metadata: map[string]any{
				"query": c.Request.URL.RawQuery,
			},
			CreatedAt: time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := audits.Create(ctx, entry); err != nil {
			logger.Warn("audit log failed", zap.Error(err), zap.String("action", entry.Action))
		}
	}
}
