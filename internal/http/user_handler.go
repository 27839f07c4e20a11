package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adpc-engine/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{logger: logger, userServ: userServ}
}

// UpsertUser maneja POST /api/users.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid user request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "email required"})
		return
	}

	user, err := h.userServ.UpsertUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "email required"})
			return
		}
		h.logger.Error("upsert user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upsert user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
