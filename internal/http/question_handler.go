package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adpc-engine/internal/service"
)

// QuestionHandler expone el listado del cuestionario.
type QuestionHandler struct {
	logger    *zap.Logger
	questions *service.QuestionService
}

func NewQuestionHandler(logger *zap.Logger, questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{logger: logger, questions: questions}
}

// ListQuestions maneja GET /api/questions.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	version, questions, err := h.questions.List(c.Request.Context(), c.Query("version"))
	if err != nil {
		h.logger.Error("list questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"version": version, "questions": questions})
}
