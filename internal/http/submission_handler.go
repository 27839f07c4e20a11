package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/service"
)

// SubmissionHandler expone el submit de respuestas y la lectura de
// resultados.
type SubmissionHandler struct {
	logger      *zap.Logger
	submissions *service.SubmissionService
}

func NewSubmissionHandler(logger *zap.Logger, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{logger: logger, submissions: submissions}
}

type submitRequest struct {
	UserID    string `json:"userId"`
	Version   string `json:"version"`
	Responses []struct {
		QuestionID string `json:"questionId"`
		OptionID   string `json:"optionId"`
	} `json:"responses"`
}

// Submit maneja POST /api/submissions.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	input := service.SubmitInput{
		UserID:    req.UserID,
		Version:   req.Version,
		Responses: make([]service.AnswerInput, 0, len(req.Responses)),
	}
	for _, r := range req.Responses {
		input.Responses = append(input.Responses, service.AnswerInput{
			QuestionID: r.QuestionID,
			OptionID:   r.OptionID,
		})
	}

	output, err := h.submissions.Submit(c.Request.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Error(),
				"kind":  verr.Kind,
				"ids":   verr.IDs,
			})
			return
		}
		h.logger.Error("submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process submission"})
		return
	}

	c.JSON(http.StatusOK, output)
}

// GetResult maneja GET /api/results/:submissionId.
func (h *SubmissionHandler) GetResult(c *gin.Context) {
	submissionID := c.Param("submissionId")

	result, submission, err := h.submissions.GetResult(c.Request.Context(), submissionID)
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err), zap.String("submission_id", submissionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "submission": submission})
}
