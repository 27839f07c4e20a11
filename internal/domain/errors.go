package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds de error de validacion; viajan hasta el cliente para que pueda
// corregir el request.
const (
	ValidationEmptyResponses         = "empty_responses"
	ValidationMissingUser            = "missing_user"
	ValidationDuplicateQuestion      = "duplicate_question"
	ValidationQuestionNotFound       = "question_not_found"
	ValidationOptionNotFound         = "option_not_found"
	ValidationOptionQuestionMismatch = "option_question_mismatch"
)

// ValidationError describe un request invalido. Nunca implica escritura
// parcial: se detecta antes de persistir.
type ValidationError struct {
	Kind   string
	Detail string
	IDs    []string
}

func NewValidationError(kind, detail string, ids ...string) *ValidationError {
	return &ValidationError{Kind: kind, Detail: detail, IDs: ids}
}

func (e *ValidationError) Error() string {
	msg := e.Kind
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.IDs) > 0 {
		msg += " [" + strings.Join(e.IDs, ",") + "]"
	}
	return msg
}

// ErrResultNotFound indica que no existe Result para el submission id.
var ErrResultNotFound = errors.New("result not found")

// ProcessingError envuelve fallas de infraestructura durante el submit.
// El caller puede reintentar el submit completo: nada parcial quedo escrito.
type ProcessingError struct {
	Cause error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed: %v", e.Cause)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
