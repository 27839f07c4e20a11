package domain

import "time"

// AuditLog registra cada request autenticado; su escritura nunca bloquea
// la respuesta al cliente.
type AuditLog struct {
	ID         string         `json:"id"`
	RequestID  string         `json:"requestId"`
	Action     string         `json:"action"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	StatusCode int            `json:"statusCode"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
