package domain

import "time"

const SubmissionStatusProcessed = "PROCESSED"

// Submission representa una entrega de respuestas, escrita una sola vez
// junto con sus Responses y su Result.
type Submission struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Response struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submissionId"`
	QuestionID   string `json:"questionId"`
	OptionID     string `json:"optionId"`
}

// Result es el registro historico del puntaje; nunca se actualiza.
type Result struct {
	ID             string         `json:"id"`
	SubmissionID   string         `json:"submissionId"`
	Scores         map[string]int `json:"scores"`
	PrimaryProfile string         `json:"primaryProfile"`
	Explanations   map[string]int `json:"explanations"`
	PdfURL         *string        `json:"pdfUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
