package domain

import "time"

// Dimensiones del modelo ADPC. El orden define la prioridad de desempate
// al elegir el perfil primario.
const (
	DimensionDominancia   = "DOMINANCIA"
	DimensionInfluencia   = "INFLUENCIA"
	DimensionEstabilidade = "ESTABILIDADE"
	DimensionConformidade = "CONFORMIDADE"

	// ProfileEquilibrado es el perfil cuando ninguna dimension supera cero.
	ProfileEquilibrado = "EQUILIBRADO"
)

var KnownDimensions = []string{
	DimensionDominancia,
	DimensionInfluencia,
	DimensionEstabilidade,
	DimensionConformidade,
}

type Question struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Text      string    `json:"text"`
	Dimension string    `json:"dimension"`
	Version   string    `json:"version"`
	Options   []Option  `json:"options,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Option struct {
	ID         string  `json:"id"`
	QuestionID string  `json:"questionId"`
	Code       string  `json:"code"`
	Text       string  `json:"text"`
	Weight     float64 `json:"weight"`
	// Dimension opcional; si esta vacia aplica la dimension de la pregunta.
	Dimension string `json:"dimension,omitempty"`
}

// ResolvedDimension devuelve la dimension efectiva de la opcion.
func (o Option) ResolvedDimension(q Question) string {
	if o.Dimension != "" {
		return o.Dimension
	}
	if q.Dimension != "" {
		return q.Dimension
	}
	return "UNKNOWN"
}
