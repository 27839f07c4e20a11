package service

import (
	"math"

	"adpc-engine/internal/domain"
)

// ScoreCard es la salida del calculo de puntajes de una entrega.
type ScoreCard struct {
	Scores         map[string]int
	PrimaryProfile string
}

// ComputeScores normaliza los pesos elegidos por dimension a 0-100 usando
// el rango alcanzable de las preguntas respondidas, y elige el perfil
// primario. Funcion pura.
func ComputeScores(responses []EnrichedResponse) ScoreCard {
	chosen := make(map[string]float64)
	minPossible := make(map[string]float64)
	maxPossible := make(map[string]float64)

	for _, r := range responses {
		// El peso elegido suma bajo la dimension resuelta de la opcion,
		// aunque no pertenezca al set conocido (ejes futuros).
		chosen[r.Dimension] += r.Weight
		// El rango alcanzable acumula por dimension de la pregunta,
		// una vez por pregunta (hay una respuesta por pregunta).
		minPossible[r.QuestionDimension] += r.MinWeight
		maxPossible[r.QuestionDimension] += r.MaxWeight
	}

	scores := make(map[string]int, len(domain.KnownDimensions))
	for _, dim := range domain.KnownDimensions {
		scores[dim] = normalize(chosen[dim], minPossible[dim], maxPossible[dim])
	}

	// Perfil primario: puntaje estrictamente mayor; empates los gana la
	// dimension listada primero. Todo en cero es EQUILIBRADO.
	primary := domain.ProfileEquilibrado
	best := 0
	for _, dim := range domain.KnownDimensions {
		if scores[dim] > best {
			best = scores[dim]
			primary = dim
		}
	}

	return ScoreCard{Scores: scores, PrimaryProfile: primary}
}

// normalize rescala a 0-100. Un rango no positivo puntua 0 y el clamp
// cubre configuraciones de pesos malformadas.
func normalize(chosen, minPossible, maxPossible float64) int {
	span := maxPossible - minPossible
	if span <= 0 {
		return 0
	}
	score := int(math.Round((chosen - minPossible) / span * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
