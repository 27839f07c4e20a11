package service

import (
	"testing"

	"adpc-engine/internal/domain"
)

func TestComputeScoresMaxWeightOption(t *testing.T) {
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			OptionID:          "b",
			Dimension:         domain.DimensionDominancia,
			Weight:            10,
			QuestionDimension: domain.DimensionDominancia,
			MinWeight:         0,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	if card.Scores[domain.DimensionDominancia] != 100 {
		t.Fatalf("expected DOMINANCIA 100, got %d", card.Scores[domain.DimensionDominancia])
	}
	for _, dim := range []string{domain.DimensionInfluencia, domain.DimensionEstabilidade, domain.DimensionConformidade} {
		if card.Scores[dim] != 0 {
			t.Fatalf("expected %s 0, got %d", dim, card.Scores[dim])
		}
	}
	if card.PrimaryProfile != domain.DimensionDominancia {
		t.Fatalf("expected primary DOMINANCIA, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresMinWeightOptionYieldsBalancedProfile(t *testing.T) {
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			OptionID:          "a",
			Dimension:         domain.DimensionDominancia,
			Weight:            0,
			QuestionDimension: domain.DimensionDominancia,
			MinWeight:         0,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	if card.Scores[domain.DimensionDominancia] != 0 {
		t.Fatalf("expected DOMINANCIA 0, got %d", card.Scores[domain.DimensionDominancia])
	}
	if card.PrimaryProfile != domain.ProfileEquilibrado {
		t.Fatalf("expected EQUILIBRADO, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresEmptyInput(t *testing.T) {
	card := ComputeScores(nil)

	if len(card.Scores) != len(domain.KnownDimensions) {
		t.Fatalf("expected %d dimensions, got %d", len(domain.KnownDimensions), len(card.Scores))
	}
	for dim, score := range card.Scores {
		if score != 0 {
			t.Fatalf("expected %s 0, got %d", dim, score)
		}
	}
	if card.PrimaryProfile != domain.ProfileEquilibrado {
		t.Fatalf("expected EQUILIBRADO, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresNormalizesAcrossQuestions(t *testing.T) {
	// Dos preguntas de la misma dimension: elegido 10 de 4..20 -> 38.
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         domain.DimensionInfluencia,
			Weight:            7,
			QuestionDimension: domain.DimensionInfluencia,
			MinWeight:         2,
			MaxWeight:         10,
		},
		{
			QuestionID:        "q2",
			Dimension:         domain.DimensionInfluencia,
			Weight:            3,
			QuestionDimension: domain.DimensionInfluencia,
			MinWeight:         2,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	// (10 - 4) / (20 - 4) * 100 = 37.5 -> redondea a 38
	if card.Scores[domain.DimensionInfluencia] != 38 {
		t.Fatalf("expected INFLUENCIA 38, got %d", card.Scores[domain.DimensionInfluencia])
	}
	if card.PrimaryProfile != domain.DimensionInfluencia {
		t.Fatalf("expected primary INFLUENCIA, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresTieBreakUsesListedOrder(t *testing.T) {
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         domain.DimensionEstabilidade,
			Weight:            10,
			QuestionDimension: domain.DimensionEstabilidade,
			MinWeight:         0,
			MaxWeight:         10,
		},
		{
			QuestionID:        "q2",
			Dimension:         domain.DimensionInfluencia,
			Weight:            10,
			QuestionDimension: domain.DimensionInfluencia,
			MinWeight:         0,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	if card.Scores[domain.DimensionInfluencia] != 100 || card.Scores[domain.DimensionEstabilidade] != 100 {
		t.Fatalf("expected both at 100, got %v", card.Scores)
	}
	// INFLUENCIA esta antes que ESTABILIDADE en KnownDimensions.
	if card.PrimaryProfile != domain.DimensionInfluencia {
		t.Fatalf("expected tie resolved to INFLUENCIA, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresZeroSpanScoresZero(t *testing.T) {
	// Todas las opciones pesan igual: el rango es cero y la dimension
	// puntua 0 aunque haya sido respondida.
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         domain.DimensionConformidade,
			Weight:            5,
			QuestionDimension: domain.DimensionConformidade,
			MinWeight:         5,
			MaxWeight:         5,
		},
	}

	card := ComputeScores(responses)

	if card.Scores[domain.DimensionConformidade] != 0 {
		t.Fatalf("expected CONFORMIDADE 0, got %d", card.Scores[domain.DimensionConformidade])
	}
	if card.PrimaryProfile != domain.ProfileEquilibrado {
		t.Fatalf("expected EQUILIBRADO, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresClampsMalformedWeights(t *testing.T) {
	// Peso elegido fuera del rango declarado: el clamp mantiene 0-100.
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         domain.DimensionDominancia,
			Weight:            50,
			QuestionDimension: domain.DimensionDominancia,
			MinWeight:         0,
			MaxWeight:         10,
		},
		{
			QuestionID:        "q2",
			Dimension:         domain.DimensionInfluencia,
			Weight:            -50,
			QuestionDimension: domain.DimensionInfluencia,
			MinWeight:         0,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	if card.Scores[domain.DimensionDominancia] != 100 {
		t.Fatalf("expected clamp to 100, got %d", card.Scores[domain.DimensionDominancia])
	}
	if card.Scores[domain.DimensionInfluencia] != 0 {
		t.Fatalf("expected clamp to 0, got %d", card.Scores[domain.DimensionInfluencia])
	}
}

func TestComputeScoresUnknownDimensionDoesNotLeakIntoOutput(t *testing.T) {
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         "CRIATIVIDADE",
			Weight:            10,
			QuestionDimension: "CRIATIVIDADE",
			MinWeight:         0,
			MaxWeight:         10,
		},
	}

	card := ComputeScores(responses)

	if _, ok := card.Scores["CRIATIVIDADE"]; ok {
		t.Fatalf("unknown dimension should not appear in scores: %v", card.Scores)
	}
	if len(card.Scores) != len(domain.KnownDimensions) {
		t.Fatalf("expected only known dimensions, got %v", card.Scores)
	}
	if card.PrimaryProfile != domain.ProfileEquilibrado {
		t.Fatalf("expected EQUILIBRADO, got %s", card.PrimaryProfile)
	}
}

func TestComputeScoresNegativeWeightsStayInBounds(t *testing.T) {
	responses := []EnrichedResponse{
		{
			QuestionID:        "q1",
			Dimension:         domain.DimensionDominancia,
			Weight:            -2,
			QuestionDimension: domain.DimensionDominancia,
			MinWeight:         -5,
			MaxWeight:         5,
		},
	}

	card := ComputeScores(responses)

	// (-2 - (-5)) / 10 * 100 = 30
	if card.Scores[domain.DimensionDominancia] != 30 {
		t.Fatalf("expected DOMINANCIA 30, got %d", card.Scores[domain.DimensionDominancia])
	}
	for _, score := range card.Scores {
		if score < 0 || score > 100 {
			t.Fatalf("score out of bounds: %v", card.Scores)
		}
	}
}
