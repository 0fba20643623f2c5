// Package engine implements the D&D 5e rules calculations used by the wizard and the server
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-charsheet/internal/engine Engine

import (
	"context"
)

// Engine provides derived stat calculation and ability score rolling
type Engine interface {
	// DeriveCharacter builds a complete character from validated form data
	// Returns errors.InvalidArgument when the level or a score is missing
	// Returns errors.OutOfRange when the level is outside 1-20
	DeriveCharacter(ctx context.Context, input *DeriveCharacterInput) (*DeriveCharacterOutput, error)

	// CalculateCharacterStats recomputes every derived value of a full character
	// Returns errors.OutOfRange when the level is outside 1-20
	CalculateCharacterStats(
		ctx context.Context,
		input *CalculateCharacterStatsInput,
	) (*CalculateCharacterStatsOutput, error)

	// RollAbilityScores rolls a score for each of the six abilities
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}
