package wizard

//go:generate mockgen -destination=mock/mock_gateway.go -package=wizardmock github.com/KirkDiggler/rpg-charsheet/internal/wizard Gateway

import (
	"context"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
)

// Gateway persists the submitted character. characterapi.Client satisfies it.
type Gateway interface {
	CreateCharacter(
		ctx context.Context,
		input *characterapi.CreateCharacterInput,
	) (*characterapi.CreateCharacterOutput, error)
	UpdateCharacter(
		ctx context.Context,
		input *characterapi.UpdateCharacterInput,
	) (*characterapi.UpdateCharacterOutput, error)
}
