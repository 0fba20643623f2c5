// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/rpg-charsheet/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// ExpectCatalog sets up the race and class listings with a small fixed catalog
func ExpectCatalog(mockClient *externalmock.MockClient) {
	mockClient.EXPECT().
		ListRaces(gomock.Any()).
		Return([]*dnd5e.RaceOption{
			{Key: "dwarf", Name: "Dwarf", Size: "Medium", Speed: 25},
			{Key: "human", Name: "Human", Size: "Medium", Speed: 30},
		}, nil).
		AnyTimes()

	mockClient.EXPECT().
		ListClasses(gomock.Any()).
		Return([]*dnd5e.ClassOption{
			{Key: "fighter", Name: "Fighter", HitDie: 10},
			{Key: "wizard", Name: "Wizard", HitDie: 6},
		}, nil).
		AnyTimes()
}
