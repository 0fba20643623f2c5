package character

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Sort fields accepted by List
const (
	SortCharacterName = "characterName"
	SortClass         = "class"
	SortRace          = "race"
	SortLevel         = "level"
	SortCreatedAt     = "createdAt"
	SortUpdatedAt     = "updatedAt"
)

// Sort orders accepted by List
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errNameConflict     = "character name already exists"
)

// Normalize applies the default sort and order and rejects unknown values
func (in *ListInput) Normalize() error {
	if in.Sort == "" {
		in.Sort = SortCharacterName
	}
	if in.Order == "" {
		in.Order = OrderAsc
	}

	vb := errors.NewValidationBuilder()
	switch in.Sort {
	case SortCharacterName, SortClass, SortRace, SortLevel, SortCreatedAt, SortUpdatedAt:
	default:
		vb.InvalidField("sort", "unsupported sort field "+in.Sort)
	}
	if in.Order != OrderAsc && in.Order != OrderDesc {
		vb.InvalidField("order", "must be asc or desc")
	}
	errors.ValidateMaxLength("search", in.Search, dnd5e.MaxStringLength, vb)
	return vb.Build()
}

// matches reports whether c passes the filters of a normalized input
func (in *ListInput) matches(c *dnd5e.Character) bool {
	if in.Search != "" && !strings.Contains(strings.ToLower(c.CharacterName), strings.ToLower(in.Search)) {
		return false
	}
	if in.Class != "" && c.Class != in.Class {
		return false
	}
	if in.Race != "" && c.Race != in.Race {
		return false
	}
	return true
}

// filterAndSort applies a normalized input to a slice of characters.
// Ties are broken by ID so the order is stable across stores.
func filterAndSort(all []*dnd5e.Character, in *ListInput) []*dnd5e.Character {
	out := make([]*dnd5e.Character, 0, len(all))
	for _, c := range all {
		if in.matches(c) {
			out = append(out, c)
		}
	}

	less := lessFunc(in.Sort)
	desc := in.Order == OrderDesc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if less(a, b) {
			return !desc
		}
		if less(b, a) {
			return desc
		}
		return a.ID < b.ID
	})
	return out
}

func lessFunc(field string) func(a, b *dnd5e.Character) bool {
	switch field {
	case SortClass:
		return func(a, b *dnd5e.Character) bool { return a.Class < b.Class }
	case SortRace:
		return func(a, b *dnd5e.Character) bool { return a.Race < b.Race }
	case SortLevel:
		return func(a, b *dnd5e.Character) bool { return a.Level < b.Level }
	case SortCreatedAt:
		return func(a, b *dnd5e.Character) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortUpdatedAt:
		return func(a, b *dnd5e.Character) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b *dnd5e.Character) bool { return a.CharacterName < b.CharacterName }
	}
}

func validateCharacter(c *dnd5e.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}
