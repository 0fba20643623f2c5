package v1

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

const messageInvalidBody = "invalid request body"

type listQuery struct {
	Search string `form:"search" json:"search" binding:"max=500"`
	Class  string `form:"class" json:"class"`
	Race   string `form:"race" json:"race"`
	Sort   string `form:"sort" json:"sort" binding:"omitempty,oneof=characterName class race level createdAt updatedAt"`
	Order  string `form:"order" json:"order" binding:"omitempty,oneof=asc desc"`
}

type idParam struct {
	ID string `uri:"id" json:"id" binding:"required"`
}

// ListCharacters handles GET /api/v1/characters
func (h *Handler) ListCharacters(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondError(c, bindError(err, "invalid query"))
		return
	}

	out, err := h.characterService.ListCharacters(c.Request.Context(), &character.ListCharactersInput{
		Search: q.Search,
		Class:  q.Class,
		Race:   q.Race,
		Sort:   q.Sort,
		Order:  q.Order,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, out.Characters)
}

// GetCharacter handles GET /api/v1/characters/:id
func (h *Handler) GetCharacter(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		h.respondError(c, bindError(err, "invalid character ID"))
		return
	}

	out, err := h.characterService.GetCharacter(c.Request.Context(), &character.GetCharacterInput{ID: p.ID})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, out.Character)
}

// CreateCharacter handles POST /api/v1/characters
func (h *Handler) CreateCharacter(c *gin.Context) {
	var body dnd5e.Character
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, bindError(err, messageInvalidBody))
		return
	}

	out, err := h.characterService.CreateCharacter(c.Request.Context(), &character.CreateCharacterInput{
		Character: &body,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, out.Character)
}

// UpdateCharacter handles PUT /api/v1/characters/:id. Fields missing from
// the body keep their stored values.
func (h *Handler) UpdateCharacter(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		h.respondError(c, bindError(err, "invalid character ID"))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		h.respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, messageInvalidBody))
		return
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		h.respondError(c, errors.InvalidArgument(messageInvalidBody))
		return
	}

	out, err := h.characterService.UpdateCharacter(c.Request.Context(), &character.UpdateCharacterInput{
		ID:    p.ID,
		Patch: raw,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, out.Character)
}

// DeleteCharacter handles DELETE /api/v1/characters/:id
func (h *Handler) DeleteCharacter(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		h.respondError(c, bindError(err, "invalid character ID"))
		return
	}

	if _, err := h.characterService.DeleteCharacter(c.Request.Context(), &character.DeleteCharacterInput{
		ID: p.ID,
	}); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
