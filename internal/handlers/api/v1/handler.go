// Package v1 serves the character REST API
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

// CharactersPath is the collection route
const CharactersPath = "/api/v1/characters"

const messageInternal = "internal server error"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Handler implements the character routes
type Handler struct {
	characterService character.Service
	logger           *zap.SugaredLogger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registerTagNames()

	return &Handler{
		characterService: cfg.CharacterService,
		logger:           cfg.Logger.Sugar(),
	}, nil
}

// RegisterRoutes mounts the character routes on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	characters := r.Group(CharactersPath)
	characters.GET("", h.ListCharacters)
	characters.POST("", h.CreateCharacter)
	characters.GET("/:id", h.GetCharacter)
	characters.PUT("/:id", h.UpdateCharacter)
	characters.DELETE("/:id", h.DeleteCharacter)
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dataResponse{Data: data})
}

// respondError writes the coded error as {error, details} with the status
// its code maps to. Internal failures are logged and never echoed.
func (h *Handler) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := errors.GetMessage(err)
	if status >= http.StatusInternalServerError {
		h.logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"code", code,
			"error", err)
		message = messageInternal
	}

	_ = c.Error(err)
	c.JSON(status, errorResponse{
		Error:   message,
		Details: errors.GetDetails(err),
	})
}
