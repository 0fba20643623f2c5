// Package characterapi is the REST client for the character API
package characterapi

//go:generate mockgen -destination=mock/mock_client.go -package=characterapimock github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

const (
	// DefaultBaseURL is used when no base URL is configured
	DefaultBaseURL = "http://localhost:8080"

	charactersPath = "/api/v1/characters"
)

// Client defines the operations the character API exposes
type Client interface {
	// ListCharacters returns characters matching the filter
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// GetCharacter returns one character
	// Returns errors.NotFound if the character doesn't exist
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// CreateCharacter stores a new character
	// Returns errors.InvalidArgument with details for validation failures
	// Returns errors.AlreadyExists for a duplicate character name
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// UpdateCharacter replaces the fields present in the character
	// Returns errors.NotFound, errors.InvalidArgument or errors.AlreadyExists
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// DeleteCharacter removes a character
	// Returns errors.NotFound if the character doesn't exist
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// Config contains configuration options for the character API client
type Config struct {
	// BaseURL of the server (optional, defaults to http://localhost:8080)
	BaseURL string
	// HTTPClient (optional, defaults to a client without timeout; the caller's context bounds each call)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.InvalidArgumentf("invalid base URL: %q", cfg.BaseURL)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new character API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

// envelope is the response body shape used by every endpoint
type envelope struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details []string        `json:"details,omitempty"`
}

func (c *client) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		input = &ListCharactersInput{}
	}

	query := url.Values{}
	setQuery(query, "search", input.Search)
	setQuery(query, "class", input.Class)
	setQuery(query, "race", input.Race)
	setQuery(query, "sort", input.Sort)
	setQuery(query, "order", input.Order)

	path := charactersPath
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var characters []*dnd5e.Character
	if err := c.do(ctx, http.MethodGet, path, nil, &characters); err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []*dnd5e.Character{}
	}

	return &ListCharactersOutput{Characters: characters}, nil
}

func (c *client) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	var character dnd5e.Character
	if err := c.do(ctx, http.MethodGet, characterPath(input.ID), nil, &character); err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: &character}, nil
}

func (c *client) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	// the store assigns identity and timestamps
	body := *input.Character
	body.ID = ""

	var character dnd5e.Character
	if err := c.do(ctx, http.MethodPost, charactersPath, &body, &character); err != nil {
		return nil, err
	}

	return &CreateCharacterOutput{Character: &character}, nil
}

func (c *client) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	var character dnd5e.Character
	if err := c.do(ctx, http.MethodPut, characterPath(input.ID), input.Character, &character); err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Character: &character}, nil
}

func (c *client) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if err := c.do(ctx, http.MethodDelete, characterPath(input.ID), nil, nil); err != nil {
		return nil, err
	}

	return &DeleteCharacterOutput{}, nil
}

// do sends the request and decodes the data field of the response into out.
// Non-2xx responses become coded errors carrying the server's message and details.
func (c *client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "character api unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response")
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return errors.Wrapf(err, "failed to decode response from %s %s", method, path)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return errors.New(errors.CodeFromHTTPStatus(resp.StatusCode), message).
			WithDetails(env.Details).
			WithMeta("status", resp.StatusCode)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, "failed to decode data from %s %s", method, path)
	}
	return nil
}

func characterPath(id string) string {
	return fmt.Sprintf("%s/%s", charactersPath, url.PathEscape(id))
}

func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
