// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-charsheet/internal/clients/external Client

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"go.uber.org/zap"

	internalDnd5e "github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// DefaultBaseURL is the public D&D 5e API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var dashRun = regexp.MustCompile(`-+`)

// generateSlug creates a URL-safe slug from a string
func generateSlug(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return dashRun.ReplaceAllString(slug, "-")
}

// Client lists the races and classes offered by the wizard
type Client interface {
	// ListRaces returns the race options sorted by name
	ListRaces(ctx context.Context) ([]*internalDnd5e.RaceOption, error)

	// ListClasses returns the class options sorted by name
	ListClasses(ctx context.Context) ([]*internalDnd5e.ClassOption, error)
}

// Source is the part of the dnd5e-api client the catalog reads.
// dnd5e.Interface satisfies it.
type Source interface {
	ListRaces() ([]*entities.ReferenceItem, error)
	GetRace(key string) (*entities.Race, error)
	ListClasses() ([]*entities.ReferenceItem, error)
	GetClass(key string) (*entities.Class, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Source overrides the API client (optional, used by tests)
	Source Source
	// Offline skips the API and serves the built-in catalog
	Offline bool
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	source Source
	logger *zap.SugaredLogger
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &client{
		source: cfg.Source,
		logger: cfg.Logger.Sugar(),
	}
	if cfg.Offline || c.source != nil {
		return c, nil
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Wrap with caching for better performance
	c.source = dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)
	return c, nil
}

func (c *client) ListRaces(ctx context.Context) ([]*internalDnd5e.RaceOption, error) {
	if c.source == nil {
		return staticRaces(), nil
	}

	refs, err := c.source.ListRaces()
	if err != nil {
		c.logger.Warnw("race catalog unavailable, using built-in list", "error", err)
		return staticRaces(), nil
	}

	races := make([]*internalDnd5e.RaceOption, len(refs))
	err = fetchEach(ctx, refs, func(idx int, ref *entities.ReferenceItem) error {
		race, err := c.source.GetRace(ref.Key)
		if err != nil {
			return errors.Wrapf(err, "failed to get race %s", ref.Key)
		}
		races[idx] = &internalDnd5e.RaceOption{
			Key:   race.Key,
			Name:  race.Name,
			Size:  race.Size,
			Speed: race.Speed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(races, func(i, j int) bool { return races[i].Name < races[j].Name })
	c.logger.Debugw("loaded race catalog", "count", len(races))
	return races, nil
}

func (c *client) ListClasses(ctx context.Context) ([]*internalDnd5e.ClassOption, error) {
	if c.source == nil {
		return staticClasses(), nil
	}

	refs, err := c.source.ListClasses()
	if err != nil {
		c.logger.Warnw("class catalog unavailable, using built-in list", "error", err)
		return staticClasses(), nil
	}

	classes := make([]*internalDnd5e.ClassOption, len(refs))
	err = fetchEach(ctx, refs, func(idx int, ref *entities.ReferenceItem) error {
		class, err := c.source.GetClass(ref.Key)
		if err != nil {
			return errors.Wrapf(err, "failed to get class %s", ref.Key)
		}
		classes[idx] = &internalDnd5e.ClassOption{
			Key:    class.Key,
			Name:   class.Name,
			HitDie: class.HitDie,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	c.logger.Debugw("loaded class catalog", "count", len(classes))
	return classes, nil
}

// fetchEach loads details for every reference concurrently and returns the
// first error. Details are cached by the API client after the first call.
func fetchEach(
	ctx context.Context,
	refs []*entities.ReferenceItem,
	load func(idx int, ref *entities.ReferenceItem) error,
) error {
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, ref *entities.ReferenceItem) {
			defer wg.Done()
			if err := load(idx, ref); err != nil {
				errChan <- err
			}
		}(i, ref)
	}

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "catalog request canceled")
	}
	return nil
}

// hitDice backs the built-in class list
var hitDice = map[string]int{
	"Barbarian": 12,
	"Bard":      8,
	"Cleric":    8,
	"Druid":     8,
	"Fighter":   10,
	"Monk":      8,
	"Paladin":   10,
	"Ranger":    10,
	"Rogue":     8,
	"Sorcerer":  6,
	"Warlock":   8,
	"Wizard":    6,
}

func staticRaces() []*internalDnd5e.RaceOption {
	races := make([]*internalDnd5e.RaceOption, 0, len(internalDnd5e.Races))
	for _, name := range internalDnd5e.Races {
		races = append(races, &internalDnd5e.RaceOption{Key: generateSlug(name), Name: name})
	}
	sort.Slice(races, func(i, j int) bool { return races[i].Name < races[j].Name })
	return races
}

func staticClasses() []*internalDnd5e.ClassOption {
	classes := make([]*internalDnd5e.ClassOption, 0, len(internalDnd5e.Classes))
	for _, name := range internalDnd5e.Classes {
		classes = append(classes, &internalDnd5e.ClassOption{
			Key:    generateSlug(name),
			Name:   name,
			HitDie: hitDice[name],
		})
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes
}
