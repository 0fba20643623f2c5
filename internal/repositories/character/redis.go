package character

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-charsheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	idIndexKey         = "character:ids"
	nameIndexKey       = "character:names"
)

type redisRepository struct {
	client redisclient.Client
	logger *zap.SugaredLogger
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository. Characters are
// stored as JSON blobs, with a set of IDs and a name to ID hash that claims
// names atomically.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		logger: cfg.Logger.Sugar(),
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character
	key := characterKeyPrefix + c.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", c.ID)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	if err := r.claimName(ctx, c.CharacterName, c.ID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for characters
	pipe.SAdd(ctx, idIndexKey, c.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		r.releaseName(ctx, c.CharacterName, c.ID)
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var c dnd5e.Character
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	// Get existing character to check the name index
	existing, err := r.Get(ctx, GetInput{ID: c.ID})
	if err != nil {
		return nil, err
	}
	oldName := existing.Character.CharacterName

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	renamed := oldName != c.CharacterName
	if renamed {
		if err := r.claimName(ctx, c.CharacterName, c.ID); err != nil {
			return nil, err
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+c.ID, data, 0)
	if renamed {
		pipe.HDel(ctx, nameIndexKey, oldName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		if renamed {
			r.releaseName(ctx, c.CharacterName, c.ID)
		}
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: c}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find its name
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.SRem(ctx, idIndexKey, input.ID)
	pipe.HDel(ctx, nameIndexKey, getOutput.Character.CharacterName)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	ids, err := r.client.SMembers(ctx, idIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", idIndexKey)
	}
	if len(ids) == 0 {
		return &ListOutput{Characters: []*dnd5e.Character{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters")
	}

	all := make([]*dnd5e.Character, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// If character doesn't exist, clean up the index
			r.logger.Warnw("character not found, cleaning up index",
				"character_id", ids[i],
				"index_key", idIndexKey)
			r.client.SRem(ctx, idIndexKey, ids[i])
			continue
		}

		var c dnd5e.Character
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", ids[i])
		}
		all = append(all, &c)
	}

	r.logger.Debugw("listed characters", "total", len(all), "search", input.Search)
	return &ListOutput{Characters: filterAndSort(all, &input)}, nil
}

func (r *redisRepository) ExistsByName(ctx context.Context, input ExistsByNameInput) (*ExistsByNameOutput, error) {
	owner, err := r.client.HGet(ctx, nameIndexKey, input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return &ExistsByNameOutput{Exists: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to check character name")
	}
	return &ExistsByNameOutput{Exists: owner != input.ExcludeID}, nil
}

// claimName records id as the owner of name unless another character
// already owns it
func (r *redisRepository) claimName(ctx context.Context, name, id string) error {
	claimed, err := r.client.HSetNX(ctx, nameIndexKey, name, id).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to claim character name")
	}
	if claimed {
		return nil
	}

	owner, err := r.client.HGet(ctx, nameIndexKey, name).Result()
	if err != nil && err != redis.Nil {
		return errors.Wrapf(err, "failed to check character name")
	}
	if owner != id {
		return errors.AlreadyExists(errNameConflict)
	}
	return nil
}

// releaseName undoes a claim after a failed write
func (r *redisRepository) releaseName(ctx context.Context, name, id string) {
	owner, err := r.client.HGet(ctx, nameIndexKey, name).Result()
	if err != nil || owner != id {
		return
	}
	if err := r.client.HDel(ctx, nameIndexKey, name).Err(); err != nil {
		r.logger.Warnw("failed to release character name", "name", name, "error", err)
	}
}
