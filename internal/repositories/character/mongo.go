package character

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// DefaultCollection holds the character documents
const DefaultCollection = "characters"

// MongoConfig contains configuration for the MongoDB character repository.
type MongoConfig struct {
	Database *mongo.Database
	// Collection name (optional, defaults to characters)
	Collection string
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate validates the MongoConfig.
func (cfg *MongoConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Database == nil {
		return errors.InvalidArgument("database cannot be nil")
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)

// MongoRepository stores one document per character keyed by its string ID
type MongoRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

// NewMongo creates a new MongoDB-backed character repository.
// Call EnsureIndexes before serving so the name constraint exists.
func NewMongo(cfg *MongoConfig) (*MongoRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &MongoRepository{
		collection: cfg.Database.Collection(cfg.Collection),
		logger:     cfg.Logger.Sugar(),
	}, nil
}

// EnsureIndexes creates the unique name index and the filter/sort indexes
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "characterName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "class", Value: 1}}},
		{Keys: bson.D{{Key: "race", Value: 1}}},
		{Keys: bson.D{{Key: "updatedAt", Value: -1}}},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create character indexes")
	}

	r.logger.Infow("ensured character indexes", "collection", r.collection.Name())
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	if _, err := r.collection.InsertOne(ctx, input.Character); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, r.duplicateError(ctx, input.Character)
		}
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *MongoRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var c dnd5e.Character
	err := r.collection.FindOne(ctx, bson.M{"_id": input.ID}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *MongoRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": input.Character.ID}, input.Character)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.AlreadyExists(errNameConflict)
		}
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if result.MatchedCount == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *MongoRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if result.DeletedCount == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *MongoRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	filter := bson.M{}
	if input.Search != "" {
		filter["characterName"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(input.Search),
			Options: "i",
		}}
	}
	if input.Class != "" {
		filter["class"] = input.Class
	}
	if input.Race != "" {
		filter["race"] = input.Race
	}

	order := 1
	if input.Order == OrderDesc {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: input.Sort, Value: order}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find characters")
	}
	defer func() { _ = cursor.Close(ctx) }()

	characters := []*dnd5e.Character{}
	if err := cursor.All(ctx, &characters); err != nil {
		return nil, errors.Wrapf(err, "failed to decode characters")
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *MongoRepository) ExistsByName(ctx context.Context, input ExistsByNameInput) (*ExistsByNameOutput, error) {
	filter := bson.M{"characterName": input.Name}
	if input.ExcludeID != "" {
		filter["_id"] = bson.M{"$ne": input.ExcludeID}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check character name")
	}
	return &ExistsByNameOutput{Exists: count > 0}, nil
}

// duplicateError tells an ID collision apart from a name collision
func (r *MongoRepository) duplicateError(ctx context.Context, c *dnd5e.Character) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": c.ID})
	if err == nil && n > 0 {
		return errors.AlreadyExistsf("character with ID %s already exists", c.ID)
	}
	return errors.AlreadyExists(errNameConflict)
}
