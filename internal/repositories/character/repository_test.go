package character_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	character "github.com/KirkDiggler/rpg-charsheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/builders"
)

// RepositoryTestSuite runs the same behavior checks against every store
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (character.Repository, func())
	repo    character.Repository
	cleanup func()
	ctx     context.Context
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (character.Repository, func()) {
			return character.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (character.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := character.NewRedis(&character.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func TestMongoRepository(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping mongo integration test")
	}

	s := &RepositoryTestSuite{}
	s.newRepo = func() (character.Repository, func()) {
		ctx := context.Background()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(5*time.Second))
		s.Require().NoError(err)

		db := client.Database("charsheet_test_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
		repo, err := character.NewMongo(&character.MongoConfig{Database: db})
		s.Require().NoError(err)
		s.Require().NoError(repo.EnsureIndexes(ctx))

		return repo, func() {
			_ = db.Drop(ctx)
			_ = client.Disconnect(ctx)
		}
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) create(id, name, class, race string, level int) *dnd5e.Character {
	c := builders.NewCharacterBuilder().
		WithID(id).
		WithName(name).
		WithClass(class).
		WithRace(race).
		WithLevel(level).
		Build()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)
	return c
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	c := builders.NewCharacterBuilder().
		WithID("char-1").
		WithName("Conan").
		WithAbilityScore(dnd5e.AbilityStrength, 18).
		WithSpellcasting(dnd5e.AbilityIntelligence).
		Build()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Assert().Equal("Conan", got.Character.CharacterName)
	s.Assert().Equal(18, got.Character.AbilityScores.Strength.Score)
	s.Require().NotNil(got.Character.Spellcasting)
	s.Assert().Equal(dnd5e.AbilityIntelligence, got.Character.Spellcasting.SpellcastingAbility)
	s.Assert().True(c.CreatedAt.Equal(got.Character.CreatedAt))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{
		Character: builders.NewCharacterBuilder().WithID("").Build(),
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestCreateDuplicateID() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)

	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: builders.NewCharacterBuilder().WithID("char-1").WithName("Valeria").Build(),
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateDuplicateNameKeepsOneRecord() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)

	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: builders.NewCharacterBuilder().WithID("char-2").WithName("Conan").Build(),
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
	s.Assert().Equal("character name already exists", errors.GetMessage(err))

	list, err := s.repo.List(s.ctx, character.ListInput{Search: "Conan"})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Assert().Equal("char-1", list.Characters[0].ID)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-2"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	c := s.create("char-1", "Conan", "Fighter", "Human", 10)
	c.Level = 11
	c.CharacterName = "Conan the King"

	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: c})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Assert().Equal(11, got.Character.Level)
	s.Assert().Equal("Conan the King", got.Character.CharacterName)

	// the old name is free again
	exists, err := s.repo.ExistsByName(s.ctx, character.ExistsByNameInput{Name: "Conan"})
	s.Require().NoError(err)
	s.Assert().False(exists.Exists)
	s.create("char-2", "Conan", "Fighter", "Human", 1)
}

func (s *RepositoryTestSuite) TestUpdateNameConflict() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)
	valeria := s.create("char-2", "Valeria", "Rogue", "Human", 8)

	valeria.CharacterName = "Conan"
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: valeria})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-2"})
	s.Require().NoError(err)
	s.Assert().Equal("Valeria", got.Character.CharacterName)
}

func (s *RepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{
		Character: builders.NewCharacterBuilder().WithID("missing").Build(),
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)

	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.Assert().True(errors.IsNotFound(err))

	// the name can be reused after delete
	s.create("char-2", "Conan", "Fighter", "Human", 1)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Assert().NotNil(out.Characters)
	s.Assert().Empty(out.Characters)
}

func (s *RepositoryTestSuite) TestListFilterAndSort() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)
	s.create("char-2", "Valeria", "Rogue", "Human", 8)
	s.create("char-3", "Thoth-Amon", "Wizard", "Human", 15)
	s.create("char-4", "Gimli", "Fighter", "Dwarf", 5)

	testCases := []struct {
		name     string
		input    character.ListInput
		expected []string
	}{
		{
			name:     "default sort by name",
			input:    character.ListInput{},
			expected: []string{"Conan", "Gimli", "Thoth-Amon", "Valeria"},
		},
		{
			name:     "search is case-insensitive substring",
			input:    character.ListInput{Search: "O"},
			expected: []string{"Conan", "Thoth-Amon"},
		},
		{
			name:     "search treats input literally",
			input:    character.ListInput{Search: "Thoth-"},
			expected: []string{"Thoth-Amon"},
		},
		{
			name:     "class filter",
			input:    character.ListInput{Class: "Fighter"},
			expected: []string{"Conan", "Gimli"},
		},
		{
			name:     "race filter",
			input:    character.ListInput{Race: "Dwarf"},
			expected: []string{"Gimli"},
		},
		{
			name:     "level descending",
			input:    character.ListInput{Sort: character.SortLevel, Order: character.OrderDesc},
			expected: []string{"Thoth-Amon", "Conan", "Valeria", "Gimli"},
		},
		{
			name:     "combined filters",
			input:    character.ListInput{Class: "Fighter", Race: "Human"},
			expected: []string{"Conan"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.List(s.ctx, tc.input)
			s.Require().NoError(err)

			names := make([]string, 0, len(out.Characters))
			for _, c := range out.Characters {
				names = append(names, c.CharacterName)
			}
			s.Assert().Equal(tc.expected, names)
		})
	}
}

func (s *RepositoryTestSuite) TestListRejectsUnknownSort() {
	_, err := s.repo.List(s.ctx, character.ListInput{Sort: "hitPoints"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, character.ListInput{Order: "sideways"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListSearchLength() {
	_, err := s.repo.List(s.ctx, character.ListInput{Search: strings.Repeat("é", dnd5e.MaxStringLength)})
	s.Assert().NoError(err)

	_, err = s.repo.List(s.ctx, character.ListInput{Search: strings.Repeat("é", dnd5e.MaxStringLength+1)})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestExistsByName() {
	s.create("char-1", "Conan", "Fighter", "Human", 10)

	testCases := []struct {
		name     string
		input    character.ExistsByNameInput
		expected bool
	}{
		{"existing name", character.ExistsByNameInput{Name: "Conan"}, true},
		{"excluded owner", character.ExistsByNameInput{Name: "Conan", ExcludeID: "char-1"}, false},
		{"other excluded id", character.ExistsByNameInput{Name: "Conan", ExcludeID: "char-2"}, true},
		{"exact match only", character.ExistsByNameInput{Name: "conan"}, false},
		{"unknown name", character.ExistsByNameInput{Name: "Valeria"}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.ExistsByName(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, out.Exists)
		})
	}
}

func (s *RepositoryTestSuite) TestStoredRecordIsIsolated() {
	c := s.create("char-1", "Conan", "Fighter", "Human", 10)
	c.Level = 20

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Assert().Equal(10, got.Character.Level)
}

func TestInMemoryReset(t *testing.T) {
	repo := character.NewInMemory()
	ctx := context.Background()

	_, err := repo.Create(ctx, character.CreateInput{Character: builders.NewCharacterBuilder().Build()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	repo.Reset()

	out, err := repo.List(ctx, character.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Characters) != 0 {
		t.Fatalf("expected empty store after reset, got %d", len(out.Characters))
	}
}
