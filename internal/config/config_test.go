package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal(8080, cfg.Port)
	s.Equal(config.StoreMemory, cfg.Store)
	s.Equal("http://localhost:8080", cfg.APIURL)
	s.Equal(10*time.Second, cfg.MongoTimeout)
	s.Equal([]string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("PORT", "9090")
	s.T().Setenv("CHARSHEET_STORE", "redis")
	s.T().Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal(9090, cfg.Port)
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func (s *ConfigTestSuite) TestDotenvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("CHARSHEET_API_URL=http://api.test:8080\n"), 0o600))
	s.T().Setenv("CHARSHEET_API_URL", "")
	s.Require().NoError(os.Unsetenv("CHARSHEET_API_URL"))

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("http://api.test:8080", cfg.APIURL)
}

func (s *ConfigTestSuite) TestInvalidStore() {
	s.T().Setenv("CHARSHEET_STORE", "postgres")

	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestPortOutOfRange() {
	s.T().Setenv("PORT", "70000")

	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be between 1 and 65535"}, fields["port"])
}

func (s *ConfigTestSuite) TestInvalidPort() {
	s.T().Setenv("PORT", "not-a-number")

	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.True(errors.IsInvalidArgument(err))
}
