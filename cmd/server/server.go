package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/logging"
	"github.com/KirkDiggler/rpg-charsheet/internal/mongo"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/server"
)

var (
	port     int
	store    string
	redisURL string
	mongoURI string
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the character API server",
	Long: `Start the character REST API with the selected storage backend.

Configuration comes from the environment (and an optional .env file); flags override it.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides PORT)")
	serverCmd.Flags().StringVar(&store, "store", "", "Storage backend: memory, redis or mongo (overrides CHARSHEET_STORE)")
	serverCmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL (overrides REDIS_URL)")
	serverCmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI (overrides MONGODB_URI)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional .env file")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port != 0 {
		cfg.Port = port
	}
	if store != "" {
		cfg.Store = store
	}
	if redisURL != "" {
		cfg.RedisURL = redisURL
	}
	if mongoURI != "" {
		cfg.MongoURI = mongoURI
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		ServiceName: "charsheet",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	orchestrator, err := character.New(&character.Config{
		Repository: repo,
		Engine:     eng,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	srv, err := server.New(&server.Config{
		CharacterService: orchestrator,
		Port:             cfg.Port,
		CORSOrigins:      cfg.CORSOrigins,
		ShutdownTimeout:  cfg.ShutdownTimeout,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Sugar().Infow("starting charsheet", "port", cfg.Port, "store", cfg.Store)
	return srv.Run(ctx)
}

// openRepository builds the configured store and returns a cleanup for its connection
func openRepository(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (characterrepo.Repository, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClientFromURL(cfg.RedisURL, nil)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to reach redis: %w", err)
		}

		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Logger: logger})
		if err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to create redis repository: %w", err)
		}
		return repo, func() { _ = client.Close() }, nil

	case config.StoreMongo:
		client, err := mongo.Connect(ctx, &mongo.Options{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.MongoTimeout,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		closeClient := func() { _ = client.Close(context.Background()) }

		repo, err := characterrepo.NewMongo(&characterrepo.MongoConfig{Database: client.Database, Logger: logger})
		if err != nil {
			closeClient()
			return nil, noop, fmt.Errorf("failed to create mongo repository: %w", err)
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeClient()
			return nil, noop, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		return repo, closeClient, nil

	default:
		return characterrepo.NewInMemory(), noop, nil
	}
}
