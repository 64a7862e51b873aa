package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"cidian/internal/config"
	"cidian/internal/pkg/mongodb"
	"cidian/internal/pkg/sqlite"
	authRepo "cidian/internal/repository/auth"
	dictRepo "cidian/internal/repository/dictionary"
)

// Store 按 store.driver 打开的持久化存储及其仓库
type Store struct {
	Entries dictRepo.EntryRepo
	Admins  authRepo.AdminRepo

	sqlite *sqlite.Client
	mongo  *mongodb.Client
}

// OpenStore 打开配置的存储
func OpenStore(cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case "mongo":
		client, err := mongodb.New(&cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

		if err := mongodb.EnsureIndexes(client.Database()); err != nil {
			log.Warn().Err(err).Msg("failed to ensure indexes")
		}

		return &Store{
			Entries: dictRepo.NewMongoEntryRepo(client.Database()),
			Admins:  authRepo.NewMongoAdminRepo(client.Database()),
			mongo:   client,
		}, nil

	case "sqlite", "":
		client, err := sqlite.New(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, err
		}
		path := cfg.Store.SQLite.Path
		if path == "" {
			path = ":memory:"
		}
		log.Info().Str("path", path).Msg("opened SQLite store")

		return &Store{
			Entries: dictRepo.NewSQLEntryRepo(client.DB()),
			Admins:  authRepo.NewSQLAdminRepo(client.DB()),
			sqlite:  client,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// Ping 检查存储连通性
func (s *Store) Ping(ctx context.Context) error {
	if s.mongo != nil {
		return s.mongo.Ping(ctx)
	}
	return s.sqlite.Ping(ctx)
}

// Close 关闭存储连接
func (s *Store) Close(ctx context.Context) error {
	if s.mongo != nil {
		return s.mongo.Close(ctx)
	}
	return s.sqlite.Close()
}
