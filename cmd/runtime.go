package cmd

import (
	"fmt"

	"depot-planner/core/catalog"
	"depot-planner/core/config"
	"depot-planner/core/database"
	"depot-planner/core/kv"
	"depot-planner/core/logger"
	"depot-planner/core/storage"
	"depot-planner/feature/depot"
	"depot-planner/feature/depot/remote"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the backends shared by the server and the CLI commands.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	remote  *remote.GormStore
	storage storage.Client
	local   kv.Store
	catalog catalog.Bound
}

// newRuntime loads configuration and opens every backend. The database is
// optional unless requireDB is set; without it depots stay local-only.
func newRuntime(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: l}

	if db, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return rt.abort(fmt.Errorf("failed to connect to database: %w", err))
		}
		l.Warn("Optional database connection failed, depots are local-only", zap.Error(err))
	} else {
		rt.db = db
		rt.remote = remote.NewGormStore(db, cfg.Depot.Table)
		if err := rt.remote.Migrate(); err != nil {
			return rt.abort(fmt.Errorf("failed to migrate depot table: %w", err))
		}
		if err := rt.remote.Verify(); err != nil {
			return rt.abort(err)
		}
		l.Info("Connected to depot database", zap.String("driver", cfg.Database.Driver))
	}

	if cfg.Catalog.Source == "object" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return rt.abort(fmt.Errorf("failed to create storage client: %w", err))
		}
		rt.storage = client
	}

	src, err := catalog.NewSource(cfg.Catalog, rt.storage, cfg.Storage.Bucket)
	if err != nil {
		return rt.abort(err)
	}
	rt.catalog = catalog.Bound{Cache: catalog.NewCache(cfg.Catalog.CacheTTL()), Source: src}

	local, err := kv.New(cfg.KV)
	if err != nil {
		return rt.abort(fmt.Errorf("failed to open local store: %w", err))
	}
	rt.local = local

	return rt, nil
}

// depotRemote returns the remote store, or nil when no database is connected.
func (rt *runtime) depotRemote() depot.Remote {
	if rt.remote == nil {
		return nil
	}
	return rt.remote
}

func (rt *runtime) close() {
	if c, ok := rt.local.(interface{ Close() error }); ok {
		_ = c.Close()
	}
	if rt.db != nil {
		closeDB(rt.db)
	}
	_ = rt.log.Sync()
}

// abort releases the database opened by a failed newRuntime.
func (rt *runtime) abort(err error) (*runtime, error) {
	if rt.db != nil {
		closeDB(rt.db)
	}
	return nil, err
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
