package root

import (
	"context"
	"database/sql"

	"rainythoughts/internal/config"
	"rainythoughts/internal/engine"
	"rainythoughts/internal/logging"
	"rainythoughts/internal/narrative"
	"rainythoughts/internal/storage"
)

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}

// openWithNarrative also builds the configured flavor-text generator and a
// logger for its failures.
func openWithNarrative(ctx context.Context) (*engine.Service, narrative.Generator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, dbCleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(cfg.LogPath)
	svc := engine.NewService(db)
	gen := narrative.NewGenerator(narrative.OpenRouterConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		Model:   cfg.OpenRouterModel,
		Timeout: cfg.RequestTimeout,
		Journal: svc.JournalRepo(),
		Logger:  log,
	})
	cleanup := func() {
		_ = log.Sync()
		dbCleanup()
	}
	return svc, gen, cleanup, nil
}
