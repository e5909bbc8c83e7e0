package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Armvda11/Epic7-sub000/internal/api"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/config"
	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/service"
	"github.com/Armvda11/Epic7-sub000/internal/session"
	"github.com/Armvda11/Epic7-sub000/internal/storage"
	"github.com/Armvda11/Epic7-sub000/internal/version"
	"github.com/Armvda11/Epic7-sub000/internal/ws"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret})
	secret := os.Getenv(constants.EnvSessionSecret)

	// Config path may be provided via ARENA_CONFIG or defaults to
	// ./arena_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{
			"config_path": configPath,
			"hint":        "create an arena_config.json with a 'hero_list' array (name,boss,health,attack,defense,speed,skills) and optional keys: equipment_list, server.address, combat",
		})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{"dir": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Heroes, cfg.Equipment)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db, cfg.Heroes)

	// Battle sessions default to the in-memory store; set
	// ARENA_SESSION_STORE=db to survive restarts at the cost of a write
	// per turn.
	var store session.Store = session.NewMemoryStore()
	if os.Getenv(constants.EnvSessionStore) == "db" {
		store = session.NewDBStore(repo)
	}

	battles := service.NewBattles(store, catalog.NewService(repo), repo, service.Options{
		Rules:       cfg.Rules,
		TurnTimeout: cfg.TurnTimeout,
		QueueTTL:    cfg.QueueTTL,
		TeamSize:    cfg.TeamSize,
	})

	hub := ws.NewHub()
	wsHandler := ws.NewHandler(hub, battles, func(token string) (string, error) {
		userID, _, err := api.VerifySessionToken(secret, token)
		return userID, err
	})

	startTurnSweeper(battles, wsHandler)

	router := api.NewRouter(api.NewHandler(battles, repo), wsHandler, secret)
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: cfg.ServerAddress,
		"version":              version.Version,
	})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

// startTurnSweeper expires overdue turns and stale matchmaking entries
// in the background and pushes the resulting updates to subscribers.
func startTurnSweeper(battles *service.Battles, wsHandler *ws.Handler) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			wsHandler.PublishTurnEvents(battles.SweepExpiredTurns(now))
			wsHandler.NotifyQueueExpired(battles.ExpireQueue(now))
		}
	}()
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
