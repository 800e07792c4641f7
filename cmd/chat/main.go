package main

import (
	"context"
	"log"
	"os"

	"hybrid-rag-chat/internal/bootstrap"
	"hybrid-rag-chat/internal/config"
	"hybrid-rag-chat/internal/pkg/logger"
	"hybrid-rag-chat/pkg/database"
	"hybrid-rag-chat/pkg/graph"
	"hybrid-rag-chat/pkg/session"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 2. Connect to the vector store (Postgres + pgvector)
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		sysLogger.Error("main", "unable to connect to database", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 3. Connect to the knowledge graph (Neo4j)
	graphDriver, err := graph.New(context.Background(), cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password)
	if err != nil {
		sysLogger.Error("main", "unable to connect to graph database", map[string]interface{}{"error": err.Error()})
		_ = database.ClosePool(gormDB)
		os.Exit(1)
	}

	closePool := func() error { return database.ClosePool(gormDB) }
	closeGraph := graphDriver.Close

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, gormDB, graphDriver, sysLogger)
	if err != nil {
		sysLogger.Error("main", "failed to initialize the main chain", map[string]interface{}{"error": err.Error()})
		ctrl := session.NewController(nil, closePool, closeGraph, sysLogger)
		os.Exit(ctrl.Abort("initialization failure"))
	}

	sysLogger.Info("main", "hybrid rag chain initialized", nil)

	// 5. Run the interactive session
	ctrl := session.NewController(container.Chain, closePool, closeGraph, sysLogger)
	os.Exit(ctrl.Run(context.Background()))
}
