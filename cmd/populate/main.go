package main

import (
	"context"
	"log"
	"os"

	"hybrid-rag-chat/internal/bootstrap"
	"hybrid-rag-chat/internal/config"
	"hybrid-rag-chat/internal/model"
	"hybrid-rag-chat/internal/pkg/logger"
	"hybrid-rag-chat/internal/repository/implementation"
	"hybrid-rag-chat/pkg/database"
	"hybrid-rag-chat/pkg/embedding"
	"hybrid-rag-chat/pkg/graph"
	"hybrid-rag-chat/pkg/utils"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds both stores with a small sample corpus so the chat loop has
// something to retrieve against.

var sampleGraphStatements = []string{
	`MATCH (n) DETACH DELETE n`,
	`CREATE (p1:Person {name: 'Alice', title: 'Software Engineer'})
	 CREATE (p2:Person {name: 'Bob', title: 'Data Scientist'})
	 CREATE (c1:Company {name: 'Acme Corp'})
	 CREATE (proj1:Project {name: 'Project Phoenix', description: 'A next-gen platform.'})
	 CREATE (sk1:Skill {name: 'TypeScript'})
	 CREATE (sk2:Skill {name: 'Python'})
	 CREATE (sk3:Skill {name: 'Neo4j'})
	 MERGE (p1)-[:WORKS_AT]->(c1)
	 MERGE (p2)-[:WORKS_AT]->(c1)
	 MERGE (p1)-[:WORKS_ON]->(proj1)
	 MERGE (p1)-[:HAS_SKILL]->(sk1)
	 MERGE (p1)-[:HAS_SKILL]->(sk3)
	 MERGE (p2)-[:HAS_SKILL]->(sk2)
	 MERGE (p2)-[:HAS_SKILL]->(sk3)
	 MERGE (c1)-[:OWNS]->(proj1)`,
}

var sampleTexts = []string{
	"Alice is a Software Engineer at Acme Corp. She primarily uses TypeScript and is involved in Project Phoenix.",
	"Bob, a Data Scientist at Acme Corp, specializes in Python and graph databases like Neo4j.",
	"Project Phoenix aims to rebuild the company's main platform using modern technologies.",
	"Acme Corp encourages collaboration between different departments.",
	"Neo4j is a graph database management system developed by Neo4j, Inc.",
	"TypeScript adds static typing to JavaScript, improving code quality and maintainability.",
}

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 2. Connect to both stores
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}
	defer database.ClosePool(gormDB)

	graphDriver, err := graph.New(ctx, cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password)
	if err != nil {
		log.Fatalf("Error: Failed to connect to graph database: %v", err)
	}
	defer graphDriver.Close(ctx)

	container, err := bootstrap.NewContainer(cfg, gormDB, graphDriver, sysLogger)
	if err != nil {
		log.Fatalf("Error: Failed to bootstrap dependencies: %v", err)
	}

	// 3. Seed
	if err := populateGraph(ctx, graphDriver); err != nil {
		log.Fatalf("Error: Failed to populate graph: %v", err)
	}
	log.Println("Graph sample data added.")

	count, err := populateVectorStore(ctx, gormDB, container.Embedder)
	if err != nil {
		log.Fatalf("Error: Failed to populate vector store: %v", err)
	}
	log.Printf("Added %d document chunks to the vector store.", count)

	os.Exit(0)
}

func populateGraph(ctx context.Context, driver *graph.Driver) error {
	for _, stmt := range sampleGraphStatements {
		if err := driver.Exec(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}

func populateVectorStore(ctx context.Context, db *gorm.DB, embedder embedding.Provider) (int, error) {
	// Extensions and schema. GORM AutoMigrate handles the table; the vector
	// extension has to exist first.
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
		return 0, err
	}
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return 0, err
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.DocumentEmbedding{}); err != nil {
		return 0, err
	}

	repo := implementation.NewDocumentRepository(db)

	var docs []*model.DocumentEmbedding
	for textIndex, text := range sampleTexts {
		chunks := utils.SplitText(text, 200, 20)
		for chunkIndex, chunk := range chunks {
			vector, err := embedder.Embed(ctx, chunk)
			if err != nil {
				return 0, err
			}
			docs = append(docs, &model.DocumentEmbedding{
				PageContent: chunk,
				Embedding:   pgvector.NewVector(vector),
				Metadata: datatypes.JSONMap{
					"source":              "sample_docs",
					"original_text_index": textIndex,
					"chunk_index":         chunkIndex,
				},
			})
		}
	}

	if err := repo.CreateBulk(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}
