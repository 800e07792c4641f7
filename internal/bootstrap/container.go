package bootstrap

import (
	"fmt"

	"hybrid-rag-chat/internal/config"
	"hybrid-rag-chat/internal/pkg/logger"
	"hybrid-rag-chat/internal/repository/implementation"
	"hybrid-rag-chat/pkg/embedding"
	"hybrid-rag-chat/pkg/embedding/huggingface"
	"hybrid-rag-chat/pkg/graph"
	"hybrid-rag-chat/pkg/llm/factory"
	"hybrid-rag-chat/pkg/rag"
	"hybrid-rag-chat/pkg/retrieval"

	"gorm.io/gorm"
)

// Container wires the retrieval and synthesis dependencies. The database and
// graph handles stay owned by the caller; the container only borrows them.
type Container struct {
	Embedder embedding.Provider
	Chain    *rag.Chain
}

func NewContainer(cfg *config.Config, db *gorm.DB, graphDriver *graph.Driver, sysLogger logger.ILogger) (*Container, error) {
	// 1. External request/response services
	var embedder embedding.Provider = huggingface.NewHuggingFaceProvider(
		cfg.Ai.HuggingFaceAPIToken,
		cfg.Ai.EmbeddingModel,
	)
	embedder = embedding.NewCachedProvider(embedder)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OpenRouterBaseURL,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		return nil, fmt.Errorf("create llm provider: %w", err)
	}

	// 2. Retrieval branches
	documentRepo := implementation.NewDocumentRepository(db)
	vectorRetriever := retrieval.NewVectorRetriever(embedder, documentRepo, sysLogger)
	graphRetriever := retrieval.NewGraphRetriever(graphDriver, retrieval.NewHeuristicExtractor(), sysLogger)

	hybrid := retrieval.NewHybridRetriever(vectorRetriever, graphRetriever, sysLogger)

	// 3. Synthesis pipeline
	chain := rag.NewChain(hybrid, llmProvider, retrieval.Options{
		VectorK: cfg.Ai.VectorK,
		GraphK:  cfg.Ai.GraphK,
	}, sysLogger)

	return &Container{
		Embedder: embedder,
		Chain:    chain,
	}, nil
}
