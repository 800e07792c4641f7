package retrieval

import (
	"context"
	"fmt"

	"hybrid-rag-chat/internal/pkg/logger"
	"hybrid-rag-chat/internal/repository/contract"
	"hybrid-rag-chat/pkg/embedding"
)

// VectorRetriever embeds the query and runs a nearest-neighbor search over
// the document store. It borrows the database handle read-only.
type VectorRetriever struct {
	embedder embedding.Provider
	repo     contract.DocumentRepository
	logger   logger.ILogger
}

func NewVectorRetriever(embedder embedding.Provider, repo contract.DocumentRepository, log logger.ILogger) *VectorRetriever {
	return &VectorRetriever{
		embedder: embedder,
		repo:     repo,
		logger:   log,
	}
}

func (r *VectorRetriever) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.repo.SearchSimilarWithScore(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	r.logger.Debug("retrieval", "vector search completed", map[string]interface{}{
		"k":    k,
		"hits": len(scored),
	})

	docs := make([]Document, 0, len(scored))
	for _, s := range scored {
		metadata := make(map[string]any, len(s.Document.Metadata)+1)
		for key, value := range s.Document.Metadata {
			metadata[key] = value
		}
		if _, ok := metadata["source"]; !ok {
			metadata["source"] = string(SourceVector)
		}
		// Similarity rides along in metadata for future re-ranking; it does
		// not influence ordering today.
		metadata["similarity"] = s.Similarity

		docs = append(docs, Document{
			Content:  s.Document.PageContent,
			Source:   SourceVector,
			Metadata: metadata,
		})
	}
	return docs, nil
}
