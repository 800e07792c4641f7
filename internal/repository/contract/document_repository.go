package contract

import (
	"context"

	"hybrid-rag-chat/internal/model"
)

// ScoredDocument pairs a stored document with its cosine similarity to the
// query vector.
type ScoredDocument struct {
	Document   *model.DocumentEmbedding
	Similarity float64
}

type DocumentRepository interface {
	CreateBulk(ctx context.Context, docs []*model.DocumentEmbedding) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredDocument, error)
}
