package implementation

import (
	"context"

	"hybrid-rag-chat/internal/model"
	"hybrid-rag-chat/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) CreateBulk(ctx context.Context, docs []*model.DocumentEmbedding) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(docs).Error
}

// SearchSimilarWithScore runs a nearest-neighbor scan ordered by cosine
// distance. Cosine distance in pgvector is 1 - cosine_similarity, so the
// returned similarity is 1 - (embedding <=> query_vector).
func (r *DocumentRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredDocument, error) {
	if limit <= 0 {
		limit = 4
	}

	type result struct {
		model.DocumentEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("documents").
		Select("documents.*, 1 - (embedding <=> ?) AS similarity", queryVector).
		Order(gorm.Expr("embedding <=> ?", queryVector)).
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredDocument, len(results))
	for i, res := range results {
		doc := res.DocumentEmbedding
		scored[i] = &contract.ScoredDocument{
			Document:   &doc,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
