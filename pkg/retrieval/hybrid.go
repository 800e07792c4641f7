package retrieval

import (
	"context"

	"hybrid-rag-chat/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Retriever is one retrieval branch: vector or graph.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Document, error)
}

// Options carries per-query result counts for each branch.
type Options struct {
	VectorK int
	GraphK  int
}

const (
	DefaultVectorK = 4
	DefaultGraphK  = 2
)

func DefaultOptions() Options {
	return Options{VectorK: DefaultVectorK, GraphK: DefaultGraphK}
}

// HybridRetriever fans out to both branches concurrently, merges graph-first
// and deduplicates by exact content.
type HybridRetriever struct {
	vector Retriever
	graph  Retriever
	logger logger.ILogger
}

func NewHybridRetriever(vector, graph Retriever, log logger.ILogger) *HybridRetriever {
	return &HybridRetriever{
		vector: vector,
		graph:  graph,
		logger: log,
	}
}

// Retrieve waits for both branches regardless of which finishes first. A
// failed branch is coerced to an empty result here: retrieval context is
// supplementary, so a branch failure degrades the answer instead of failing
// the turn. That coercion is this method's policy, not the branches' — they
// return typed errors.
func (h *HybridRetriever) Retrieve(ctx context.Context, query string, opts Options) []Document {
	var vectorDocs, graphDocs []Document

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := h.graph.Retrieve(gctx, query, opts.GraphK)
		if err != nil {
			h.logger.Warn("retrieval", "graph branch failed, continuing without graph context", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		graphDocs = docs
		return nil
	})
	g.Go(func() error {
		docs, err := h.vector.Retrieve(gctx, query, opts.VectorK)
		if err != nil {
			h.logger.Warn("retrieval", "vector branch failed, continuing without vector context", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		vectorDocs = docs
		return nil
	})
	_ = g.Wait() // branch errors are absorbed above

	// Graph results first: entity-matched evidence is treated as higher
	// precision and gets priority position. No numeric relevance score backs
	// this ordering.
	combined := make([]Document, 0, len(graphDocs)+len(vectorDocs))
	combined = append(combined, graphDocs...)
	combined = append(combined, vectorDocs...)

	seen := make(map[string]bool, len(combined))
	final := make([]Document, 0, len(combined))
	for _, doc := range combined {
		if seen[doc.Content] {
			continue
		}
		seen[doc.Content] = true
		final = append(final, doc)
	}

	h.logger.Info("retrieval", "hybrid retrieval completed", map[string]interface{}{
		"graph_results":  len(graphDocs),
		"vector_results": len(vectorDocs),
		"final_context":  len(final),
	})

	return final
}
