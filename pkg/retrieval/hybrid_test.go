package retrieval

import (
	"context"
	"errors"
	"testing"

	"hybrid-rag-chat/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type stubRetriever struct {
	docs  []Document
	err   error
	calls int
	gotK  int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	s.calls++
	s.gotK = k
	return s.docs, s.err
}

func graphDoc(content string) Document {
	return Document{Content: content, Source: SourceGraph}
}

func vectorDoc(content string) Document {
	return Document{Content: content, Source: SourceVector}
}

func TestHybridRetrieveGraphFirstOrdering(t *testing.T) {
	graphBranch := &stubRetriever{docs: []Document{graphDoc("g1"), graphDoc("g2")}}
	vectorBranch := &stubRetriever{docs: []Document{vectorDoc("v1"), vectorDoc("v2"), vectorDoc("v3")}}

	h := NewHybridRetriever(vectorBranch, graphBranch, logger.NewNop())
	result := h.Retrieve(context.Background(), "Who is Alice?", Options{VectorK: 4, GraphK: 2})

	assert.Len(t, result, 5)
	assert.Equal(t, "g1", result[0].Content)
	assert.Equal(t, "g2", result[1].Content)
	assert.Equal(t, "v1", result[2].Content)
	assert.Equal(t, 1, graphBranch.calls)
	assert.Equal(t, 1, vectorBranch.calls)
	assert.Equal(t, 2, graphBranch.gotK)
	assert.Equal(t, 4, vectorBranch.gotK)
}

func TestHybridRetrieveDeduplicatesByContent(t *testing.T) {
	// Same content from both branches. The graph copy sits first in
	// concatenation order, so it must be the survivor.
	graphBranch := &stubRetriever{docs: []Document{graphDoc("shared"), graphDoc("g-only")}}
	vectorBranch := &stubRetriever{docs: []Document{vectorDoc("shared"), vectorDoc("v-only")}}

	h := NewHybridRetriever(vectorBranch, graphBranch, logger.NewNop())
	result := h.Retrieve(context.Background(), "Who is Alice?", DefaultOptions())

	assert.Len(t, result, 3)
	assert.Equal(t, "shared", result[0].Content)
	assert.Equal(t, SourceGraph, result[0].Source)
	assert.Equal(t, "g-only", result[1].Content)
	assert.Equal(t, "v-only", result[2].Content)
}

func TestHybridRetrieveBranchFailureDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name        string
		graphErr    error
		vectorErr   error
		wantContent []string
	}{
		{
			name:        "graph branch fails",
			graphErr:    errors.New("connection refused"),
			wantContent: []string{"v1"},
		},
		{
			name:        "vector branch fails",
			vectorErr:   errors.New("embedding service down"),
			wantContent: []string{"g1"},
		},
		{
			name:        "both branches fail",
			graphErr:    errors.New("boom"),
			vectorErr:   errors.New("boom"),
			wantContent: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graphBranch := &stubRetriever{docs: []Document{graphDoc("g1")}, err: tt.graphErr}
			vectorBranch := &stubRetriever{docs: []Document{vectorDoc("v1")}, err: tt.vectorErr}

			h := NewHybridRetriever(vectorBranch, graphBranch, logger.NewNop())
			result := h.Retrieve(context.Background(), "Who is Alice?", DefaultOptions())

			var contents []string
			for _, doc := range result {
				contents = append(contents, doc.Content)
			}
			assert.Equal(t, tt.wantContent, contents)
		})
	}
}

func TestHybridRetrieveBothBranchesAlwaysRun(t *testing.T) {
	graphBranch := &stubRetriever{err: errors.New("down")}
	vectorBranch := &stubRetriever{docs: []Document{vectorDoc("v1")}}

	h := NewHybridRetriever(vectorBranch, graphBranch, logger.NewNop())
	h.Retrieve(context.Background(), "Who is Alice?", DefaultOptions())

	assert.Equal(t, 1, graphBranch.calls)
	assert.Equal(t, 1, vectorBranch.calls)
}

func TestHybridRetrieveIdempotent(t *testing.T) {
	graphBranch := &stubRetriever{docs: []Document{graphDoc("g1")}}
	vectorBranch := &stubRetriever{docs: []Document{vectorDoc("v1"), vectorDoc("v2")}}

	h := NewHybridRetriever(vectorBranch, graphBranch, logger.NewNop())
	first := h.Retrieve(context.Background(), "Who is Alice?", DefaultOptions())
	second := h.Retrieve(context.Background(), "Who is Alice?", DefaultOptions())

	assert.Equal(t, first, second)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 4, opts.VectorK)
	assert.Equal(t, 2, opts.GraphK)
}
