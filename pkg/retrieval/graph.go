package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hybrid-rag-chat/internal/pkg/logger"
)

// GraphQuerier is the narrow contract the retriever needs from the graph
// database handle.
type GraphQuerier interface {
	Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

// Matches nodes whose name or title is one of the extracted entities, with an
// optional one-hop expansion to neighbors. Parameters are bound, never
// interpolated into the query text.
const graphContextQuery = `
MATCH (n)
WHERE n.name IN $entityList OR n.title IN $entityList
OPTIONAL MATCH (n)-[r]-(m)
RETURN n, r, m
LIMIT $limit`

const unserializableRecord = "Could not serialize graph record."

type GraphRetriever struct {
	graph     GraphQuerier
	extractor EntityExtractor
	logger    logger.ILogger
}

func NewGraphRetriever(graph GraphQuerier, extractor EntityExtractor, log logger.ILogger) *GraphRetriever {
	return &GraphRetriever{
		graph:     graph,
		extractor: extractor,
		logger:    log,
	}
}

func (r *GraphRetriever) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	entities := r.extractor.Extract(query)
	if len(entities) == 0 {
		// No entities means a pattern-match query cannot bind anything
		// useful, so skip the round-trip entirely.
		r.logger.Debug("retrieval", "no entities found in query, skipping graph lookup", nil)
		return nil, nil
	}

	records, err := r.graph.Query(ctx, graphContextQuery, map[string]any{
		"entityList": entities,
		"limit":      k,
	})
	if err != nil {
		return nil, fmt.Errorf("graph query: %w", err)
	}

	r.logger.Debug("retrieval", "graph search completed", map[string]interface{}{
		"entities": entities,
		"records":  len(records),
	})

	docs := make([]Document, 0, len(records))
	for i, record := range records {
		docs = append(docs, Document{
			Content: renderRecord(record, entities),
			Source:  SourceGraph,
			Metadata: map[string]any{
				"record_index":   i,
				"query_entities": entities,
			},
		})
	}
	return docs, nil
}

// renderRecord produces a stable human-readable rendering of one raw graph
// record.
func renderRecord(record map[string]any, entities []string) string {
	var sb strings.Builder
	sb.WriteString("Information related to: ")
	sb.WriteString(strings.Join(entities, ", "))
	sb.WriteString("\n")

	serialized, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		sb.WriteString(unserializableRecord)
	} else {
		sb.Write(serialized)
	}
	return sb.String()
}
