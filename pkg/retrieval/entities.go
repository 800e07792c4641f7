package retrieval

import "regexp"

// EntityExtractor derives candidate proper-noun tokens from a raw query.
// Pluggable so the heuristic below can be swapped for a real NLP component
// without touching the retriever contracts.
type EntityExtractor interface {
	Extract(query string) []string
}

// HeuristicExtractor matches capitalized word runs and drops common
// interrogative/article words. It is deliberately naive: false negatives make
// the graph branch short-circuit, false positives feed entities the graph
// query simply won't match. Both outcomes are tolerated.
type HeuristicExtractor struct{}

var capitalizedToken = regexp.MustCompile(`\b[A-Z][a-zA-Z]*\b`)

var entityStopwords = map[string]struct{}{
	"I": {}, "The": {}, "A": {}, "An": {}, "Is": {}, "Was": {},
	"Who": {}, "What": {}, "Where": {}, "When": {}, "Why": {}, "How": {},
}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (e *HeuristicExtractor) Extract(query string) []string {
	matches := capitalizedToken.FindAllString(query, -1)

	var entities []string
	seen := make(map[string]bool)
	for _, token := range matches {
		if _, stop := entityStopwords[token]; stop {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		entities = append(entities, token)
	}
	return entities
}
