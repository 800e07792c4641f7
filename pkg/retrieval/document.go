package retrieval

// Source tags a retrieved document with its originating subsystem.
type Source string

const (
	SourceVector Source = "vector"
	SourceGraph  Source = "knowledge_graph"
)

// Document is one unit of retrieved evidence: a passage from the vector store
// or a rendered knowledge-graph record. Two documents are duplicates iff
// their Content strings are byte-identical; Metadata never participates in
// equality.
type Document struct {
	Content  string
	Source   Source
	Metadata map[string]any
}
