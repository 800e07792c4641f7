package retrieval

import (
	"reflect"
	"testing"
)

func TestHeuristicExtract(t *testing.T) {
	extractor := NewHeuristicExtractor()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "stop word removed",
			query: "Who is Alice?",
			want:  []string{"Alice"},
		},
		{
			name:  "no capitalized tokens",
			query: "hello",
			want:  nil,
		},
		{
			name:  "only stop words",
			query: "What Is The Answer",
			want:  []string{"Answer"},
		},
		{
			name:  "multiple entities",
			query: "did Alice work with Bob at Acme?",
			want:  []string{"Alice", "Bob", "Acme"},
		},
		{
			name:  "duplicates collapse",
			query: "Alice talked to Alice",
			want:  []string{"Alice"},
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
		{
			name:  "all stop words",
			query: "Who What Where When Why How",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
