package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 200, 20)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("SplitText = %v, want the input unchanged", chunks)
	}
}

func TestSplitTextChunkBounds(t *testing.T) {
	text := strings.Repeat("word ", 100) // 500 characters
	chunks := SplitText(text, 200, 20)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 200 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, len([]rune(chunk)))
		}
	}
}

func TestSplitTextBreaksAtWhitespace(t *testing.T) {
	text := strings.Repeat("word ", 100)
	chunks := SplitText(text, 200, 20)

	// Every non-final chunk should end on a word boundary given this input.
	for i, chunk := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(chunk, " ") {
			t.Errorf("chunk %d does not end at whitespace: %q", i, chunk[len(chunk)-10:])
		}
	}
}

func TestSplitTextLongTailWordKeepsEveryRune(t *testing.T) {
	// A space just before the step boundary followed by one long unbroken
	// word: the whitespace back-off must not end a chunk before the next
	// chunk's start, or the runes in between vanish.
	text := strings.Repeat("a", 169) + " " + strings.Repeat("b", 130)
	chunks := SplitText(text, 200, 20)

	bCount := 0
	for _, chunk := range chunks {
		bCount += strings.Count(chunk, "b")
	}
	if bCount < 130 {
		t.Errorf("split dropped %d runes of the tail word", 130-bCount)
	}

	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(last, "b") {
		t.Errorf("last chunk does not carry the end of the input: %q", last)
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("a", 500)
	chunks := SplitText(text, 100, 100) // degenerate overlap falls back to full steps

	if len(chunks) != 5 {
		t.Errorf("expected 5 chunks, got %d", len(chunks))
	}
}

func TestSplitTextRuneSafe(t *testing.T) {
	text := strings.Repeat("héllo wörld ", 50)
	chunks := SplitText(text, 100, 10)

	for i, chunk := range chunks {
		if strings.ContainsRune(chunk, '�') {
			t.Errorf("chunk %d contains a broken rune", i)
		}
	}
}
