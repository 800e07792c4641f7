package utils

import "unicode"

// SplitText splits a long string into chunks of approximately chunkSize
// characters with an overlap to preserve context at boundaries. Chunk ends
// back off to the nearest whitespace when one is close, so words are not cut
// in half. Rune-safe.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	totalLen := len(runes)

	if chunkSize <= 0 || totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end >= totalLen {
			chunks = append(chunks, string(runes[i:totalLen]))
			break
		}

		chunks = append(chunks, string(runes[i:breakAt(runes, i, end, i+step)]))
	}

	return chunks
}

// breakAt prefers the last whitespace within the trailing fifth of the
// chunk; otherwise it keeps the hard boundary rather than losing data. The
// break never backs off past nextStart, so every rune lands in some chunk.
func breakAt(runes []rune, start, end, nextStart int) int {
	limit := end - (end-start)/5
	if limit < nextStart {
		limit = nextStart
	}
	for i := end - 1; i > limit; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}
	return end
}
