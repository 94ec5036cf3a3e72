package session

import "strings"

// DefaultChunkSize is the number of words shown per practice set.
const DefaultChunkSize = 8

// Chunk is a run of consecutive words practiced as one target string.
type Chunk struct {
	Words []string
}

// Text joins the words with single spaces.
func (c Chunk) Text() string {
	return strings.Join(c.Words, " ")
}

// ChunkWords splits words into chunks of size words, keeping their order. The
// last chunk may be shorter. A size <= 0 uses DefaultChunkSize.
func ChunkWords(words []string, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	chunks := make([]Chunk, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, Chunk{Words: words[start:end:end]})
	}
	return chunks
}
