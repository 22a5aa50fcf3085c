package stream

// Chunk is one contiguous, non-overlapping slice of the input buffer
// assigned to a single independent compress call. Data aliases the input;
// chunking allocates nothing but the chunk headers.
type Chunk struct {
	Index  int
	Offset int
	Data   []byte
}

// splitChunks splits data into ordered chunks of exactly chunkSize bytes,
// except the final chunk which may be shorter. The chunks cover the entire
// input with no gaps. Empty data yields zero chunks; chunkSize >= len(data)
// yields exactly one.
//
// chunkSize must be positive; options validation guarantees it.
func splitChunks(data []byte, chunkSize int) []Chunk {
	if len(data) == 0 {
		return nil
	}

	count := (len(data) + chunkSize - 1) / chunkSize
	chunks := make([]Chunk, 0, count)

	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}

		chunks = append(chunks, Chunk{
			Index:  len(chunks),
			Offset: offset,
			Data:   data[offset:end],
		})
	}

	return chunks
}
