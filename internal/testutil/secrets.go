package testutil

// SequenceReader is an endless reader of the bytes seed, seed+1, seed+2...
// It stands in for crypto/rand where a test needs reproducible secrets.
type SequenceReader struct {
	next byte
}

// NewSequenceReader returns a reader starting at seed.
func NewSequenceReader(seed byte) *SequenceReader {
	return &SequenceReader{next: seed}
}

func (r *SequenceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}
