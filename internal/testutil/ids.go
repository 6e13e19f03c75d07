package testutil

// FixedIDGenerator generates the same run ID every time.
//
// This enables deterministic journal rows in tests: the same run recorded
// twice with the same generator produces identical primary keys.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed ID generator.
//
// If id is empty, Generate() returns "test-run-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed ID.
//
// Implements journal.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
