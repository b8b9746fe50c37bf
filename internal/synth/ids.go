package synth

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// randReader adapts the injected random source into an io.Reader so UUID
// generation draws from the same seedable stream as everything else.
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint64())
	}
	return len(p), nil
}

// IDAllocator produces 128-bit random identifiers for every synthesized row.
// Identifiers are UUIDv4 strings; with a seeded source the allocation sequence
// is fully reproducible.
type IDAllocator struct {
	reader randReader
}

// NewIDAllocator creates an allocator backed by the given random source.
func NewIDAllocator(rng *rand.Rand) *IDAllocator {
	return &IDAllocator{reader: randReader{rng: rng}}
}

// NewID returns a fresh identifier.
func (a *IDAllocator) NewID() string {
	return uuid.Must(uuid.NewRandomFromReader(a.reader)).String()
}

// Token returns a short lowercase hex token of length n, used to suffix slugs
// and SKU codes so repeated names stay globally unique.
func (a *IDAllocator) Token(n int) string {
	s := strings.ReplaceAll(a.NewID(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
