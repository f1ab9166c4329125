package rng

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is a single Mersenne-Twister stream exposing the uniform real
// and integer generators other packages sample from. The zero value is
// not usable; construct with NewStream.
type Stream struct {
	src *Source
}

// NewStream constructs a Stream seeded with seed.
func NewStream(seed int64) *Stream {
	return &Stream{src: NewSource(seed)}
}

// Seed re-seeds the stream, resetting its call sequence.
func (s *Stream) Seed(seed int64) { s.src.Seed(uint64(seed)) }

// GenerateReal draws a sample from the uniform distribution on [lo, hi).
func (s *Stream) GenerateReal(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	u := distuv.Uniform{Min: lo, Max: hi, Src: s.src}
	return u.Rand()
}

// GenerateInt draws a half-open uniform integer sample on [lo, hi).
func (s *Stream) GenerateInt(lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("rng: generate_int requires hi > lo, got lo=%d hi=%d", lo, hi))
	}
	span := uint64(hi - lo)
	return lo + int(uint64(s.src.Int63())%span)
}

// Source exposes the underlying Mersenne-Twister source, for callers
// that want to parameterise their own distribution sampling by an
// explicit stream reference rather than the package default.
func (s *Stream) Source() *Source { return s.src }

var defaultStream = NewStream(1)

// Default returns the package-wide default Stream, kept for convenience
// only; callers needing reproducibility under parallelism should
// construct and thread their own Stream.
func Default() *Stream { return defaultStream }

// Seed re-seeds the default Stream.
func Seed(seed int64) { defaultStream.Seed(seed) }

// GenerateReal draws from the default Stream.
func GenerateReal(lo, hi float64) float64 { return defaultStream.GenerateReal(lo, hi) }

// GenerateInt draws from the default Stream.
func GenerateInt(lo, hi int) int { return defaultStream.GenerateInt(lo, hi) }
