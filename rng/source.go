// Package rng is the module's only source of non-determinism: a
// process-wide stream of uniform reals and integers, deterministic when
// seeded.
package rng

// mtN, mtM and the tempering constants below are the standard MT19937
// parameters; this is a direct implementation of the published
// algorithm, not adapted from any file in the retrieved corpus, since
// no Mersenne Twister source exists there (see DESIGN.md).
const (
	mtN          = 624
	mtM          = 397
	matrixA      = 0x9908b0df
	upperMask    = 0x80000000
	lowerMask    = 0x7fffffff
	temperingB   = 0x9d2c5680
	temperingC   = 0xefc60000
)

// Source is a 32-bit Mersenne-Twister-class PRNG. Given the same seed,
// the same sequence of calls produces the same sequence of outputs
// within this implementation; it is not safe for concurrent use.
type Source struct {
	state [mtN]uint32
	index int
}

// NewSource constructs a Source seeded with seed.
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(uint64(seed))
	return s
}

// Seed re-initialises the generator's state from seed. Its signature is
// fixed at uint64, rather than the int64 every other seed-taking
// function in this package accepts, because it is also what satisfies
// golang.org/x/exp/rand.Source's Seed method.
func (s *Source) Seed(seed uint64) {
	s.state[0] = uint32(seed)
	for i := 1; i < mtN; i++ {
		prev := s.state[i-1]
		s.state[i] = uint32(1812433253)*(prev^(prev>>30)) + uint32(i)
	}
	s.index = mtN
}

// nextUint32 returns the next raw 32-bit output, regenerating the state
// array every mtN draws.
func (s *Source) nextUint32() uint32 {
	if s.index >= mtN {
		s.generate()
	}
	y := s.state[s.index]
	s.index++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// generate refills the state array with the next mtN untempered words.
func (s *Source) generate() {
	for i := 0; i < mtN; i++ {
		y := (s.state[i] & upperMask) | (s.state[(i+1)%mtN] & lowerMask)
		next := s.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		s.state[i] = next
	}
	s.index = 0
}

// Int63 packs two raw 32-bit draws into a non-negative 63-bit value, for
// callers (such as Stream.GenerateInt) that want a wide integer draw
// without going through Uint64.
func (s *Source) Int63() int64 {
	hi := int64(s.nextUint32())
	lo := int64(s.nextUint32())
	return hi<<31 | lo>>1
}

// Uint32 returns one raw tempered 32-bit output.
func (s *Source) Uint32() uint32 { return s.nextUint32() }

// Uint64 packs two raw 32-bit draws into a 64-bit value. Together with
// Seed, this is what satisfies golang.org/x/exp/rand.Source, the
// interface gonum.org/v1/gonum/stat/distuv.Uniform.Src expects.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.nextUint32())
	lo := uint64(s.nextUint32())
	return hi<<32 | lo
}
