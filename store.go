package tinsel

import (
	"math/rand/v2"
)

// Store owns every particle. Needles and decorations live in two contiguous
// slices; decorations are ordered by shape so each shape occupies one
// contiguous run.
type Store struct {
	needles     []Particle
	decorations []Particle
	// shapeStart[s] is the first decoration index of shape s;
	// shapeStart[shapeCount] == len(decorations).
	shapeStart [shapeCount + 1]int
	seed       uint64
}

// NewStore validates cfg and generates the full particle set. The result is
// deterministic for a non-zero cfg.Seed.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	tree := TreeShapeFromConfig(&cfg)

	s := &Store{
		needles:     make([]Particle, cfg.NeedleCount),
		decorations: make([]Particle, 0, cfg.DecorationCount),
		seed:        seed,
	}
	for i := range s.needles {
		s.needles[i] = newNeedle(i, &cfg, tree, rng)
	}
	for si, shape := range Shapes {
		s.shapeStart[si] = len(s.decorations)
		n := shapeShare(cfg.DecorationCount, si)
		for j := 0; j < n; j++ {
			id := len(s.decorations)
			s.decorations = append(s.decorations, newDecoration(id, shape, &cfg, tree, rng))
		}
	}
	s.shapeStart[shapeCount] = len(s.decorations)
	return s, nil
}

// shapeShare returns how many of total decorations go to the shape at index
// si. The remainder is handed out one each starting from the first shape.
func shapeShare(total, si int) int {
	n := total / shapeCount
	if si < total%shapeCount {
		n++
	}
	return n
}

// Seed returns the seed the store was generated from.
func (s *Store) Seed() uint64 {
	return s.seed
}

// Needles returns the needle particles. The slice aliases the store.
func (s *Store) Needles() []Particle {
	return s.needles
}

// Decorations returns every decoration, grouped by shape. The slice aliases
// the store.
func (s *Store) Decorations() []Particle {
	return s.decorations
}

// DecorationsOf returns the contiguous run of decorations with the given
// shape.
func (s *Store) DecorationsOf(shape Shape) []Particle {
	if int(shape) >= shapeCount {
		return nil
	}
	return s.decorations[s.shapeStart[shape]:s.shapeStart[shape+1]]
}

// Len returns the total particle count.
func (s *Store) Len() int {
	return len(s.needles) + len(s.decorations)
}

// Reset moves every particle back to its scatter target and clears spin and
// noise state.
func (s *Store) Reset() {
	for i := range s.needles {
		p := &s.needles[i]
		p.Current = p.ScatterTarget
		p.Offset = Vec3{}
	}
	for i := range s.decorations {
		p := &s.decorations[i]
		p.Current = p.ScatterTarget
		p.Offset = Vec3{}
		p.Phase = Vec3{}
	}
}
