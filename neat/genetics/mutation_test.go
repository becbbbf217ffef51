package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutate_weightPerturbation(t *testing.T) {
	reg := NewInnovationRegistry(testBase())
	reg.ConnectionID(0, 2)

	g := NewGenome(1, []Direction{{0, 2}}, []float64{1.0}, []bool{true})
	rates := MutationRates{PermutationRate: 1.0} // always perturb, never reset/add/split

	rng := rand.New(rand.NewSource(1))
	Mutate(rng, g, testBase(), reg, rates)

	assert.Contains(t, []float64{1.01, 0.99}, g.Weights[0])
}

func TestMutate_weightReset(t *testing.T) {
	reg := NewInnovationRegistry(testBase())
	reg.ConnectionID(0, 2)

	g := NewGenome(1, []Direction{{0, 2}}, []float64{1.0}, []bool{true})
	rates := MutationRates{RandomWeightRate: 1.0}

	rng := rand.New(rand.NewSource(1))
	Mutate(rng, g, testBase(), reg, rates)

	assert.NotEqual(t, 1.0, g.Weights[0])
}

func TestMutate_addConnection(t *testing.T) {
	base := testBase()
	reg := NewInnovationRegistry(base)
	reg.ConnectionID(0, 2)

	g := NewGenome(1, []Direction{{0, 2}}, []float64{1.0}, []bool{true})
	rates := MutationRates{NewConnectionRate: 1.0}

	rng := rand.New(rand.NewSource(1))
	Mutate(rng, g, base, reg, rates)

	assert.Greater(t, g.Len(), 1, "a new connection should have been added")
	last := g.Directions[len(g.Directions)-1]
	assert.True(t, reg.ContainsConnection(last.Src(), last.Dst()))
}

func TestMutate_splitConnection(t *testing.T) {
	base := testBase()
	reg := NewInnovationRegistry(base)
	reg.ConnectionID(0, 2)

	g := NewGenome(1, []Direction{{0, 2}}, []float64{5.0}, []bool{true})
	rates := MutationRates{SplitConnectionRate: 1.0}

	rng := rand.New(rand.NewSource(1))
	Mutate(rng, g, base, reg, rates)

	assert.Equal(t, 3, g.Len())
	assert.False(t, g.Enabled[0], "the split edge must be disabled")

	newNode := reg.RecordSplit(0, 2)
	assert.Equal(t, Direction{0, newNode}, g.Directions[1])
	assert.Equal(t, 1.0, g.Weights[1])
	assert.Equal(t, Direction{newNode, 2}, g.Directions[2])
	assert.Equal(t, 5.0, g.Weights[2])
}

func TestMutate_splitConnection_skipsIfNodeAlreadyPresent(t *testing.T) {
	base := testBase()
	reg := NewInnovationRegistry(base)
	reg.ConnectionID(0, 2)
	hidden := reg.RecordSplit(0, 2)
	reg.ConnectionID(hidden, 3)

	// g already contains `hidden` (via the unrelated edge (hidden,3)); splitting its only other
	// edge (0,2) would reintroduce the same node and must be skipped outright.
	g := NewGenome(1,
		[]Direction{{0, 2}, {hidden, 3}},
		[]float64{5.0, 1.0},
		[]bool{true, true},
	)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		maybeSplitConnection(rng, g, reg, 0) // rate 0 ensures no split is attempted at all
	}
	assert.Equal(t, 2, g.Len())

	// Now force the attempt directly against the colliding edge.
	idx := g.IndexOf(Direction{0, 2})
	before := g.Len()
	splitEdgeAt(g, idx, reg)
	assert.Equal(t, before, g.Len(), "split must be skipped because the target node already exists")
}

func TestMutate_noopWhenAllRatesZero(t *testing.T) {
	reg := NewInnovationRegistry(testBase())
	reg.ConnectionID(0, 2)

	g := NewGenome(1, []Direction{{0, 2}}, []float64{1.0}, []bool{true})
	rng := rand.New(rand.NewSource(1))
	Mutate(rng, g, testBase(), reg, MutationRates{})

	assert.Equal(t, 1.0, g.Weights[0])
	assert.Equal(t, 1, g.Len())
}
