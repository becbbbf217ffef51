package genetics

import (
	"math/rand"
	"sort"
)

// MutationRates groups the probabilities that drive each mutation step (§4.8, §4.9).
type MutationRates struct {
	PermutationRate     float64
	RandomWeightRate    float64
	NewConnectionRate   float64
	SplitConnectionRate float64
}

// Mutate applies the four mutation steps to g in place, in the fixed order required by §4.8:
// weight perturbation, weight reset, add-connection, split-connection. Any step may leave the
// genome unchanged. base is the genome's fixed input/output/bias node set; reg records any newly
// introduced connection or split so the rest of the population can recognise the same innovation.
func Mutate(rng *rand.Rand, g *Genome, base BaseNodes, reg *InnovationRegistry, rates MutationRates) {
	perturbWeights(rng, g, rates.PermutationRate)
	resetWeights(rng, g, rates.RandomWeightRate)
	maybeAddConnection(rng, g, base, reg, rates.NewConnectionRate)
	maybeSplitConnection(rng, g, reg, rates.SplitConnectionRate)
}

func perturbWeights(rng *rand.Rand, g *Genome, permutationRate float64) {
	half := permutationRate / 2
	for i := range g.Weights {
		r := rng.Float64()
		switch {
		case r < half:
			g.Weights[i] *= 1.01
		case r < permutationRate:
			g.Weights[i] *= 0.99
		}
	}
}

func resetWeights(rng *rand.Rand, g *Genome, randomWeightRate float64) {
	for i := range g.Weights {
		if rng.Float64() < randomWeightRate {
			g.Weights[i] = rng.NormFloat64()
		}
	}
}

func maybeAddConnection(rng *rand.Rand, g *Genome, base BaseNodes, reg *InnovationRegistry, newConnectionRate float64) {
	if rng.Float64() >= newConnectionRate {
		return
	}

	nodes := g.Nodes(base)
	v := make([]int, 0, len(nodes))
	for n := range nodes {
		v = append(v, n)
	}
	sort.Ints(v)

	vDst := make([]int, 0, len(v))
	for _, n := range v {
		if !base.IsInput(n) && !base.IsBias(n) {
			vDst = append(vDst, n)
		}
	}

	var candidates []Direction
	for _, src := range v {
		for _, dst := range vDst {
			d := Direction{src, dst}
			if g.IndexOf(d) == -1 {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	chosen := candidates[rng.Intn(len(candidates))]
	reg.ConnectionID(chosen.Src(), chosen.Dst())
	g.Directions = append(g.Directions, chosen)
	g.Weights = append(g.Weights, rng.NormFloat64()*0.1)
	g.Enabled = append(g.Enabled, true)
}

func maybeSplitConnection(rng *rand.Rand, g *Genome, reg *InnovationRegistry, splitConnectionRate float64) {
	if rng.Float64() >= splitConnectionRate {
		return
	}
	if len(g.Directions) == 0 {
		return
	}

	idx := rng.Intn(len(g.Directions))
	splitEdgeAt(g, idx, reg)
}

// splitEdgeAt splits the gene at idx, skipping the mutation if the registry's split-node for
// this edge already exists somewhere in g.
func splitEdgeAt(g *Genome, idx int, reg *InnovationRegistry) {
	d := g.Directions[idx]
	newNode := reg.RecordSplit(d.Src(), d.Dst())
	if g.HasNode(newNode) {
		return
	}

	g.Enabled[idx] = false

	in := Direction{d.Src(), newNode}
	out := Direction{newNode, d.Dst()}
	reg.ConnectionID(in.Src(), in.Dst())
	reg.ConnectionID(out.Src(), out.Dst())

	g.Directions = append(g.Directions, in, out)
	g.Weights = append(g.Weights, 1.0, g.Weights[idx])
	g.Enabled = append(g.Enabled, true, true)
}
