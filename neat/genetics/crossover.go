package genetics

import "math/rand"

// Crossover produces a new child genome from parents a and b (§4.7). Common edges inherit their
// weight and enabled flag from a coin flip between the parents (subject to disableConnectionRate
// forcing a disabled gene when either parent's copy is disabled); uncommon edges of each parent
// are independently included by a coin flip. Neither parent is mutated.
func Crossover(rng *rand.Rand, a, b *Genome, childId int, disableConnectionRate float64, reg *InnovationRegistry) *Genome {
	set := partitionEdges(a, b)

	n := len(set.commonA) + len(set.uncommonA) + len(set.uncommonB)
	directions := make([]Direction, 0, n)
	weights := make([]float64, 0, n)
	enabled := make([]bool, 0, n)

	for k := range set.commonA {
		ia, ib := set.commonA[k], set.commonB[k]
		d := a.Directions[ia]

		var w float64
		var e bool
		if rng.Intn(2) == 0 {
			w, e = a.Weights[ia], a.Enabled[ia]
		} else {
			w, e = b.Weights[ib], b.Enabled[ib]
		}
		if !a.Enabled[ia] || !b.Enabled[ib] {
			if rng.Float64() < disableConnectionRate {
				e = false
			}
		}

		directions = append(directions, d)
		weights = append(weights, w)
		enabled = append(enabled, e)
	}

	for _, i := range set.uncommonA {
		if rng.Intn(2) == 0 {
			directions = append(directions, a.Directions[i])
			weights = append(weights, a.Weights[i])
			enabled = append(enabled, a.Enabled[i])
		}
	}
	for _, i := range set.uncommonB {
		if rng.Intn(2) == 0 {
			directions = append(directions, b.Directions[i])
			weights = append(weights, b.Weights[i])
			enabled = append(enabled, b.Enabled[i])
		}
	}

	for _, d := range directions {
		reg.ConnectionID(d.Src(), d.Dst())
	}

	return NewGenome(childId, directions, weights, enabled)
}
