package genetics

import (
	"math"
	"math/rand"

	neatmath "github.com/neatkit/neat/neat/math"
)

// ReproductionRates groups every configuration value the Reproducer consults (§4.6, §4.9).
type ReproductionRates struct {
	LargeSpeciesSize      int
	CrossoverRate         float64
	InterspeciesMateRate  float64
	DisableConnectionRate float64
	Mutation              MutationRates
}

// Reproducer turns one generation's scored, speciated population into the next generation's
// population (§4.6). It is the only component that allocates fresh genome IDs and the only
// consumer of the innovation registry's write path.
type Reproducer struct {
	Rates ReproductionRates
	Base  BaseNodes
}

// Reproduce builds the next population of len(pop) genomes. scores are raw per-genome fitness
// values, speciesIDs the species assignment from the Speciator, and sharedProbs the (possibly
// nil) output of FitnessSharer.Normalise — nil signals the zero-sum fallback to uniform sampling
// across the whole population. nextID is called once per newly created genome to obtain its ID.
func (r Reproducer) Reproduce(rng *rand.Rand, pop []*Genome, scores []float64, speciesIDs []int, sharedProbs []float64, reg *InnovationRegistry, nextID func() int) []*Genome {
	n := len(pop)
	bySpecies := groupBySpecies(pop, scores, speciesIDs, sharedProbs)
	quota := allocateQuota(rng, bySpecies, n)

	newPop := make([]*Genome, 0, n)
	for _, s := range sortedSpeciesKeys(bySpecies) {
		members := bySpecies[s]
		q := quota[s]
		if q <= 0 {
			continue
		}

		if q > r.Rates.LargeSpeciesSize {
			newPop = append(newPop, eliteOf(members).genome.Copy(nextID()))
			q--
		}

		for i := 0; i < q; i++ {
			newPop = append(newPop, r.spawnOffspring(rng, s, members, bySpecies, sharedProbs == nil, reg, nextID()))
		}
	}
	return newPop
}

type speciesMember struct {
	genome      *Genome
	score       float64 // raw fitness, used for quota allocation and elitism
	selectScore float64 // shared-fitness sampling weight (raw score under the uniform fallback)
	prob        float64 // in-species renormalised sampling probability, derived from selectScore
}

func groupBySpecies(pop []*Genome, scores []float64, speciesIDs []int, sharedProbs []float64) map[int][]speciesMember {
	bySpecies := make(map[int][]speciesMember)
	for i, g := range pop {
		selectScore := scores[i]
		if sharedProbs != nil {
			selectScore = sharedProbs[i]
		}
		s := speciesIDs[i]
		bySpecies[s] = append(bySpecies[s], speciesMember{genome: g, score: scores[i], selectScore: selectScore})
	}
	for s, members := range bySpecies {
		sum := 0.0
		for i := range members {
			sum += members[i].selectScore
		}
		for i := range members {
			if sum > 0 {
				members[i].prob = members[i].selectScore / sum
			}
		}
		bySpecies[s] = members
	}
	return bySpecies
}

func sortedSpeciesKeys(bySpecies map[int][]speciesMember) []int {
	keys := make([]int, 0, len(bySpecies))
	for s := range bySpecies {
		keys = append(keys, s)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

const quotaEpsilon = 1e-9

// allocateQuota implements §4.6 step 1: a ceil-based proportional allocation followed by a
// randomised +/-1 adjustment loop until the total exactly matches n.
func allocateQuota(rng *rand.Rand, bySpecies map[int][]speciesMember, n int) map[int]int {
	totalScore := 0.0
	speciesScore := make(map[int]float64, len(bySpecies))
	for s, members := range bySpecies {
		sum := 0.0
		for _, m := range members {
			sum += m.score
		}
		speciesScore[s] = sum
		totalScore += sum
	}

	quota := make(map[int]int, len(bySpecies))
	for s, sum := range speciesScore {
		quota[s] = int(math.Ceil(sum / (totalScore + quotaEpsilon) * float64(n)))
	}

	keys := sortedSpeciesKeys(bySpecies)
	total := func() int {
		t := 0
		for _, q := range quota {
			t += q
		}
		return t
	}

	for total() != n {
		candidates := make([]int, 0, len(keys))
		for _, s := range keys {
			if quota[s] > 0 {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			// Every quota has bottomed out at zero; hand the remainder to an arbitrary
			// species so the loop terminates rather than spinning forever.
			s := keys[rng.Intn(len(keys))]
			if total() < n {
				quota[s]++
			} else {
				break
			}
			continue
		}

		s := candidates[rng.Intn(len(candidates))]
		if total() < n {
			quota[s]++
		} else {
			quota[s]--
		}
	}
	return quota
}

func eliteOf(members []speciesMember) speciesMember {
	best := members[0]
	for _, m := range members[1:] {
		if m.score > best.score {
			best = m
		}
	}
	return best
}

func (r Reproducer) spawnOffspring(rng *rand.Rand, speciesID int, members []speciesMember, bySpecies map[int][]speciesMember, uniformFallback bool, reg *InnovationRegistry, childID int) *Genome {
	parentA := selectParent(rng, members, uniformFallback)

	var child *Genome
	if rng.Float64() < r.Rates.CrossoverRate {
		parentB := r.selectCrossPartner(rng, speciesID, members, bySpecies, uniformFallback)
		child = Crossover(rng, parentA, parentB, childID, r.Rates.DisableConnectionRate, reg)
	} else {
		child = parentA.Copy(childID)
	}

	Mutate(rng, child, r.Base, reg, r.Rates.Mutation)
	return child
}

func (r Reproducer) selectCrossPartner(rng *rand.Rand, speciesID int, members []speciesMember, bySpecies map[int][]speciesMember, uniformFallback bool) *Genome {
	if len(bySpecies) > 1 && rng.Float64() < r.Rates.InterspeciesMateRate {
		return selectParent(rng, pooledOutside(speciesID, bySpecies), uniformFallback)
	}
	return selectParent(rng, members, uniformFallback)
}

func pooledOutside(excludeSpecies int, bySpecies map[int][]speciesMember) []speciesMember {
	var pool []speciesMember
	for _, s := range sortedSpeciesKeys(bySpecies) {
		if s == excludeSpecies {
			continue
		}
		pool = append(pool, bySpecies[s]...)
	}
	sum := 0.0
	for _, m := range pool {
		sum += m.selectScore
	}
	if sum > 0 {
		for i := range pool {
			pool[i].prob = pool[i].selectScore / sum
		}
	}
	return pool
}

func selectParent(rng *rand.Rand, members []speciesMember, uniformFallback bool) *Genome {
	if uniformFallback || len(members) == 1 {
		return members[rng.Intn(len(members))].genome
	}
	probs := make([]float64, len(members))
	for i, m := range members {
		probs[i] = m.prob
	}
	idx := neatmath.RouletteThrow(rng, probs)
	if idx < 0 {
		idx = rng.Intn(len(members))
	}
	return members[idx].genome
}
