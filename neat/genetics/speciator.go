package genetics

// Speciator assigns each genome in a population a species index by genetic distance to a carried
// forward set of representatives (§4.4).
type Speciator struct {
	CompatThreshold float64
	ExcessCoeff     float64
	DisjointCoeff   float64
	WeightDiffCoeff float64
	LargeGenomeSize int
}

// Speciate assigns a species index to every genome in pop, in population order. prevReps is the
// representative set carried over from the previous generation (nil for the first generation).
// It returns the species index of each genome, parallel to pop, and the updated representative
// set to carry into the next generation.
func (s Speciator) Speciate(pop []*Genome, prevReps []*Genome, reg *InnovationRegistry) (speciesIDs []int, reps []*Genome) {
	reps = make([]*Genome, len(prevReps))
	copy(reps, prevReps)

	speciesIDs = make([]int, len(pop))
	for i, g := range pop {
		idx := -1
		for r, rep := range reps {
			d := GeneticDistance(g, rep, reg, s.ExcessCoeff, s.DisjointCoeff, s.WeightDiffCoeff, s.LargeGenomeSize)
			if d < s.CompatThreshold {
				idx = r
				break
			}
		}
		if idx == -1 {
			reps = append(reps, g)
			idx = len(reps) - 1
		}
		speciesIDs[i] = idx
	}
	return speciesIDs, reps
}
