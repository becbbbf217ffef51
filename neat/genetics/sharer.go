package genetics

// FitnessSharer implements explicit fitness sharing (§4.5): a genome's shared score is its raw
// score divided by the size of its species, which penalises large species and lets small,
// novel-structure species compete on an even footing.
type FitnessSharer struct{}

// Normalise computes renormalised shared-fitness sampling probabilities from raw scores and each
// genome's species assignment. Returns nil if the shared scores sum to zero, signalling that the
// caller must fall back to uniform sampling (§4.5, §8).
func (FitnessSharer) Normalise(scores []float64, speciesIDs []int) []float64 {
	size := make(map[int]int, len(speciesIDs))
	for _, s := range speciesIDs {
		size[s]++
	}

	shared := make([]float64, len(scores))
	sum := 0.0
	for i, score := range scores {
		shared[i] = score / float64(size[speciesIDs[i]])
		sum += shared[i]
	}
	if sum == 0 {
		return nil
	}

	probs := make([]float64, len(shared))
	for i, v := range shared {
		probs[i] = v / sum
	}
	return probs
}
