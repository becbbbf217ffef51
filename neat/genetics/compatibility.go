package genetics

import "math"

// edgeSet partitions two genomes' genes into common edges (same direction present in both) and
// the two uncommon sets (present in only one side), as required by GeneticDistance.
type edgeSet struct {
	commonA, commonB   []int // gene indices into a/b respectively, paired by position
	uncommonA          []int // gene indices into a with no counterpart in b
	uncommonB          []int // gene indices into b with no counterpart in a
}

func partitionEdges(a, b *Genome) edgeSet {
	bIndex := make(map[Direction]int, len(b.Directions))
	for j, d := range b.Directions {
		bIndex[d] = j
	}

	var set edgeSet
	matchedB := make(map[int]bool, len(b.Directions))
	for i, d := range a.Directions {
		if j, ok := bIndex[d]; ok {
			set.commonA = append(set.commonA, i)
			set.commonB = append(set.commonB, j)
			matchedB[j] = true
		} else {
			set.uncommonA = append(set.uncommonA, i)
		}
	}
	for j := range b.Directions {
		if !matchedB[j] {
			set.uncommonB = append(set.uncommonB, j)
		}
	}
	return set
}

// GeneticDistance computes the compatibility distance between genomes a and b (§4.4). reg
// supplies the connection-innovation IDs used to split uncommon edges into disjoint vs excess.
func GeneticDistance(a, b *Genome, reg *InnovationRegistry, c1, c2, c3 float64, largeGenomeSize int) float64 {
	set := partitionEdges(a, b)

	weightDiffSum := 0.0
	for k := range set.commonA {
		wa := a.Weights[set.commonA[k]]
		wb := b.Weights[set.commonB[k]]
		weightDiffSum += math.Abs(wa - wb)
	}
	W := 0.0
	if len(set.commonA) > 0 {
		W = weightDiffSum / float64(len(set.commonA))
	}

	aInnovIDs := innovIDsOf(a, set.uncommonA, reg)
	bInnovIDs := innovIDsOf(b, set.uncommonB, reg)

	var maxA, maxB int64 = -1, -1
	for _, id := range aInnovIDs {
		if id > maxA {
			maxA = id
		}
	}
	for _, id := range bInnovIDs {
		if id > maxB {
			maxB = id
		}
	}

	disjoint, excess := 0, 0
	for _, id := range aInnovIDs {
		if maxB >= 0 && id < maxB {
			disjoint++
		} else {
			excess++
		}
	}
	for _, id := range bInnovIDs {
		if maxA >= 0 && id < maxA {
			disjoint++
		} else {
			excess++
		}
	}

	N := maxNodeID(a, b)
	if N < 1 {
		N = 1
	}

	if N < largeGenomeSize {
		return c1*float64(excess) + c2*float64(disjoint) + c3*W
	}
	n := float64(N)
	return c1*float64(excess)/n + c2*float64(disjoint)/n + c3*W
}

func innovIDsOf(g *Genome, indices []int, reg *InnovationRegistry) []int64 {
	ids := make([]int64, len(indices))
	for k, i := range indices {
		d := g.Directions[i]
		ids[k] = int64(reg.ConnectionID(d.Src(), d.Dst()))
	}
	return ids
}

func maxNodeID(genomes ...*Genome) int {
	maxId := 0
	for _, g := range genomes {
		for _, d := range g.Directions {
			if d.Src() > maxId {
				maxId = d.Src()
			}
			if d.Dst() > maxId {
				maxId = d.Dst()
			}
		}
	}
	return maxId
}
