// Package network evaluates genomes produced by the genetics package into output activations,
// via a cycle-safe recursive feed-forward pass.
package network

import (
	"github.com/neatkit/neat/neat/genetics"
	neatmath "github.com/neatkit/neat/neat/math"
)

// edgeKey identifies a single gene so it can be recorded in the path-local ignore set.
type edgeKey genetics.Direction

// FeedForward evaluates genome against inputs and returns one activation per output node, in the
// order given by base.Outputs (§4.1). len(inputs) must equal len(base.Inputs).
func FeedForward(genome *genetics.Genome, base genetics.BaseNodes, inputs []float64) []float64 {
	e := &evaluator{genome: genome, base: base, inputs: inputs}

	outputs := make([]float64, len(base.Outputs))
	for i, n := range base.Outputs {
		outputs[i] = e.nodeOut(n, nil)
	}
	return outputs
}

type evaluator struct {
	genome *genetics.Genome
	base   genetics.BaseNodes
	inputs []float64
}

// nodeOut computes the activation of node n, given the set of edges already traversed on the
// current call path. A cycle is broken the second time an edge would be traversed again: that
// edge simply contributes nothing to its consumer's sum (§4.1 cycle policy).
func (e *evaluator) nodeOut(n int, ignored map[edgeKey]bool) float64 {
	if idx := e.base.InputIndex(n); idx >= 0 {
		return e.inputs[idx]
	}
	if e.base.IsBias(n) {
		return 1.0
	}

	sum := 0.0
	for i, d := range e.genome.Directions {
		if d.Dst() != n || !e.genome.Enabled[i] {
			continue
		}
		key := edgeKey(d)
		if ignored[key] {
			continue
		}

		nextIgnored := make(map[edgeKey]bool, len(ignored)+1)
		for k := range ignored {
			nextIgnored[k] = true
		}
		nextIgnored[key] = true

		sum += e.genome.Weights[i] * e.nodeOut(d.Src(), nextIgnored)
	}
	return neatmath.Sigmoid(sum)
}

// Argmax returns the index of the largest element in v, breaking ties toward the lowest index
// (§4.1 output transform). Returns -1 if v is empty.
func Argmax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
