// Package genetics implements the genome representation, the innovation registry, and the
// genetic operators (speciation, fitness sharing, crossover, mutation, reproduction) that
// together produce each new generation of the population.
package genetics

import (
	"github.com/pkg/errors"
)

// Direction is a single directed connection between two node IDs: (src, dst).
type Direction [2]int

// Src returns the source node ID of the direction.
func (d Direction) Src() int { return d[0] }

// Dst returns the destination node ID of the direction.
func (d Direction) Dst() int { return d[1] }

// BaseNodes is the fixed node set shared by every genome in a population: the ordered input
// nodes, the ordered output nodes, and the single bias node. It never changes during a run.
type BaseNodes struct {
	// Inputs holds the ordered input node IDs; inputs[k] is read as the output of Inputs[k].
	Inputs []int
	// Outputs holds the ordered output node IDs.
	Outputs []int
	// Bias is the ID of the bias node, whose output is always 1.0.
	Bias int
}

// IsInput reports whether nodeId is one of the fixed input nodes.
func (b BaseNodes) IsInput(nodeId int) bool {
	for _, n := range b.Inputs {
		if n == nodeId {
			return true
		}
	}
	return false
}

// IsBias reports whether nodeId is the bias node.
func (b BaseNodes) IsBias(nodeId int) bool {
	return nodeId == b.Bias
}

// InputIndex returns the position of nodeId within Inputs, or -1 if it is not an input node.
func (b BaseNodes) InputIndex(nodeId int) int {
	for i, n := range b.Inputs {
		if n == nodeId {
			return i
		}
	}
	return -1
}

// MaxOutputNode returns the largest output node ID. Used by InnovationRegistry to allocate the
// first split-created node ID.
func (b BaseNodes) MaxOutputNode() int {
	maxId := 0
	for _, n := range b.Outputs {
		if n > maxId {
			maxId = n
		}
	}
	return maxId
}

// Genome is a struct-of-arrays description of one candidate network: the direction, weight, and
// enabled-flag of each connection gene, in gene order. Order is not sorted and duplicate
// directions are forbidden (see Validate).
type Genome struct {
	// Id uniquely identifies this genome within its population/generation, for diagnostics.
	Id int
	// Directions holds the (src, dst) pair of every connection gene, in gene order.
	Directions []Direction
	// Weights holds the weight of every connection gene, parallel to Directions.
	Weights []float64
	// Enabled holds the enabled flag of every connection gene, parallel to Directions.
	Enabled []bool
}

// NewGenome creates a genome from the given struct-of-arrays connection data. The three slices
// must have equal length; ownership of the slices passes to the genome.
func NewGenome(id int, directions []Direction, weights []float64, enabled []bool) *Genome {
	return &Genome{Id: id, Directions: directions, Weights: weights, Enabled: enabled}
}

// Len returns the number of connection genes in the genome.
func (g *Genome) Len() int { return len(g.Directions) }

// Copy returns a deep copy of the genome with the given new ID.
func (g *Genome) Copy(id int) *Genome {
	directions := make([]Direction, len(g.Directions))
	copy(directions, g.Directions)
	weights := make([]float64, len(g.Weights))
	copy(weights, g.Weights)
	enabled := make([]bool, len(g.Enabled))
	copy(enabled, g.Enabled)
	return NewGenome(id, directions, weights, enabled)
}

// IndexOf returns the gene index of direction d, or -1 if the genome has no such connection.
func (g *Genome) IndexOf(d Direction) int {
	for i, gd := range g.Directions {
		if gd == d {
			return i
		}
	}
	return -1
}

// HasNode reports whether nodeId appears as the src or dst of any gene.
func (g *Genome) HasNode(nodeId int) bool {
	for _, d := range g.Directions {
		if d.Src() == nodeId || d.Dst() == nodeId {
			return true
		}
	}
	return false
}

// Nodes returns the set of every node ID referenced by this genome's genes, unioned with base.
func (g *Genome) Nodes(base BaseNodes) map[int]bool {
	nodes := make(map[int]bool, len(g.Directions)*2+len(base.Inputs)+len(base.Outputs)+1)
	for _, d := range g.Directions {
		nodes[d.Src()] = true
		nodes[d.Dst()] = true
	}
	for _, n := range base.Inputs {
		nodes[n] = true
	}
	for _, n := range base.Outputs {
		nodes[n] = true
	}
	nodes[base.Bias] = true
	return nodes
}

// Validate checks the structural invariants required of every genome (§3, §8 invariant 2):
// no duplicate direction, no connection into an input or the bias node, and every node referenced
// by a gene is either a base node or was introduced by a recorded split innovation. A violation
// is a bug in the engine, not a recoverable condition (§7).
func (g *Genome) Validate(base BaseNodes, reg *InnovationRegistry) error {
	seen := make(map[Direction]bool, len(g.Directions))
	for i, d := range g.Directions {
		if seen[d] {
			return errors.Errorf("genome %d: duplicate connection (%d,%d) at gene %d", g.Id, d.Src(), d.Dst(), i)
		}
		seen[d] = true

		if base.IsInput(d.Dst()) || base.IsBias(d.Dst()) {
			return errors.Errorf("genome %d: connection (%d,%d) targets an input/bias node", g.Id, d.Src(), d.Dst())
		}
		if !base.IsInput(d.Src()) && !base.IsBias(d.Src()) && !isOutputOrKnown(d.Src(), base, reg) {
			return errors.Errorf("genome %d: node %d is neither a base node nor a known split product", g.Id, d.Src())
		}
		if !isOutputOrKnown(d.Dst(), base, reg) {
			return errors.Errorf("genome %d: node %d is neither a base node nor a known split product", g.Id, d.Dst())
		}
		if !reg.ContainsConnection(d.Src(), d.Dst()) {
			return errors.Errorf("genome %d: connection (%d,%d) is missing from the innovation registry", g.Id, d.Src(), d.Dst())
		}
	}
	return nil
}

func isOutputOrKnown(nodeId int, base BaseNodes, reg *InnovationRegistry) bool {
	for _, n := range base.Outputs {
		if n == nodeId {
			return true
		}
	}
	return reg.IsSplitNode(nodeId)
}
