package genetics

import "github.com/pkg/errors"

// Population is the full set of genomes under evolution in one generation, together with the
// process-wide state that must survive across generations: the innovation registry, the species
// representative list, and the monotonic genome ID counter.
type Population struct {
	// Genomes holds the current generation's genomes, in population order.
	Genomes []*Genome
	// Base is the fixed input/output/bias node set shared by every genome.
	Base BaseNodes
	// Registry is the run-wide innovation registry; it is never reset between generations.
	Registry *InnovationRegistry
	// Reps is the species representative set carried from the previous Speciate call.
	Reps []*Genome

	nextGenomeID int
}

// NewPopulation creates an empty population over base, seeded with a fresh innovation registry.
func NewPopulation(base BaseNodes) *Population {
	return &Population{Base: base, Registry: NewInnovationRegistry(base)}
}

// NextGenomeID returns a fresh, monotonically increasing genome ID.
func (p *Population) NextGenomeID() int {
	id := p.nextGenomeID
	p.nextGenomeID++
	return id
}

// Verify checks that every genome in the population satisfies its structural invariants (§8
// invariant 2). A failure here indicates a bug in speciation, reproduction, or mutation.
func (p *Population) Verify() error {
	for _, g := range p.Genomes {
		if err := g.Validate(p.Base, p.Registry); err != nil {
			return errors.Wrapf(err, "population verification failed")
		}
	}
	return nil
}

// Size returns the number of genomes in the population.
func (p *Population) Size() int { return len(p.Genomes) }
