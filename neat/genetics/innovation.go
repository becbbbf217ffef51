package genetics

import "sync"

// pair is a (src, dst) key used for both connection and split innovation lookups.
type pair [2]int

// InnovationRegistry is the single global record of every connection and split innovation ever
// created during a run (§4 GLOSSARY, §8 invariants 3 and 4). It is consulted, never rolled back: once a
// connection between src and dst or a split of (src, dst) has been assigned an ID, every future
// genome that creates the same structure reuses that ID. The registry is owned by the sequential
// reproduction step of a single generation; concurrent genome evaluation never touches it, so the
// mutex below only guards against accidental concurrent mutation, not against expected contention.
type InnovationRegistry struct {
	mu sync.Mutex

	connIDs    map[pair]uint32
	nextConnID uint32

	splitNodes       map[pair]int
	nodeIsKnownSplit map[int]bool
	nextNodeID       int
}

// NewInnovationRegistry creates an empty registry. nextNodeID is seeded one past the highest
// output node ID, which is the ID the first split receives. Input and bias IDs are not taken
// into account, so the first split node is a fresh ID only when no input or bias ID exceeds
// the highest output ID.
func NewInnovationRegistry(base BaseNodes) *InnovationRegistry {
	return &InnovationRegistry{
		connIDs:          make(map[pair]uint32),
		splitNodes:       make(map[pair]int),
		nodeIsKnownSplit: make(map[int]bool),
		nextNodeID:       base.MaxOutputNode() + 1,
	}
}

// ConnectionID returns the innovation ID of the connection (src, dst), assigning a fresh one if
// this exact connection has never been seen before in this run.
func (r *InnovationRegistry) ConnectionID(src, dst int) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{src, dst}
	if id, ok := r.connIDs[key]; ok {
		return id
	}
	id := r.nextConnID
	r.nextConnID++
	r.connIDs[key] = id
	return id
}

// ContainsConnection reports whether (src, dst) has already been assigned an innovation ID.
func (r *InnovationRegistry) ContainsConnection(src, dst int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.connIDs[pair{src, dst}]
	return ok
}

// RecordSplit returns the ID of the node created by splitting the connection (src, dst),
// allocating a fresh node ID the first time this exact connection is split. Every later split of
// the same original connection reuses the same new node, per the split-connection mutation's
// contract (§4.8).
func (r *InnovationRegistry) RecordSplit(src, dst int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{src, dst}
	if id, ok := r.splitNodes[key]; ok {
		return id
	}
	id := r.nextNodeID
	r.nextNodeID++
	r.splitNodes[key] = id
	r.nodeIsKnownSplit[id] = true
	return id
}

// IsSplitNode reports whether nodeId was created by a previously recorded split.
func (r *InnovationRegistry) IsSplitNode(nodeId int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.nodeIsKnownSplit[nodeId]
}

