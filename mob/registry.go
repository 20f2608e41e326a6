package mob

import "github.com/gogpu/svga3d/internal/cache"

// Registry is the keyed MOB map plus its LRU list (spec §3.2). Every mobid
// present in the map has exactly one corresponding node in the LRU list;
// Registry maintains that invariant internally.
//
// Registry is not safe for concurrent use; the command processor is
// single-threaded per virtual GPU (spec §5).
type Registry struct {
	mobs  map[uint32]*Mob
	lru   *cache.List[uint32]
	nodes map[uint32]*cache.Node[uint32]
}

// NewRegistry returns an empty MOB registry.
func NewRegistry() *Registry {
	return &Registry{
		mobs:  make(map[uint32]*Mob),
		lru:   cache.New[uint32](),
		nodes: make(map[uint32]*cache.Node[uint32]),
	}
}

// Insert registers m under m.ID, replacing any existing entry for that id.
func (r *Registry) Insert(m *Mob) {
	if old, ok := r.nodes[m.ID]; ok {
		r.lru.Remove(old)
	}
	r.mobs[m.ID] = m
	r.nodes[m.ID] = r.lru.PushFront(m.ID)
}

// Get returns the Mob for mobid and moves it to the front of the LRU
// list, or (nil, false) if absent.
func (r *Registry) Get(mobid uint32) (*Mob, bool) {
	m, ok := r.mobs[mobid]
	if !ok {
		return nil, false
	}
	r.lru.MoveToFront(r.nodes[mobid])
	return m, true
}

// Peek returns the Mob for mobid without affecting LRU order.
func (r *Registry) Peek(mobid uint32) (*Mob, bool) {
	m, ok := r.mobs[mobid]
	return m, ok
}

// Destroy removes mobid from the registry and its LRU list, returning the
// removed Mob (or nil, false if absent).
func (r *Registry) Destroy(mobid uint32) (*Mob, bool) {
	m, ok := r.mobs[mobid]
	if !ok {
		return nil, false
	}
	r.lru.Remove(r.nodes[mobid])
	delete(r.nodes, mobid)
	delete(r.mobs, mobid)
	return m, true
}

// Len returns the number of registered MOBs.
func (r *Registry) Len() int {
	return len(r.mobs)
}

// Oldest returns the least-recently-used mobid, for eviction policies.
func (r *Registry) Oldest() (uint32, bool) {
	return r.lru.Oldest()
}

// Reset destroys every MOB in the registry (device reset, spec §4.2).
func (r *Registry) Reset() {
	r.mobs = make(map[uint32]*Mob)
	r.nodes = make(map[uint32]*cache.Node[uint32])
	r.lru.Clear()
}

// Each calls fn for every registered MOB, in LRU order from
// most-recently-used to least.
func (r *Registry) Each(fn func(*Mob)) {
	r.lru.Each(func(mobid uint32) {
		fn(r.mobs[mobid])
	})
}
