// Package cache provides a generic doubly-linked LRU list.
//
// This is a bookkeeping primitive, not a value cache: it tracks recency
// order for a keyed collection the caller owns (the MOB registry). The
// caller's map is the source of
// truth; the list only orders the map's keys by last access so that an
// eviction policy can find the least-recently-used key in O(1).
//
// List is not safe for concurrent use — callers synchronize externally
// if needed. The svga3d command processor is single-threaded per virtual
// GPU (see the core package), so no locking is required in practice.
package cache
