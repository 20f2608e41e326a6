// Package mob implements the MOB (Memory Object) registry (spec §3.2/§4.2):
// a keyed collection of GBOs, each reachable by a 32-bit mobid and tracked
// in LRU order for future eviction.
//
// Package otable writes the MOB object-table entry; orchestrating "write
// OTable entry, then build GBO, then register" is Core's job (spec §4.2),
// so this package only deals with the registry itself.
package mob
