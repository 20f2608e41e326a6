// Package otable implements the typed object tables (spec §3.3/§4.3): each
// table is a GBO whose bytes are interpreted as a packed array of
// fixed-size entries, with index bound-checks on every read/write.
//
// The same Table type serves both the twelve (seventeen, see DESIGN.md)
// global device-level object tables and the per-DX-context COTables,
// whose storage is a MOB supplied by the guest rather than the device's
// own page tables.
package otable
