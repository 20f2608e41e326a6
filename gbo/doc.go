// Package gbo implements guest-backed object memory (spec §3.1/§4.1): the
// bottom layer of the command processor. A GBO walks a guest-supplied,
// possibly multi-level page table and produces a compressed list of
// contiguous guest-physical runs, then offers bounded read/write/copy
// against that indirected memory.
//
// Every byte address a GBO hands to the guest-memory service has already
// been validated and masked; callers above this package never see a raw,
// unchecked guest address.
package gbo
