// Package wire defines the on-the-wire layout of the SVGA3D command
// protocol (spec §6.1): little-endian, packed structs with no padding
// beyond that of their primitive fields, plus the decode helpers used to
// turn a raw guest payload into a typed Go struct.
//
// # Decoding convention
//
// Every command payload is a fixed-size header optionally followed by a
// variable-length trailing array. The idiomatic shape (spec §9 "Variable-
// length trailing arrays") is a two-step parse:
//
//	hdr, rest, err := wire.SplitHeader[wire.CmdSurfaceDefinePayload](payload)
//	items, err := wire.Elements[wire.SVGA3dSize](rest)
//
// SplitHeader fails if payload is shorter than the header. Elements fails
// if the remaining bytes are not an exact multiple of the element size.
// Every decode helper operates on guest-controlled bytes and therefore
// never panics; all failure is reported via error.
package wire
