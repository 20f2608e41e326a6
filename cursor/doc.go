// Package cursor synthesizes the normalized pointer image DEFINE_CURSOR
// and DEFINE_ALPHA_CURSOR produce from whatever guest bit depth the wire
// command carries (spec §4.5.4). The output is always an AND mask
// (ceil(cx/8) bytes per row, MSB-first) immediately followed by a BGRA8
// XOR mask (cx*cy*4 bytes), ready to hand to display.Callbacks.
package cursor
