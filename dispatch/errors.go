package dispatch

import "fmt"

func errShortCursorPayload(andLen, xorLen uint64, have int) error {
	return fmt.Errorf("cursor payload needs %d (and) + %d (xor) bytes, have %d", andLen, xorLen, have)
}

func errNoMipSizes() error {
	return fmt.Errorf("surface define: no trailing SVGA3dSize entries")
}

func errUndefinedScreen(id uint32) error {
	return fmt.Errorf("screen %d not defined", id)
}

func errUndefinedScreenTarget(id uint32) error {
	return fmt.Errorf("screen target %d not defined", id)
}
