// Command svga3dreplay replays a captured FIFO command log against a
// svga3d.Core, for manual testing of the dispatch/decode path without a
// real hypervisor underneath. It has no backend attached by default, so
// every command that needs one fails with ErrNotSupported. The dispatcher's
// final Stats are always printed; -verbose also sends the dispatcher's log
// (failed, malformed and unsupported commands) to stderr.
//
// Log format (all fields little-endian): a sequence of records
//
//	u8  kind       (0 = legacy 2D command, 1 = SVGA3D/GB/DX command)
//	u32 cmdID
//	u32 dxContextID (ignored for kind 0)
//	u32 cmdSize
//	cmdSize bytes of payload
//
// svga3dreplay has no opinion on how such a log was produced; it is a
// test fixture format for this module, not a reproduction of the real
// device's FIFO ring wire format (spec §1: save/restore wire format is
// explicitly out of scope).
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/dispatch"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

func main() {
	var (
		input   = flag.String("log", "", "path to a captured FIFO command log (required)")
		memSize = flag.Int("gpa-size", 256<<20, "size in bytes of the fake guest-physical address space backing this run")
		verbose = flag.Bool("verbose", false, "log failed, malformed and unsupported commands to stderr")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "svga3dreplay: -log is required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("svga3dreplay: %v", err)
	}
	defer f.Close()

	if *verbose {
		svga3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	mem := hostmem.NewFake(*memSize)
	core := svga3d.NewCore(svga3d.WithGuestMemory(mem))
	d := dispatch.New(core)

	if err := replay(d, f); err != nil && err != io.EOF {
		log.Fatalf("svga3dreplay: %v", err)
	}

	stats := d.Stats
	fmt.Printf("processed=%d malformed=%d unsupported=%d backend_errors=%d\n",
		stats.Processed, stats.Malformed, stats.Unsupported, stats.BackendErrors)
}

const (
	kindLegacy = 0
	kindCmd    = 1
)

func replay(d *dispatch.Dispatcher, r io.Reader) error {
	for {
		var kind uint8
		if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read record kind: %w", err)
		}

		var cmdID, dxContextID, cmdSize uint32
		if err := binary.Read(r, binary.LittleEndian, &cmdID); err != nil {
			return fmt.Errorf("read cmd_id: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &dxContextID); err != nil {
			return fmt.Errorf("read dx_context_id: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &cmdSize); err != nil {
			return fmt.Errorf("read cmd_size: %w", err)
		}

		payload := make([]byte, cmdSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return fmt.Errorf("read %d-byte payload for cmd %d: %w", cmdSize, cmdID, err)
		}

		switch kind {
		case kindLegacy:
			d.DispatchLegacy(wire.LegacyCmdID(cmdID), cmdSize, payload)
		case kindCmd:
			d.Dispatch(wire.CmdID(cmdID), cmdSize, payload, dxContextID)
		default:
			return fmt.Errorf("unknown record kind %d", kind)
		}
	}
}
