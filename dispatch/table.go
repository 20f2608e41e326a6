package dispatch

import "github.com/gogpu/svga3d/wire"

// dispatchTable is the static table spec §9 describes: "a static table:
// [(CmdId, fn(&mut Core, &[u8]) -> Result<()>); N]". Each command family
// file (vgpu9.go, gb.go, dx.go) registers its handlers into this map from
// its own init(), keeping the table itself free of any one family's
// import footprint.
var dispatchTable = make(map[wire.CmdID]cmdHandler)
