package svga3d

// Screen describes one virtual monitor (spec §3.6). The same struct backs
// both lifecycles the original protocol carries side by side: the legacy
// DEFINE_SCREEN/DESTROY_SCREEN path (RootX/RootY placement, a flat
// software framebuffer) and the newer DEFINE_GB_SCREENTARGET/
// DESTROY_GB_SCREENTARGET path (MobID names the GBO backing its pixels
// instead of an inline HostBitmap).
type Screen struct {
	ID     uint32
	Flags  uint32
	Width  uint32
	Height uint32
	BPP    uint32
	Pitch  uint32
	RootX  int32
	RootY  int32

	// HostBitmap is the legacy software framebuffer, sized Pitch*Height,
	// present only for the DEFINE_SCREEN path.
	HostBitmap []byte

	// MobID names the GBO backing this screen's pixels for the GB
	// screentarget path, or InvalidID if this is a legacy screen.
	MobID uint32
}

// DefineScreen creates or replaces screenID in the legacy Screen array
// (spec §3.6 DEFINE_SCREEN). A software framebuffer sized width*height*4
// (BGRA8) is allocated immediately, matching the legacy path's "always
// has a host bitmap" assumption.
func (c *Core) DefineScreen(screenID, flags, width, height uint32, rootX, rootY int32) (*Screen, error) {
	if width == 0 || height == 0 {
		return nil, Invalidf("Core.DefineScreen", "screen %d has zero dimension (%dx%d)", screenID, width, height)
	}
	pitch := width * 4
	s := &Screen{
		ID: screenID, Flags: flags, Width: width, Height: height,
		BPP: 32, Pitch: pitch, RootX: rootX, RootY: rootY,
		HostBitmap: make([]byte, uint64(pitch)*uint64(height)),
		MobID:      InvalidID,
	}
	c.screens[screenID] = s
	c.display.NotifyChangeMode()
	return s, nil
}

// DestroyScreen removes screenID from the legacy Screen array (spec §3.6
// DESTROY_SCREEN).
func (c *Core) DestroyScreen(screenID uint32) error {
	if _, ok := c.screens[screenID]; !ok {
		return Invalidf("Core.DestroyScreen", "screen %d not defined", screenID)
	}
	delete(c.screens, screenID)
	c.display.NotifyChangeMode()
	return nil
}

// Screen returns the legacy screen at screenID, or nil if undefined.
func (c *Core) Screen(screenID uint32) *Screen {
	return c.screens[screenID]
}

// Update notifies the display pipe that [x,x+w)x[y,y+h) of screenID
// changed (spec §6.4 screen_update, legacy SVGA_CMD_UPDATE).
func (c *Core) Update(screenID, x, y, w, h uint32) error {
	if _, ok := c.screens[screenID]; !ok {
		return Invalidf("Core.Update", "screen %d not defined", screenID)
	}
	c.display.NotifyScreenUpdate(screenID, x, y, w, h)
	return nil
}

// DefineGBScreenTarget creates or replaces screenID in the GB
// screen-target path (spec §3.6 DEFINE_GB_SCREENTARGET): no inline
// framebuffer is allocated here, since its pixels live in a MOB bound
// separately by BindGBScreenTarget.
func (c *Core) DefineGBScreenTarget(screenID, width, height, flags uint32) (*Screen, error) {
	if width == 0 || height == 0 {
		return nil, Invalidf("Core.DefineGBScreenTarget", "screen target %d has zero dimension (%dx%d)", screenID, width, height)
	}
	s := &Screen{
		ID: screenID, Flags: flags, Width: width, Height: height,
		BPP: 32, Pitch: width * 4, MobID: InvalidID,
	}
	c.gbScreenTargets[screenID] = s
	c.display.NotifyChangeMode()
	return s, nil
}

// DestroyGBScreenTarget removes screenID from the GB screen-target array
// (spec §3.6 DESTROY_GB_SCREENTARGET).
func (c *Core) DestroyGBScreenTarget(screenID uint32) error {
	if _, ok := c.gbScreenTargets[screenID]; !ok {
		return Invalidf("Core.DestroyGBScreenTarget", "screen target %d not defined", screenID)
	}
	delete(c.gbScreenTargets, screenID)
	c.display.NotifyChangeMode()
	return nil
}

// BindGBScreenTarget attaches mobid as screenID's pixel backing store
// (BIND_GB_SCREENTARGET).
func (c *Core) BindGBScreenTarget(screenID, mobid uint32) error {
	s, ok := c.gbScreenTargets[screenID]
	if !ok {
		return Invalidf("Core.BindGBScreenTarget", "screen target %d not defined", screenID)
	}
	if mobid != InvalidID {
		if _, ok := c.Mobs.Get(mobid); !ok {
			return Invalidf("Core.BindGBScreenTarget", "mobid %d not defined", mobid)
		}
	}
	s.MobID = mobid
	return nil
}

// UpdateGBScreenTarget notifies the display pipe that screenID's
// MOB-backed pixels changed in [x,x+w)x[y,y+h) (UPDATE_GB_SCREENTARGET).
func (c *Core) UpdateGBScreenTarget(screenID, x, y, w, h uint32) error {
	s, ok := c.gbScreenTargets[screenID]
	if !ok {
		return Invalidf("Core.UpdateGBScreenTarget", "screen target %d not defined", screenID)
	}
	if s.MobID == InvalidID {
		return InvalidStatef("Core.UpdateGBScreenTarget", "screen target %d has no bound mob", screenID)
	}
	c.display.NotifyScreenUpdate(screenID, x, y, w, h)
	return nil
}

// GBScreenTarget returns the GB screen target at screenID, or nil if
// undefined.
func (c *Core) GBScreenTarget(screenID uint32) *Screen {
	return c.gbScreenTargets[screenID]
}
