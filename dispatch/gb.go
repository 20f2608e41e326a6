package dispatch

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

func init() {
	registerGBHandlers(dispatchTable)
}

func registerGBHandlers(t map[wire.CmdID]cmdHandler) {
	// C2: MOB registry.
	t[wire.CmdDefineGbMob] = gbDefineMob
	t[wire.CmdDefineGbMob64] = gbDefineMob64
	t[wire.CmdDestroyGbMob] = gbDestroyMob

	// C3: object tables.
	t[wire.CmdSetOtableBase] = gbSetOtableBase
	t[wire.CmdSetOtableBase64] = gbSetOtableBase64
	t[wire.CmdGrowOtable] = gbGrowOtable

	// C4: GB surfaces.
	t[wire.CmdDefineGbSurface] = gbDefineSurfaceV1
	t[wire.CmdDefineGbSurfaceV2] = gbDefineSurfaceV2
	t[wire.CmdDefineGbSurfaceV3] = gbDefineSurfaceV3
	t[wire.CmdDefineGbSurfaceV4] = gbDefineSurfaceV4
	t[wire.CmdDestroyGbSurface] = gbDestroySurface
	t[wire.CmdBindGbSurface] = gbBindSurface
	t[wire.CmdUpdateGbImage] = gbUpdateImage
	t[wire.CmdUpdateGbSurface] = gbUpdateSurface
	t[wire.CmdReadbackGbImage] = gbReadbackImage
	t[wire.CmdReadbackGbSurface] = gbReadbackSurface
	t[wire.CmdInvalidateGbImage] = gbInvalidateImage
	t[wire.CmdInvalidateGbSurface] = gbInvalidateSurface

	// Legacy-shape GB contexts (1107-1109): backed by a MOB instead of
	// immediate-mode state, but otherwise the same lifecycle as a DX
	// context (spec §3.5).
	t[wire.CmdDefineGbContext] = gbDefineContext
	t[wire.CmdDestroyGbContext] = gbDestroyContext
	t[wire.CmdBindGbContext] = gbBindContext

	// GB screen targets.
	t[wire.CmdDefineGbScreentarget] = gbDefineScreentarget
	t[wire.CmdDestroyGbScreentarget] = gbDestroyScreentarget
	t[wire.CmdBindGbScreentarget] = gbBindScreentarget
	t[wire.CmdUpdateGbScreentarget] = gbUpdateScreentarget
	t[wire.CmdGbScreenDMA] = gbScreenDMA
}

func gbDefineMob(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbMobPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineGBMob(hdr.MobID, hdr.PTDepth, hdr.Base, hdr.SizeInBytes)
}

func gbDefineMob64(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbMob64Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineGBMob64(hdr.MobID, hdr.PTDepth, hdr.Base, hdr.SizeInBytes)
}

func gbDestroyMob(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDestroyGbMobPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyGBMob(hdr.MobID)
}

func gbSetOtableBase(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSetOtableBasePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SetOTableBase(hdr.Type, hdr.PTDepth, uint64(hdr.BaseAddress), uint64(hdr.SizeInBytes), uint64(hdr.ValidSizeInBytes), false)
}

func gbSetOtableBase64(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSetOtableBase64Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SetOTableBase(hdr.Type, hdr.PTDepth, hdr.BaseAddress, uint64(hdr.SizeInBytes), uint64(hdr.ValidSizeInBytes), false)
}

func gbGrowOtable(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdGrowOtablePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SetOTableBase(hdr.Type, hdr.PTDepth, uint64(hdr.BaseAddress), uint64(hdr.SizeInBytes), uint64(hdr.ValidSizeInBytes), true)
}

// gbSurfaceParams widens a DEFINE_GB_SURFACE_v1 payload to the common
// surface.DefineParams shape (spec §9 Open Question 2): v2/v3/v4 just add
// fields on top via struct embedding, so one helper covers all four.
func gbSurfaceParams(sid, surfaceFlags, format, numMips, arraySize, multisample, autogen uint32, size wire.SVGA3dSize) surface.DefineParams {
	if numMips == 0 {
		numMips = 1
	}
	if arraySize == 0 {
		arraySize = 1
	}
	return surface.DefineParams{
		SID:              sid,
		Flags:            surface.Flag(surfaceFlags),
		Format:           wire.SurfaceFormat(format),
		NumMipLevels:     numMips,
		ArraySize:        arraySize,
		MultisampleCount: multisample,
		AutogenFilter:    autogen,
		BaseSize:         size,
		AllocMipShadows:  true,
	}
}

func gbDefineSurfaceV1(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p := gbSurfaceParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.NumMipLevels, 1, hdr.MultisampleCount, hdr.AutogenFilter, hdr.Size)
	_, err = d.core.DefineSurface(p)
	return err
}

func gbDefineSurfaceV2(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbSurfaceV2Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p := gbSurfaceParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.NumMipLevels, hdr.ArraySize, hdr.MultisampleCount, hdr.AutogenFilter, hdr.Size)
	_, err = d.core.DefineSurface(p)
	return err
}

func gbDefineSurfaceV3(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbSurfaceV3Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p := gbSurfaceParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.NumMipLevels, hdr.ArraySize, hdr.MultisampleCount, hdr.AutogenFilter, hdr.Size)
	_, err = d.core.DefineSurface(p)
	return err
}

func gbDefineSurfaceV4(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbSurfaceV4Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p := gbSurfaceParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.NumMipLevels, hdr.ArraySize, hdr.MultisampleCount, hdr.AutogenFilter, hdr.Size)
	_, err = d.core.DefineSurface(p)
	return err
}

func gbDestroySurface(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDestroyGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroySurface(hdr.SID)
}

func gbBindSurface(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdBindGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.BindGBSurface(hdr.SID, hdr.MobID)
}

func gbUpdateImage(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdUpdateGbImagePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.UpdateGBImage(hdr.Image, hdr.Box)
}

func gbUpdateSurface(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdUpdateGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.UpdateGBSurface(hdr.SID)
}

func gbReadbackImage(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdReadbackGbImagePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.ReadbackGBImage(hdr.Image)
}

func gbReadbackSurface(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdReadbackGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.ReadbackGBSurface(hdr.SID)
}

func gbInvalidateImage(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdInvalidateGbImagePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.InvalidateGBImage(hdr.Image)
}

func gbInvalidateSurface(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdInvalidateGbSurfacePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.InvalidateGBSurface(hdr.SID)
}

// gbDefineContext/gbDestroyContext/gbBindContext route DEFINE_GB_CONTEXT/
// DESTROY_GB_CONTEXT/BIND_GB_CONTEXT onto the same DX context plumbing a
// DX_DEFINE_CONTEXT/DX_BIND_CONTEXT would use: both are "a context whose
// state lives in a MOB", differing only in which legacy vs. VGPU10 shader
// model the guest intends to drive it with, which Core does not
// distinguish at the context-lifecycle level.
func gbDefineContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDefineContext(hdr.CID)
}

func gbDestroyContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDestroyGbContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDestroyContext(hdr.CID)
}

func gbBindContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdBindGbContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBindContext(hdr.CID, hdr.MobID, hdr.ValidityLength > 0)
}

func gbDefineScreentarget(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineGbScreentargetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	_, err = d.core.DefineGBScreenTarget(hdr.StID, hdr.Width, hdr.Height, hdr.Flags)
	return err
}

func gbDestroyScreentarget(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDestroyGbScreentargetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyGBScreenTarget(hdr.StID)
}

func gbBindScreentarget(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdBindGbScreentargetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	mobid := svga3d.InvalidID
	if hdr.Image.SID != svga3d.InvalidID {
		s := d.core.Surfaces.Get(hdr.Image.SID)
		if s == nil {
			return errUndefinedScreenTarget(hdr.StID)
		}
		mobid = s.MobID
	}
	return d.core.BindGBScreenTarget(hdr.StID, mobid)
}

func gbUpdateScreentarget(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdUpdateGbScreentargetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.UpdateGBScreenTarget(hdr.StID, hdr.Rect.X, hdr.Rect.Y, hdr.Rect.W, hdr.Rect.H)
}

// gbScreenDMA is GB_SCREEN_DMA (1131): the target's pixels already live
// in its bound MOB (BindGBScreenTarget), so this just republishes the
// whole surface to the display pipe.
func gbScreenDMA(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdGbScreenDmaPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	s := d.core.GBScreenTarget(hdr.StID)
	if s == nil {
		return errUndefinedScreenTarget(hdr.StID)
	}
	return d.core.UpdateGBScreenTarget(hdr.StID, 0, 0, s.Width, s.Height)
}
