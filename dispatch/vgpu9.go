package dispatch

import (
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

func init() {
	registerVGPU9Handlers(dispatchTable)
}

func registerVGPU9Handlers(t map[wire.CmdID]cmdHandler) {
	t[wire.CmdSurfaceDefine] = vgpu9SurfaceDefine
	t[wire.CmdSurfaceDefineV2] = vgpu9SurfaceDefineV2
	t[wire.CmdSurfaceDestroy] = vgpu9SurfaceDestroy
	t[wire.CmdSurfaceCopy] = vgpu9SurfaceCopy
	t[wire.CmdSurfaceStretchBlt] = vgpu9SurfaceStretchBlt
	t[wire.CmdSurfaceDMA] = vgpu9SurfaceDMA
	t[wire.CmdContextDefine] = vgpu9ContextDefine
	t[wire.CmdContextDestroy] = vgpu9ContextDestroy
	t[wire.CmdSetRenderTarget] = vgpu9SetRenderTarget
	t[wire.CmdShaderDefine] = vgpu9ShaderDefine
	t[wire.CmdShaderDestroy] = vgpu9ShaderDestroy
	t[wire.CmdSetShader] = vgpu9SetShader
	t[wire.CmdDrawPrimitives] = vgpu9DrawPrimitives
	t[wire.CmdPresent] = vgpu9Present
	t[wire.CmdBlitSurfaceToScreen] = vgpu9BlitSurfaceToScreen
	t[wire.CmdScreenDMA] = vgpu9ScreenDMA
}

// faceMipParams reduces SURFACE_DEFINE[_V2]'s per-face mip-chain layout
// (spec §9 Open Question 2) to the single surface.DefineParams shape
// every surface-define path funnels through: face 0's mip count and the
// first trailing SVGA3dSize entry (face 0, mip 0) describe the surface;
// cubemaps (six equal-length faces) get ArraySize 6.
func faceMipParams(sid uint32, surfaceFlags, format uint32, faces [wire.MaxSurfaceFaces]wire.SVGA3dSurfaceFace, rest []byte, multisample, autogen uint32) (surface.DefineParams, error) {
	sizes, err := wire.Elements[wire.SVGA3dSize](rest)
	if err != nil {
		return surface.DefineParams{}, err
	}
	numMips := faces[0].NumMipLevels
	if numMips == 0 {
		numMips = 1
	}
	if len(sizes) == 0 {
		return surface.DefineParams{}, errNoMipSizes()
	}
	arraySize := uint32(1)
	if surface.Flag(surfaceFlags).Has(surface.FlagCubemap) {
		arraySize = 6
	}
	return surface.DefineParams{
		SID:              sid,
		Flags:            surface.Flag(surfaceFlags),
		Format:           wire.SurfaceFormat(format),
		NumMipLevels:     numMips,
		ArraySize:        arraySize,
		MultisampleCount: multisample,
		AutogenFilter:    autogen,
		BaseSize:         sizes[0],
		AllocMipShadows:  true,
	}, nil
}

func vgpu9SurfaceDefine(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdSurfaceDefinePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p, err := faceMipParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.Faces, rest, 0, 0)
	if err != nil {
		return decodeErr(err)
	}
	_, err = d.core.DefineSurface(p)
	return err
}

func vgpu9SurfaceDefineV2(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdSurfaceDefineV2Payload](payload)
	if err != nil {
		return decodeErr(err)
	}
	p, err := faceMipParams(hdr.SID, hdr.SurfaceFlags, hdr.Format, hdr.Faces, rest, hdr.MultisampleCount, hdr.AutogenFilter)
	if err != nil {
		return decodeErr(err)
	}
	_, err = d.core.DefineSurface(p)
	return err
}

func vgpu9SurfaceDestroy(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSurfaceDestroyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroySurface(hdr.SID)
}

func vgpu9SurfaceCopy(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdSurfaceCopyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	boxes, err := wire.Elements[wire.SVGA3dCopyBox](rest)
	if err != nil {
		return decodeErr(err)
	}
	var last error
	for _, box := range boxes {
		if err := d.core.SurfaceCopy(hdr.Dest, hdr.Src, box); err != nil {
			last = err
		}
	}
	return last
}

func vgpu9SurfaceStretchBlt(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSurfaceStretchBltPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SurfaceStretchBlt(hdr.Dest, hdr.BoxDest, hdr.Src, hdr.BoxSrc, hdr.Mode)
}

func vgpu9SurfaceDMA(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdSurfaceDMAPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	boxes, err := wire.Elements[wire.SVGA3dCopyBox](rest)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SurfaceDMA(hdr.Guest, hdr.Host, hdr.Transfer, boxes)
}

func vgpu9ContextDefine(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdContextDefinePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	_, err = d.core.ContextDefine(hdr.CID)
	return err
}

func vgpu9ContextDestroy(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdContextDestroyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.ContextDestroy(hdr.CID)
}

func vgpu9SetRenderTarget(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSetRenderTargetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SetRenderTarget(hdr.CID, hdr.Type, hdr.Target)
}

func vgpu9ShaderDefine(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdShaderDefinePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.ShaderDefine(hdr.CID, hdr.ShaderID, hdr.ShaderType, rest)
}

func vgpu9ShaderDestroy(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdShaderDestroyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.ShaderDestroy(hdr.CID, hdr.ShaderID)
}

func vgpu9SetShader(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdSetShaderPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.SetShader(hdr.CID, hdr.ShaderType, hdr.ShaderID)
}

// vgpu9DrawPrimitives forwards the trailing decl+range bytes to the
// backend undivided (spec §6.1: "forwarded to the backend as raw
// bytes") — Core.DrawPrimitives itself never interprets their contents,
// so the exact decl/range split point is immaterial here.
func vgpu9DrawPrimitives(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDrawPrimitivesPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DrawPrimitives(hdr.CID, rest, nil)
}

func vgpu9Present(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdPresentPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	rects, err := wire.Elements[wire.SVGA3dRect](rest)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.Present(hdr.SID, rects)
}

func vgpu9BlitSurfaceToScreen(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdBlitSurfaceToScreenPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.BlitSurfaceToScreen(hdr.Src, hdr.DestScreenID, hdr.DestRect)
}

// vgpu9ScreenDMA is SVGA_3D_CMD_SCREEN_DMA (1082): the pre-GB,
// direct-guest-pointer screen push. Unlike GB_SCREEN_DMA (screentarget.go)
// it carries an actual SVGAGuestPtr, so it is wired here rather than
// alongside the GB screen target family.
func vgpu9ScreenDMA(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdScreenDMAPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	s := d.core.Screen(hdr.ScreenID)
	if s == nil {
		return errUndefinedScreen(hdr.ScreenID)
	}
	return d.core.Update(hdr.ScreenID, 0, 0, s.Width, s.Height)
}
