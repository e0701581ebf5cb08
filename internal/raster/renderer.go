package raster

import (
	"image"

	"libepn/internal/mathutil"
	"libepn/internal/scene"
	"libepn/internal/texture"
	"libepn/internal/viewmatrix"
)

// RenderScene renders world-space meshes to an NRGBA image of
// size*supersample pixels, framing every vertex with a fixed margin.
func RenderScene(
	meshes []scene.Mesh,
	cam scene.Camera,
	texResolver texture.Resolver,
	size int,
	supersample int,
) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	var all [][]mathutil.Vec3
	for _, m := range meshes {
		if len(m.Verts) > 0 {
			all = append(all, m.Verts)
		}
	}
	if len(all) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	R := viewmatrix.ViewMatrix(cam)
	lo, hi := viewmatrix.Bounds(all, R)

	center := [3]float64{
		(lo[0] + hi[0]) / 2,
		(lo[1] + hi[1]) / 2,
		(lo[2] + hi[2]) / 2,
	}
	span := hi[0] - lo[0]
	if spanY := hi[1] - lo[1]; spanY > span {
		span = spanY
	}
	if span < 0.001 {
		span = 0.001
	}

	// 16px per supersample at full size, shrinking so small renders keep
	// most of the canvas.
	margin := min(16*supersample, renderSize/16)
	scale := float64(renderSize-2*margin) / span
	extent := viewmatrix.ExtentOf(lo, hi, center)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for _, mesh := range meshes {
		if len(mesh.Verts) == 0 {
			continue
		}

		px, py, pz := viewmatrix.ProjectVertices(mesh.Verts, R, center, scale, renderSize, cam, extent)

		var tex *image.NRGBA
		if texResolver != nil && mesh.TexName != "" {
			tex = texResolver.Resolve(mesh.TexName)
		}

		c := mesh.Color
		for _, tri := range mesh.Tris {
			vi := [3]int{tri.VI[0], tri.VI[1], tri.VI[2]}
			ti := [3]int{tri.TI[0], tri.TI[1], tri.TI[2]}
			RasterizeTriangle(fb, px, py, pz, mesh.UVs, vi, ti, tex, c, &lc)

			// Quad: second triangle
			if tri.Polygon == 4 {
				vi2 := [3]int{tri.VI[0], tri.VI[2], tri.VI[3]}
				ti2 := [3]int{tri.TI[0], tri.TI[2], tri.TI[3]}
				RasterizeTriangle(fb, px, py, pz, mesh.UVs, vi2, ti2, tex, c, &lc)
			}
		}
	}

	return fb.Image()
}
