package viewmatrix

import (
	"math"

	"libepn/internal/mathutil"
	"libepn/internal/scene"
	"libepn/quatutil"
)

// ViewMatrix builds the world-to-view rotation for a camera.
// The camera is turned by yaw about Y, then tilted by pitch about X, and
// looks down its own -Z. Negative pitch looks down at the floor.
func ViewMatrix(cam scene.Camera) mathutil.Mat3 {
	q := quatutil.FromEulerAngles(0, mathutil.Deg2Rad(cam.YawDeg), mathutil.Deg2Rad(cam.PitchDeg))
	return mathutil.QuatToMat3(q).Transpose()
}

// ProjectVertices transforms 3D vertices to 2D screen coordinates.
// Returns px, py, pz slices (screen X, screen Y, depth). Larger depth is
// closer to the camera.
func ProjectVertices(verts []mathutil.Vec3, R mathutil.Mat3, center [3]float64, scale float64, renderSize int, cam scene.Camera, extent Extent) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	half := float64(renderSize) / 2

	var perspCamDist, perspZCenter float64
	if cam.Perspective {
		fov := cam.FOVDeg
		if fov <= 0 {
			fov = scene.DefaultFOV
		}
		halfFOV := mathutil.Deg2Rad(fov / 2)

		perspZCenter = (extent.ZMin + extent.ZMax) / 2
		xyMax := extent.XYMax
		if xyMax < 0.001 {
			xyMax = 0.001
		}
		perspCamDist = xyMax / math.Tan(halfFOV)
	}

	for i, v := range verts {
		t := R.MulVec3(v)

		if cam.Perspective {
			zOff := t[2] - perspZCenter
			depth := math.Max(perspCamDist-zOff, 0.1)
			factor := perspCamDist / depth
			t[0] = (t[0]-center[0])*factor + center[0]
			t[1] = (t[1]-center[1])*factor + center[1]
		}

		px[i] = (t[0]-center[0])*scale + half
		py[i] = -(t[1]-center[1])*scale + half
		pz[i] = t[2]
	}

	return px, py, pz
}

// Extent summarizes view-space bounds for perspective setup.
type Extent struct {
	ZMin, ZMax float64
	// XYMax is the largest X or Y distance from the center.
	XYMax float64
}

// Bounds returns the view-space bounding box of every vertex in verts.
// Empty input gives an inverted (+Inf, -Inf) box.
func Bounds(verts [][]mathutil.Vec3, R mathutil.Mat3) (lo, hi [3]float64) {
	lo = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, vs := range verts {
		for _, v := range vs {
			tv := R.MulVec3(v)
			for k := 0; k < 3; k++ {
				if tv[k] < lo[k] {
					lo[k] = tv[k]
				}
				if tv[k] > hi[k] {
					hi[k] = tv[k]
				}
			}
		}
	}
	return lo, hi
}

// ExtentOf derives the perspective extent from view-space bounds.
func ExtentOf(lo, hi, center [3]float64) Extent {
	e := Extent{ZMin: lo[2], ZMax: hi[2]}
	for k := 0; k < 2; k++ {
		e.XYMax = math.Max(e.XYMax, math.Max(math.Abs(lo[k]-center[k]), math.Abs(hi[k]-center[k])))
	}
	return e
}
