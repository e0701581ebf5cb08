package scene

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"libepn/internal/mathutil"
	"libepn/pose"
	"libepn/quatutil"
)

// Triangle holds polygon type and index quads into vertex/texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int
	TI      [4]int
}

// Mesh is world-space geometry with one flat color or texture.
type Mesh struct {
	Verts   []mathutil.Vec3
	UVs     [][2]float32
	Tris    []Triangle
	Color   color.NRGBA
	TexName string // resolved by texture.Resolver; empty draws Color
}

// Gizmo colors, one per local axis.
var (
	ColorX      = color.NRGBA{220, 60, 50, 255}
	ColorY      = color.NRGBA{70, 190, 80, 255}
	ColorZ      = color.NRGBA{60, 100, 230, 255}
	ColorCenter = color.NRGBA{200, 200, 200, 255}
	ColorFloor  = color.NRGBA{120, 120, 128, 255}
)

// boxQuads lists the six faces of a box built by box(), as corner indices.
var boxQuads = [6][4]int{
	{0, 1, 2, 3}, // -Z
	{4, 5, 6, 7}, // +Z
	{0, 1, 5, 4}, // -Y
	{3, 2, 6, 7}, // +Y
	{0, 3, 7, 4}, // -X
	{1, 2, 6, 5}, // +X
}

// box returns the eight corners of an axis-aligned box in local space.
func box(lo, hi mathutil.Vec3) []mathutil.Vec3 {
	return []mathutil.Vec3{
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{lo[0], hi[1], lo[2]},
		{lo[0], lo[1], hi[2]},
		{hi[0], lo[1], hi[2]},
		{hi[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]},
	}
}

func boxMesh(lo, hi mathutil.Vec3, p pose.Pose, c color.NRGBA) Mesh {
	corners := box(lo, hi)
	origin := p.Position()
	rot := p.Rotation()

	m := Mesh{Color: c, Verts: make([]mathutil.Vec3, len(corners))}
	for i, v := range corners {
		m.Verts[i] = mathutil.FromR3(r3.Add(origin, quatutil.RotateVector(v.R3(), rot)))
	}
	for _, q := range boxQuads {
		m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: q})
	}
	return m
}

// Gizmo draws a pose as a center cube plus one arm per local axis.
// Arms point along the pose's rotated +X, +Y and +Z.
func Gizmo(p pose.Pose, armLength float64) []Mesh {
	t := armLength * 0.06
	c := armLength * 0.12

	return []Mesh{
		boxMesh(mathutil.Vec3{-c, -c, -c}, mathutil.Vec3{c, c, c}, p, ColorCenter),
		boxMesh(mathutil.Vec3{0, -t, -t}, mathutil.Vec3{armLength, t, t}, p, ColorX),
		boxMesh(mathutil.Vec3{-t, 0, -t}, mathutil.Vec3{t, armLength, t}, p, ColorY),
		boxMesh(mathutil.Vec3{-t, -t, 0}, mathutil.Vec3{t, t, armLength}, p, ColorZ),
	}
}

// Floor builds a horizontal quad under meshes, tiling its texture once per
// tile world units. Returns false when meshes is empty.
func Floor(meshes []Mesh, tile float64, texName string) (Mesh, bool) {
	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	n := 0
	for _, m := range meshes {
		for _, v := range m.Verts {
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], v[k])
				hi[k] = math.Max(hi[k], v[k])
			}
			n++
		}
	}
	if n == 0 {
		return Mesh{}, false
	}
	if tile <= 0 {
		tile = DefaultArmLength
	}

	margin := tile
	y := lo[1] - tile*0.05
	x0, x1 := lo[0]-margin, hi[0]+margin
	z0, z1 := lo[2]-margin, hi[2]+margin
	u := float32((x1 - x0) / tile)
	v := float32((z1 - z0) / tile)

	return Mesh{
		Verts: []mathutil.Vec3{
			{x0, y, z0},
			{x1, y, z0},
			{x1, y, z1},
			{x0, y, z1},
		},
		UVs:     [][2]float32{{0, 0}, {u, 0}, {u, v}, {0, v}},
		Tris:    []Triangle{{Polygon: 4, VI: [4]int{0, 1, 2, 3}, TI: [4]int{0, 1, 2, 3}}},
		Color:   ColorFloor,
		TexName: texName,
	}, true
}

// Meshes builds the gizmos for every pose plus the floor, floor last.
func (s *Scene) Meshes(poses []Named) []Mesh {
	var out []Mesh
	for _, np := range poses {
		out = append(out, Gizmo(np.Pose, s.ArmLength)...)
	}
	if floor, ok := Floor(out, s.ArmLength, s.FloorTexture); ok {
		out = append(out, floor)
	}
	return out
}
