package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"libepn/epn4frc"
	"libepn/pose"
	"libepn/quatutil"
)

const sampleScene = `{
  "camera": {"yaw_deg": 30, "pitch_deg": -20},
  "floor_texture": "grid",
  "poses": [
    {"name": "origin", "position": [0, 0, 0]},
    {"name": "yawed", "position": [1, 0, 0], "euler_deg": [90, 0, 0]},
    {"name": "turned", "position": [0, 0, 2], "y_angle_deg": 45},
    {"name": "raw", "position": [0, 1, 0], "quaternion": [1, 0, 0, 0]},
    {"name": "watcher", "position": [0, 0, 0], "look_at": [1, -1, -1]},
    {"name": "robot", "field": {"x": 2, "y": 3, "heading_deg": 90, "system": "raiderrobotics"}}
  ]
}`

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	assert.Equal(t, DefaultArmLength, s.ArmLength)
	assert.Equal(t, DefaultFOV, s.Camera.FOVDeg)
	assert.Equal(t, 30.0, s.Camera.YawDeg)
	assert.Len(t, s.Poses, 6)
}

func TestBuild(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	poses, err := s.Build()
	require.NoError(t, err)
	require.Len(t, poses, 6)

	assert.Equal(t, "origin", poses[0].Name)
	assert.Equal(t, quat.Number{}, poses[0].Pose.Rotation())

	assert.True(t, poses[1].Pose.Equal(pose.FromEuler(r3.Vec{X: 1}, quatutil.EulerAngles{Alpha: math.Pi / 2})))
	assert.True(t, poses[2].Pose.Equal(pose.FromYAngle(r3.Vec{Z: 2}, math.Pi/4)))
	assert.Equal(t, quat.Number{Real: 1}, poses[3].Pose.Rotation())
	assert.True(t, poses[4].Pose.Equal(pose.LookingAt(r3.Vec{}, r3.Vec{X: 1, Y: -1, Z: -1})))

	want := epn4frc.Pose2dToPose(epn4frc.Pose2d{X: 2, Y: 3, Heading: math.Pi / 2}, epn4frc.RaiderRobotics)
	assert.True(t, poses[5].Pose.Equal(want))
}

func TestBuild_DefaultNames(t *testing.T) {
	s, err := Parse([]byte(`{"poses": [{"position": [1, 2, 3]}]}`))
	require.NoError(t, err)

	poses, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "pose0", poses[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad json", `{"poses": [`},
		{"two rotations", `{"poses": [{"position": [0,0,0], "euler_deg": [1,2,3], "look_at": [1,1,1]}]}`},
		{"unknown system", `{"poses": [{"field": {"x": 1, "system": "enu"}}]}`},
		{"parent dir name", `{"name": "../../escaped"}`},
		{"nested name", `{"name": "renders/a"}`},
		{"backslash name", `{"name": "..\\up"}`},
		{"dot dot", `{"name": ".."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NamesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arena", s.Name)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestPoseSpec_SupplierIsRepeatable(t *testing.T) {
	y := 30.0
	supply, err := PoseSpec{Position: [3]float64{1, 2, 3}, YAngleDeg: &y}.Supplier()
	require.NoError(t, err)

	first, second := supply(), supply()
	assert.True(t, first.Equal(second))
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, first.Position())
	assert.InDelta(t, math.Pi/6, first.EulerAngles().Beta, 1e-12)
}

func TestPoseSpec_SupplierRejectsBadField(t *testing.T) {
	_, err := PoseSpec{Field: &FieldPose{System: "ned"}}.Supplier()
	assert.Error(t, err)
}
