package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"libepn/epn4frc"
	"libepn/internal/mathutil"
	"libepn/pose"
	"libepn/quatutil"
)

// DefaultArmLength is the gizmo arm length when a scene sets none.
const DefaultArmLength = 1.0

// DefaultFOV is the perspective field of view in degrees.
const DefaultFOV = 60.0

// Scene is one JSON scene document: a camera and a list of poses.
type Scene struct {
	Name         string     `json:"name"`
	Camera       Camera     `json:"camera"`
	FloorTexture string     `json:"floor_texture"`
	ArmLength    float64    `json:"arm_length"`
	Poses        []PoseSpec `json:"poses"`
}

// Camera orients the view. Yaw turns about the vertical Y axis, pitch tilts
// about X.
type Camera struct {
	YawDeg      float64 `json:"yaw_deg"`
	PitchDeg    float64 `json:"pitch_deg"`
	Perspective bool    `json:"perspective"`
	FOVDeg      float64 `json:"fov_deg"`
}

// PoseSpec describes one pose. At most one rotation field may be set; with
// none the pose gets the zero quaternion.
type PoseSpec struct {
	Name       string      `json:"name"`
	Position   [3]float64  `json:"position"`
	EulerDeg   *[3]float64 `json:"euler_deg"`
	YAngleDeg  *float64    `json:"y_angle_deg"`
	Quaternion *[4]float64 `json:"quaternion"` // w, x, y, z
	LookAt     *[3]float64 `json:"look_at"`
	Field      *FieldPose  `json:"field"`
}

// FieldPose is a 2D field pose converted with epn4frc. It replaces Position.
type FieldPose struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	HeadingDeg float64 `json:"heading_deg"`
	System     string  `json:"system"`
}

// Named pairs a built pose with its label.
type Named struct {
	Name string
	Pose pose.Pose
}

// Load reads and validates a scene file. A scene without a name is named
// after the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// checkName rejects scene names that are not a single path element. The name
// becomes the output file name.
func checkName(name string) error {
	if name == "" {
		return nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("invalid scene name %q: must be a plain file name", name)
	}
	return nil
}

// Parse decodes a scene document and fills defaults.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := checkName(s.Name); err != nil {
		return nil, err
	}

	for i, ps := range s.Poses {
		if _, err := ps.Supplier(); err != nil {
			return nil, fmt.Errorf("pose %d (%s): %w", i, ps.Name, err)
		}
	}

	if s.ArmLength <= 0 {
		s.ArmLength = DefaultArmLength
	}
	if s.Camera.FOVDeg <= 0 {
		s.Camera.FOVDeg = DefaultFOV
	}
	return &s, nil
}

// Supplier validates the spec and returns a deferred constructor for it.
func (ps PoseSpec) Supplier() (pose.Supplier, error) {
	set := 0
	for _, ok := range []bool{ps.EulerDeg != nil, ps.YAngleDeg != nil, ps.Quaternion != nil, ps.LookAt != nil, ps.Field != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("only one of euler_deg, y_angle_deg, quaternion, look_at, field may be set")
	}

	position := r3.Vec{X: ps.Position[0], Y: ps.Position[1], Z: ps.Position[2]}

	switch {
	case ps.EulerDeg != nil:
		e := *ps.EulerDeg
		angles := quatutil.NewEulerAngles(mathutil.Deg2Rad(e[0]), mathutil.Deg2Rad(e[1]), mathutil.Deg2Rad(e[2]))
		return func() pose.Pose { return pose.FromEuler(position, angles) }, nil

	case ps.YAngleDeg != nil:
		y := mathutil.Deg2Rad(*ps.YAngleDeg)
		return func() pose.Pose { return pose.FromYAngle(position, y) }, nil

	case ps.Quaternion != nil:
		q := *ps.Quaternion
		rot := quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
		return func() pose.Pose { return pose.New(position, rot) }, nil

	case ps.LookAt != nil:
		l := *ps.LookAt
		target := r3.Vec{X: l[0], Y: l[1], Z: l[2]}
		return func() pose.Pose { return pose.LookingAt(position, target) }, nil

	case ps.Field != nil:
		sys, err := epn4frc.ParseCoordinateSystem(ps.Field.System)
		if err != nil {
			return nil, err
		}
		p2 := epn4frc.Pose2d{X: ps.Field.X, Y: ps.Field.Y, Heading: mathutil.Deg2Rad(ps.Field.HeadingDeg)}
		return func() pose.Pose { return epn4frc.Pose2dToPose(p2, sys) }, nil
	}

	return func() pose.Pose { return pose.AtPosition(position) }, nil
}

// Build constructs every pose in the scene.
func (s *Scene) Build() ([]Named, error) {
	out := make([]Named, 0, len(s.Poses))
	for i, ps := range s.Poses {
		supply, err := ps.Supplier()
		if err != nil {
			return nil, fmt.Errorf("scene: pose %d (%s): %w", i, ps.Name, err)
		}
		name := ps.Name
		if name == "" {
			name = fmt.Sprintf("pose%d", i)
		}
		out = append(out, Named{Name: name, Pose: supply()})
	}
	return out, nil
}
