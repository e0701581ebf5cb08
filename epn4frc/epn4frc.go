// Package epn4frc converts between poses and the 2D field poses used by FRC
// robot code.
//
// A 2D pose lives on the floor plane. Its X maps to pose X, its Y maps to
// negative pose Z, and its heading is a rotation about the pose's Y axis.
package epn4frc

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"libepn/pose"
	"libepn/quatutil"
)

// CoordinateSystem selects the heading convention of a 2D pose.
type CoordinateSystem int

const (
	// WPILib headings are counter-clockwise positive.
	WPILib CoordinateSystem = iota
	// RaiderRobotics headings are clockwise positive.
	RaiderRobotics
)

func (c CoordinateSystem) String() string {
	switch c {
	case WPILib:
		return "wpilib"
	case RaiderRobotics:
		return "raiderrobotics"
	default:
		return fmt.Sprintf("CoordinateSystem(%d)", int(c))
	}
}

// ParseCoordinateSystem accepts the names returned by String, case-insensitively.
func ParseCoordinateSystem(s string) (CoordinateSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wpilib", "":
		return WPILib, nil
	case "raiderrobotics", "raider":
		return RaiderRobotics, nil
	}
	return 0, fmt.Errorf("epn4frc: unknown coordinate system %q", s)
}

func (c CoordinateSystem) headingSign() float64 {
	if c == RaiderRobotics {
		return -1
	}
	return 1
}

// Pose2d is a position on the field plus a heading in radians.
type Pose2d struct {
	X       float64
	Y       float64
	Heading float64
}

// Pose2dToPose lifts a 2D pose onto the Y=0 plane.
func Pose2dToPose(p Pose2d, system CoordinateSystem) pose.Pose {
	beta := p.Heading * system.headingSign()
	return pose.FromEuler(r3.Vec{X: p.X, Y: 0, Z: -p.Y}, quatutil.EulerAngles{Beta: beta})
}

// PoseToPose2d drops the height and keeps only the rotation about Y.
func PoseToPose2d(p pose.Pose, system CoordinateSystem) Pose2d {
	return Pose2d{
		X:       p.X(),
		Y:       -p.Z(),
		Heading: p.EulerAngles().Beta * system.headingSign(),
	}
}
