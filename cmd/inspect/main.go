package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"libepn/epn4frc"
	"libepn/internal/mathutil"
	"libepn/pose"
	"libepn/quatutil"
)

func main() {
	euler := flag.String("euler", "", "Euler angles alpha,beta,gamma in degrees")
	quatArg := flag.String("quat", "", "Quaternion w,x,y,z")
	position := flag.String("pos", "0,0,0", "Pose position x,y,z")
	lookAt := flag.String("lookat", "", "Target x,y,z to face from -pos")
	rotate := flag.String("rotate", "", "Vector x,y,z to rotate by the pose rotation")
	field := flag.String("field", "", "2D field pose x,y,heading_deg")
	system := flag.String("system", "wpilib", "Coordinate system for -field: wpilib or raiderrobotics")

	flag.Parse()

	posSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "pos" {
			posSet = true
		}
	})

	if err := run(os.Stdout, options{
		posSet:   posSet,
		euler:    *euler,
		quat:     *quatArg,
		position: *position,
		lookAt:   *lookAt,
		rotate:   *rotate,
		field:    *field,
		system:   *system,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	euler, quat, position, lookAt, rotate, field, system string
	// posSet reports that -pos was given explicitly.
	posSet bool
}

func run(w io.Writer, o options) error {
	var given []string
	for _, opt := range []struct{ name, value string }{
		{"-field", o.field}, {"-euler", o.euler}, {"-quat", o.quat}, {"-lookat", o.lookAt},
	} {
		if opt.value != "" {
			given = append(given, opt.name)
		}
	}
	if len(given) > 1 {
		return fmt.Errorf("only one of -field, -euler, -quat, -lookat may be set, got %s", strings.Join(given, " "))
	}
	if o.field != "" && o.posSet {
		return fmt.Errorf("-pos cannot be combined with -field, the field pose sets the position")
	}

	pos, err := parseVec(o.position)
	if err != nil {
		return fmt.Errorf("-pos: %w", err)
	}

	var p pose.Pose
	switch {
	case o.field != "":
		v, err := parseFloats(o.field, 3)
		if err != nil {
			return fmt.Errorf("-field: %w", err)
		}
		sys, err := epn4frc.ParseCoordinateSystem(o.system)
		if err != nil {
			return err
		}
		p = epn4frc.Pose2dToPose(epn4frc.Pose2d{X: v[0], Y: v[1], Heading: mathutil.Deg2Rad(v[2])}, sys)
		back := epn4frc.PoseToPose2d(p, sys)
		fmt.Fprintf(w, "Field (%s): x=%.4f y=%.4f heading=%.4f°\n", sys, back.X, back.Y, mathutil.Rad2Deg(back.Heading))

	case o.euler != "":
		v, err := parseFloats(o.euler, 3)
		if err != nil {
			return fmt.Errorf("-euler: %w", err)
		}
		p = pose.FromEuler(pos, quatutil.NewEulerAngles(mathutil.Deg2Rad(v[0]), mathutil.Deg2Rad(v[1]), mathutil.Deg2Rad(v[2])))

	case o.quat != "":
		v, err := parseFloats(o.quat, 4)
		if err != nil {
			return fmt.Errorf("-quat: %w", err)
		}
		p = pose.New(pos, quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]})

	case o.lookAt != "":
		target, err := parseVec(o.lookAt)
		if err != nil {
			return fmt.Errorf("-lookat: %w", err)
		}
		p = pose.LookingAt(pos, target)

	default:
		p = pose.AtPosition(pos)
	}

	q := p.Rotation()
	fmt.Fprintf(w, "Pose:       %s\n", p)
	fmt.Fprintf(w, "Quaternion: w=%.6f x=%.6f y=%.6f z=%.6f |q|=%.6f\n", q.Real, q.Imag, q.Jmag, q.Kmag, quat.Abs(q))
	fmt.Fprintf(w, "Euler rad:  %s\n", p.EulerAngles())
	fmt.Fprintf(w, "Euler deg:  %s\n", p.EulerAngles().StringDegrees())
	n := p.Normal()
	fmt.Fprintf(w, "Normal:     (%.4f, %.4f, %.4f)\n", n.X, n.Y, n.Z)

	if o.rotate != "" {
		v, err := parseVec(o.rotate)
		if err != nil {
			return fmt.Errorf("-rotate: %w", err)
		}
		r := quatutil.RotateVector(v, q)
		fmt.Fprintf(w, "Rotated:    (%.4f, %.4f, %.4f)\n", r.X, r.Y, r.Z)
	}
	return nil
}

func parseVec(s string) (r3.Vec, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// parseFloats splits a comma-separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
