package batch

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"libepn/internal/scene"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Scene string      `json:"scene"`
	Image string      `json:"image"`
	Poses []PoseEntry `json:"poses"`
}

// PoseEntry is the derived state of one pose.
type PoseEntry struct {
	Name       string   `json:"name"`
	Position   [3]Float `json:"position"`
	Quaternion [4]Float `json:"quaternion"` // w, x, y, z
	EulerDeg   [3]Float `json:"euler_deg"`
	Normal     [3]Float `json:"normal"`
}

// Float encodes NaN and ±Inf as null, which encoding/json rejects otherwise.
// A zero-quaternion pose has a NaN yaw.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func poseEntry(np scene.Named) PoseEntry {
	p := np.Pose
	d := p.EulerAngles().Degrees()
	n := p.Normal()
	return PoseEntry{
		Name:       np.Name,
		Position:   [3]Float{Float(p.X()), Float(p.Y()), Float(p.Z())},
		Quaternion: [4]Float{Float(p.QW()), Float(p.QX()), Float(p.QY()), Float(p.QZ())},
		EulerDeg:   [3]Float{Float(d[0]), Float(d[1]), Float(d[2])},
		Normal:     [3]Float{Float(n.X), Float(n.Y), Float(n.Z)},
	}
}

// WriteManifest writes the successful results as JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		e := ManifestEntry{Scene: r.Scene, Image: r.Image, Poses: make([]PoseEntry, len(r.Poses))}
		for i, np := range r.Poses {
			e.Poses[i] = poseEntry(np)
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
