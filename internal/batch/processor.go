package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"libepn/internal/postprocess"
	"libepn/internal/raster"
	"libepn/internal/scene"
	"libepn/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	// Progress is the interval between progress lines; zero disables them.
	Progress time.Duration
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Scene   string
	Source  string
	Image   string // relative to OutputDir
	Poses   []scene.Named
	Success bool
	Error   string
}

// FindScenes lists the scene files in dir, sorted by name. config.json and
// manifest.json are skipped.
func FindScenes(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	out := paths[:0]
	for _, p := range paths {
		switch strings.ToLower(filepath.Base(p)) {
		case "config.json", "manifest.json":
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Run renders all scenes using a worker pool. Results keep the order of paths.
//
// Scenes are loaded up front, in order, so a name already claimed by an
// earlier scene fails the later one instead of overwriting its image.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	scenes := make([]*scene.Scene, total)
	var processed atomic.Int64

	owner := make(map[string]string, total)
	for i, path := range paths {
		s, res := loadScene(path)
		results[i] = res
		if s == nil {
			processed.Add(1)
			continue
		}
		// Case-insensitive filesystems would merge names differing only in case.
		key := strings.ToLower(s.Name)
		if prev, taken := owner[key]; taken {
			results[i].Error = fmt.Sprintf("duplicate scene name %q (already used by %s)", s.Name, prev)
			processed.Add(1)
			continue
		}
		owner[key] = path
		scenes[i] = s
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	work := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				processScene(cfg, scenes[idx], &results[idx])
				processed.Add(1)
			}
		}()
	}

	for i, s := range scenes {
		if s != nil {
			work <- i
		}
	}
	close(work)

	wg.Wait()
	close(done)

	return results
}

// loadScene parses and builds one scene file. A nil scene means res holds
// the failure.
func loadScene(path string) (*scene.Scene, Result) {
	res := Result{Source: path, Scene: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}

	s, err := scene.Load(path)
	if err != nil {
		res.Error = err.Error()
		return nil, res
	}
	res.Scene = s.Name

	poses, err := s.Build()
	if err != nil {
		res.Error = err.Error()
		return nil, res
	}
	res.Poses = poses
	return s, res
}

// Render draws a built scene at the configured size, downsampled when
// supersampling.
func Render(cfg Config, s *scene.Scene, poses []scene.Named) *image.NRGBA {
	img := raster.RenderScene(s.Meshes(poses), s.Camera, cfg.TexResolver, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Supersample)
	}
	return img
}

func processScene(cfg Config, s *scene.Scene, res *Result) {
	img := Render(cfg, s, res.Poses)

	res.Image = s.Name + ".webp"
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return
	}

	err := writeImage(filepath.Join(cfg.OutputDir, res.Image), func(w io.Writer) error {
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	})
	if err != nil {
		res.Error = err.Error()
		return
	}
	res.Success = true
}

// writeImage creates path and fills it with encode. On any failure the
// partial file is removed.
func writeImage(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
