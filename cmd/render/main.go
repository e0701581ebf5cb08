package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"libepn/internal/batch"
	"libepn/internal/config"
	"libepn/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneDir := flag.String("scenes", "", "Directory of scene JSON files (default: .)")
	textureDir := flag.String("textures", "", "Texture directory (default: <scenes>/textures)")
	outputDir := flag.String("output", "", "Output directory (default: <scenes>/renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only the first N scenes")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneDir:   *sceneDir,
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		Size:       *size,
		Workers:    *workers,
	})

	scenes, err := batch.FindScenes(cfg.SceneDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Positional arguments pick scene files directly
	if flag.NArg() > 0 {
		scenes = flag.Args()
	}

	if *testN > 0 && *testN < len(scenes) {
		scenes = scenes[:*testN]
	}

	if len(scenes) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	fmt.Println("Pose scene renderer → WebP")
	fmt.Printf("Scenes: %d, Workers: %d\n", len(scenes), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    2 * time.Second,
	}, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(scenes))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Scene, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
