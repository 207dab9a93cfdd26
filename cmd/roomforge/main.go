// Package main is the roomforge CLI: it builds a renderable scene
// description from a design-session document.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/loftlab/roomforge/internal/assets"
	"github.com/loftlab/roomforge/internal/builder/campath"
	"github.com/loftlab/roomforge/internal/config"
	"github.com/loftlab/roomforge/internal/logger"
	"github.com/loftlab/roomforge/internal/scene"
	"github.com/loftlab/roomforge/internal/session"
)

var (
	flagSession = flag.String("session", "", "Path to the session document (required)")
	flagOut     = flag.String("out", "", "Output path for the scene description (default stdout)")
)

// output is the CLI result document: the scene plus optional sampled
// camera poses.
type output struct {
	*scene.Description
	CameraSamples []campath.Pose `json:"cameraSamples,omitempty"`
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagSession == "" {
		fmt.Fprintln(os.Stderr, "Usage: roomforge -session <file> [-out <file>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	doc, err := session.Load(*flagSession)
	if err != nil {
		logger.Error("failed to load session", zap.Error(err))
		os.Exit(1)
	}

	builder := scene.NewBuilder(assets.NewManager(cfg.Assets.Dir), logger.Log)
	desc := builder.Build(doc)

	out := output{Description: desc}
	if n := cfg.Scene.CameraSamples; n > 1 && len(desc.CameraPath) >= 2 {
		out.CameraSamples = samplePath(desc.CameraPath, n)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Error("failed to encode scene", zap.Error(err))
		os.Exit(1)
	}
	data = append(data, '\n')

	if *flagOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*flagOut, data, 0644); err != nil {
		logger.Error("failed to write scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene written", zap.String("path", *flagOut))
}

// samplePath evaluates the camera path at n evenly spaced progress values.
func samplePath(waypoints []campath.Waypoint, n int) []campath.Pose {
	poses := make([]campath.Pose, 0, n)
	for i := 0; i < n; i++ {
		progress := float32(i) / float32(n-1)
		poses = append(poses, campath.Interpolate(progress, waypoints))
	}
	return poses
}
