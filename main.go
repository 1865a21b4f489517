package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/miminashca/Ray-Tracing/pkg/loaders"
	"github.com/miminashca/Ray-Tracing/pkg/log"
	"github.com/miminashca/Ray-Tracing/pkg/renderer"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

var logger = log.New("raytracer")

type sceneEntry struct {
	name        string
	description string
	build       func() *scene.Scene
}

var builtinScenes = []sceneEntry{
	{"showcase", "spheres and a pyramid mesh under a sun-lit sky", scene.NewShowcaseScene},
	{"cornell", "Cornell box with triangle-mesh walls and area light", scene.NewCornellScene},
}

func main() {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with a progressive Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene progressively and write the result as PNG",
			Description: `
Render a built-in scene (optionally extended with a wavefront OBJ mesh) by
accumulating the requested number of progressive frames. Each frame traces
samples-per-pixel paths per pixel; the running average converges toward the
noise-free image as frames accumulate.`,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Value: "showcase", Usage: "built-in scene name (see the scenes command)"},
				cli.IntFlag{Name: "width", Value: 640, Usage: "frame width"},
				cli.IntFlag{Name: "height", Value: 360, Usage: "frame height"},
				cli.IntFlag{Name: "spp", Value: 4, Usage: "samples per pixel per frame"},
				cli.IntFlag{Name: "bounces", Value: 8, Usage: "max bounces per path"},
				cli.IntFlag{Name: "frames", Value: 32, Usage: "number of progressive frames to accumulate"},
				cli.IntFlag{Name: "workers", Value: 0, Usage: "parallel workers (0 = cpu count)"},
				cli.StringFlag{Name: "mesh", Usage: "wavefront OBJ file to add to the scene"},
				cli.Float64Flag{Name: "mesh-scale", Value: 1.0, Usage: "uniform scale applied to the OBJ mesh"},
				cli.BoolFlag{Name: "no-sky", Usage: "disable the environment light"},
				cli.IntFlag{Name: "snapshot-every", Value: 0, Usage: "write an intermediate PNG every N frames (0 = off)"},
				cli.StringFlag{Name: "out", Value: "render.png", Usage: "output PNG path"},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func findScene(name string) (sceneEntry, bool) {
	for _, entry := range builtinScenes {
		if entry.name == name {
			return entry, true
		}
	}
	return sceneEntry{}, false
}

func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	entry, ok := findScene(ctx.String("scene"))
	if !ok {
		return fmt.Errorf("unknown scene %q", ctx.String("scene"))
	}
	sc := entry.build()
	if ctx.Bool("no-sky") {
		sc.Sky.Enabled = false
	}

	if meshPath := ctx.String("mesh"); meshPath != "" {
		groups, err := loaders.LoadOBJ(meshPath, "", ctx.Float64("mesh-scale"), sc.Camera.LookAt)
		if err != nil {
			return err
		}
		for _, group := range groups {
			sc.AddMesh(group.Triangles, group.Material)
		}
		logger.Infof("loaded %s: %d material group(s)", meshPath, len(groups))
	}

	width := ctx.Int("width")
	height := ctx.Int("height")
	frames := ctx.Int("frames")
	sc.Camera.AspectRatio = float64(width) / float64(height)

	config := renderer.ProgressiveConfig{
		TileSize:   64,
		NumWorkers: ctx.Int("workers"),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxBounces:      ctx.Int("bounces"),
		},
	}
	progressive := renderer.NewProgressiveRenderer(sc, width, height, config, logger)

	logger.Infof("rendering %q at %dx%d: %d frame(s), %d spp, %d bounces, %d primitives",
		entry.name, width, height, frames, config.Sampling.SamplesPerPixel,
		config.Sampling.MaxBounces, sc.PrimitiveCount())

	// Interrupt abandons the in-flight frame; completed frames are kept
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var result *image.RGBA
	var lastStats renderer.FrameStats

	snapshotEvery := ctx.Int("snapshot-every")
	outPath := ctx.String("out")

	for frame := 0; frame < frames; frame++ {
		rendered, frameStats, err := progressive.RenderFrame(runCtx)
		if err != nil {
			if runCtx.Err() != nil {
				logger.Warningf("interrupted after %d complete frame(s)", progressive.FrameIndex())
				break
			}
			return err
		}
		result = rendered
		lastStats = frameStats

		if snapshotEvery > 0 && frame+1 < frames && (frame+1)%snapshotEvery == 0 {
			path := snapshotPath(outPath, frame+1)
			if err := writePNG(path, rendered); err != nil {
				return err
			}
			logger.Infof("wrote snapshot %s after %d frame(s)", path, frame+1)
		}
	}

	if result == nil {
		return fmt.Errorf("no frames completed")
	}

	if err := writePNG(outPath, result); err != nil {
		return err
	}

	printRenderSummary(entry.name, progressive.FrameIndex(), lastStats, time.Since(start), outPath)
	return nil
}

// snapshotPath derives an intermediate output name like render.0008.png
func snapshotPath(out string, frames int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s.%04d%s", out[:len(out)-len(ext)], frames, ext)
}

func writePNG(path string, img *image.RGBA) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func printRenderSummary(sceneName string, frames int, last renderer.FrameStats, elapsed time.Duration, out string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Frames", "Total Samples/Pixel", "Elapsed", "Output"})
	table.Append([]string{
		sceneName,
		strconv.Itoa(frames),
		strconv.Itoa(last.TotalSamples),
		elapsed.Round(time.Millisecond).String(),
		out,
	})
	table.Render()
}

func listScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Description"})
	for _, entry := range builtinScenes {
		table.Append([]string{entry.name, entry.description})
	}
	table.Render()
	return nil
}
