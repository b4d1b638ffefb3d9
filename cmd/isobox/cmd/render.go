package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/isobox/cmd/isobox/internal/config"
	"github.com/go-drift/isobox/pkg/errors"
	"github.com/go-drift/isobox/pkg/graphics"
	"github.com/go-drift/isobox/pkg/isometric"
	"github.com/go-drift/isobox/pkg/raster"
	"github.com/go-drift/isobox/pkg/svg"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to PNG or SVG",
		Long: `Render an isometric box scene to an image file.

With no scene file, renders a single default box on a 200x200 surface.

Flags:
  -o, --output FILE    Output file (default: box.png, or derived from the scene name)
  --format png|svg     Output format (default: inferred from the output extension)
  --supersample N      Render PNG at N times resolution and downsample (default: 2)`,
		Usage: "isobox render [flags] [scene.yaml]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scenePath   string
	output      string
	format      string
	supersample int
}

func parseRenderOptions(args []string) (renderOptions, error) {
	opts := renderOptions{supersample: 2}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file argument", arg)
			}
			i++
			opts.output = args[i]
		case arg == "--format":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--format requires an argument")
			}
			i++
			opts.format = args[i]
		case arg == "--supersample":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--supersample requires an argument")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 || n > 8 {
				return opts, fmt.Errorf("invalid supersample factor %q (want 1-8)", args[i])
			}
			opts.supersample = n
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		default:
			if opts.scenePath != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.scenePath = arg
		}
	}

	if opts.output == "" {
		if opts.scenePath != "" {
			ext := "png"
			if opts.format == "svg" {
				ext = "svg"
			}
			opts.output = trimExt(opts.scenePath) + "." + ext
		} else if opts.format == "svg" {
			opts.output = "box.svg"
		} else {
			opts.output = "box.png"
		}
	}

	if opts.format == "" {
		if strings.HasSuffix(strings.ToLower(opts.output), ".svg") {
			opts.format = "svg"
		} else {
			opts.format = "png"
		}
	}
	if opts.format != "png" && opts.format != "svg" {
		return opts, fmt.Errorf("unsupported format %q (want png or svg)", opts.format)
	}

	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderOptions(args)
	if err != nil {
		return err
	}

	scene := config.Default()
	if opts.scenePath != "" {
		scene, err = config.Load(opts.scenePath)
		if err != nil {
			return errors.New("render.load", errors.KindConfig, err)
		}
	}
	if err := scene.CheckRequires(Version); err != nil {
		return errors.New("render.requires", errors.KindConfig, err)
	}

	resolved, err := scene.Resolve()
	if err != nil {
		return errors.New("render.resolve", errors.KindConfig, err)
	}

	list, err := recordScene(resolved)
	if err != nil {
		return err
	}

	switch opts.format {
	case "svg":
		err = writeSVG(opts.output, resolved, list)
	default:
		err = writePNG(opts.output, resolved, list, opts.supersample)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d box(es) to %s\n", len(resolved.Boxes), opts.output)
	return nil
}

// recordScene records the scene's paint operations into a display list
// so each backend replays the same drawing.
func recordScene(scene *config.Resolved) (*graphics.DisplayList, error) {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{
		Width:  float64(scene.Width),
		Height: float64(scene.Height),
	})

	canvas.Clear(scene.Background)
	for i, box := range scene.Boxes {
		if err := isometric.Render(canvas, box); err != nil {
			return nil, errors.Newf("render.record", errors.KindRender, "box %d: %v", i, err)
		}
	}

	return recorder.EndRecording(), nil
}

func writePNG(path string, scene *config.Resolved, list *graphics.DisplayList, supersample int) error {
	canvas := raster.New(scene.Width*supersample, scene.Height*supersample)
	if supersample > 1 {
		canvas.Scale(float64(supersample), float64(supersample))
	}
	list.Paint(canvas)

	img := raster.Downsample(canvas.Image(), supersample)

	f, err := os.Create(path)
	if err != nil {
		return errors.New("render.png", errors.KindEncode, err)
	}
	defer f.Close()

	if err := raster.EncodePNG(f, img); err != nil {
		return errors.New("render.png", errors.KindEncode, err)
	}
	return nil
}

func writeSVG(path string, scene *config.Resolved, list *graphics.DisplayList) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("render.svg", errors.KindEncode, err)
	}
	defer f.Close()

	canvas := svg.New(f, scene.Width, scene.Height)
	list.Paint(canvas)
	canvas.Close()
	return nil
}
