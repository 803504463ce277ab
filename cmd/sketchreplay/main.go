// Command sketchreplay replays a recorded drawing and exports it as an image.
//
// The input is a JSON document describing the canvas size, optional
// reference images and a sequence of drawing actions:
//
//	{
//	  "width": 800, "height": 600,
//	  "references": {"background": "paper.png", "dir": "assets", "mode": "AspectFit"},
//	  "actions": [
//	    {"op": "stroke", "id": 1, "color": "#ff0000", "width": 6, "points": [[10, 10], [200, 120]]},
//	    {"op": "path", "id": 2, "color": 2164195328, "width": 12, "points": [[50, 50]]},
//	    {"op": "delete", "id": 1}
//	  ]
//	}
//
// Colors are hex strings or packed 0xAARRGGBB integers. Export settings
// can also come from a TOML profile passed with -conf.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/sketch"
)

func main() {
	var (
		input       = flag.String("in", "-", "drawing document (JSON), - for stdin")
		output      = flag.String("out", "drawing.png", "output file, - for stdout")
		assets      = flag.String("assets", ".", "directory reference images are resolved against")
		format      = flag.String("format", "", "png or jpeg (default: from the output extension)")
		transparent = flag.Bool("transparent", false, "keep the background transparent (png only)")
		include     = flag.Bool("include-images", true, "draw background and foreground images")
		crop        = flag.String("crop", "", "crop to canvas, background or foreground size")
		interp      = flag.String("interp", "bilinear", "scaling: nearest, bilinear or bicubic")
		framed      = flag.Bool("framed", false, "write a length-prefixed PNG instead of a plain file")
		b64         = flag.Bool("base64", false, "write the image as base64 text")
		conf        = flag.String("conf", "", "TOML export profile; explicit flags override it")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *conf != "" {
		p, err := loadProfile(*conf)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		if err := p.apply(flag.CommandLine); err != nil {
			log.Fatalf("Invalid profile: %v", err)
		}
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)

	f, err := resolveFormat(*format, *output)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}
	opts := sketch.ExportOptions{
		Format:                 f,
		TransparentBackground:  *transparent,
		IncludeReferenceImages: *include,
	}
	if err := applyCrop(&opts, *crop); err != nil {
		log.Fatalf("Invalid crop: %v", err)
	}
	mode, err := parseInterpolation(*interp)
	if err != nil {
		log.Fatalf("Invalid interpolation: %v", err)
	}

	doc, err := readDocument(*input)
	if err != nil {
		log.Fatalf("Failed to read drawing: %v", err)
	}

	c := sketch.NewCanvas(doc.Width, doc.Height,
		sketch.WithInterpolation(mode),
		sketch.WithNotifier(sketch.NotifierFunc(func(e sketch.Event) {
			logger.Debug("event", "kind", e.Kind.String(), "payload", e.Payload())
		})),
	)
	if err := doc.Apply(c, fileLoader{root: *assets}); err != nil {
		log.Fatalf("Failed to replay drawing: %v", err)
	}

	if err := write(c, opts, *output, *framed, *b64); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
}

func write(c *sketch.Canvas, opts sketch.ExportOptions, output string, framed, b64 bool) error {
	if !framed && !b64 && output != "-" {
		path, err := c.Save(fileSink{path: output}, opts)
		if err != nil {
			return err
		}
		log.Printf("Drawing saved to %s (%d strokes)\n", path, c.Len())
		return nil
	}

	img, err := c.Export(opts)
	if err != nil {
		return err
	}
	w := os.Stdout
	if output != "-" {
		out, err := os.Create(output) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		defer func() {
			_ = out.Close()
		}()
		w = out
	}
	switch {
	case framed:
		return sketch.WriteFramed(w, img)
	case b64:
		s, err := sketch.EncodeBase64(img, opts.Format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	default:
		return sketch.Encode(w, img, opts.Format)
	}
}

func resolveFormat(name, output string) (sketch.Format, error) {
	if name != "" {
		return sketch.ParseFormat(name)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".jpg", ".jpeg":
		return sketch.FormatJPEG, nil
	default:
		return sketch.FormatPNG, nil
	}
}

func applyCrop(opts *sketch.ExportOptions, crop string) error {
	switch strings.ToLower(crop) {
	case "":
	case "canvas":
		opts.CropToCanvasSize = true
	case "background":
		opts.CropToBackgroundSize = true
	case "foreground":
		opts.CropToForegroundSize = true
	default:
		return fmt.Errorf("unknown crop %q", crop)
	}
	return nil
}

func parseInterpolation(s string) (sketch.InterpolationMode, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return sketch.InterpNearest, nil
	case "bilinear", "":
		return sketch.InterpBilinear, nil
	case "bicubic":
		return sketch.InterpBicubic, nil
	}
	return sketch.InterpBilinear, fmt.Errorf("unknown interpolation %q", s)
}
