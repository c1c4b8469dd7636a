// Command tokenstack stacks images and flat colors into a token and writes
// the composite as PNG.
//
// Layers are given bottom first; an argument starting with '#' is a color:
//
//	tokenstack -out token.png -masks 2 frame-back.png portrait.webp frame.png
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/tokenlayer"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		output     = flag.String("out", "token.png", "output file")
		size       = flag.Int("size", 400, "token width and height")
		density    = flag.Int("density", tokenlayer.DefaultMaskDensity, "contour tracing grid size")
		masks      = flag.String("masks", "", "comma-separated layer indexes (0 = bottom) that provide masks")
		tint       = flag.String("tint", "", "tint color applied to image layers")
		keys       = flag.String("transparent", "", "comma-separated colors carved out of image layers")
		maskOp     = flag.String("mask-op", "source-in", "composite operation applied after a provider mask")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
		logFile    = flag.String("log-file", "", "also write logs to this file, rotated")
	)
	flag.Parse()

	logger := newLogger(*logLevel, *logFile)
	tokenlayer.SetLogger(logger)

	opts := options{
		configPath: *configPath,
		output:     *output,
		size:       *size,
		density:    *density,
		masks:      *masks,
		tint:       *tint,
		keys:       *keys,
		maskOp:     *maskOp,
		layers:     flag.Args(),
	}
	if err := run(logger, opts); err != nil {
		logger.Error("tokenstack failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	output     string
	size       int
	density    int
	masks      string
	tint       string
	keys       string
	maskOp     string
	layers     []string
}

func run(logger *slog.Logger, o options) error {
	if len(o.layers) == 0 {
		return fmt.Errorf("no layers given")
	}

	cfg := tokenlayer.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = tokenlayer.LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	var tintColor tokenlayer.Color
	if o.tint != "" {
		c, err := tokenlayer.ParseHex(o.tint)
		if err != nil {
			return fmt.Errorf("tint: %w", err)
		}
		tintColor = c
	}
	keyColors, err := parseColors(o.keys)
	if err != nil {
		return fmt.Errorf("transparent: %w", err)
	}
	providers, err := parseIndexes(o.masks, len(o.layers))
	if err != nil {
		return fmt.Errorf("masks: %w", err)
	}
	maskOp := tokenlayer.OpSourceIn
	if o.maskOp != "" {
		if maskOp, err = tokenlayer.ParseCompositeOp(o.maskOp); err != nil {
			return err
		}
	}

	layerOpts := []tokenlayer.Option{
		tokenlayer.WithConfig(cfg),
		tokenlayer.WithMaskDensity(o.density),
	}

	view := tokenlayer.NewView(o.size, o.size)
	for i, arg := range o.layers {
		l, err := buildLayer(arg, o.size, tintColor, o.tint != "", layerOpts)
		if err != nil {
			return fmt.Errorf("layer %d (%s): %w", i, arg, err)
		}
		l.SetProvidesMask(providers[i])
		l.SetMaskCompositeOp(maskOp)
		for _, c := range keyColors {
			if !l.IsColorLayer() {
				l.AddTransparentColor(c)
			}
		}
		view.Add(l)
		logger.Info("layer added", "index", i, "source", arg, "id", l.ID(), "mask", providers[i])
	}
	view.Redraw()

	if err := view.Composite().SavePNG(o.output); err != nil {
		return err
	}
	logger.Info("token written", "path", o.output, "size", o.size, "layers", len(o.layers))
	return nil
}

func buildLayer(arg string, size int, tint tokenlayer.Color, tintEnabled bool, opts []tokenlayer.Option) (*tokenlayer.Layer, error) {
	if strings.HasPrefix(arg, "#") {
		c, err := tokenlayer.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		return tokenlayer.FromColor(c, size, size, opts...)
	}
	img, err := decode(arg)
	if err != nil {
		return nil, err
	}
	return tokenlayer.FromImage(img, size, size, tint, tintEnabled, opts...)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	slog.Debug("decoded image", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

func parseColors(list string) ([]tokenlayer.Color, error) {
	var out []tokenlayer.Color
	for _, s := range splitList(list) {
		c, err := tokenlayer.ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseIndexes(list string, n int) ([]bool, error) {
	set := make([]bool, n)
	for _, s := range splitList(list) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("index %d out of range [0, %d)", i, n)
		}
		set[i] = true
	}
	return set, nil
}

func splitList(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func newLogger(level, file string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	var w io.Writer = os.Stderr
	if strings.TrimSpace(file) != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
