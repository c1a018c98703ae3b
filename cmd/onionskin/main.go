package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/32bitkid/onionskin"
	"github.com/32bitkid/onionskin/config"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	configPath = flag.String("config", "", "scene config (TOML)")
	layerIndex = flag.Int("layer", 0, "layer to render")
	frame      = flag.Int("frame", 1, "frame to render")
	through    = flag.Int("through", 0, "render frames -frame..-through as an animated GIF")
	delay      = flag.Int("delay", 8, "GIF frame delay, in 100ths of a second")
)

func _main() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return errors.New("usage: onionskin [flags] out.png|out.gif")
	}
	out := flag.Arg(0)

	cfg := config.Default()
	dir := "."
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
		dir = filepath.Dir(*configPath)
	}
	log.SetLevel(cfg.Level())

	doc, err := loadDocument(cfg, dir)
	if err != nil {
		return err
	}
	log.Infof("document: %d layers, %d frames", doc.LayerCount(), doc.FrameCount())

	renderer := onionskin.NewCanvasRenderer(cfg.Options(log.StandardLogger()))
	view := cfg.ViewTransform()
	bounds := image.Rect(0, 0, cfg.Width, cfg.Height)

	if *through < *frame {
		surface := image.NewRGBA(bounds)
		renderer.SetSurface(surface)
		renderer.SetViewTransform(viewAt(doc, view, *frame))
		renderer.Paint(doc, *layerIndex, *frame)
		return writePNG(out, surface)
	}

	anim := &gif.GIF{}
	for f := *frame; f <= *through; f++ {
		surface := image.NewRGBA(bounds)
		renderer.SetSurface(surface)
		renderer.SetViewTransform(viewAt(doc, view, f))
		renderer.Paint(doc, *layerIndex, f)

		img := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(img, bounds, surface, image.Point{})
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, *delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalNone)
		log.WithField("frame", f).Debug("rendered")
	}
	return writeGIF(out, anim)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stderr)
	err := _main()
	if err != nil {
		log.Fatal(err)
	}
}
