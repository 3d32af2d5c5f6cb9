// Package optimize implements the batch pipeline command: decode, optionally
// resize, dither to a target palette, optionally map onto device colors, and
// encode.
package optimize

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/irishrain/epdoptimize/dither"
	"github.com/irishrain/epdoptimize/palette"
	"github.com/irishrain/epdoptimize/parallel"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type CLICmd struct {
	Scan   string `help:"Source folder to scan" default:"."`
	Dest   string `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"optimized"`
	Resize bool   `help:"Resize image" default:"false" group:"resize"`
	Width  int    `help:"Max width" group:"resize"`
	Height int    `help:"Max height" group:"resize"`
	Crop   bool   `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Fill   string `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`

	Palette      string `help:"Palette name (default, gameboy, spectra6, acep), comma-separated hex colors, or PAL file in RIFF format" default:"default" group:"dither"`
	Type         string `help:"Dithering strategy" enum:"errorDiffusion,ordered,random,quantizationOnly" default:"errorDiffusion" group:"dither"`
	Kernel       string `help:"Error diffusion kernel (floydSteinberg, falseFloydSteinberg, jarvis, stucki, burkes, sierra3, sierra2, Sierra2-4A)" default:"floydSteinberg" group:"dither"`
	MatrixWidth  int    `help:"Ordered dithering matrix width (1-8)" default:"4" group:"dither"`
	MatrixHeight int    `help:"Ordered dithering matrix height (1-8)" default:"4" group:"dither"`
	RandomType   string `help:"Random dithering output" enum:"blackAndWhite,rgb" default:"blackAndWhite" group:"dither"`
	Device       string `help:"After dithering, substitute this named palette's colors with its device color set" group:"dither"`

	Format string `help:"Output format of processed image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`

	FillColor color.Color   `kong:"-"`
	Colors    color.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case (c.Width < 0):
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case (c.Height < 0):
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
	}

	if (!c.Crop) && (c.Fill != "") {
		if c.FillColor, err = palette.ParseHex(c.Fill); err != nil {
			return fmt.Errorf("invalid fill color: %w", err)
		}
	}

	if c.Colors, err = palette.Load(c.Palette); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	opts := dither.Options{
		Mode:         dither.ParseMode(c.Type),
		Kernel:       c.Kernel,
		MatrixWidth:  c.MatrixWidth,
		MatrixHeight: c.MatrixHeight,
		RandomMode:   dither.ParseRandomMode(c.RandomType),
		Palette:      c.Colors,
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				if err := c.processFile(fileName, opts); err != nil {
					errCount.Add(1)
					slog.Error("could not process image", "file", fileName, "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) processFile(fileName string, opts dither.Options) error {
	filePath := filepath.Join(c.Scan, fileName)
	logger := slog.Default().With("file", filePath)

	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	defer imgFile.Close()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	if c.Resize {
		img = resize(logger, img, c.Width, c.Height, c.Crop, c.FillColor)
	}

	logger.Info("dithering", "type", c.Type, "palette", c.Palette, "colors", len(c.Colors))
	out := dither.Dither(img, opts)

	if c.Device != "" {
		replaced, unmatched, err := dither.Replace(out,
			palette.Lookup(c.Device), palette.DeviceColors(c.Device))
		if err != nil {
			return fmt.Errorf("could not map device colors %q: %w", c.Device, err)
		}
		if unmatched > 0 {
			logger.Warn("pixels matched no palette color; check that the dithering palette matches the device set",
				"device", c.Device, "pixels", unmatched)
		}
		out = replaced
	}

	if err = save(out, imgType, c.Format, c.Dest, fileName); err != nil {
		return fmt.Errorf("could not save image to %q: %w", c.Dest, err)
	}
	return nil
}

func save(img image.Image, imgType, outType, destDir, srcName string) (err error) {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if (unsupOnly && (imgType != "webp")) || (outType == "same") {
		outType = imgType
	}

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
	}()

	switch outType {
	case "gif":
		if err = gif.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode GIF destination %q: %w", destName, err)
		}
	case "jpeg":
		if err = jpeg.Encode(outFile, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG destination %q: %w", destName, err)
		}
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", outType)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
