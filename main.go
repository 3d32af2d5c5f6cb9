package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/irishrain/epdoptimize/optimize"
	"github.com/irishrain/epdoptimize/parallel"
)

var cli struct {
	Verbose bool `help:"Enable debug logging" short:"v"`
	Jobs    int  `help:"Number of parallel workers (defaults to one per CPU)"`

	Optimize optimize.CLICmd `cmd:"" help:"Dither and palette-reduce images for e-paper displays"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("epdoptimize"),
		kong.Description("Optimize images for electronic-paper displays."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	pool := parallel.Start(cli.Jobs)
	kctx.FatalIfErrorf(kctx.Run(pool.Do, pool.Wait))
}
