package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/output"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// errUsage marks flag parse errors, reported with exit code 2
var errUsage = errors.New("usage")

// options holds everything parsed from the command line
type options struct {
	sceneName  string
	workers    int
	tileSize   int
	rowOrder   output.RowOrder
	quiet      bool
	width      int
	height     int
	outputPath string
}

// parseArgs parses flags followed by the three positional arguments nx ny outfile
func parseArgs(args []string, stderr io.Writer) (options, bool, error) {
	var opts options

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.sceneName, "scene", "reference", "Built-in scene to render (see -list)")
	flags.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.IntVar(&opts.tileSize, "tile", renderer.DefaultConfig().TileSize, "Tile size in pixels")
	rows := flags.String("rows", "top-down", "Row order of the output image: 'top-down' or 'bottom-up'")
	flags.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	list := flags.Bool("list", false, "List built-in scenes and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Simple Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options] nx ny outfile")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "The output format follows the outfile extension: .ppm, .png, .bmp, .tif/.tiff")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, false, err
		}
		return opts, false, fmt.Errorf("%w: %w", errUsage, err)
	}
	if *list {
		return opts, true, nil
	}

	if flags.NArg() != 3 {
		flags.Usage()
		return opts, false, fmt.Errorf("expected 3 arguments (nx ny outfile), got %d", flags.NArg())
	}

	var err error
	if opts.width, err = strconv.Atoi(flags.Arg(0)); err != nil {
		return opts, false, fmt.Errorf("invalid width %q: %w", flags.Arg(0), core.ErrInvalidDimensions)
	}
	if opts.height, err = strconv.Atoi(flags.Arg(1)); err != nil {
		return opts, false, fmt.Errorf("invalid height %q: %w", flags.Arg(1), core.ErrInvalidDimensions)
	}
	if err := renderer.ValidateDimensions(opts.width, opts.height); err != nil {
		return opts, false, err
	}
	opts.outputPath = flags.Arg(2)

	if opts.rowOrder, err = output.ParseRowOrder(*rows); err != nil {
		return opts, false, err
	}
	return opts, false, nil
}

// run executes the command and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "raytracer: ", 0)

	opts, listOnly, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, errUsage) {
		// flag has already printed the error and usage
		return 2
	}
	if err != nil {
		errLog.Printf("%v", err)
		return 1
	}
	if listOnly {
		for _, info := range scene.ListBuiltIn() {
			fmt.Fprintf(stdout, "  %-14s %-18s %s\n", info.ID, info.DisplayName, info.Description)
		}
		return 0
	}

	var logger core.Logger = log.New(stdout, "", 0)
	if opts.quiet {
		logger = core.NopLogger{}
	}

	if err := render(ctx, opts, logger); err != nil {
		errLog.Printf("%v", err)
		return 1
	}
	return 0
}

// render builds the scene, opens the output and writes the rendered image.
// The output is opened first so an unwritable path fails before any tracing.
func render(ctx context.Context, opts options, logger core.Logger) (err error) {
	preset, err := scene.Lookup(opts.sceneName)
	if err != nil {
		return err
	}
	camera, err := renderer.NewCameraFromConfig(preset.CameraConfig)
	if err != nil {
		return err
	}

	out, err := output.Create(opts.outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if discardErr := out.Discard(); discardErr != nil {
				err = errors.Join(err, discardErr)
			}
			return
		}
		err = out.Close()
	}()

	raytracer, err := renderer.NewRaytracer(preset.Scene, camera, preset.Light, opts.width, opts.height,
		renderer.Config{TileSize: opts.tileSize, NumWorkers: opts.workers}, logger)
	if err != nil {
		return err
	}

	raster, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := out.Write(raster, output.Options{RowOrder: opts.rowOrder}); err != nil {
		return err
	}

	logger.Printf("Render saved as %s (%s, %s, %.1f%% of pixels hit)\n",
		out.Path(), out.Format(), opts.rowOrder, 100*stats.HitRatio())
	return nil
}
