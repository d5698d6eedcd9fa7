package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/osuushi/pointset"
	"github.com/osuushi/pointset/advanced"
	"github.com/osuushi/pointset/internal"
	"github.com/osuushi/pointset/internal/dbg"
	"github.com/osuushi/pointset/internal/pointio"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Reads a point set and prints its convex hull, minimum width and closest
// pair. Input is a file argument or stdin, in any of the pointio formats:
//
//	4
//	0 0
//	0 2
//	2 2
//	2 0
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const (
	ExitSuccess = 0
	// The computation failed, e.g. too few points for a closest pair
	ExitFailure = 1
	// Bad flags, config or input
	ExitUsage = 2
)

var commandSections = map[string]internal.Sections{
	"analyze": internal.AllSections,
	"hull":    {Hull: true},
	"width":   {Width: true},
	"closest": {Closest: true},
}

type options struct {
	config      *string
	format      *string
	inputFormat *string
	color       *bool
	verify      *bool
	verbose     *bool
	png         *string
	scale       *float64
	imgcat      *bool
	labels      *bool
	profileDir  *string
	files       map[string]*string
}

func newApp(config Config) (*kingpin.Application, *options) {
	app := kingpin.New("pointset", "Convex hull, minimum width and closest pair of a 2D point set.")
	app.HelpFlag.Short('h')

	opts := &options{files: map[string]*string{}}
	opts.config = app.Flag("config", "YAML file with flag defaults.").Envar("POINTSET_CONFIG").PlaceHolder("FILE").String()
	opts.format = app.Flag("format", "Output format.").Short('f').Default(config.Format).Enum(pointio.OutputFormats...)
	opts.inputFormat = app.Flag("input-format", "Input format.").Short('i').Default(config.InputFormat).Enum(pointio.InputFormats...)
	opts.color = app.Flag("color", "Colorize text output.").Default(fmt.Sprint(config.Color)).Bool()
	opts.verify = app.Flag("verify", "Cross-check the closest pair against a brute force search.").Default(fmt.Sprint(config.Verify)).Bool()
	opts.verbose = app.Flag("verbose", "Log debug details to stderr.").Short('v').Default(fmt.Sprint(config.Verbose)).Bool()
	opts.png = app.Flag("png", "Render the result to a PNG file.").Default(config.Render.Path).PlaceHolder("PATH").String()
	opts.scale = app.Flag("scale", "Pixels per unit when rendering.").Default(fmt.Sprint(config.Render.Scale)).Float64()
	opts.imgcat = app.Flag("imgcat", "Print the rendered PNG inline (iTerm).").Default(fmt.Sprint(config.Render.Imgcat)).Bool()
	opts.labels = app.Flag("labels", "Label hull vertices in the rendering.").Default(fmt.Sprint(config.Render.Labels)).Bool()
	opts.profileDir = app.Flag("profile", "Write a CPU profile to this directory.").PlaceHolder("DIR").String()

	commands := []struct{ name, help string }{
		{"analyze", "Hull, minimum width and closest pair."},
		{"hull", "Convex hull only."},
		{"width", "Minimum width only."},
		{"closest", "Closest pair only."},
	}
	for _, command := range commands {
		cmd := app.Command(command.name, command.help)
		if command.name == "analyze" {
			cmd.Default()
		}
		opts.files[command.name] = cmd.Arg("file", "Input file. Reads stdin when omitted.").ExistingFile()
	}
	return app, opts
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config := DefaultConfig()
	if path := configPath(args); path != "" {
		var err error
		if config, err = LoadConfig(path); err != nil {
			fmt.Fprintln(stderr, "pointset:", err)
			return ExitUsage
		}
	}

	app, opts := newApp(config)
	terminated := -1
	app.UsageWriter(stdout).ErrorWriter(stderr).Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	command, err := app.Parse(args)
	if terminated >= 0 {
		return terminated
	}
	if err != nil {
		fmt.Fprintln(stderr, "pointset:", err)
		return ExitUsage
	}

	if *opts.scale <= 0 {
		fmt.Fprintf(stderr, "pointset: invalid render scale %v: must be positive\n", *opts.scale)
		return ExitUsage
	}

	level := slog.LevelInfo
	if *opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *opts.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*opts.profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	points, err := readPoints(*opts.files[command], pointio.InputFormat(*opts.inputFormat), stdin)
	if err != nil {
		logger.Error("reading points failed", "err", err)
		return ExitUsage
	}
	logger.Debug("read points", "count", len(points), "command", command)

	start := time.Now()
	report, err := pointset.AnalyzeSections(points, commandSections[command])
	if err != nil {
		logger.Error("analysis failed", "command", command, "err", err)
		return ExitFailure
	}
	logAnalysis(logger, report, time.Since(start))

	if *opts.verify && report.Closest != nil {
		if err := verifyClosest(points, *report.Closest); err != nil {
			logger.Error("verification failed", "err", err)
			return ExitFailure
		}
		logger.Debug("closest pair verified against brute force")
	}

	if err := pointio.WriteReport(stdout, report, pointio.Options{
		Format: pointio.OutputFormat(*opts.format),
		Color:  *opts.color,
	}); err != nil {
		logger.Error("writing report failed", "err", err)
		return ExitFailure
	}

	if *opts.png != "" {
		scene := report.Scene(points)
		scene.Labels = *opts.labels
		if err := scene.SavePNG(*opts.png, *opts.scale); err != nil {
			logger.Error("rendering failed", "err", err)
			return ExitFailure
		}
		logger.Debug("rendered", "path", *opts.png, "scale", *opts.scale)
		if *opts.imgcat {
			if err := internal.CatPNG(*opts.png, stdout); err != nil {
				logger.Error("displaying rendering failed", "err", err)
				return ExitFailure
			}
		}
	}
	return ExitSuccess
}

func readPoints(path string, format pointio.InputFormat, stdin io.Reader) ([]internal.Point, error) {
	if path == "" {
		return pointio.Read(stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	points, err := pointio.Read(f, format)
	return points, errors.Wrap(err, path)
}

func logAnalysis(logger *slog.Logger, report pointset.Report, elapsed time.Duration) {
	attrs := []any{"points", report.PointCount, "elapsed", elapsed}
	if report.Hull != nil {
		attrs = append(attrs, "hull_vertices", len(report.Hull.Points))
	}
	if report.Width != nil {
		attrs = append(attrs, "width", report.Width.Value)
	}
	if report.Closest != nil {
		attrs = append(attrs,
			"closest_a", dbg.Name(report.Closest.A),
			"closest_b", dbg.Name(report.Closest.B),
			"distance", report.Closest.Distance())
	}
	logger.Debug("analyzed", attrs...)
}

func verifyClosest(points []internal.Point, pair pointset.Pair) (err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	expected := advanced.BruteForceClosestPair(points)
	if expected.DistanceSquared != pair.DistanceSquared {
		return errors.Errorf("closest pair %s has squared distance %v, brute force found %s with %v",
			pair, pair.DistanceSquared, expected, expected.DistanceSquared)
	}
	return nil
}
