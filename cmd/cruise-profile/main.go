package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/uyouii/cruise-profile/config"
	"github.com/uyouii/cruise-profile/cruise"
	"github.com/uyouii/cruise-profile/fixture"
	"github.com/uyouii/cruise-profile/utils"
	"go.uber.org/zap"
)

const usage = `usage: cruise-profile [flags] [segments|profiles]

  segments   print every segment with its restrictions and samples
  profiles   print the recommended cruise speed of every segment (default)
`

type options struct {
	command     string
	fixturePath string
	at          string
	hour        int
	seed        int64
	jsonOutput  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("cruise-profile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.fixturePath, "fixture", "", "path to a YAML fixture, the Stuttgart demo route when empty")
	fs.StringVar(&opts.at, "at", "", "evaluation time, RFC3339 (default now)")
	fs.IntVar(&opts.hour, "hour", -1, "override the hour of day of the evaluation time (0-23)")
	fs.Int64Var(&opts.seed, "seed", 1, "seed of the demo route samples")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.command = "profiles"
	switch fs.NArg() {
	case 0:
	case 1:
		opts.command = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errors.New("too many arguments")
	}
	if opts.command != "profiles" && opts.command != "segments" {
		fs.Usage()
		return nil, fmt.Errorf("unknown command %q", opts.command)
	}
	if opts.hour < -1 || opts.hour > 23 {
		return nil, fmt.Errorf("hour %d out of range", opts.hour)
	}
	return opts, nil
}

// evaluationTime resolves the instant in loc, with the hour replaced when hour >= 0.
func evaluationTime(at string, hour int, now time.Time, loc *time.Location) (time.Time, error) {
	res := now
	if at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse evaluation time: %w", err)
		}
		res = parsed
	}
	res = res.In(loc)

	if hour >= 0 {
		res = time.Date(res.Year(), res.Month(), res.Day(), hour, 0, 0, 0, loc)
	}
	return res, nil
}

func loadFixture(ctx context.Context, opts *options, now time.Time) (*fixture.Fixture, error) {
	logger := utils.GetLogger(ctx)

	if opts.fixturePath == "" {
		logger.Info("using demo route", zap.Int64("seed", opts.seed))
		return fixture.Stuttgart(now, opts.seed), nil
	}

	f, err := fixture.Load(opts.fixturePath)
	if err != nil {
		logger.Error("Load fixture failed", zap.String("path", opts.fixturePath), zap.Error(err))
		return nil, err
	}
	logger.Info("fixture loaded", zap.String("path", opts.fixturePath),
		zap.Int("segmentCnt", len(f.Segments)), zap.Int("sampleCnt", len(f.Samples)))
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) (exitCode int) {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg := config.Load()
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "init logger: %v\n", err)
		return 2
	}
	logger := zap.L().With(zap.String("runId", uuid.NewString()))
	defer logger.Sync() //nolint:errcheck
	ctx := utils.WithLogger(context.Background(), logger)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cruise-profile recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
			exitCode = 1
		}
	}()

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("LoadLocation failed", zap.String("timeZone", cfg.TimeZone), zap.Error(err))
		return 2
	}

	now, err := evaluationTime(opts.at, -1, time.Now(), loc)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	at, err := evaluationTime(opts.at, opts.hour, now, loc)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	f, err := loadFixture(ctx, opts, now)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cruiseCfg := cfg.Cruise()
	if f.Config != nil {
		cruiseCfg = *f.Config
	}

	if opts.command == "segments" {
		if err := printSegments(stdout, f, at, opts.jsonOutput); err != nil {
			logger.Error("printSegments failed", zap.Error(err))
			return 1
		}
		return 0
	}

	profiles, err := cruise.EvaluateAll(ctx, f.Segments, f.Samples, cruiseCfg, at)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := printProfiles(stdout, profiles, cruiseCfg, opts.jsonOutput); err != nil {
		logger.Error("printProfiles failed", zap.Error(err))
		return 1
	}
	return 0
}
