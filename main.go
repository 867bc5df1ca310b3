package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/pflag"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/demo"
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/util"
	"github.com/ushitora-anqou/sdltour/window"
)

type config struct {
	demo        string
	assets      string
	fps         int
	sync        string
	headless    bool
	frames      int
	snapshotDir string
	snapEvery   int
	realTime    bool
	trace       bool
	list        bool
}

func parseConfig(args []string) (*config, error) {
	cfg := &config{}
	flags := pflag.NewFlagSet("sdltour", pflag.ContinueOnError)
	flags.StringVarP(&cfg.demo, "demo", "d", fmt.Sprint(demo.Last()), "demo to run, by number or name")
	flags.StringVarP(&cfg.assets, "assets", "a", ".", "directory holding images/, fonts/ and sounds/")
	flags.IntVar(&cfg.fps, "fps", constant.TARGET_FPS, "target frames per second")
	flags.StringVar(&cfg.sync, "sync", "fixed", "frame pacing: fixed (sleep a whole frame) or adaptive")
	flags.BoolVar(&cfg.headless, "headless", false, "render in memory instead of opening a window")
	flags.IntVar(&cfg.frames, "frames", 0, "quit after this many frames (headless only, 0 = never)")
	flags.StringVar(&cfg.snapshotDir, "snapshot-dir", "", "write every presented frame as PNG here (headless only)")
	flags.IntVar(&cfg.snapEvery, "snapshot-every", 1, "write only every Nth presented frame (headless only)")
	flags.BoolVar(&cfg.realTime, "realtime", false, "sleep for real between frames (headless only)")
	flags.BoolVarP(&cfg.trace, "trace", "v", false, "log lifecycle diagnostics")
	flags.BoolVarP(&cfg.list, "list", "l", false, "list the demos and exit")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		cfg.demo = flags.Arg(0)
	}
	if cfg.fps <= 0 {
		return nil, fmt.Errorf("Invalid fps: %d", cfg.fps)
	}
	if cfg.sync != "fixed" && cfg.sync != "adaptive" {
		return nil, fmt.Errorf("Invalid sync mode: %q", cfg.sync)
	}
	if cfg.snapEvery <= 0 {
		return nil, fmt.Errorf("Invalid snapshot interval: %d", cfg.snapEvery)
	}
	return cfg, nil
}

func newPacer(cfg *config, clock window.Clock) window.Pacer {
	if cfg.sync == "adaptive" {
		return window.NewTimeSynchronizer(clock, float64(cfg.fps))
	}
	delay := constant.FRAME_DELAY
	if cfg.fps != constant.TARGET_FPS {
		delay = time.Duration(1000/cfg.fps) * time.Millisecond
	}
	return window.NewFixedPacer(clock, delay)
}

// play loads the scene, runs the loop and releases the scene's assets on
// every path.
func play(loop *engine.Loop) error {
	defer loop.Close()
	if err := loop.Load(); err != nil {
		return err
	}
	return loop.Run()
}

func runHeadless(cfg *config, d *demo.Demo) error {
	wind, err := window.NewHeadlessWindow(window.HeadlessConfig{
		Width:         constant.WINDOW_WIDTH,
		Height:        constant.WINDOW_HEIGHT,
		SnapshotDir:   cfg.snapshotDir,
		SnapshotEvery: cfg.snapEvery,
		RealTime:      cfg.realTime,
		OnFrame: func(frame int, wind *window.HeadlessWindow) {
			if cfg.frames > 0 && frame >= cfg.frames {
				wind.Push(window.QuitEvent{})
			}
		},
	})
	if err != nil {
		return err
	}

	if err := play(engine.NewLoop(wind, d, newPacer(cfg, wind))); err != nil {
		wind.Close()
		return err
	}
	util.Trace("headless: %d frames presented", wind.Frames())
	return wind.Close()
}

func run(args []string) error {
	// Parse options and arguments
	cfg, err := parseConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.list {
		for _, line := range demo.List() {
			fmt.Println(line)
		}
		return nil
	}
	if cfg.trace || os.Getenv("SDLTOUR_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("SDLTOUR_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	d, err := demo.New(cfg.demo, demo.Options{Assets: cfg.assets})
	if err != nil {
		return err
	}
	util.Trace("main: running demo %d (%s)", d.Number, d.Title)

	if cfg.headless {
		return runHeadless(cfg, d)
	}
	return runWindowed(cfg, d)
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}
