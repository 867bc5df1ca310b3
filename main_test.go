package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/demo"
)

func TestParseConfigRejects(t *testing.T) {
	table := [][]string{
		{"--fps", "0"},
		{"--fps", "-30"},
		{"--sync", "vsync"},
		{"--snapshot-every", "0"},
		{"--no-such-flag"},
	}

	for _, args := range table {
		if _, err := parseConfig(args); err == nil {
			t.Fatalf("parseConfig(%v): expected an error", args)
		}
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.demo != "8" || cfg.fps != constant.TARGET_FPS || cfg.sync != "fixed" || cfg.snapEvery != 1 {
		t.Fatalf("defaults: got %+v", cfg)
	}

	cfg, err = parseConfig([]string{"--headless", "--frames", "3", "moving-text"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.demo != "moving-text" || !cfg.headless || cfg.frames != 3 {
		t.Fatalf("positional demo: got %+v", cfg)
	}
}

func TestRunHelpExitsCleanly(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Fatalf("run --help: got %v, expected no error", err)
	}
}

type recordingClock struct {
	now    time.Duration
	delays []time.Duration
}

func (c *recordingClock) Ticks() time.Duration { return c.now }

func (c *recordingClock) Delay(d time.Duration) {
	c.delays = append(c.delays, d)
	c.now += d
}

func TestNewPacer(t *testing.T) {
	table := []struct {
		fps      int
		expected time.Duration
	}{
		{constant.TARGET_FPS, constant.FRAME_DELAY},
		{50, 20 * time.Millisecond},
		{30, 33 * time.Millisecond},
	}

	for _, entry := range table {
		clock := &recordingClock{}
		newPacer(&config{fps: entry.fps, sync: "fixed"}, clock).MaySleep()
		if len(clock.delays) != 1 || clock.delays[0] != entry.expected {
			t.Fatalf("fps %d: got delays %v, expected %v", entry.fps, clock.delays, entry.expected)
		}
	}
}

func TestRunHeadlessFrames(t *testing.T) {
	table := []struct {
		frames, every, snapshots int
	}{
		{3, 1, 3},
		{4, 2, 2},
		{5, 10, 0},
	}

	for _, entry := range table {
		dir := t.TempDir()
		cfg := &config{
			fps:         constant.TARGET_FPS,
			sync:        "fixed",
			headless:    true,
			frames:      entry.frames,
			snapshotDir: dir,
			snapEvery:   entry.every,
		}
		d, err := demo.New("close-window", demo.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if err := runHeadless(cfg, d); err != nil {
			t.Fatalf("runHeadless: %v", err)
		}
		matches, err := filepath.Glob(filepath.Join(dir, "frame-*.png"))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != entry.snapshots {
			t.Fatalf("%d frames every %d: got %d snapshots, expected %d", entry.frames, entry.every, len(matches), entry.snapshots)
		}
		last := filepath.Join(dir, "frame-00003.png")
		if entry.every == 1 && matches[len(matches)-1] != last {
			t.Fatalf("%d frames: last snapshot %s, expected %s", entry.frames, matches[len(matches)-1], last)
		}
	}
}

func TestRunHeadlessRealTime(t *testing.T) {
	cfg := &config{fps: 50, sync: "fixed", headless: true, frames: 2, snapEvery: 1, realTime: true}
	d, err := demo.New("close-window", demo.Options{})
	if err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if err := runHeadless(cfg, d); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("realtime: two frames at 50 fps took only %v", elapsed)
	}
}
