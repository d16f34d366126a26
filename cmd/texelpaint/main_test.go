package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelpaint/config"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-headless", "-replay", "s.yaml", "-log", "x.log"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !f.headless || f.replayPath != "s.yaml" || f.logPath != "x.log" {
		t.Fatalf("flags = %+v", f)
	}
	if _, err := parseFlags([]string{"-headless"}); err == nil {
		t.Fatal("headless without replay accepted")
	}
}

func TestHeadlessReplayRuns(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "s.yaml")
	body := "name: smoke\nevents:\n  - type: click\n    x: 5\n    y: 1\n  - type: close\n"
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "texelpaint.json")
	logPath := filepath.Join(dir, "run.log")
	t.Cleanup(func() {
		config.UseFile("")
		log.SetOutput(os.Stderr)
	})

	if err := run([]string{"-headless", "-replay", script, "-config", cfgPath, "-log", logPath}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config defaults not written: %v", err)
	}
	if fi, err := os.Stat(logPath); err != nil || fi.Size() == 0 {
		t.Fatalf("log file missing or empty: %v", err)
	}
}
