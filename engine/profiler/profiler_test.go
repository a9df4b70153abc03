package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(10 * time.Millisecond)

	if p.Tick() {
		t.Error("first tick logged before the interval elapsed")
	}

	time.Sleep(15 * time.Millisecond)
	if !p.Tick() {
		t.Error("tick did not log after the interval elapsed")
	}

	// Counter resets after a log, so the next immediate tick stays quiet.
	if p.Tick() {
		t.Error("tick logged twice within one interval")
	}
}

func TestSetLoggerRedirectsOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler()
	p.SetLogger(log.New(&buf, "", 0))
	p.SetUpdateInterval(time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("tick did not log")
	}
	if !strings.Contains(buf.String(), "FPS") {
		t.Errorf("stat line missing from custom logger output: %q", buf.String())
	}
}

func TestSetUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(-time.Second)
	if p.updateInterval != time.Second {
		t.Errorf("update interval = %v, want default 1s", p.updateInterval)
	}
}
