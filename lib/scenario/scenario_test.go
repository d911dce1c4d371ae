// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/frameclock/lib/clock"
	"github.com/bureau-foundation/frameclock/lib/config"
	"github.com/bureau-foundation/frameclock/lib/testutil"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// testConfig runs at 2 frames per second so every frame is 500ms.
func testConfig() *config.Config {
	return &config.Config{
		FrameRate: 2,
		LogLevel:  "info",
		Timers: []config.TimerConfig{
			{Name: "once", Duration: 2 * time.Second, Start: config.StartImmediate},
			{Name: "every", Duration: time.Second, Repeat: true, Start: config.StartImmediate},
			{Name: "limited", Duration: 500 * time.Millisecond, Repeat: true, Start: config.StartImmediate, Limit: 3},
			{Name: "later", Duration: time.Second, Start: config.StartManual},
		},
	}
}

func stepFrames(scenario *Scenario, source *clock.FakeClock, count int) [][]string {
	var fired [][]string
	for range count {
		source.Sleep(scenario.FrameInterval())
		fired = append(fired, scenario.Step())
	}
	return fired
}

func TestNewRegistersConfiguredTimers(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)

	if scenario.Registry().Len() != 4 {
		t.Fatalf("registry holds %d timers, want 4", scenario.Registry().Len())
	}
	once, ok := scenario.Lookup("once")
	if !ok || !once.Timer().Active() {
		t.Fatal("immediate timer not started")
	}
	later, ok := scenario.Lookup("later")
	if !ok || later.Timer().Active() {
		t.Fatal("manual timer started")
	}
	if _, ok := scenario.Lookup("missing"); ok {
		t.Fatal("Lookup found an unconfigured timer")
	}
	if scenario.FrameInterval() != 500*time.Millisecond {
		t.Fatalf("FrameInterval() = %v, want 500ms", scenario.FrameInterval())
	}
}

func TestStepFiresAndReaps(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)

	fired := stepFrames(scenario, source, 4)

	want := [][]string{
		{"limited"},
		{"every", "limited"},
		{"limited"},
		{"once", "every"},
	}
	for frame := range want {
		if !slices.Equal(fired[frame], want[frame]) {
			t.Errorf("frame %d fired %v, want %v", frame+1, fired[frame], want[frame])
		}
	}

	once, _ := scenario.Lookup("once")
	if scenario.Registered(once) {
		t.Error("fired one-shot timer still registered")
	}
	limited, _ := scenario.Lookup("limited")
	if limited.Timer().Active() || limited.Timer().ElapsedCount() != 3 {
		t.Errorf("limited timer: active=%v fires=%d, want stopped after 3", limited.Timer().Active(), limited.Timer().ElapsedCount())
	}
	if !scenario.Registered(limited) {
		t.Error("stopped repeating timer was reaped")
	}
	if scenario.Frame() != 4 {
		t.Errorf("Frame() = %d, want 4", scenario.Frame())
	}
	if scenario.Clock().TotalTime() != 2*time.Second {
		t.Errorf("TotalTime() = %v, want 2s", scenario.Clock().TotalTime())
	}
}

func TestToggleAndRearm(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)
	once, _ := scenario.Lookup("once")

	stepFrames(scenario, source, 2)
	scenario.Toggle(once)
	if once.Timer().Active() {
		t.Fatal("Toggle did not stop the active timer")
	}
	stepFrames(scenario, source, 6)
	if once.Timer().HasElapsedOnce() {
		t.Fatal("stopped timer fired")
	}

	scenario.Toggle(once)
	fired := stepFrames(scenario, source, 2)
	if !slices.Contains(fired[1], "once") {
		t.Fatalf("resumed timer did not fire after the remaining 1s: %v", fired)
	}
	if scenario.Registered(once) {
		t.Fatal("one-shot timer not reaped")
	}

	// Toggling a reaped timer is a no-op; Rearm registers it again.
	scenario.Toggle(once)
	if once.Timer().Active() {
		t.Fatal("Toggle reactivated a reaped timer")
	}
	previous := once.Handle()
	scenario.Rearm(once)
	if !scenario.Registered(once) || once.Handle() == previous {
		t.Fatalf("Rearm did not re-register: handle %v (was %v)", once.Handle(), previous)
	}
	if !once.Timer().Active() || once.Timer().Progress() != 0 {
		t.Fatal("Rearm did not restart the countdown")
	}
	fired = stepFrames(scenario, source, 4)
	if !slices.Contains(fired[3], "once") {
		t.Fatalf("rearmed timer did not fire 2s later: %v", fired)
	}
}

func TestRearmRegisteredTimerKeepsHandle(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)
	later, _ := scenario.Lookup("later")
	handle := later.Handle()

	scenario.Rearm(later)
	if later.Handle() != handle {
		t.Fatal("Rearm re-registered a timer that was still owned")
	}
	if !later.Timer().Active() {
		t.Fatal("Rearm did not activate the manual timer")
	}
}

func TestRunStopsWhenIdle(t *testing.T) {
	source := clock.Fake(epoch)
	cfg := testConfig()
	cfg.Timers = cfg.Timers[:1]
	scenario := New(cfg, source, nil)

	if err := scenario.Run(context.Background(), 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if scenario.Frame() != 4 {
		t.Fatalf("Run stopped after %d frames, want 4", scenario.Frame())
	}
	if scenario.AnyActive() {
		t.Fatal("AnyActive() after idle stop")
	}
}

func TestRunFrameLimit(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)

	if err := scenario.Run(context.Background(), 7); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if scenario.Frame() != 7 {
		t.Fatalf("Frame() = %d, want 7", scenario.Frame())
	}
	every, _ := scenario.Lookup("every")
	if every.Timer().ElapsedCount() != 3 {
		t.Fatalf("repeating timer fired %d times in 3.5s, want 3", every.Timer().ElapsedCount())
	}
}

func TestRunCancelled(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := scenario.Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	if scenario.Frame() != 0 {
		t.Fatalf("cancelled Run stepped %d frames", scenario.Frame())
	}
}

func TestFiresAreLogged(t *testing.T) {
	logger, buffer := testutil.CaptureLogs(slog.LevelInfo)
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, logger)

	stepFrames(scenario, source, 6)
	output := buffer.String()
	for _, message := range []string{"timer fired", "timer=once", "timer reached its limit"} {
		if !strings.Contains(output, message) {
			t.Errorf("log output missing %q:\n%s", message, output)
		}
	}
}

func TestReportRoundTrip(t *testing.T) {
	source := clock.Fake(epoch)
	scenario := New(testConfig(), source, nil)
	stepFrames(scenario, source, 4)

	path := filepath.Join(t.TempDir(), "report.cbor")
	if err := scenario.WriteReport(path); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	report, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}

	if report.Frames != 4 || report.TotalTime != 2*time.Second {
		t.Errorf("report frames=%d total=%v, want 4 and 2s", report.Frames, report.TotalTime)
	}
	if len(report.Timers) != 4 {
		t.Fatalf("report has %d timers, want 4", len(report.Timers))
	}
	once := report.Timers[0]
	if once.Name != "once" || once.Registered || once.Active || once.Fires != 1 || once.Display != "2.00 Seconds" {
		t.Errorf("once report = %+v", once)
	}
	every := report.Timers[1]
	if !every.Registered || !every.Active || every.Fires != 2 || every.Handle != scenario.Entries()[1].Handle() {
		t.Errorf("every report = %+v", every)
	}
}

func TestReadReportMissing(t *testing.T) {
	if _, err := ReadReport(filepath.Join(t.TempDir(), "absent.cbor")); err == nil {
		t.Fatal("expected error for missing report")
	}
}
