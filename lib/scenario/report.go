// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/bureau-foundation/frameclock/lib/codec"
	"github.com/bureau-foundation/frameclock/lib/gametimer"
)

// Report summarizes a run. It is written once, at exit, and never read
// back by the frame loop.
type Report struct {
	Frames    uint64        `cbor:"frames"`
	TotalTime time.Duration `cbor:"total_time"`
	Timers    []TimerReport `cbor:"timers"`
}

// TimerReport is the final state of one configured timer.
type TimerReport struct {
	Name       string           `cbor:"name"`
	Handle     gametimer.Handle `cbor:"handle"`
	Length     time.Duration    `cbor:"length"`
	Display    string           `cbor:"display"`
	Repeating  bool             `cbor:"repeating"`
	Registered bool             `cbor:"registered"`
	Active     bool             `cbor:"active"`
	Fires      uint64           `cbor:"fires"`
}

// Report captures the current state of the run.
func (s *Scenario) Report() Report {
	report := Report{
		Frames:    s.frame,
		TotalTime: s.frames.TotalTime(),
		Timers:    make([]TimerReport, 0, len(s.entries)),
	}
	for _, entry := range s.entries {
		report.Timers = append(report.Timers, TimerReport{
			Name:       entry.Name,
			Handle:     entry.handle,
			Length:     entry.timer.Length(),
			Display:    entry.timer.Duration().String(),
			Repeating:  entry.timer.Repeating(),
			Registered: s.Registered(entry),
			Active:     entry.timer.Active(),
			Fires:      entry.timer.ElapsedCount(),
		})
	}
	return report
}

// WriteReport encodes the current report as CBOR to path.
func (s *Scenario) WriteReport(path string) error {
	data, err := codec.Marshal(s.Report())
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	var report Report
	data, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("reading report: %w", err)
	}
	if err := codec.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("decoding report: %w", err)
	}
	return report, nil
}
