package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTerminalEmitter(t *testing.T) {
	var buf bytes.Buffer
	em := NewTerminalEmitter(&buf)

	if err := em.Emit([]string{"ab", "cd"}); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if got := buf.String(); got != "\x1b[2J\x1b[1;1Hab\ncd\n" {
		t.Errorf("first frame = %q", got)
	}

	buf.Reset()
	if err := em.Emit([]string{"ef", "gh"}); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if got := buf.String(); got != "\x1b[1;1Hef\ngh\n" {
		t.Errorf("second frame = %q, expected no screen clear", got)
	}

	buf.Reset()
	if err := em.Status("hi"); err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	line := strings.TrimSuffix(buf.String(), "\n")
	if len(line) != statusWidth || strings.TrimSpace(line) != "hi" {
		t.Errorf("status = %q, expected %q padded to %d", line, "hi", statusWidth)
	}
}

func TestPlainEmitter(t *testing.T) {
	var buf bytes.Buffer
	em := NewPlainEmitter(&buf)

	em.Emit([]string{"ab", "cd"})
	em.Status("ok")

	if got := buf.String(); got != "ab\ncd\nok\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTiming(t *testing.T) {
	tm := NewTiming()

	if tm.Average() != 4*time.Millisecond {
		t.Errorf("seeded Average() = %v, expected 4ms", tm.Average())
	}

	for frame := 0; frame < TimingWindow; frame++ {
		tm.Record(frame, 10*time.Millisecond+400*time.Microsecond)
	}
	if tm.Average() != 10*time.Millisecond {
		t.Errorf("Average() = %v, expected 10ms", tm.Average())
	}

	tm.Record(TimingWindow, 60*time.Millisecond)
	if tm.Average() != 11*time.Millisecond {
		t.Errorf("Average() after one slow frame = %v, expected 11ms", tm.Average())
	}

	if tm.Ready(TimingWindow) || !tm.Ready(TimingWindow+1) {
		t.Error("Ready() should flip once more than a full window has been seen")
	}
	if got := tm.Line(TimingWindow + 1); got != "average time to paint (over 50 frames): 11ms" {
		t.Errorf("Line() = %q", got)
	}
}
