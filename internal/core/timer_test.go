package core

import (
	"testing"
	"time"
)

func TestFixedStepReleasesOneTickPerInterval(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)

	if !fs.Advance(start) {
		t.Fatal("first call should release the primed tick")
	}
	if fs.Advance(start.Add(50 * time.Millisecond)) {
		t.Fatal("ticked after half an interval")
	}
	if !fs.Advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("did not tick after a full interval")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.Advance(start)

	later := start.Add(5 * time.Second)
	if !fs.Advance(later) {
		t.Fatal("expected a tick after a long stall")
	}
	if !fs.Advance(later) {
		t.Fatal("expected the capped backlog to release one more tick")
	}
	if fs.Advance(later) {
		t.Fatal("backlog was not capped")
	}
}

func TestSetTPSDefaultsNonPositive(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, expected default 60", fs.TPS())
	}
	fs.SetTPS(14)
	if fs.TPS() != 14 {
		t.Fatalf("TPS = %d after SetTPS(14)", fs.TPS())
	}
}

func TestFixedStepResetWaitsAFullStep(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.Advance(start)
	fs.Advance(start.Add(time.Second))

	fs.Reset()
	resume := start.Add(2 * time.Second)
	if fs.Advance(resume) {
		t.Fatal("ticked immediately after Reset")
	}
	if fs.Advance(resume.Add(50 * time.Millisecond)) {
		t.Fatal("ticked before a full step after Reset")
	}
	if !fs.Advance(resume.Add(100 * time.Millisecond)) {
		t.Fatal("did not tick one step after Reset")
	}
}
