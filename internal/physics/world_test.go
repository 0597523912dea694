package physics

import (
	"math"
	"testing"

	"ringrush/internal/geom"
)

func buildPair(t *testing.T) (*World, *Sensor, *Sensor) {
	t.Helper()

	needleMesh, err := geom.AnnularWedge(40, 55, math.Pi/64, 1)
	if err != nil {
		t.Fatalf("needle mesh: %v", err)
	}
	targetMesh, err := geom.AnnularWedge(43, 52, 25*math.Pi/180, 5)
	if err != nil {
		t.Fatalf("target mesh: %v", err)
	}

	w := NewWorld()
	needle := w.AddSensor(needleMesh)
	target := w.AddSensor(targetMesh)
	return w, needle, target
}

func TestContactBeginEnd(t *testing.T) {
	w, needle, target := buildPair(t)

	var events []Event
	w.OnContact(func(ev Event) {
		events = append(events, ev)
	})

	// Both sensors start at orientation zero: overlapping.
	w.Step()
	if len(events) != 1 || events[0].Kind != ContactBegin {
		t.Fatalf("after first step events = %+v, expected one ContactBegin", events)
	}
	if !events[0].Involves(needle.ID(), target.ID()) {
		t.Errorf("event %+v does not involve the sensor pair", events[0])
	}
	if !w.Touching(needle.ID(), target.ID()) {
		t.Error("Touching() = false after ContactBegin")
	}

	// Rotate the needle to the opposite side of the ring.
	needle.SetAngle(math.Pi)
	w.Step()
	if len(events) != 2 || events[1].Kind != ContactEnd {
		t.Fatalf("after second step events = %+v, expected ContactEnd", events)
	}
	if w.Touching(needle.ID(), target.ID()) {
		t.Error("Touching() = true after ContactEnd")
	}

	// And back into the target zone.
	needle.SetAngle(0)
	w.Step()
	if len(events) != 3 || events[2].Kind != ContactBegin {
		t.Fatalf("after third step events = %+v, expected second ContactBegin", events)
	}
}

func TestNoEventsWithoutTransition(t *testing.T) {
	w, needle, target := buildPair(t)

	var count int
	w.OnContact(func(Event) { count++ })

	w.Step() // Begin
	w.Step() // unchanged
	w.Step() // unchanged
	if count != 1 {
		t.Errorf("event count = %d, expected 1 (no events without a transition)", count)
	}

	needle.SetAngle(math.Pi)
	w.Step() // End
	w.Step() // unchanged
	if count != 2 {
		t.Errorf("event count = %d, expected 2", count)
	}

	_ = target
}

func TestSmallRotationsStayInContact(t *testing.T) {
	w, needle, target := buildPair(t)

	var events []Event
	w.OnContact(func(ev Event) { events = append(events, ev) })

	// Sweep the needle through the target span; contact must not flicker.
	for a := -0.3; a <= 0.3; a += 0.01 {
		needle.SetAngle(a)
		w.Step()
	}
	if len(events) != 1 || events[0].Kind != ContactBegin {
		t.Errorf("events = %+v, expected a single ContactBegin across the sweep", events)
	}

	_ = target
}

func TestTouchingOrderIndependent(t *testing.T) {
	w, needle, target := buildPair(t)
	w.Step()

	if w.Touching(needle.ID(), target.ID()) != w.Touching(target.ID(), needle.ID()) {
		t.Error("Touching() should be symmetric in its arguments")
	}
}

func TestEventInvolves(t *testing.T) {
	ev := Event{Kind: ContactBegin, A: 0, B: 1}

	if !ev.Involves(0, 1) {
		t.Error("Involves(0, 1) = false, expected true")
	}
	if !ev.Involves(1, 0) {
		t.Error("Involves(1, 0) = false, expected true")
	}
	if ev.Involves(0, 2) {
		t.Error("Involves(0, 2) = true, expected false")
	}
}
