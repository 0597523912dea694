// Package physics is a minimal 2D overlap-detection backend. It manages
// sensor shapes (detection-only, no forces) and notifies subscribers with
// begin/end contact events when pairs of sensors start or stop intersecting.
//
// Games consume the events through an observer callback and never perform
// their own geometric intersection tests.
package physics

import (
	"ringrush/internal/geom"
)

// SensorID identifies a registered sensor shape within a World.
type SensorID int

// EventKind distinguishes contact begin from contact end.
type EventKind int

const (
	// ContactBegin is emitted on the step in which two sensors start
	// intersecting.
	ContactBegin EventKind = iota
	// ContactEnd is emitted on the step in which two sensors stop
	// intersecting.
	ContactEnd
)

// Event is a contact notification for a sensor pair. A < B always holds.
type Event struct {
	Kind EventKind
	A, B SensorID
}

// Involves reports whether the event concerns the given pair, in any order.
func (e Event) Involves(a, b SensorID) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Sensor is a registered collision outline. Only its orientation changes
// after registration; the local-space mesh is fixed.
type Sensor struct {
	id    SensorID
	local geom.Mesh
	angle float64
}

// ID returns the sensor's identity within its world.
func (s *Sensor) ID() SensorID {
	return s.id
}

// SetAngle sets the sensor's orientation, applied at the next world step.
func (s *Sensor) SetAngle(angle float64) {
	s.angle = angle
}

// Angle returns the sensor's current orientation.
func (s *Sensor) Angle() float64 {
	return s.angle
}

// worldMesh returns the sensor's mesh transformed into world space.
func (s *Sensor) worldMesh() geom.Mesh {
	return s.local.Rotated(s.angle)
}

// ContactHandler receives contact events during World.Step.
type ContactHandler func(Event)

// World owns a set of sensors and tracks which pairs currently intersect.
// It is single-threaded by contract: all calls happen from the game's
// update loop.
type World struct {
	sensors  []*Sensor
	touching map[[2]SensorID]bool
	handlers []ContactHandler
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		touching: make(map[[2]SensorID]bool),
	}
}

// AddSensor registers a sensor shape built from the given mesh and returns
// its handle. The mesh is used as-is; callers validate geometry beforehand.
func (w *World) AddSensor(mesh geom.Mesh) *Sensor {
	s := &Sensor{
		id:    SensorID(len(w.sensors)),
		local: mesh,
	}
	w.sensors = append(w.sensors, s)
	return s
}

// OnContact subscribes a handler to contact events. Handlers run
// synchronously inside Step, in subscription order.
func (w *World) OnContact(h ContactHandler) {
	w.handlers = append(w.handlers, h)
}

// Step recomputes pairwise sensor intersection and emits ContactBegin or
// ContactEnd for every pair whose overlap state changed since the previous
// step. Pairs whose state is unchanged emit nothing.
func (w *World) Step() {
	for i := 0; i < len(w.sensors); i++ {
		a := w.sensors[i]
		meshA := a.worldMesh()
		for j := i + 1; j < len(w.sensors); j++ {
			b := w.sensors[j]
			key := [2]SensorID{a.id, b.id}

			now := geom.MeshesIntersect(meshA, b.worldMesh())
			was := w.touching[key]
			if now == was {
				continue
			}
			w.touching[key] = now

			kind := ContactEnd
			if now {
				kind = ContactBegin
			}
			w.emit(Event{Kind: kind, A: a.id, B: b.id})
		}
	}
}

// Touching reports whether the two sensors were intersecting as of the last
// step.
func (w *World) Touching(a, b SensorID) bool {
	if a > b {
		a, b = b, a
	}
	return w.touching[[2]SensorID{a, b}]
}

func (w *World) emit(ev Event) {
	for _, h := range w.handlers {
		h(ev)
	}
}
