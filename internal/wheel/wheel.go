// Package wheel is the geometry and spin logic of a wheel of fortune:
// sector layout, pointer hit-testing, and the rotation that lands a chosen
// sector under the pointer at the top of the wheel.
//
// Everything here runs on the caller's goroutine. The render loop and the
// animation must not call into a Wheel concurrently.
package wheel

import (
	"github.com/rs/zerolog"

	"wheel.klederson.com/internal/palette"
)

// Cursor is the pointer style hint for the input collaborator.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

func (c Cursor) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// Hover is the outcome of a pointer move.
type Hover struct {
	Sector int
	OK     bool
	Cursor Cursor
}

// Wheel is one interactive wheel: its sectors, spin resolver and rotation
// lifecycle.
type Wheel struct {
	model    *Model
	resolver *Resolver
	tracker  *Tracker
	log      zerolog.Logger

	lastSpin *Spin
}

// New creates a wheel of n sectors with random colours.
func New(n int, rng Rand, log zerolog.Logger) *Wheel {
	colors := func(int) palette.Color { return palette.Random(rng) }
	model := NewModel(n, Geometry{}, colors)
	return &Wheel{
		model:    model,
		resolver: NewResolver(rng),
		tracker:  NewTracker(model),
		log:      log.With().Str("component", "wheel").Logger(),
	}
}

func (w *Wheel) Model() *Model { return w.model }

func (w *Wheel) Resolver() *Resolver { return w.resolver }

func (w *Wheel) Tracker() *Tracker { return w.tracker }

// Spinning reports whether a spin is in progress.
func (w *Wheel) Spinning() bool { return w.tracker.State() == Spinning }

// LastSpin returns the most recently accepted spin.
func (w *Wheel) LastSpin() (Spin, bool) {
	if w.lastSpin == nil {
		return Spin{}, false
	}
	return *w.lastSpin, true
}

// Trigger resolves a new spin. While a spin is running the request is
// rejected and nothing changes.
func (w *Wheel) Trigger() (Spin, bool) {
	if w.Spinning() {
		w.log.Debug().Msg("spin rejected: wheel is spinning")
		return Spin{}, false
	}

	spin := w.resolver.Resolve(w.model)
	w.tracker.Begin()
	w.lastSpin = &spin

	w.log.Info().
		Str("spin_id", spin.ID.String()).
		Int("sector", spin.Sector).
		Int("turns", spin.ExtraTurns).
		Float64("jitter", spin.Jitter).
		Float64("delta", spin.Delta).
		Msg("spin accepted")
	return spin, true
}

// OnSample feeds one animated rotation value.
func (w *Wheel) OnSample(v float64) {
	w.tracker.Sample(v)
}

// OnComplete ends the running spin.
func (w *Wheel) OnComplete() {
	if !w.Spinning() {
		return
	}
	w.tracker.Complete()

	ev := w.log.Info()
	if w.lastSpin != nil {
		ev = ev.Str("spin_id", w.lastSpin.ID.String()).Int("sector", w.lastSpin.Sector)
	}
	ev.Msg("spin complete")
}

// Pointer hit-tests (x, y) and moves the highlight to the sector found.
func (w *Wheel) Pointer(x, y float64) Hover {
	id, ok := w.model.HitTest(x, y)
	w.model.SetHighlight(id, ok)
	h := Hover{Sector: id, OK: ok}
	if ok {
		h.Cursor = CursorPointer
	}
	return h
}

// ClearPointer drops any highlight, e.g. when the pointer leaves the wheel.
func (w *Wheel) ClearPointer() {
	w.model.SetHighlight(-1, false)
}

// InHub reports whether (x, y) is on the hub, the spin button.
func (w *Wheel) InHub(x, y float64) bool {
	return w.model.InDeadZone(x, y)
}

// Winner returns the sector currently under the reference angle.
func (w *Wheel) Winner() (int, bool) {
	for i, s := range w.model.sectors {
		if s.Width >= FullTurn || angleInSpan(Reference, Normalize(s.Start), Normalize(s.End)) {
			return i, true
		}
	}
	return -1, false
}
