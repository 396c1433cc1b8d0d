package wheel

// State is the rotation lifecycle of a wheel.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	if s == Spinning {
		return "SPINNING"
	}
	return "IDLE"
}

// Tracker turns the stream of absolute rotation samples from the animation
// into incremental rotations of the model.
type Tracker struct {
	model    *Model
	state    State
	total    float64
	previous float64
}

// NewTracker creates an idle tracker driving m.
func NewTracker(m *Model) *Tracker {
	return &Tracker{model: m}
}

// Begin moves an idle tracker to Spinning. It returns false, changing
// nothing, if a spin is already running.
func (t *Tracker) Begin() bool {
	if t.state != Idle {
		return false
	}
	t.state = Spinning
	t.total, t.previous = 0, 0
	return true
}

// Sample applies the difference between s and the previous sample. Samples
// must arrive in delivery order. Ignored while idle.
func (t *Tracker) Sample(s float64) {
	if t.state != Spinning {
		return
	}
	t.total = s
	if delta := s - t.previous; delta != 0 {
		t.model.ApplyRotation(delta)
	}
	t.previous = s
}

// Complete normalizes the model and returns the tracker to Idle.
func (t *Tracker) Complete() {
	if t.state != Spinning {
		return
	}
	t.model.ResetOrientation()
	t.total, t.previous = 0, 0
	t.state = Idle
}

func (t *Tracker) State() State { return t.state }

// Total is the latest absolute sample; zero while idle.
func (t *Tracker) Total() float64 { return t.total }

// Previous is the sample before Total; zero while idle.
func (t *Tracker) Previous() float64 { return t.previous }
