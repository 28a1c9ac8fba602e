package kinetic

// InViewConfig configures an InViewTracker.
type InViewConfig struct {
	// Amount is the fraction of the element's area that must be visible,
	// in [0, 1]. Zero means any contact with the viewport.
	Amount float64
	// Once latches the revealed signal after the first time the element
	// comes into view and stops observing.
	Once bool
}

// DefaultInViewConfig returns Amount 0.1 with Once set.
func DefaultInViewConfig() InViewConfig {
	return InViewConfig{Amount: 0.1, Once: true}
}

// IntersectionState is the tracker's view of one element.
type IntersectionState struct {
	// HasEntered is set the first time the element is in view.
	HasEntered bool
	// Visible is the revealed signal.
	Visible bool
}

// InViewTracker turns intersection entries into a revealed signal and
// notifies subscribers on every change.
type InViewTracker struct {
	src      IntersectionSource
	cfg      InViewConfig
	state    IntersectionState
	subs     []func(bool)
	observed bool
	detached bool
}

// NewInViewTracker creates a tracker reading from src. Amount is clamped to
// [0, 1].
func NewInViewTracker(src IntersectionSource, cfg InViewConfig) *InViewTracker {
	cfg.Amount = Clamp(cfg.Amount, 0, 1)
	return &InViewTracker{src: src, cfg: cfg}
}

// Attach starts observing el. A nil element (or a nil source) leaves the
// tracker idle with the signal false. Attach only takes effect once.
func (t *InViewTracker) Attach(el *Element) {
	if el == nil || t.src == nil || t.observed || t.detached {
		return
	}
	t.observed = true
	t.src.Start(el, t.observe)
}

// Detach stops observing. The current state is kept.
func (t *InViewTracker) Detach() {
	if t.detached {
		return
	}
	t.detached = true
	if t.observed && t.src != nil {
		t.src.Stop()
	}
}

// Revealed returns the revealed signal.
func (t *InViewTracker) Revealed() bool {
	return t.state.Visible
}

// State returns the full intersection state.
func (t *InViewTracker) State() IntersectionState {
	return t.state
}

// Config returns the effective configuration.
func (t *InViewTracker) Config() InViewConfig {
	return t.cfg
}

// Subscribe registers fn to be called with the new signal value on every
// change.
func (t *InViewTracker) Subscribe(fn func(revealed bool)) {
	if fn != nil {
		t.subs = append(t.subs, fn)
	}
}

func (t *InViewTracker) observe(e IntersectionEntry) {
	if t.detached || (t.cfg.Once && t.state.Visible) {
		return
	}
	in := e.Intersecting && e.Ratio >= t.cfg.Amount
	if in {
		t.state.HasEntered = true
	}
	if in == t.state.Visible {
		return
	}
	t.state.Visible = in
	if in && t.cfg.Once {
		t.Detach()
	}
	for _, fn := range t.subs {
		fn(in)
	}
}
