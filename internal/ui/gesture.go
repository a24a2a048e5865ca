package ui

// PointerPhase identifies where in a drag a pointer event falls.
type PointerPhase int

const (
	PhaseStart PointerPhase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// PointerEvent is one sample of a drag stream: the phase plus the
// pointer's offset along the slider's main axis, in pixels from the
// track origin. Positions outside the track are fine; the mapper
// clamps them.
type PointerEvent struct {
	Phase    PointerPhase
	Position float64
}

// Geometry carries the per-layout inputs. Callers re-supply it on
// every layout pass; nothing in it is persisted across passes.
type Geometry struct {
	Span     float64
	Insets   Insets
	Inverted bool
}

// Config carries the slider's value-domain configuration. Step <= 0
// disables stepping. InteractiveTrack enables the jump-to-tap gesture
// on the track region.
type Config struct {
	Bounds           Bounds
	Step             float64
	InteractiveTrack bool
}

// Controller turns pointer-drag streams over the track and thumb
// hit-regions into value updates. It owns the current value, the
// editing flag, and the per-drag grab session; each slider instance
// owns exactly one Controller and drives it from a single goroutine.
//
// A drag on the track jumps the value straight to the pointer. A drag
// on the thumb preserves the pointer's initial offset from the thumb's
// center, so a thumb grabbed off-center does not snap under the
// pointer.
type Controller struct {
	geom Geometry
	cfg  Config

	value   float64
	editing bool

	// drag session; cleared on end/cancel, never reused across drags
	startPos   float64
	hasStart   bool
	grabOffset float64
	grabbed    bool

	// OnChange fires synchronously for every value change, OnEditing
	// for every editing transition.
	OnChange  func(float64)
	OnEditing func(bool)
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, value: cfg.Bounds.Lower}
}

func (c *Controller) Config() Config     { return c.cfg }
func (c *Controller) Geometry() Geometry { return c.geom }
func (c *Controller) Value() float64     { return c.value }
func (c *Controller) Editing() bool      { return c.editing }

// SetGeometry installs the geometry for the current layout pass.
func (c *Controller) SetGeometry(g Geometry) {
	if g.Span < 0 {
		g.Span = 0
	}
	c.geom = g
}

// SetConfig installs a new configuration and reclamps the current value
// into the new bounds.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
	c.publish(cfg.Bounds.Clamp(c.value))
}

// SetValue sets the value programmatically, clamped but not snapped.
func (c *Controller) SetValue(v float64) {
	c.publish(c.cfg.Bounds.Clamp(v))
}

// ThumbDistance reports the pixel offset of the thumb's center under
// the current geometry and value.
func (c *Controller) ThumbDistance() float64 {
	return DistanceForValue(c.value, c.geom.Span, c.cfg.Bounds, c.geom.Insets, c.geom.Inverted)
}

// HandleTrack processes one event of a drag over the track region.
// Start and every move jump the value to the pointer position, with no
// offset correction. Reports whether the event was consumed; it never
// is while the interactive track option is off.
func (c *Controller) HandleTrack(ev PointerEvent) bool {
	if !c.cfg.InteractiveTrack {
		return false
	}
	switch ev.Phase {
	case PhaseStart, PhaseMove:
		c.setEditing(true)
		c.publish(c.valueAt(ev.Position))
	case PhaseEnd, PhaseCancel:
		c.setEditing(false)
	}
	return true
}

// HandleThumb processes one event of a drag that began on the thumb.
// The grab offset is captured once per drag, on the first move, from
// the drag's initial position; cancel behaves exactly like end so no
// session state leaks into the next drag.
func (c *Controller) HandleThumb(ev PointerEvent) bool {
	switch ev.Phase {
	case PhaseStart:
		c.startPos = ev.Position
		c.hasStart = true
		c.setEditing(true)
	case PhaseMove:
		c.setEditing(true)
		if !c.grabbed {
			initial := ev.Position
			if c.hasStart {
				initial = c.startPos
			}
			c.grabOffset = initial - c.ThumbDistance()
			c.grabbed = true
		}
		c.publish(c.valueAt(ev.Position - c.grabOffset))
	case PhaseEnd, PhaseCancel:
		c.grabbed = false
		c.grabOffset = 0
		c.hasStart = false
		c.setEditing(false)
	}
	return true
}

func (c *Controller) valueAt(pos float64) float64 {
	return ValueForDistance(pos, c.geom.Span, c.cfg.Bounds, c.cfg.Step, c.geom.Insets, c.geom.Inverted)
}

func (c *Controller) publish(v float64) {
	if v == c.value {
		return
	}
	c.value = v
	if c.OnChange != nil {
		c.OnChange(v)
	}
}

func (c *Controller) setEditing(on bool) {
	if on == c.editing {
		return
	}
	c.editing = on
	if c.OnEditing != nil {
		c.OnEditing(on)
	}
}
