package shimmer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Callback is the drawable's view of its host. A non-nil callback means the
// drawable is attached to a live rendering context; Invalidate asks the host
// to redraw on its next frame.
type Callback interface {
	Invalidate()
}

// Drawable renders one shimmer effect over a rectangular surface. All state
// is owned by the host's frame loop goroutine; Drawable does no locking and
// starts no goroutines.
//
// The host wires it up by calling SetCallback on attach, SetBounds on layout
// changes, Update once per tick, and Draw over the surface's content.
type Drawable struct {
	cfg      *Config
	bounds   Rect
	gradient *gradient
	timer    *Timer
	callback Callback

	// staticProgress overrides the timer's output when in [0, 1];
	// -1 means unset. Used for snapshot and inspection rendering.
	staticProgress float64
}

// NewDrawable creates a drawable with no configuration. It renders nothing
// until SetConfig is called.
func NewDrawable() *Drawable {
	return &Drawable{staticProgress: -1}
}

// SetConfig replaces the shimmer configuration, rebuilding the gradient and
// the timer. A running animation keeps running under the new timing.
func (d *Drawable) SetConfig(cfg Config) {
	d.cfg = &cfg
	d.gradient = newGradient(d.cfg, d.bounds)

	wasStarted := d.timer != nil && d.timer.IsStarted()
	d.timer = NewTimer(d.cfg)
	if wasStarted {
		d.timer.Start()
	}
	d.invalidate()
}

// Config returns the current configuration, or nil if none has been set.
func (d *Drawable) Config() *Config {
	return d.cfg
}

// SetCallback attaches or detaches the host. Attaching a live host may
// auto-start the animation; detaching does not stop it, hosts stop
// explicitly on teardown.
func (d *Drawable) SetCallback(cb Callback) {
	d.callback = cb
	d.maybeStart()
}

// SetBounds sets the surface rectangle and rebuilds the gradient. Zero-area
// bounds are a normal transient state during layout; rendering stays a no-op
// until the bounds become valid.
func (d *Drawable) SetBounds(bounds Rect) {
	d.bounds = bounds
	if d.cfg != nil {
		d.gradient = newGradient(d.cfg, d.bounds)
	}
	d.maybeStart()
	d.invalidate()
}

// Bounds returns the current surface rectangle.
func (d *Drawable) Bounds() Rect {
	return d.bounds
}

// Start begins the animation. It is a no-op when already started, when no
// configuration is set, or when the drawable has no attached host.
func (d *Drawable) Start() {
	if d.timer == nil || d.callback == nil {
		return
	}
	d.timer.Start()
}

// Stop cancels the animation immediately; progress freezes at its last value.
func (d *Drawable) Stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}

// IsStarted reports whether the animation has been started, including the
// initial start delay.
func (d *Drawable) IsStarted() bool {
	return d.timer != nil && d.timer.IsStarted()
}

// IsRunning reports whether the animation is actively advancing.
func (d *Drawable) IsRunning() bool {
	return d.timer != nil && d.timer.IsRunning()
}

// SetStaticProgress fixes rendering at the given progress value without
// stopping the timer. Values above 1 are clamped to 1; negative values mean
// unset. Setting the current value again is a no-op and triggers no redraw.
func (d *Drawable) SetStaticProgress(value float64) {
	if value == d.staticProgress || (value < 0 && d.staticProgress < 0) {
		return
	}
	d.staticProgress = math.Min(value, 1)
	d.invalidate()
}

// ClearStaticProgress resumes rendering from the live timer.
func (d *Drawable) ClearStaticProgress() {
	d.SetStaticProgress(-1)
}

// Update advances the animation by dt seconds and requests a redraw from the
// host when the progress value changed.
func (d *Drawable) Update(dt float64) {
	if d.timer != nil && d.timer.Tick(dt) {
		d.invalidate()
	}
}

// Translucent reports whether the shimmer output can leave the surface
// non-opaque, so the host knows whether it may skip alpha compositing.
func (d *Drawable) Translucent() bool {
	return d.cfg != nil && d.cfg.Translucent()
}

// Draw renders the current frame over dst. dst should already hold the
// surface's content: for linear and radial shapes the highlight is drawn
// through a masking blend so it is confined to that content. Draw is a no-op
// without a configuration or, for the gradient shapes, without valid bounds.
func (d *Drawable) Draw(dst *ebiten.Image) {
	if d.cfg == nil || d.bounds.Empty() {
		return
	}
	if d.cfg.Shape != ShapeBreathe && d.gradient == nil {
		return
	}

	animatedValue := d.staticProgress
	if animatedValue < 0 {
		if d.timer != nil {
			animatedValue = d.timer.Progress()
		} else {
			animatedValue = 0
		}
	}

	if d.cfg.Shape == ShapeBreathe {
		// The pulse is a plain fill and does not go through the masking
		// blend the gradient shapes use.
		d.fillBreathe(dst, animatedValue)
		return
	}

	local := computeLocalTransform(animatedValue, d.bounds, d.cfg.TiltDegrees, d.cfg.Direction)
	d.gradient.setLocalMatrix(local, d.bounds)

	blend := blendSrcIn
	if d.cfg.MaskByAlpha {
		blend = blendDstIn
	}
	d.gradient.draw(dst, d.bounds, blend)
}

func (d *Drawable) fillBreathe(dst *ebiten.Image, animatedValue float64) {
	c := BlendARGB(animatedValue, d.cfg.BaseColor, d.cfg.HighlightColor)
	a, r, g, b := c.channels()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(d.bounds.Width, d.bounds.Height)
	op.GeoM.Translate(d.bounds.X, d.bounds.Y)
	op.ColorScale.Scale(float32(r*a), float32(g*a), float32(b*a), float32(a))
	dst.DrawImage(ensureWhitePixel(), &op)
}

// maybeStart auto-starts the timer when a live host is attached, the
// configuration asks for it, and the animation has not already been started.
func (d *Drawable) maybeStart() {
	if d.timer != nil && !d.timer.IsStarted() && d.cfg != nil && d.cfg.AutoStart && d.callback != nil {
		d.timer.Start()
	}
}

func (d *Drawable) invalidate() {
	if d.callback != nil {
		d.callback.Invalidate()
	}
}
