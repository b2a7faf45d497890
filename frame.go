package shimmer

import "github.com/hajimehoshi/ebiten/v2"

// Frame hosts a Drawable over arbitrary content. It owns the offscreen
// surface the shimmer is masked against, forwards layout changes as bounds,
// and acts as the drawable's attachment point in the game loop: the first
// Update attaches the drawable, which auto-starts when the configuration
// asks for it.
//
// Content is the caller's draw function; it receives a cleared surface every
// frame. For alpha-masked shimmers only Content's opaque pixels light up.
type Frame struct {
	Content func(dst *ebiten.Image)

	drawable    *Drawable
	surface     *surface
	showShimmer bool
	attached    bool
	disposed    bool
}

// NewFrame creates a frame of the given pixel size hosting a shimmer with
// the given configuration.
func NewFrame(cfg Config, width, height int) *Frame {
	f := &Frame{
		drawable:    NewDrawable(),
		surface:     newSurface(width, height),
		showShimmer: true,
	}
	f.drawable.SetConfig(cfg)
	f.drawable.SetBounds(Rect{Width: float64(width), Height: float64(height)})
	return f
}

// Drawable returns the hosted drawable for direct control
// (start/stop, static progress, reconfiguration).
func (f *Frame) Drawable() *Drawable {
	return f.drawable
}

// Resize changes the frame's pixel size, rebuilding the surface and the
// drawable's gradient.
func (f *Frame) Resize(width, height int) {
	f.surface.Resize(width, height)
	f.drawable.SetBounds(Rect{Width: float64(width), Height: float64(height)})
}

// SetShowShimmer toggles the shimmer overlay. Hiding stops the animation;
// showing again restarts it when the configuration auto-starts.
func (f *Frame) SetShowShimmer(show bool) {
	if show == f.showShimmer {
		return
	}
	f.showShimmer = show
	if show {
		f.drawable.maybeStart()
	} else {
		f.drawable.Stop()
	}
}

// ShowingShimmer reports whether the shimmer overlay is enabled.
func (f *Frame) ShowingShimmer() bool {
	return f.showShimmer
}

// Invalidate implements Callback. Ebitengine redraws every frame, so a
// redraw request needs no bookkeeping here.
func (f *Frame) Invalidate() {}

// Update advances the shimmer animation by dt seconds. The first call
// attaches the drawable to this frame as its live rendering context.
func (f *Frame) Update(dt float64) {
	if f.disposed {
		return
	}
	if !f.attached {
		f.attached = true
		f.drawable.SetCallback(f)
	}
	if f.showShimmer {
		f.drawable.Update(dt)
	}
}

// Draw composites the content and the shimmer overlay onto screen using the
// given draw options (nil for drawing at the origin).
func (f *Frame) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if f.disposed {
		return
	}
	f.surface.Clear()
	if f.Content != nil {
		f.Content(f.surface.Image())
	}
	if f.showShimmer {
		f.drawable.Draw(f.surface.Image())
	}
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	screen.DrawImage(f.surface.Image(), op)
}

// Dispose stops the animation, detaches the drawable, and frees the surface.
// The frame must not be used after Dispose.
func (f *Frame) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.drawable.Stop()
	f.drawable.SetCallback(nil)
	f.surface.Dispose()
}
