// Package shimmer renders an animated loading-placeholder highlight for
// [Ebitengine]: a gradient band or radial glow sweeping across a surface, or
// a solid color pulsing between two tones.
//
// # Quick start
//
// The simplest host is a [Frame], which owns the offscreen surface and the
// attach/auto-start lifecycle:
//
//	cfg := shimmer.NewBuilder().
//		SetDirection(shimmer.LeftToRight).
//		SetDuration(1200 * time.Millisecond).
//		MustBuild()
//
//	frame := shimmer.NewFrame(cfg, 320, 80)
//	frame.Content = func(dst *ebiten.Image) {
//		// draw the placeholder content the shimmer is masked against
//	}
//
//	// per game tick:
//	frame.Update(1.0 / float64(ebiten.TPS()))
//	// per draw:
//	frame.Draw(screen, nil)
//
// For full control, host a [Drawable] yourself: call SetCallback when your
// rendering context comes alive, SetBounds on layout changes, Update each
// tick, and Draw over your own surface. The drawable owns only the math and
// the paint state; the host owns the loop.
//
// # Configuration
//
// A [Config] is an immutable value built once through a [Builder] and
// replaced wholesale to reconfigure. [NewBuilder] starts from an alpha
// highlight (the shimmer masks the surface by its own alpha);
// [NewColorBuilder] starts from a color highlight confined to the surface's
// opaque content. Configurations can also be loaded from YAML via
// [LoadPreset].
//
// All state lives on the host's frame-loop goroutine: no locks, no
// background goroutines, no blocking calls.
//
// [Ebitengine]: https://ebitengine.org
package shimmer
