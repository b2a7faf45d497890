package shimmer

import "github.com/hajimehoshi/ebiten/v2"

// surface is an offscreen canvas the Frame composites content and shimmer
// into before drawing to the screen. It is owned by one Frame and never
// shared across frames.
type surface struct {
	image *ebiten.Image
	w, h  int
}

func newSurface(w, h int) *surface {
	return &surface{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct drawing.
func (s *surface) Image() *ebiten.Image {
	return s.image
}

// Clear fills the surface with transparent black.
func (s *surface) Clear() {
	s.image.Clear()
}

// Resize deallocates the old image and creates a new one at the given size.
func (s *surface) Resize(w, h int) {
	if s.image != nil {
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(w, h)
	s.w = w
	s.h = h
}

// Dispose deallocates the underlying image. The surface must not be used
// after Dispose.
func (s *surface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}
