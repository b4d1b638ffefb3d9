// Package graphics provides the 2D drawing substrate for isobox:
// geometry primitives, colors, paints, vector paths, the Canvas
// interface, and a display list for recording and replaying draw calls.
package graphics

// Canvas records or renders drawing commands.
//
// Implementations are not safe for concurrent use; independent canvases
// are fully independent.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Clear fills the entire canvas with the given color, ignoring the
	// current transform.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
