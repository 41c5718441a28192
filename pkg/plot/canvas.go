package plot

import "image/color"

// TextStyle controls how DrawText positions a string.
type TextStyle struct {
	Color color.Color

	// AnchorX and AnchorY select the point of the text box placed at the
	// target position: (0,0) top-left, (0.5,0.5) centre, (1,1) bottom-right.
	AnchorX, AnchorY float64

	// Vertical rotates the text 90 degrees counter-clockwise. Anchors then
	// refer to the rotated box.
	Vertical bool
}

// Canvas is the drawing backend a Plot paints onto. All coordinates are
// pixels with Y growing downwards. A Canvas only renders; every layout
// decision has already been made by the Plot.
type Canvas interface {
	FillRect(r Rect, b Brush)
	StrokeRect(r Rect, p Pen)
	DrawLine(p1, p2 Point, p Pen)
	DrawMarker(at Point, style PointStyle, size float64, p Pen, b Brush)
	DrawText(s string, at Point, st TextStyle)
	TextSize(s string) Size
}
