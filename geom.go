package gojaforeign

// Rect is an axis-aligned rectangle. Its script shape is an object with
// numeric x, y, width and height properties.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point is a two-dimensional point. Its script shape is an object with
// numeric x and y properties.
type Point struct {
	X float64
	Y float64
}
