package cell

// Size is a grid dimension.
type Size struct {
	Width  int
	Height int
}

// Grid limits. MaxArea keeps a full buffer allocation bounded and Width*Height
// far from overflowing int.
const (
	MaxDimension = 4096
	MaxArea      = 1 << 20
)

// Clamp returns s with both dimensions raised to at least 1 and limited to
// MaxDimension. When the area still exceeds MaxArea the height is reduced.
func (s Size) Clamp() Size {
	s.Width = min(max(s.Width, 1), MaxDimension)
	s.Height = min(max(s.Height, 1), MaxDimension)
	if s.Width*s.Height > MaxArea {
		s.Height = MaxArea / s.Width
	}
	return s
}

// Area returns the number of cells covered by s.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Rect is a region of the grid.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Bounds returns the rect covering the whole of s.
func (s Size) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}
