package glyphmesh

// shapeEpsilon is the tolerance for cross product comparisons.
// Values below this threshold are treated as zero (collinear edges).
const shapeEpsilon = 1e-10

// Outline is a closed 2D polygon: the last point connects back to the first.
// Outlines fed to Extrude are expected to wind counter-clockwise.
type Outline []Point

// Clone returns an independent copy of the outline.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	out := make(Outline, len(o))
	copy(out, o)
	return out
}

// Reversed returns a copy of the outline with its winding flipped.
func (o Outline) Reversed() Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[len(o)-1-i] = p
	}
	return out
}

// Centroid returns the arithmetic mean of the outline's points.
// This is the apex of the cap fan, not the area centroid of the polygon.
func (o Outline) Centroid() Point {
	if len(o) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range o {
		c = c.Add(p)
	}
	return c.Div(float64(len(o)))
}

// SignedArea returns the shoelace area of the outline.
// Positive for counter-clockwise winding, negative for clockwise.
func (o Outline) SignedArea() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += o[i].Cross(o[(i+1)%n])
	}
	return sum / 2
}

// ShapeAnalysis describes how an outline will behave under centroid fan
// triangulation.
type ShapeAnalysis struct {
	// NumPoints is the number of points analyzed.
	NumPoints int

	// Winding is +1 for counter-clockwise, -1 for clockwise and
	// 0 for degenerate outlines (zero area).
	Winding int

	// Convex is true if every turn has the same direction.
	// Collinear edges do not break convexity.
	Convex bool

	// StarConvex is true if every edge is seen from the centroid with the
	// outline's winding, so the centroid fan covers the polygon exactly once.
	StarConvex bool
}

// Analyze reports the winding, convexity and star-convexity of the outline.
// Outlines with fewer than 3 points report a zero analysis apart from NumPoints.
//
// This is an O(n) algorithm.
func (o Outline) Analyze() ShapeAnalysis {
	n := len(o)
	result := ShapeAnalysis{NumPoints: n}
	if n < 3 {
		return result
	}

	area := o.SignedArea()
	switch {
	case area > shapeEpsilon:
		result.Winding = 1
	case area < -shapeEpsilon:
		result.Winding = -1
	default:
		return result
	}

	// Edge i goes from o[i] to o[(i+1)%n]; the cross product of consecutive
	// edges gives the turn direction at o[(i+1)%n].
	var positive, negative int
	for i := 0; i < n; i++ {
		p0 := o[i]
		p1 := o[(i+1)%n]
		p2 := o[(i+2)%n]

		cross := p1.Sub(p0).Cross(p2.Sub(p1))
		if cross > shapeEpsilon {
			positive++
		} else if cross < -shapeEpsilon {
			negative++
		}
	}
	result.Convex = positive == 0 || negative == 0

	c := o.Centroid()
	result.StarConvex = true
	for i := 0; i < n; i++ {
		a := o[i].Sub(c)
		b := o[(i+1)%n].Sub(c)
		if a.Cross(b)*float64(result.Winding) <= shapeEpsilon {
			result.StarConvex = false
			break
		}
	}

	return result
}
