package daynight

// Curve is a list of scalar keys spread evenly over [0,1], the float
// counterpart of Gradient.
type Curve []float32

// Sample evaluates the curve at t by linear interpolation between the two
// surrounding keys. t clamps to [0,1]. An empty curve returns 0; a single
// key is returned unchanged.
func (c Curve) Sample(t float64) float32 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0]
	}
	if t <= 0 {
		return c[0]
	}
	if t >= 1 {
		return c[len(c)-1]
	}
	pos := t * float64(len(c)-1)
	i := int(pos)
	if i >= len(c)-1 {
		return c[len(c)-1]
	}
	f := float32(pos - float64(i))
	return c[i] + (c[i+1]-c[i])*f
}
