package daynight

import (
	"daynight-engine/core"
)

// Gradient is a list of color keys spread evenly over [0,1]: with N keys,
// key i sits at i/(N-1).
type Gradient []core.Color

// Sample evaluates the gradient at t by linear interpolation between the
// two surrounding keys. t clamps to [0,1], so t=1 yields exactly the last
// key. An empty gradient returns the zero color; a single key is returned
// unchanged (no interval to divide).
func (g Gradient) Sample(t float64) core.Color {
	switch len(g) {
	case 0:
		return core.Color{}
	case 1:
		return g[0]
	}
	if t <= 0 {
		return g[0]
	}
	if t >= 1 {
		return g[len(g)-1]
	}
	pos := t * float64(len(g)-1)
	i := int(pos)
	if i >= len(g)-1 {
		return g[len(g)-1]
	}
	return g[i].Lerp(g[i+1], float32(pos-float64(i)))
}
