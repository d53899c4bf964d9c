package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodicCubicStartEndAgree(t *testing.T) {
	knots := []Knot{{0, 0}, {1, 2}, {2, 1}, {3, 0}}
	tr := NewPeriodicCubicSpline(0, knots)
	for d := 0; d <= 2; d++ {
		assert.InDelta(t, tr.ValueAt(tr.Start(), d), tr.ValueAt(tr.End(), d), 1e-9)
	}
}

func TestPeriodicCubicWrapsPastEnd(t *testing.T) {
	knots := []Knot{{0, 0}, {1, 2}, {2, 1}, {3, 0}}
	tr := NewPeriodicCubicSpline(0, knots)
	period := tr.End() - tr.Start()
	wrapped := tr.ValueAt(tr.Start()+0.5, 0)
	past := tr.ValueAt(tr.Start()+0.5+period, 0)
	assert.InDelta(t, wrapped, past, 1e-9)
}

func TestPeriodicCubicInteriorKnots(t *testing.T) {
	knots := []Knot{{0, 0}, {1, 2}, {2, 1}, {3, 0}}
	tr := NewPeriodicCubicSpline(0, knots)
	for _, k := range knots {
		assert.InDelta(t, k.X, tr.ValueAt(k.T, 0), 1e-9)
	}
}
